package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/hermes-backend/internal/http/response"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/composer"
	"github.com/yungbote/hermes-backend/internal/pkg/dbctx"
	"github.com/yungbote/hermes-backend/internal/services"
)

type PersonaHandler struct {
	persona services.PersonaService
}

func NewPersonaHandler(persona services.PersonaService) *PersonaHandler {
	return &PersonaHandler{persona: persona}
}

type respondReq struct {
	ThreadID    string               `json:"thread_id"`
	Message     string               `json:"message" binding:"required"`
	Locale      string               `json:"locale"`
	Preferences composer.Preferences `json:"preferences"`
}

func (r respondReq) input() (services.RespondInput, error) {
	in := services.RespondInput{
		Message:     r.Message,
		Locale:      r.Locale,
		Preferences: r.Preferences,
	}
	if id := strings.TrimSpace(r.ThreadID); id != "" {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return in, err
		}
		in.ThreadID = parsed
	}
	return in, nil
}

func bindRespond(c *gin.Context) (services.RespondInput, bool) {
	var req respondReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return services.RespondInput{}, false
	}
	in, err := req.input()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_thread_id", err)
		return services.RespondInput{}, false
	}
	return in, true
}

// POST /api/persona/respond
func (h *PersonaHandler) Respond(c *gin.Context) {
	in, ok := bindRespond(c)
	if !ok {
		return
	}
	res, err := h.persona.Respond(dbctx.Context{Ctx: c.Request.Context()}, in)
	if err != nil {
		response.RespondServiceError(c, "respond_failed", err)
		return
	}
	response.RespondOK(c, res)
}

// POST /api/persona/preview
func (h *PersonaHandler) Preview(c *gin.Context) {
	in, ok := bindRespond(c)
	if !ok {
		return
	}
	bundle, err := h.persona.Preview(dbctx.Context{Ctx: c.Request.Context()}, in)
	if err != nil {
		response.RespondServiceError(c, "preview_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"bundle": bundle})
}

type guidanceReq struct {
	Type        string `json:"type" binding:"required"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// POST /api/persona/guidance
func (h *PersonaHandler) Guidance(c *gin.Context) {
	var req guidanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	g, err := h.persona.Guidance(dbctx.Context{Ctx: c.Request.Context()}, services.GuidanceInput{
		Type:        req.Type,
		Severity:    req.Severity,
		Description: req.Description,
	})
	if err != nil {
		response.RespondServiceError(c, "guidance_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"guidance": g})
}

// GET /api/persona/progress
func (h *PersonaHandler) Progress(c *gin.Context) {
	report, err := h.persona.Progress(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondServiceError(c, "progress_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"progress": report})
}

// DELETE /api/persona/profile
func (h *PersonaHandler) Erase(c *gin.Context) {
	if err := h.persona.Erase(dbctx.Context{Ctx: c.Request.Context()}); err != nil {
		response.RespondServiceError(c, "erase_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
