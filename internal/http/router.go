package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/hermes-backend/internal/http/handlers"
	httpMW "github.com/yungbote/hermes-backend/internal/http/middleware"
	"github.com/yungbote/hermes-backend/internal/observability"
	"github.com/yungbote/hermes-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AllowedOrigins []string
	Metrics        *observability.Metrics

	AuthMiddleware *httpMW.AuthMiddleware
	PersonaHandler *httpH.PersonaHandler
	HealthHandler  *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("hermes"))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		} else {
			protected.Use(func(c *gin.Context) {
				c.AbortWithStatus(http.StatusUnauthorized)
			})
		}

		// Persona
		if cfg.PersonaHandler != nil {
			protected.POST("/persona/respond", cfg.PersonaHandler.Respond)
			protected.POST("/persona/preview", cfg.PersonaHandler.Preview)
			protected.POST("/persona/guidance", cfg.PersonaHandler.Guidance)
			protected.GET("/persona/progress", cfg.PersonaHandler.Progress)
			protected.DELETE("/persona/profile", cfg.PersonaHandler.Erase)
		}
	}

	return r
}
