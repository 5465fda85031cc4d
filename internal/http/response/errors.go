package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
	"github.com/yungbote/hermes-backend/internal/platform/apierr"
)

var errInternal = errors.New("internal error")

// StatusFor maps an *apierr.Error or a service sentinel to an HTTP status and
// error code. fallbackCode is used for anything unrecognised.
func StatusFor(err error, fallbackCode string) (int, string) {
	var ae *apierr.Error
	switch {
	case errors.As(err, &ae):
		return ae.Status, ae.Code
	case errors.Is(err, apperrors.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, apperrors.ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, fallbackCode
	}
}

// RespondServiceError writes err with the status StatusFor picks. Messages of
// unclassified errors stay server side.
func RespondServiceError(c *gin.Context, fallbackCode string, err error) {
	status, code := StatusFor(err, fallbackCode)
	var ae *apierr.Error
	if errors.As(err, &ae) {
		RespondError(c, status, code, ae.Err)
		return
	}
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		err = errInternal
	}
	RespondError(c, status, code, err)
}
