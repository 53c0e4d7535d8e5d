package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"mfroosh-trade-backend/internal/delivery/http/response"
	"mfroosh-trade-backend/internal/domain"
	"mfroosh-trade-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				log.Error("Request failed", "path", c.FullPath(), "request_id", c.GetString(RequestIDKey), "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Never expose internal error details to clients.
		log.Error("Unhandled error", "path", c.FullPath(), "request_id", c.GetString(RequestIDKey), "error", err)
		response.Error(c, http.StatusInternalServerError, domain.MsgProcessingFailed)
	}
}
