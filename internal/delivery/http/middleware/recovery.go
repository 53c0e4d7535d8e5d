package middleware

import (
	"log/slog"
	"net/http"

	"mfroosh-trade-backend/internal/delivery/http/response"
	"mfroosh-trade-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic anywhere in the handler chain into the generic
// failure body with status 500.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("Panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(RequestIDKey),
			"panic", recovered,
		)
		response.Error(c, http.StatusInternalServerError, domain.MsgProcessingFailed)
		c.Abort()
	})
}
