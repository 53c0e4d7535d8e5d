package response

import (
	"mfroosh-trade-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Success sends a success response
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, domain.EnquiryResponse{
		Success: true,
		Message: message,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, domain.EnquiryResponse{
		Success: false,
		Message: message,
	})
}
