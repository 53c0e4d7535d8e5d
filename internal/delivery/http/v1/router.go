package v1

import (
	"log/slog"
	"net/http"

	"mfroosh-trade-backend/config"
	"mfroosh-trade-backend/internal/delivery/http/middleware"
	"mfroosh-trade-backend/internal/delivery/http/response"
	"mfroosh-trade-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	EnquiryUC domain.EnquiryUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler(deps.Logger))

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational")
	})

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": deps.Config.PingMessage})
	})

	// Public routes
	NewEnquiryHandler(api, deps.EnquiryUC, deps.Logger)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
