package main

import (
	"context"
	"errors"
	"log"
	"mfroosh-trade-backend/config"
	_ "mfroosh-trade-backend/docs" // Important for Swagger
	v1 "mfroosh-trade-backend/internal/delivery/http/v1"
	"mfroosh-trade-backend/internal/usecase"
	"mfroosh-trade-backend/pkg/email"
	"mfroosh-trade-backend/pkg/logger"
	"mfroosh-trade-backend/pkg/validation"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title           Mfroosh Trade Enquiry API
// @version         1.0
// @description     Enquiry relay for the Mfroosh Trade website.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logCloser, err := logger.Init(logger.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logCloser.Close()
	logger.Log.Info("Starting enquiry backend", "port", cfg.Port)
	logger.Log.Info("Enquiry email config", "providers", cfg.ProviderSummary())

	// 3. Setup Delivery Chain
	chain := email.NewChain(logger.Log, cfg.DeliveryTimeout, email.DefaultProviders(email.Settings{
		ResendAPIKey: cfg.ResendAPIKey,
		WebhookURL:   cfg.EmailServiceURL,
		WebhookToken: cfg.EmailServiceKey,
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPUsername: cfg.SMTPUsername,
		SMTPPassword: cfg.SMTPPassword,
	})...)
	if p, ok := chain.Selected(); ok {
		logger.Log.Info("Enquiry delivery provider selected", "provider", p.Name)
	} else {
		logger.Log.Warn("No delivery provider configured - enquiries will only be logged")
	}

	// 4. Setup UseCases
	enquiryUC := usecase.NewEnquiryUsecase(validation.New(), chain, email.Addressing{
		From: cfg.SenderEmail(),
		To:   cfg.RecipientEmail(),
	}, logger.Log)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		EnquiryUC: enquiryUC,
		Config:    cfg,
		Logger:    logger.Log,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
