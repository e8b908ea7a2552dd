package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SebbieMzingKe/sms-relay-api/api"
	"github.com/SebbieMzingKe/sms-relay-api/docs"
	"github.com/SebbieMzingKe/sms-relay-api/internal/config"
	"github.com/SebbieMzingKe/sms-relay-api/internal/logger"
	"github.com/SebbieMzingKe/sms-relay-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title           Twilio SMS API
// @version         1.0.0
// @description     A simple API to send SMS messages using Twilio
// @host            localhost:3001
// @BasePath        /
func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if envErr != nil {
		log.Info("no .env file found")
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	client := services.NewTwilioClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken)
	smsService := services.NewSMSService(client.Api, cfg.TwilioPhoneNumber, log)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: api.SetupRouter(cfg, smsService, log),
	}

	go func() {
		log.Info("server is running", "port", cfg.Port, "auth_enabled", cfg.AuthEnabled())
		log.Info("swagger documentation available", "url", "http://localhost:"+cfg.Port+"/api-docs/index.html")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
