package api

import (
	"log/slog"
	"net/http"

	"github.com/SebbieMzingKe/sms-relay-api/internal/config"
	"github.com/SebbieMzingKe/sms-relay-api/internal/handlers"
	"github.com/SebbieMzingKe/sms-relay-api/internal/middleware"
	"github.com/SebbieMzingKe/sms-relay-api/internal/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires the HTTP routes. docs.SwaggerInfo is configured by the
// caller before the router serves /api-docs.
func SetupRouter(cfg *config.Config, smsService services.SMSServiceInterface, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	smsHandler := handlers.NewSMSHandler(smsService, logger)
	if cfg.AuthEnabled() {
		r.POST("/send-sms", middleware.AuthMiddleware([]byte(cfg.APIJWTSecret)), smsHandler.SendSMS)
	} else {
		r.POST("/send-sms", smsHandler.SendSMS)
	}

	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	redirectToIndex := func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html")
	}
	r.GET("/api-docs/*any", func(c *gin.Context) {
		if page := c.Param("any"); page == "" || page == "/" {
			redirectToIndex(c)
			return
		}
		swaggerHandler(c)
	})
	r.GET("/api-docs", redirectToIndex)

	return r
}
