package api

import (
	"net/http"
	"sync"

	"github.com/SebbieMzingKe/sms-relay-api/docs"
	"github.com/SebbieMzingKe/sms-relay-api/internal/config"
	"github.com/SebbieMzingKe/sms-relay-api/internal/logger"
	"github.com/SebbieMzingKe/sms-relay-api/internal/services"
	"github.com/gin-gonic/gin"
)

var (
	routerOnce sync.Once
	router     http.Handler
	routerErr  error
)

func buildRouter() (http.Handler, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	log := logger.New(cfg.LogLevel)
	client := services.NewTwilioClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken)
	smsService := services.NewSMSService(client.Api, cfg.TwilioPhoneNumber, log)

	return SetupRouter(cfg, smsService, log), nil
}

// Handler is the entry point for serverless deployments. The router is built
// from the environment on first use.
func Handler(w http.ResponseWriter, r *http.Request) {
	routerOnce.Do(func() {
		gin.SetMode(gin.ReleaseMode)
		router, routerErr = buildRouter()
	})

	if routerErr != nil {
		http.Error(w, routerErr.Error(), http.StatusInternalServerError)
		return
	}
	router.ServeHTTP(w, r)
}
