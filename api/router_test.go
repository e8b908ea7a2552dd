package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/SebbieMzingKe/sms-relay-api/docs"
	"github.com/SebbieMzingKe/sms-relay-api/internal/config"
	"github.com/SebbieMzingKe/sms-relay-api/internal/models"
	"github.com/SebbieMzingKe/sms-relay-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messagesURL = "https://api.twilio.com/2010-04-01/Accounts/ACtest/Messages.json"

func testConfig() *config.Config {
	return &config.Config{
		TwilioAccountSID:  "ACtest",
		TwilioAuthToken:   "token",
		TwilioPhoneNumber: "+15550000000",
		Port:              "3001",
		LogLevel:          "info",
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(cfg *config.Config) *gin.Engine {
	log := testLogger()
	client := services.NewTwilioClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken)
	smsService := services.NewSMSService(client.Api, cfg.TwilioPhoneNumber, log)
	return SetupRouter(cfg, smsService, log)
}

func postSend(router http.Handler, body string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/send-sms", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestSendSMSEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	router := newTestRouter(testConfig())

	tests := []struct {
		name           string
		body           string
		providerStatus int
		providerBody   string
		expectedStatus int
		expectedBody   string
		expectedCalls  int
	}{
		{
			name:           "message sent",
			body:           `{"to":"+15551234567","message":"Hi"}`,
			providerStatus: http.StatusCreated,
			providerBody:   `{"sid":"SM123","status":"queued"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"messageSid":"SM123"}`,
			expectedCalls:  1,
		},
		{
			name:           "missing to",
			body:           `{"message":"Hi"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Missing required parameters: to and message are required"}`,
		},
		{
			name:           "missing message",
			body:           `{"to":"+15551234567"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Missing required parameters: to and message are required"}`,
		},
		{
			name:           "provider rejects number",
			body:           `{"to":"+15551234567","message":"Hi"}`,
			providerStatus: http.StatusBadRequest,
			providerBody:   `{"code":21211,"message":"invalid number","more_info":"https://www.twilio.com/docs/errors/21211","status":400}`,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"invalid number"}`,
			expectedCalls:  1,
		},
		{
			name:           "provider auth failure",
			body:           `{"to":"+15551234567","message":"Hi"}`,
			providerStatus: http.StatusUnauthorized,
			providerBody:   `{"code":20003,"message":"Authenticate","more_info":"https://www.twilio.com/docs/errors/20003","status":401}`,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"Authenticate"}`,
			expectedCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			if tt.providerStatus != 0 {
				httpmock.RegisterResponder("POST", messagesURL,
					httpmock.NewStringResponder(tt.providerStatus, tt.providerBody))
			}

			w := postSend(router, tt.body, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, tt.expectedCalls, httpmock.GetTotalCallCount())
		})
	}
}

func TestSendSMSRejectsNonJSONBodies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	router := newTestRouter(testConfig())
	httpmock.RegisterResponder("POST", messagesURL,
		httpmock.NewStringResponder(http.StatusCreated, `{"sid":"SM1"}`))

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{
			name:        "trailing garbage",
			contentType: "application/json",
			body:        `{"to":"+15551234567","message":"Hi"} trailing`,
		},
		{
			name: "no content type",
			body: `{"to":"+15551234567","message":"Hi"}`,
		},
		{
			name:        "form content type",
			contentType: "application/x-www-form-urlencoded",
			body:        `{"to":"+15551234567","message":"Hi"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.ZeroCallCounters()

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/send-sms", bytes.NewBufferString(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Missing required parameters: to and message are required"}`, w.Body.String())
			assert.Equal(t, 0, httpmock.GetTotalCallCount())
		})
	}
}

func TestSetupRouterLeavesSwaggerHostAlone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	before := docs.SwaggerInfo.Host

	cfg := testConfig()
	cfg.Port = "9999"
	newTestRouter(cfg)

	assert.Equal(t, before, docs.SwaggerInfo.Host)
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newTestRouter(testConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAPIDocs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newTestRouter(testConfig())

	t.Run("doc.json describes send-sms", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api-docs/doc.json", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var doc map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

		info := doc["info"].(map[string]interface{})
		assert.Equal(t, "Twilio SMS API", info["title"])
		assert.Equal(t, "localhost:3001", doc["host"])

		paths := doc["paths"].(map[string]interface{})
		assert.Contains(t, paths, "/send-sms")
	})

	t.Run("index page is served", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api-docs/index.html", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "swagger")
	})

	t.Run("bare path redirects straight to index", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api-docs", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMovedPermanently, w.Code)
		assert.Equal(t, "/api-docs/index.html", w.Header().Get("Location"))
	})

	t.Run("root redirects to index", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api-docs/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMovedPermanently, w.Code)
		assert.Equal(t, "/api-docs/index.html", w.Header().Get("Location"))
	})
}

func TestSendSMSWithAuthEnabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	cfg := testConfig()
	cfg.APIJWTSecret = "test-secret"
	router := newTestRouter(cfg)

	httpmock.RegisterResponder("POST", messagesURL,
		httpmock.NewStringResponder(http.StatusCreated, `{"sid":"SM456"}`))

	t.Run("rejects request without token", func(t *testing.T) {
		httpmock.ZeroCallCounters()

		w := postSend(router, `{"to":"+15551234567","message":"Hi"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var errorResponse models.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResponse))
		assert.Equal(t, "missing token", errorResponse.Error)
		assert.Equal(t, 0, httpmock.GetTotalCallCount())
	})

	t.Run("accepts signed token", func(t *testing.T) {
		httpmock.ZeroCallCounters()

		claims := &models.Claims{
			Sub: "client-1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		w := postSend(router, `{"to":"+15551234567","message":"Hi"}`,
			map[string]string{"Authorization": "Bearer " + token})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"messageSid":"SM456"}`, w.Body.String())
		assert.Equal(t, 1, httpmock.GetTotalCallCount())
	})
}

func TestHandlerWithoutConfiguration(t *testing.T) {
	for _, key := range []string{"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_PHONE_NUMBER"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	Handler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "missing required configuration")
}
