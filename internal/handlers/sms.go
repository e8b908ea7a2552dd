package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SebbieMzingKe/sms-relay-api/internal/models"
	"github.com/SebbieMzingKe/sms-relay-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	errNotJSON     = errors.New("content type is not application/json")
	errInvalidJSON = errors.New("request body is not a single valid JSON document")
)

// bindSendRequest accepts only an application/json body holding exactly one
// JSON value, then applies the binding rules of models.SendSMSRequest.
func bindSendRequest(c *gin.Context, req *models.SendSMSRequest) error {
	if !strings.EqualFold(c.ContentType(), binding.MIMEJSON) {
		return errNotJSON
	}

	raw, err := c.GetRawData()
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if !json.Valid(raw) {
		return errInvalidJSON
	}

	return binding.JSON.BindBody(raw, req)
}

type SMSHandler struct {
	smsService services.SMSServiceInterface
	logger     *slog.Logger
}

func NewSMSHandler(smsService services.SMSServiceInterface, logger *slog.Logger) *SMSHandler {
	return &SMSHandler{
		smsService: smsService,
		logger:     logger.With("handler", "sms"),
	}
}

// SendSMS godoc
// @Summary      Send an SMS message
// @Description  Sends an SMS message using Twilio API
// @Tags         SMS
// @Accept       json
// @Produce      json
// @Param        request  body      models.SendSMSRequest   true  "Recipient in E.164 format and message content"
// @Success      200      {object}  models.SendSMSResponse  "Message sent successfully"
// @Failure      400      {object}  models.ErrorResponse    "Missing required parameters"
// @Failure      500      {object}  models.SendSMSFailure   "Server error"
// @Router       /send-sms [post]
func (h *SMSHandler) SendSMS(c *gin.Context) {
	var req models.SendSMSRequest

	if err := bindSendRequest(c, &req); err != nil {
		h.logger.Debug("rejected send request", "error", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.MissingParamsMessage,
		})
		return
	}

	sid, err := h.smsService.SendSMS(req.To, req.Message)
	if err != nil {
		var deliveryErr *services.DeliveryError
		if !errors.As(err, &deliveryErr) {
			h.logger.Warn("send failed with unclassified error", "error", err)
		}
		c.JSON(http.StatusInternalServerError, models.SendSMSFailure{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.SendSMSResponse{
		Success:    true,
		MessageSid: sid,
	})
}
