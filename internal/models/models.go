package models

const MissingParamsMessage = "Missing required parameters: to and message are required"

// SendSMSRequest is the body accepted by POST /send-sms
type SendSMSRequest struct {
	// The recipient's phone number in E.164 format
	To string `json:"to" binding:"required" example:"+1234567890"`
	// The message content
	Message string `json:"message" binding:"required" example:"Hello from Twilio!"`
}

type SendSMSResponse struct {
	Success    bool   `json:"success" example:"true"`
	MessageSid string `json:"messageSid" example:"SM123456789"`
}

type SendSMSFailure struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
