package services

import (
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSServiceInterface is what the HTTP handler depends on to send a message.
// It returns the provider's message SID or a *DeliveryError.
type SMSServiceInterface interface {
	SendSMS(to, message string) (string, error)
}

// MessageCreator is the slice of the Twilio REST client the dispatcher needs.
// *openapi.ApiService (twilio.RestClient.Api) satisfies it.
type MessageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}
