package services

import (
	"errors"
	"log/slog"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var errMissingSid = errors.New("provider returned no message sid")

// DeliveryError is returned when the provider could not accept a message.
// Error() is the provider's description, suitable for returning to callers.
type DeliveryError struct {
	Description string
	Err         error
}

func (e *DeliveryError) Error() string { return e.Description }

func (e *DeliveryError) Unwrap() error { return e.Err }

func newDeliveryError(err error) *DeliveryError {
	description := err.Error()

	var restErr *twilioclient.TwilioRestError
	if errors.As(err, &restErr) && restErr.Message != "" {
		description = restErr.Message
	}

	return &DeliveryError{Description: description, Err: err}
}

// SMSService sends messages through Twilio from a fixed origin number.
type SMSService struct {
	client MessageCreator
	from   string
	logger *slog.Logger
}

// NewTwilioClient builds a REST client authenticated with the account SID and auth token.
func NewTwilioClient(accountSid, authToken string) *twilio.RestClient {
	return twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
}

// NewSMSService returns a dispatcher sending from the given number.
func NewSMSService(client MessageCreator, from string, logger *slog.Logger) *SMSService {
	return &SMSService{
		client: client,
		from:   from,
		logger: logger.With("service", "sms"),
	}
}

// SendSMS makes exactly one send attempt and returns the provider's message SID.
// Any failure is returned as a *DeliveryError.
func (s *SMSService) SendSMS(to, message string) (string, error) {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(message)

	resp, err := s.client.CreateMessage(params)
	if err != nil {
		deliveryErr := newDeliveryError(err)
		s.logger.Error("error sending message", "to", to, "error", deliveryErr.Description)
		return "", deliveryErr
	}

	if resp == nil || resp.Sid == nil || *resp.Sid == "" {
		s.logger.Error("error sending message", "to", to, "error", errMissingSid.Error())
		return "", &DeliveryError{Description: errMissingSid.Error(), Err: errMissingSid}
	}

	s.logger.Info("message sent successfully", "to", to, "sid", *resp.Sid)
	return *resp.Sid, nil
}

// MockSMSService records every send and answers with Sid, or with Err when set.
type MockSMSService struct {
	SentMessages []MockSMSMessage
	Sid          string
	Err          error
}

type MockSMSMessage struct {
	To      string
	Message string
}

func NewMockSMSService(sid string) *MockSMSService {
	return &MockSMSService{
		SentMessages: make([]MockSMSMessage, 0),
		Sid:          sid,
	}
}

func (m *MockSMSService) SendSMS(to, message string) (string, error) {
	m.SentMessages = append(m.SentMessages, MockSMSMessage{To: to, Message: message})
	if m.Err != nil {
		return "", m.Err
	}
	return m.Sid, nil
}
