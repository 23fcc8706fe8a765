package notify

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var e164 = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// SMSSender dispatches text messages.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
}

// ValidatePhone checks that a number is in E.164 form.
func ValidatePhone(phone string) error {
	if !e164.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// messageCreator is the slice of the Twilio API used here.
type messageCreator interface {
	CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error)
}

// TwilioSender sends SMS through the Twilio Messages API.
type TwilioSender struct {
	api    messageCreator
	from   string
	logger *slog.Logger
}

// NewTwilioSender builds a sender from account credentials.
func NewTwilioSender(accountSID, authToken, from string, logger *slog.Logger) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{
		api:    client.Api,
		from:   from,
		logger: logger,
	}
}

// SendSMS sends body to the E.164 number to and returns the message SID.
func (s *TwilioSender) SendSMS(ctx context.Context, to, body string) (string, error) {
	if err := ValidatePhone(to); err != nil {
		return "", err
	}
	if strings.TrimSpace(body) == "" {
		return "", ErrEmptyMessage
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	msg, err := s.api.CreateMessage(params)
	if err != nil {
		s.logger.Error("twilio: send failed", "to", to, "error", err)
		return "", fmt.Errorf("failed to send sms: %w", err)
	}

	sid := ""
	if msg.Sid != nil {
		sid = *msg.Sid
	}
	s.logger.Info("twilio: sms sent", "to", to, "sid", sid)
	return sid, nil
}

// LogSMSSender logs messages instead of sending them.
type LogSMSSender struct {
	Logger *slog.Logger
}

func (s *LogSMSSender) SendSMS(_ context.Context, to, body string) (string, error) {
	if err := ValidatePhone(to); err != nil {
		return "", err
	}
	if strings.TrimSpace(body) == "" {
		return "", ErrEmptyMessage
	}
	s.Logger.Info("sms (not sent)", "to", to, "body", body)
	return "log", nil
}
