package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeMessages struct {
	params *twilioapi.CreateMessageParams
	err    error
}

func (f *fakeMessages) CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioapi.ApiV2010Message{Sid: &sid}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone("+15551234567"))
	assert.NoError(t, ValidatePhone("+447911123456"))
	assert.ErrorIs(t, ValidatePhone("555-123-4567"), ErrInvalidPhone)
	assert.ErrorIs(t, ValidatePhone("+0123456789"), ErrInvalidPhone)
	assert.ErrorIs(t, ValidatePhone(""), ErrInvalidPhone)
}

func TestTwilioSender_SendSMS(t *testing.T) {
	api := &fakeMessages{}
	s := &TwilioSender{api: api, from: "+15550000000", logger: discardLogger()}

	sid, err := s.SendSMS(context.Background(), "+15551234567", "Water leak at Maple Court, unit 4")
	require.NoError(t, err)
	assert.Equal(t, "SM123", sid)
	require.NotNil(t, api.params.To)
	assert.Equal(t, "+15551234567", *api.params.To)
	assert.Equal(t, "+15550000000", *api.params.From)
	assert.Equal(t, "Water leak at Maple Court, unit 4", *api.params.Body)
}

func TestTwilioSender_Rejects(t *testing.T) {
	api := &fakeMessages{}
	s := &TwilioSender{api: api, from: "+15550000000", logger: discardLogger()}

	_, err := s.SendSMS(context.Background(), "5551234567", "hi")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	_, err = s.SendSMS(context.Background(), "+15551234567", "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Nil(t, api.params)

	api.err = errors.New("20003 authenticate")
	_, err = s.SendSMS(context.Background(), "+15551234567", "hi")
	assert.ErrorContains(t, err, "20003")
}
