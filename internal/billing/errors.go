package billing

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is returned when a provider does not support a call.
	ErrNotImplemented = errors.New("billing: method not implemented")

	// ErrInvalidAPIKey is returned when the gateway secret key is missing.
	ErrInvalidAPIKey = errors.New("billing: invalid or missing API key")

	// ErrPaymentFailed is returned when a charge is declined.
	ErrPaymentFailed = errors.New("billing: payment failed")

	// ErrAmountTooSmall is returned for charges below the gateway minimum.
	ErrAmountTooSmall = errors.New("billing: amount too small (minimum $0.50 USD)")

	// ErrMissingToken is returned when a payment is submitted without a token.
	ErrMissingToken = errors.New("billing: payment token is required")
)

// GatewayError wraps a gateway API error with additional context.
type GatewayError struct {
	Message       string // Human-readable message from the gateway's error body
	Code          string // Gateway error code (e.g., "card_declined")
	DeclineCode   string // Card decline reason (if applicable)
	StatusCode    int    // HTTP status code from the gateway
	RequestID     string // Gateway request ID for debugging
	OriginalError error  // Original error from the SDK or transport
}

func (e *GatewayError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("gateway: %s (code: %s)", e.Message, e.Code)
	}
	return fmt.Sprintf("gateway: %s", e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.OriginalError
}

// IsDeclined returns true if error is due to card decline.
func (e *GatewayError) IsDeclined() bool {
	return e.Code == "card_declined" || e.DeclineCode != ""
}

// IsTemporary returns true if error is likely transient.
func (e *GatewayError) IsTemporary() bool {
	return e.Code == "rate_limit" || e.Code == "api_connection_error" || e.StatusCode >= 500
}

// GatewayMessage returns the gateway's message for err, or fallback when err
// is not a *GatewayError.
func GatewayMessage(err error, fallback string) string {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) && gwErr.Message != "" {
		return gwErr.Message
	}
	return fallback
}
