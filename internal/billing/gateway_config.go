package billing

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Gateway provider names.
const (
	ProviderGetTRX = "gettrx"
	ProviderStripe = "stripe"
	ProviderMock   = "mock"
)

// Config contains configuration for the payment gateway.
type Config struct {
	// Provider selects the implementation: gettrx, stripe or mock
	Provider string

	// BaseURL is the GetTRX REST API root (e.g. https://api.gettrx.com/v1)
	BaseURL string

	// SecretKey is the gateway secret key, sent as a bearer token
	SecretKey string

	// MerchantID is sent in the X-Merchant-ID header on every GetTRX call
	MerchantID string

	// PublishableKey is handed to the payment element
	PublishableKey string

	// Timeout is the HTTP timeout for gateway calls
	// Default: 30s
	Timeout time.Duration
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderMock:
		return nil
	case ProviderGetTRX:
		if c.BaseURL == "" {
			return errors.New("gettrx: base URL is required")
		}
		if c.MerchantID == "" {
			return errors.New("gettrx: merchant ID is required")
		}
	case ProviderStripe:
	default:
		return fmt.Errorf("billing: unknown provider %q", c.Provider)
	}
	if c.SecretKey == "" {
		return ErrInvalidAPIKey
	}
	return nil
}

// IsTestMode returns true if using test mode API keys.
func (c *Config) IsTestMode() bool {
	return c.Provider == ProviderMock ||
		strings.HasPrefix(c.SecretKey, "sk_test_") ||
		strings.HasPrefix(c.SecretKey, "test_")
}

// NewProvider builds the Provider selected by cfg.Provider.
func NewProvider(cfg Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case ProviderGetTRX:
		return NewGetTRXProvider(cfg), nil
	case ProviderStripe:
		return NewStripeProvider(cfg.SecretKey), nil
	default:
		return NewMockProvider(), nil
	}
}
