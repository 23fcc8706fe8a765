package billing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ElementConfig configures the gateway's hosted payment element.
// Every recognized option is listed here; unknown keys are rejected when parsing.
type ElementConfig struct {
	// Mode is "payment" for one-time charges or "setup" to save a method only
	Mode string `json:"mode" validate:"required,oneof=payment setup subscription"`

	// Currency is a lowercase ISO 4217 code
	Currency string `json:"currency" validate:"required,len=3,lowercase"`

	// Amount in cents. Required in payment mode.
	Amount int64 `json:"amount" validate:"required_if=Mode payment,gte=0"`

	PaymentMethodTypes []string `json:"paymentMethodTypes" validate:"required,min=1,dive,oneof=card us_bank_account"`

	SetupFutureUsage string `json:"setupFutureUsage,omitempty" validate:"omitempty,oneof=on_session off_session"`

	// OnBehalfOf is the connected merchant the charge settles to
	OnBehalfOf string `json:"onBehalfOf,omitempty"`
}

// DefaultElementConfig returns the defaults: payment mode, usd, card only.
func DefaultElementConfig() ElementConfig {
	return ElementConfig{
		Mode:               "payment",
		Currency:           "usd",
		PaymentMethodTypes: []string{"card"},
	}
}

// NewElementConfig returns the defaults for a charge of amount dollars
// settling to merchantID.
func NewElementConfig(amount decimal.Decimal, merchantID string) ElementConfig {
	cfg := DefaultElementConfig()
	cfg.Amount = ToCents(amount)
	cfg.OnBehalfOf = merchantID
	return cfg
}

// ParseElementConfig decodes raw JSON over the defaults. Unknown keys are an error.
func ParseElementConfig(data []byte) (ElementConfig, error) {
	cfg := DefaultElementConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return ElementConfig{}, fmt.Errorf("element config: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ElementConfig{}, errors.New("element config: trailing data after object")
	}

	cfg.Currency = strings.ToLower(cfg.Currency)
	if err := cfg.Validate(); err != nil {
		return ElementConfig{}, err
	}
	return cfg, nil
}

// Validate checks the config against its validation tags.
func (c ElementConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("element config: %s failed %q", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("element config: %w", err)
	}
	return nil
}
