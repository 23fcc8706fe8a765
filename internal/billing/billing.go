package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Provider defines the interface for the payment gateway.
// Implementations talk to GetTRX, Stripe, or simulate a gateway for development.
// Card data never passes through this interface: payments are submitted with a
// token produced by the gateway's hosted payment element.
type Provider interface {
	// CreateCustomer creates a customer record at the gateway.
	// Used when a payer opts to save their payment method.
	CreateCustomer(ctx context.Context, params CreateCustomerParams) (*Customer, error)

	// CreatePayment submits a one-time charge for a tokenized payment method.
	CreatePayment(ctx context.Context, params CreatePaymentParams) (*Payment, error)

	// CreateRecurringPayment sets up a repeating charge against a saved
	// payment method.
	CreateRecurringPayment(ctx context.Context, params CreateRecurringPaymentParams) (*Payment, error)

	// CreatePaymentLink mints a payment-link token for an amount.
	// The token is the public identifier used in /pay/{token} URLs.
	CreatePaymentLink(ctx context.Context, params CreatePaymentLinkParams) (*PaymentLink, error)

	// CreateMerchant registers a landlord as a merchant and returns the
	// merchant ID and the publishable key used by the payment element.
	CreateMerchant(ctx context.Context, params CreateMerchantParams) (*Merchant, error)
}

// CreateCustomerParams contains parameters for creating a customer.
type CreateCustomerParams struct {
	Name     string
	Email    string
	Phone    string
	Metadata map[string]string
}

// Customer represents a gateway customer.
type Customer struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}

// CreatePaymentParams contains parameters for a one-time charge.
type CreatePaymentParams struct {
	// Amount in dollars. Converted to integer cents on the wire.
	Amount decimal.Decimal

	// Currency code (ISO 4217) - defaults to "usd"
	Currency string

	// PaymentToken is the token produced by the hosted payment element.
	PaymentToken string

	// CustomerID is optional - links the charge to a saved customer
	CustomerID string

	// SetupFutureUsage saves the payment method for recurring charges.
	SetupFutureUsage bool

	// Description appears on the payer's statement
	Description string

	Metadata map[string]string
}

// CreateRecurringPaymentParams contains parameters for a recurring charge.
type CreateRecurringPaymentParams struct {
	Amount          decimal.Decimal
	Currency        string
	PaymentMethodID string
	CustomerID      string

	// Interval is "month" unless set
	Interval    string
	Description string
	Metadata    map[string]string
}

// Payment represents a charge or a recurring-charge setup.
type Payment struct {
	// ID is the gateway's payment identifier
	ID string

	// Status: succeeded, pending, failed, active (recurring)
	Status string

	AmountCents int64
	Currency    string
	CustomerID  string

	// PaymentMethodID is set when the method was saved for future use
	PaymentMethodID string

	CreatedAt time.Time
}

// Succeeded reports whether the charge went through.
func (p *Payment) Succeeded() bool {
	switch p.Status {
	case "succeeded", "approved", "active":
		return true
	}
	return false
}

// Processing reports whether the gateway accepted the charge but funds have
// not settled, as with bank debits.
func (p *Payment) Processing() bool {
	return p.Status == "processing"
}

// CreatePaymentLinkParams contains parameters for minting a payment link.
type CreatePaymentLinkParams struct {
	Amount      decimal.Decimal
	Description string
	Metadata    map[string]string
}

// PaymentLink is a minted payment-link token.
type PaymentLink struct {
	ID    string
	Token string
	URL   string
}

// CreateMerchantParams contains the merchant registration form.
type CreateMerchantParams struct {
	Business    BusinessInfo
	Address     Address
	BankAccount BankAccount
}

// BusinessInfo is the legal entity being registered.
type BusinessInfo struct {
	LegalName    string `json:"legal_name"`
	DBA          string `json:"dba,omitempty"`
	TaxID        string `json:"tax_id"`
	BusinessType string `json:"business_type,omitempty"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Website      string `json:"website,omitempty"`
}

// Address is the merchant's business address.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// BankAccount holds settlement details.
type BankAccount struct {
	AccountHolder string `json:"account_holder"`
	RoutingNumber string `json:"routing_number"`
	AccountNumber string `json:"account_number"`
	AccountType   string `json:"account_type"`
}

// Merchant is the result of a merchant registration.
type Merchant struct {
	MerchantID string
	PublicKey  string
	Status     string
}

// ToCents converts a dollar amount to integer cents, rounding half away from zero.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// FromCents converts integer cents to a dollar amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
