package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

var ErrMerchantAccountNotFound = &Error{Code: ENOTFOUND, Message: "Merchant account not found"}

// MerchantStatusActive is the only status assigned at registration.
const MerchantStatusActive = "active"

// BusinessInfo describes the legal entity being onboarded.
type BusinessInfo struct {
	LegalName    string `json:"legal_name" validate:"required"`
	DBA          string `json:"dba,omitempty"`
	TaxID        string `json:"tax_id" validate:"required"`
	BusinessType string `json:"business_type,omitempty"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone,omitempty"`
	Website      string `json:"website,omitempty" validate:"omitempty,url"`
}

// Address is a postal address.
type Address struct {
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required,len=2"`
}

// BankAccount holds settlement details. Only forwarded to the gateway, never stored.
type BankAccount struct {
	AccountHolder string `json:"account_holder" validate:"required"`
	RoutingNumber string `json:"routing_number" validate:"required,numeric,len=9"`
	AccountNumber string `json:"account_number" validate:"required,numeric,min=4,max=17"`
	AccountType   string `json:"account_type" validate:"required,oneof=checking savings"`
}

// MerchantAccount links a landlord user to a gateway merchant.
type MerchantAccount struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	MerchantID   string    `json:"merchant_id"`
	PublicKey    string    `json:"public_key"`
	BusinessName string    `json:"business_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MerchantService onboards the current user as a gateway merchant.
type MerchantService interface {
	// CreateMerchantAccount registers the merchant with the gateway and upserts
	// the account for the user in ctx.
	CreateMerchantAccount(ctx context.Context, params CreateMerchantParams) (*MerchantAccount, error)

	// GetMerchantAccount returns the account for the user in ctx.
	GetMerchantAccount(ctx context.Context) (*MerchantAccount, error)
}

// CreateMerchantParams contains the onboarding form.
type CreateMerchantParams struct {
	Business    BusinessInfo `json:"business_info" validate:"required"`
	Address     Address      `json:"address" validate:"required"`
	BankAccount BankAccount  `json:"bank_account" validate:"required"`
}
