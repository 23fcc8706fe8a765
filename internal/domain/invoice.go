package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice-related domain errors.
var (
	ErrInvoiceNotFound      = &Error{Code: ENOTFOUND, Message: "Invoice not found"}
	ErrInvoiceAlreadyPaid   = &Error{Code: ECONFLICT, Message: "Invoice already paid"}
	ErrInvalidInvoiceStatus = &Error{Code: EINVALID, Message: "Invoice status must be one of pending, paid, overdue"}
	ErrPaymentLinkNotFound  = &Error{Code: ENOTFOUND, Message: "Payment link not found"}
	ErrPaymentLinkExpired   = &Error{Code: EGONE, Message: "Payment link has expired"}
)

const (
	// DefaultInvoiceDueDays is used when an invoice is created without a due date.
	DefaultInvoiceDueDays = 30

	// PaymentLinkLength is the length of generated payment-link tokens.
	PaymentLinkLength = 10
)

// InvoiceStatus is the persisted status of an invoice.
//
// Transitions: pending -> paid (after a successful charge) and pending ->
// overdue (derived at read time, see Invoice.DisplayStatus). overdue -> paid
// is allowed. Payment links refuse a paid invoice; manual updates may set any
// status.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// ParseInvoiceStatus validates a raw status string.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch InvoiceStatus(s) {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue:
		return InvoiceStatus(s), nil
	}
	return "", ErrInvalidInvoiceStatus
}

// LineItem is one charge on an invoice. Line items are immutable once the
// invoice is created.
type LineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// IsWholeCents reports whether amount has at most two decimal places. Amounts
// are stored as NUMERIC(12,2) and charged in integer cents.
func IsWholeCents(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(2))
}

// SumLineItems returns the sum of item amounts.
func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}

// Invoice is a bill addressed to exactly one tenant or contact.
type Invoice struct {
	ID          uuid.UUID       `json:"id"`
	TenantID    *uuid.UUID      `json:"tenant_id,omitempty"`
	ContactID   *uuid.UUID      `json:"contact_id,omitempty"`
	PropertyID  *uuid.UUID      `json:"property_id,omitempty"`
	Items       []LineItem      `json:"items"`
	Total       decimal.Decimal `json:"total"`
	DueDate     time.Time       `json:"due_date"`
	Status      InvoiceStatus   `json:"status"`
	PaymentLink string          `json:"payment_link"`
	CreatedAt   time.Time       `json:"created_at"`

	// Display fields joined from tenants, contacts and properties.
	TenantName   string `json:"tenant_name,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	TenantEmail  string `json:"tenant_email,omitempty"`
	PropertyName string `json:"property_name,omitempty"`
}

// DisplayStatus derives the status shown to users. A pending invoice whose due
// date has passed displays as overdue; the stored status is not changed.
func (inv *Invoice) DisplayStatus(now time.Time) InvoiceStatus {
	if inv.Status == InvoiceStatusPending && now.After(inv.DueDate) {
		return InvoiceStatusOverdue
	}
	return inv.Status
}

// IsPaid reports whether the invoice has been settled.
func (inv *Invoice) IsPaid() bool {
	return inv.Status == InvoiceStatusPaid
}

// RecipientName returns the tenant or contact name the invoice is addressed to.
func (inv *Invoice) RecipientName() string {
	if inv.TenantName != "" {
		return inv.TenantName
	}
	return inv.ContactName
}

// RecipientEmail returns the tenant or contact email, if known.
func (inv *Invoice) RecipientEmail() string {
	if inv.TenantEmail != "" {
		return inv.TenantEmail
	}
	return inv.ContactEmail
}

// InvoiceService manages invoices and their payment links.
type InvoiceService interface {
	// CreateInvoice computes the total from the line items, generates a payment
	// link and persists a pending invoice.
	CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*Invoice, error)

	// GetInvoices returns all invoices, newest first, with display names joined.
	GetInvoices(ctx context.Context) ([]Invoice, error)

	// GetInvoice returns one invoice by ID.
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// ListInvoicesByStatus returns invoices whose stored status is in statuses.
	ListInvoicesByStatus(ctx context.Context, statuses []InvoiceStatus) ([]Invoice, error)

	// GetInvoiceByPaymentID resolves a payment-link token to its invoice.
	GetInvoiceByPaymentID(ctx context.Context, token string) (*Invoice, error)

	// UpdateInvoiceStatus overwrites the stored status.
	UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status InvoiceStatus) (*Invoice, error)

	// ListOverdueInvoices returns invoices that display as overdue at now.
	ListOverdueInvoices(ctx context.Context, now time.Time) ([]Invoice, error)

	// MarkInvoicesOverdue persists pending -> overdue for invoices past due.
	MarkInvoicesOverdue(ctx context.Context, now time.Time) (int64, error)
}

// CreateInvoiceParams contains parameters for creating an invoice.
// Exactly one of TenantID and ContactID must be set.
type CreateInvoiceParams struct {
	TenantID   *uuid.UUID
	ContactID  *uuid.UUID
	PropertyID *uuid.UUID
	Items      []LineItem
	DueDate    *time.Time
}

// Validate checks recipient and line items before anything is written.
func (p CreateInvoiceParams) Validate() error {
	const op = "invoice.create"
	var err error

	switch {
	case p.TenantID == nil && p.ContactID == nil:
		err = AddFieldError(err, "recipient", "A tenant or a contact is required")
	case p.TenantID != nil && p.ContactID != nil:
		err = AddFieldError(err, "recipient", "Choose either a tenant or a contact, not both")
	}

	if len(p.Items) == 0 {
		err = AddFieldError(err, "items", "At least one line item is required")
	}
	for _, item := range p.Items {
		if item.Description == "" {
			err = AddFieldError(err, "items", "Every line item needs a description")
			break
		}
		if !item.Amount.IsPositive() {
			err = AddFieldError(err, "items", "Line item amounts must be greater than zero")
			break
		}
		if !IsWholeCents(item.Amount) {
			err = AddFieldError(err, "items", "Line item amounts cannot have fractions of a cent")
			break
		}
	}

	if ve, ok := err.(*ValidationError); ok {
		ve.Op = op
		return ve
	}
	return nil
}
