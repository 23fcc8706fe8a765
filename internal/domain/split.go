package domain

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Split-payment domain errors.
var (
	ErrSplitNotFound           = &Error{Code: ENOTFOUND, Message: "Split payment not found"}
	ErrContributionNotFound    = &Error{Code: ENOTFOUND, Message: "Contribution not found"}
	ErrContributionAlreadyPaid = &Error{Code: ECONFLICT, Message: "Contribution already paid"}
	ErrSplitTotalMismatch      = &Error{Code: EINVALID, Message: "Contributor amounts must add up to the split total"}
	ErrInvalidContribStatus    = &Error{Code: EINVALID, Message: "Contribution status must be pending or paid"}
	ErrContributionReopen      = &Error{Code: ECONFLICT, Message: "A paid contribution cannot be set back to pending"}
	ErrSplitCompleted          = &Error{Code: ECONFLICT, Message: "Split payment is already completed"}
)

// SplitExpiry is how long a split payment's links stay valid.
const SplitExpiry = 7 * 24 * time.Hour

// SplitStatus is the aggregate status of a split payment. A split becomes
// completed only when every one of its contributions is paid.
type SplitStatus string

const (
	SplitStatusPending   SplitStatus = "pending"
	SplitStatusCompleted SplitStatus = "completed"
)

// ContributionStatus is the status of one contributor's share.
type ContributionStatus string

const (
	ContributionStatusPending ContributionStatus = "pending"
	ContributionStatusPaid    ContributionStatus = "paid"
)

// ParseContributionStatus validates a raw status string.
func ParseContributionStatus(s string) (ContributionStatus, error) {
	switch ContributionStatus(s) {
	case ContributionStatusPending, ContributionStatusPaid:
		return ContributionStatus(s), nil
	}
	return "", ErrInvalidContribStatus
}

// CheckContributionTransition reports whether a contribution may move from
// one status to another. Only pending -> paid changes anything; pending ->
// pending is a no-op. Nothing changes once the split is completed.
func CheckContributionTransition(from, to ContributionStatus, split SplitStatus) error {
	if split == SplitStatusCompleted {
		return ErrSplitCompleted
	}
	if from == ContributionStatusPaid {
		if to == ContributionStatusPaid {
			return ErrContributionAlreadyPaid
		}
		return ErrContributionReopen
	}
	return nil
}

// Contributor is one party sharing an invoice.
type Contributor struct {
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Amount decimal.Decimal `json:"amount"`
}

// SplitPayment apportions an invoice among several contributors.
type SplitPayment struct {
	ID           uuid.UUID       `json:"id"`
	InvoiceID    uuid.UUID       `json:"invoice_id"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Contributors []Contributor   `json:"contributors"`
	Status       SplitStatus     `json:"status"`
	ExpiresAt    time.Time       `json:"expires_at"`
	CreatedAt    time.Time       `json:"created_at"`

	Contributions []Contribution `json:"contributions,omitempty"`
}

// IsExpired reports whether the split's payment links have lapsed.
func (s *SplitPayment) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Contribution is one contributor's share with its own payment link.
type Contribution struct {
	ID               uuid.UUID          `json:"id"`
	SplitID          uuid.UUID          `json:"split_id"`
	ContributorName  string             `json:"contributor_name"`
	ContributorEmail string             `json:"contributor_email"`
	Amount           decimal.Decimal    `json:"amount"`
	Status           ContributionStatus `json:"status"`
	PaymentLink      string             `json:"payment_link"`
	CreatedAt        time.Time          `json:"created_at"`
}

// ValidateSplit checks contributors against the split total. It runs before
// any payment link is minted or any row is written.
func ValidateSplit(total decimal.Decimal, contributors []Contributor) error {
	const op = "split.create"
	var err error

	if !total.IsPositive() {
		err = AddFieldError(err, "total_amount", "Total must be greater than zero")
	} else if !IsWholeCents(total) {
		err = AddFieldError(err, "total_amount", "Total cannot have fractions of a cent")
	}
	if len(contributors) == 0 {
		err = AddFieldError(err, "contributors", "At least one contributor is required")
	}

	sum := decimal.Zero
	for _, c := range contributors {
		if c.Name == "" {
			err = AddFieldError(err, "contributors", "Every contributor needs a name")
		}
		if _, perr := mail.ParseAddress(c.Email); perr != nil {
			err = AddFieldError(err, "contributors", "Every contributor needs a valid email")
		}
		if !c.Amount.IsPositive() {
			err = AddFieldError(err, "contributors", "Contributor amounts must be greater than zero")
		} else if !IsWholeCents(c.Amount) {
			err = AddFieldError(err, "contributors", "Contributor amounts cannot have fractions of a cent")
		}
		sum = sum.Add(c.Amount)
	}

	if ve, ok := err.(*ValidationError); ok {
		ve.Op = op
		return ve
	}

	if !sum.Equal(total) {
		return &Error{Code: EINVALID, Op: op, Message: ErrSplitTotalMismatch.Message}
	}
	return nil
}

// SplitPaymentService manages split payments and their contributions.
type SplitPaymentService interface {
	// CreateSplitPayment creates a split and one contribution per contributor,
	// each with its own payment link.
	CreateSplitPayment(ctx context.Context, params CreateSplitParams) (*SplitPayment, error)

	// GetSplitPayment returns the split with its contributions.
	GetSplitPayment(ctx context.Context, id uuid.UUID) (*SplitPayment, error)

	// GetContributionByPaymentID resolves a contribution payment-link token.
	GetContributionByPaymentID(ctx context.Context, token string) (*Contribution, error)

	// UpdateContributionStatus sets one contribution's status and completes the
	// parent split when every contribution is paid.
	UpdateContributionStatus(ctx context.Context, contributionID uuid.UUID, status ContributionStatus) (*SplitPayment, error)

	// HasPaidShares reports whether the invoice has a pending split with at
	// least one paid contribution.
	HasPaidShares(ctx context.Context, invoiceID uuid.UUID) (bool, error)
}

// CreateSplitParams contains parameters for creating a split payment.
type CreateSplitParams struct {
	InvoiceID    uuid.UUID
	TotalAmount  decimal.Decimal
	Contributors []Contributor
}
