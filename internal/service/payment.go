package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/dukerupert/tenancy/internal/billing"
	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment link kinds.
const (
	LinkKindInvoice      = "invoice"
	LinkKindContribution = "contribution"
)

// PaymentService confirms payments submitted from the public /pay page.
type PaymentService interface {
	// ResolvePaymentLink returns what a token pays for and the payment element
	// configuration for it.
	ResolvePaymentLink(ctx context.Context, token string) (*PaymentLinkDetails, error)

	// PayByLink charges the tokenized payment method for the invoice or
	// contribution behind token and records the result.
	PayByLink(ctx context.Context, token string, params PayParams) (*PaymentResult, error)

	// SetupRecurringPayment schedules a recurring charge of the invoice total
	// against a saved payment method.
	SetupRecurringPayment(ctx context.Context, invoiceID uuid.UUID, params RecurringParams) (*billing.Payment, error)
}

// PaymentLinkDetails is a resolved payment link.
type PaymentLinkDetails struct {
	Kind           string                `json:"kind"`
	Amount         decimal.Decimal       `json:"amount"`
	Invoice        *domain.Invoice       `json:"invoice,omitempty"`
	Contribution   *domain.Contribution  `json:"contribution,omitempty"`
	Split          *domain.SplitPayment  `json:"split,omitempty"`
	Element        billing.ElementConfig `json:"element"`
	PublishableKey string                `json:"publishable_key,omitempty"`
}

// PayParams is the payer's submission. PaymentToken comes from the hosted
// payment element; card data never reaches this service.
type PayParams struct {
	PaymentToken     string `json:"payment_token" validate:"required"`
	SetupFutureUsage bool   `json:"setup_future_usage"`
	Name             string `json:"name" validate:"required_if=SetupFutureUsage true"`
	Email            string `json:"email" validate:"required_if=SetupFutureUsage true,omitempty,email"`
}

// PaymentResult reports a confirmed payment.
type PaymentResult struct {
	PaymentID       string               `json:"payment_id"`
	Status          string               `json:"status"`
	Kind            string               `json:"kind"`
	Pending         bool                 `json:"pending,omitempty"` // charge accepted but not settled; nothing recorded
	CustomerID      string               `json:"customer_id,omitempty"`
	PaymentMethodID string               `json:"payment_method_id,omitempty"`
	Invoice         *domain.Invoice      `json:"invoice,omitempty"`
	Split           *domain.SplitPayment `json:"split,omitempty"`
}

// RecurringParams identifies a saved payment method.
type RecurringParams struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
	CustomerID      string `json:"customer_id" validate:"required"`
	Interval        string `json:"interval" validate:"omitempty,oneof=week month year"`
}

type paymentService struct {
	invoices       InvoiceService
	splits         SplitPaymentService
	gateway        billing.Provider
	merchantID     string
	publishableKey string
	logger         *slog.Logger
	now            func() time.Time
}

// NewPaymentService creates a PaymentService. merchantID and publishableKey
// are forwarded to the payment element.
func NewPaymentService(
	invoices InvoiceService,
	splits SplitPaymentService,
	gateway billing.Provider,
	merchantID, publishableKey string,
	logger *slog.Logger,
) PaymentService {
	return &paymentService{
		invoices:       invoices,
		splits:         splits,
		gateway:        gateway,
		merchantID:     merchantID,
		publishableKey: publishableKey,
		logger:         logger.With("service", "payment"),
		now:            time.Now,
	}
}

func (s *paymentService) ResolvePaymentLink(ctx context.Context, token string) (*PaymentLinkDetails, error) {
	const op = "payment.resolve"

	inv, err := s.invoices.GetInvoiceByPaymentID(ctx, token)
	if err == nil {
		return s.details(LinkKindInvoice, inv.Total, func(d *PaymentLinkDetails) {
			d.Invoice = inv
		}), nil
	}
	if !domain.IsCode(err, domain.ENOTFOUND) {
		return nil, err
	}

	c, err := s.splits.GetContributionByPaymentID(ctx, token)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			return nil, domain.NotFound(op, "payment link", token)
		}
		return nil, err
	}

	split, err := s.splits.GetSplitPayment(ctx, c.SplitID)
	if err != nil {
		return nil, err
	}

	return s.details(LinkKindContribution, c.Amount, func(d *PaymentLinkDetails) {
		d.Contribution = c
		d.Split = split
	}), nil
}

func (s *paymentService) details(kind string, amount decimal.Decimal, fill func(*PaymentLinkDetails)) *PaymentLinkDetails {
	d := &PaymentLinkDetails{
		Kind:           kind,
		Amount:         amount,
		Element:        billing.NewElementConfig(amount, s.merchantID),
		PublishableKey: s.publishableKey,
	}
	fill(d)
	return d
}

func (s *paymentService) PayByLink(ctx context.Context, token string, params PayParams) (*PaymentResult, error) {
	const op = "payment.pay"

	if params.PaymentToken == "" {
		return nil, ErrMissingPaymentToken
	}
	if err := validateStruct(op, params); err != nil {
		return nil, err
	}

	link, err := s.ResolvePaymentLink(ctx, token)
	if err != nil {
		return nil, err
	}

	description := "Invoice payment"
	switch link.Kind {
	case LinkKindInvoice:
		if link.Invoice.IsPaid() {
			return nil, domain.Conflict(op, domain.ErrInvoiceAlreadyPaid.Message)
		}
		shared, err := s.splits.HasPaidShares(ctx, link.Invoice.ID)
		if err != nil {
			return nil, err
		}
		if shared {
			return nil, domain.Conflict(op, domain.ErrorMessage(ErrInvoiceBeingSplit))
		}
	case LinkKindContribution:
		if link.Contribution.Status == domain.ContributionStatusPaid {
			return nil, domain.Conflict(op, domain.ErrContributionAlreadyPaid.Message)
		}
		if link.Split.IsExpired(s.now()) {
			return nil, domain.Gone(op, domain.ErrPaymentLinkExpired.Message)
		}
		parent, err := s.invoices.GetInvoice(ctx, link.Split.InvoiceID)
		if err != nil {
			return nil, err
		}
		if parent.IsPaid() {
			return nil, domain.Conflict(op, domain.ErrInvoiceAlreadyPaid.Message)
		}
		description = "Split payment share"
	}

	var customerID string
	if params.SetupFutureUsage {
		customer, err := s.gateway.CreateCustomer(ctx, billing.CreateCustomerParams{
			Name:  params.Name,
			Email: params.Email,
		})
		if err != nil {
			s.logger.Error("failed to create gateway customer", "error", err)
			return nil, domain.WrapError(err, domain.EINTERNAL, op, billing.GatewayMessage(err, "Failed to save payment method"))
		}
		customerID = customer.ID
	}

	payment, err := s.gateway.CreatePayment(ctx, billing.CreatePaymentParams{
		Amount:           link.Amount,
		PaymentToken:     params.PaymentToken,
		CustomerID:       customerID,
		SetupFutureUsage: params.SetupFutureUsage,
		Description:      description,
		Metadata:         map[string]string{"payment_link": token, "kind": link.Kind},
	})
	if err != nil {
		s.logger.Error("payment failed", "kind", link.Kind, "amount", link.Amount.StringFixed(2), "error", err)
		return nil, domain.PaymentRequired(err, op, billing.GatewayMessage(err, "Payment failed. Please try again."))
	}
	if payment.Processing() {
		// Not settled yet. Without gateway webhooks nothing records it later,
		// so the landlord marks it paid once the funds arrive.
		s.logger.Warn("payment processing, status left unchanged",
			"payment_id", payment.ID,
			"kind", link.Kind,
			"payment_link", token,
			"amount", link.Amount.StringFixed(2),
		)
		return &PaymentResult{
			PaymentID:       payment.ID,
			Status:          payment.Status,
			Kind:            link.Kind,
			Pending:         true,
			CustomerID:      payment.CustomerID,
			PaymentMethodID: payment.PaymentMethodID,
		}, nil
	}
	if !payment.Succeeded() {
		s.logger.Warn("payment not successful", "payment_id", payment.ID, "status", payment.Status)
		return nil, &domain.Error{Code: domain.EPAYMENT, Op: op, Message: ErrPaymentNotSucceeded.Error()}
	}

	result := &PaymentResult{
		PaymentID:       payment.ID,
		Status:          payment.Status,
		Kind:            link.Kind,
		CustomerID:      payment.CustomerID,
		PaymentMethodID: payment.PaymentMethodID,
	}

	// The charge has gone through; a failure below needs manual reconciliation.
	switch link.Kind {
	case LinkKindInvoice:
		result.Invoice, err = s.invoices.UpdateInvoiceStatus(ctx, link.Invoice.ID, domain.InvoiceStatusPaid)
	case LinkKindContribution:
		result.Split, err = s.splits.UpdateContributionStatus(ctx, link.Contribution.ID, domain.ContributionStatusPaid)
	}
	if err != nil {
		s.logger.Error("payment captured but status update failed",
			"payment_id", payment.ID,
			"kind", link.Kind,
			"error", err,
		)
		return nil, domain.Internal(err, op, "Payment received but could not be recorded")
	}

	s.logger.Info("payment confirmed",
		"payment_id", payment.ID,
		"kind", link.Kind,
		"amount", link.Amount.StringFixed(2),
	)
	return result, nil
}

func (s *paymentService) SetupRecurringPayment(ctx context.Context, invoiceID uuid.UUID, params RecurringParams) (*billing.Payment, error) {
	const op = "payment.setup_recurring"

	if params.PaymentMethodID == "" || params.CustomerID == "" {
		return nil, ErrMissingPaymentMethod
	}
	if err := validateStruct(op, params); err != nil {
		return nil, err
	}

	inv, err := s.invoices.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	payment, err := s.gateway.CreateRecurringPayment(ctx, billing.CreateRecurringPaymentParams{
		Amount:          inv.Total,
		PaymentMethodID: params.PaymentMethodID,
		CustomerID:      params.CustomerID,
		Interval:        params.Interval,
		Description:     "Recurring invoice payment",
		Metadata:        map[string]string{"invoice_id": inv.ID.String()},
	})
	if err != nil {
		s.logger.Error("recurring payment setup failed", "invoice_id", inv.ID, "error", err)
		return nil, domain.PaymentRequired(err, op, billing.GatewayMessage(err, "Failed to set up recurring payment"))
	}

	s.logger.Info("recurring payment set up", "invoice_id", inv.ID, "payment_id", payment.ID)
	return payment, nil
}
