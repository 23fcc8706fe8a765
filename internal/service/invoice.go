package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/dukerupert/tenancy/internal/billing"
	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/events"
	"github.com/dukerupert/tenancy/internal/format"
	"github.com/dukerupert/tenancy/internal/notify"
	"github.com/dukerupert/tenancy/internal/repository"
	"github.com/google/uuid"
)

// InvoiceService is re-exported from domain.
type InvoiceService = domain.InvoiceService

type CreateInvoiceParams = domain.CreateInvoiceParams

// InvoiceMailer delivers a new invoice to its recipient.
type InvoiceMailer interface {
	SendInvoice(ctx context.Context, data notify.InvoiceEmail) error
}

type invoiceService struct {
	repo    repository.Querier
	mailer  InvoiceMailer
	events  events.Publisher
	baseURL string
	logger  *slog.Logger
	now     func() time.Time
}

// NewInvoiceService creates an InvoiceService. mailer may be nil, in which case
// invoices are not emailed.
func NewInvoiceService(
	repo repository.Querier,
	mailer InvoiceMailer,
	publisher events.Publisher,
	baseURL string,
	logger *slog.Logger,
) InvoiceService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &invoiceService{
		repo:    repo,
		mailer:  mailer,
		events:  publisher,
		baseURL: baseURL,
		logger:  logger.With("service", "invoice"),
		now:     time.Now,
	}
}

// CreateInvoice validates the recipient and items, sums the total and saves a
// pending invoice with a fresh payment-link token.
func (s *invoiceService) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*domain.Invoice, error) {
	const op = "invoice.create"

	if err := params.Validate(); err != nil {
		return nil, err
	}

	items, err := json.Marshal(params.Items)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to encode line items")
	}

	dueDate := s.now().AddDate(0, 0, domain.DefaultInvoiceDueDays)
	if params.DueDate != nil {
		dueDate = *params.DueDate
	}

	arg := repository.CreateInvoiceParams{
		TenantID:   nullUUID(params.TenantID),
		ContactID:  nullUUID(params.ContactID),
		PropertyID: nullUUID(params.PropertyID),
		Items:      items,
		Total:      domain.SumLineItems(params.Items),
		DueDate:    dueDate,
	}

	var created repository.Invoice
	for attempt := 1; ; attempt++ {
		arg.PaymentLink, err = billing.GenerateLinkToken(domain.PaymentLinkLength)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to generate payment link")
		}

		created, err = s.repo.CreateInvoice(ctx, arg)
		if err == nil {
			break
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, &domain.Error{Code: domain.EINVALID, Op: op, Message: ErrRecipientNotFound.Error(), Err: err}
		}
		if !repository.IsUniqueViolation(err) || attempt == maxLinkAttempts {
			return nil, domain.Internal(err, op, "failed to save invoice")
		}
		s.logger.Warn("payment link collision, retrying", "attempt", attempt)
	}

	inv, err := s.GetInvoice(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("invoice created",
		"invoice_id", inv.ID,
		"total", inv.Total.StringFixed(2),
		"due_date", inv.DueDate.Format(time.DateOnly),
	)

	s.sendInvoice(ctx, inv)
	return inv, nil
}

// sendInvoice emails the payment link. Failures are logged, not returned.
func (s *invoiceService) sendInvoice(ctx context.Context, inv *domain.Invoice) {
	if s.mailer == nil || inv.RecipientEmail() == "" {
		return
	}

	items := make([]notify.InvoiceEmailItem, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = notify.InvoiceEmailItem{Description: item.Description, Amount: format.Currency(item.Amount)}
	}

	err := s.mailer.SendInvoice(ctx, notify.InvoiceEmail{
		To:            inv.RecipientEmail(),
		RecipientName: inv.RecipientName(),
		PropertyName:  inv.PropertyName,
		Total:         format.Currency(inv.Total),
		DueOn:         format.Date(inv.DueDate),
		Items:         items,
		PaymentURL:    PaymentURL(s.baseURL, inv.PaymentLink),
	})
	if err != nil {
		s.logger.Error("failed to email invoice", "invoice_id", inv.ID, "error", err)
	}
}

// GetInvoices returns every invoice, newest first. Stored statuses are
// returned unchanged; callers derive overdue with DisplayStatus.
func (s *invoiceService) GetInvoices(ctx context.Context) ([]domain.Invoice, error) {
	const op = "invoice.list"

	rows, err := s.repo.ListInvoiceDetails(ctx)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list invoices")
	}

	invoices, err := invoicesFromRows(rows)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to decode invoices")
	}
	return invoices, nil
}

// ListInvoicesByStatus filters on the stored status.
func (s *invoiceService) ListInvoicesByStatus(ctx context.Context, statuses []domain.InvoiceStatus) ([]domain.Invoice, error) {
	const op = "invoice.list_by_status"

	raw := make([]string, 0, len(statuses))
	for _, st := range statuses {
		if _, err := domain.ParseInvoiceStatus(string(st)); err != nil {
			return nil, &domain.Error{Code: domain.EINVALID, Op: op, Message: domain.ErrInvalidInvoiceStatus.Message}
		}
		raw = append(raw, string(st))
	}

	rows, err := s.repo.ListInvoicesByStatus(ctx, raw)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list invoices")
	}

	invoices, err := invoicesFromRows(rows)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to decode invoices")
	}
	return invoices, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	const op = "invoice.get"

	row, err := s.repo.GetInvoiceDetail(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvoiceNotFound
		}
		return nil, domain.Internal(err, op, "failed to load invoice")
	}

	inv, err := invoiceFromRow(row)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to decode invoice")
	}
	return inv, nil
}

// GetInvoiceByPaymentID resolves a payment-link token. It never writes.
func (s *invoiceService) GetInvoiceByPaymentID(ctx context.Context, token string) (*domain.Invoice, error) {
	const op = "invoice.get_by_link"

	if token == "" {
		return nil, ErrPaymentLinkNotFound
	}

	row, err := s.repo.GetInvoiceByPaymentLink(ctx, token)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvoiceNotFound
		}
		return nil, domain.Internal(err, op, "failed to load invoice")
	}

	inv, err := invoiceFromRow(row)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to decode invoice")
	}
	return inv, nil
}

// UpdateInvoiceStatus overwrites the stored status. A transition to paid
// publishes invoice.paid.
func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error) {
	const op = "invoice.update_status"

	st, err := domain.ParseInvoiceStatus(string(status))
	if err != nil {
		return nil, &domain.Error{Code: domain.EINVALID, Op: op, Message: domain.ErrInvalidInvoiceStatus.Message}
	}

	updated, err := s.repo.UpdateInvoiceStatus(ctx, repository.UpdateInvoiceStatusParams{
		ID:     id,
		Status: string(st),
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvoiceNotFound
		}
		return nil, domain.Internal(err, op, "failed to update invoice status")
	}

	s.logger.Info("invoice status updated", "invoice_id", id, "status", st)

	if st == domain.InvoiceStatusPaid {
		s.publish(ctx, events.SubjectInvoicePaid, events.InvoicePaid{
			InvoiceID: updated.ID,
			Total:     updated.Total,
			PaidAt:    s.now().UTC(),
		})
	}

	return s.GetInvoice(ctx, id)
}

// ListOverdueInvoices returns invoices that display as overdue at now:
// pending past their due date plus any already persisted as overdue.
func (s *invoiceService) ListOverdueInvoices(ctx context.Context, now time.Time) ([]domain.Invoice, error) {
	const op = "invoice.list_overdue"

	pending, err := s.repo.ListPendingInvoicesDueBefore(ctx, now)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list overdue invoices")
	}
	stored, err := s.repo.ListInvoicesByStatus(ctx, []string{string(domain.InvoiceStatusOverdue)})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list overdue invoices")
	}

	invoices, err := invoicesFromRows(append(pending, stored...))
	if err != nil {
		return nil, domain.Internal(err, op, "failed to decode invoices")
	}
	return invoices, nil
}

// MarkInvoicesOverdue persists pending -> overdue for invoices due before now.
func (s *invoiceService) MarkInvoicesOverdue(ctx context.Context, now time.Time) (int64, error) {
	const op = "invoice.mark_overdue"

	n, err := s.repo.MarkInvoicesOverdue(ctx, now)
	if err != nil {
		return 0, domain.Internal(err, op, "failed to mark invoices overdue")
	}

	s.logger.Info("overdue sweep finished", "marked", n, "as_of", now.Format(time.DateOnly))
	return n, nil
}

func (s *invoiceService) publish(ctx context.Context, subject string, payload any) {
	if err := s.events.Publish(ctx, subject, payload); err != nil {
		s.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}

// PaymentURL builds the public payment page URL for a link token.
func PaymentURL(baseURL, token string) string {
	return baseURL + "/pay/" + token
}
