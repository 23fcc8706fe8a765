package service

import (
	"context"
	"encoding/json"
	"fmt"
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

// SplitPaymentService is re-exported from domain.
type SplitPaymentService = domain.SplitPaymentService

type CreateSplitParams = domain.CreateSplitParams

// LinkMailer sends a contributor their payment link.
type LinkMailer interface {
	SendContributionLink(ctx context.Context, data notify.ContributionLinkEmail) error
}

type splitPaymentService struct {
	store   repository.Store
	gateway billing.Provider
	mailer  LinkMailer
	events  events.Publisher
	baseURL string
	logger  *slog.Logger
	now     func() time.Time
}

// NewSplitPaymentService creates a SplitPaymentService. mailer may be nil.
func NewSplitPaymentService(
	store repository.Store,
	gateway billing.Provider,
	mailer LinkMailer,
	publisher events.Publisher,
	baseURL string,
	logger *slog.Logger,
) SplitPaymentService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &splitPaymentService{
		store:   store,
		gateway: gateway,
		mailer:  mailer,
		events:  publisher,
		baseURL: baseURL,
		logger:  logger.With("service", "split_payment"),
		now:     time.Now,
	}
}

// CreateSplitPayment validates the shares, mints one payment link per
// contributor, then writes the split and its contributions in one transaction.
func (s *splitPaymentService) CreateSplitPayment(ctx context.Context, params CreateSplitParams) (*domain.SplitPayment, error) {
	const op = "split.create"

	// Nothing leaves the process until the shares add up.
	if err := domain.ValidateSplit(params.TotalAmount, params.Contributors); err != nil {
		return nil, err
	}

	row, err := s.store.GetInvoiceDetail(ctx, params.InvoiceID)
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
	if inv.IsPaid() {
		return nil, domain.Conflict(op, domain.ErrInvoiceAlreadyPaid.Message)
	}

	links := make([]string, len(params.Contributors))
	for i, c := range params.Contributors {
		link, err := s.gateway.CreatePaymentLink(ctx, billing.CreatePaymentLinkParams{
			Amount:      c.Amount,
			Description: fmt.Sprintf("Share of invoice %s", inv.ID),
			Metadata: map[string]string{
				"invoice_id":        inv.ID.String(),
				"contributor_email": c.Email,
			},
		})
		if err != nil {
			s.logger.Error("failed to create payment link",
				"invoice_id", inv.ID,
				"contributor", c.Email,
				"error", err,
			)
			return nil, domain.WrapError(err, domain.EINTERNAL, op, "Failed to create payment link")
		}
		links[i] = link.Token
	}

	contributors, err := json.Marshal(params.Contributors)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to encode contributors")
	}

	var split *domain.SplitPayment
	err = s.store.InTx(ctx, func(q repository.Querier) error {
		created, err := q.CreatePaymentSplit(ctx, repository.CreatePaymentSplitParams{
			InvoiceID:    inv.ID,
			TotalAmount:  params.TotalAmount,
			Contributors: contributors,
			ExpiresAt:    s.now().Add(domain.SplitExpiry),
		})
		if err != nil {
			return fmt.Errorf("create split: %w", err)
		}

		split, err = splitFromModel(created)
		if err != nil {
			return err
		}

		for i, c := range params.Contributors {
			contribution, err := q.CreateSplitContribution(ctx, repository.CreateSplitContributionParams{
				SplitID:          created.ID,
				ContributorName:  c.Name,
				ContributorEmail: c.Email,
				Amount:           c.Amount,
				PaymentLink:      links[i],
			})
			if err != nil {
				return fmt.Errorf("create contribution for %s: %w", c.Email, err)
			}
			split.Contributions = append(split.Contributions, contributionFromModel(contribution))
		}
		return nil
	})
	if err != nil {
		s.logger.Error("split payment rolled back", "invoice_id", inv.ID, "error", err)
		return nil, domain.Internal(err, op, "failed to save split payment")
	}

	s.logger.Info("split payment created",
		"split_id", split.ID,
		"invoice_id", inv.ID,
		"contributors", len(split.Contributions),
	)

	s.sendLinks(ctx, inv, split)
	return split, nil
}

// sendLinks emails each contributor. Failures are logged and do not undo the split.
func (s *splitPaymentService) sendLinks(ctx context.Context, inv *domain.Invoice, split *domain.SplitPayment) {
	if s.mailer == nil {
		return
	}

	for _, c := range split.Contributions {
		err := s.mailer.SendContributionLink(ctx, notify.ContributionLinkEmail{
			To:              c.ContributorEmail,
			ContributorName: c.ContributorName,
			RequesterName:   inv.RecipientName(),
			PropertyName:    inv.PropertyName,
			Amount:          format.Currency(c.Amount),
			PaymentURL:      PaymentURL(s.baseURL, c.PaymentLink),
			ExpiresOn:       format.Date(split.ExpiresAt),
		})
		if err != nil {
			s.logger.Error("failed to email payment link",
				"split_id", split.ID,
				"contribution_id", c.ID,
				"error", err,
			)
		}
	}
}

func (s *splitPaymentService) GetSplitPayment(ctx context.Context, id uuid.UUID) (*domain.SplitPayment, error) {
	const op = "split.get"

	row, err := s.store.GetPaymentSplit(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrSplitNotFound
		}
		return nil, domain.Internal(err, op, "failed to load split payment")
	}

	split, err := s.withContributions(ctx, s.store, row)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load contributions")
	}
	return split, nil
}

func (s *splitPaymentService) GetContributionByPaymentID(ctx context.Context, token string) (*domain.Contribution, error) {
	const op = "split.get_contribution_by_link"

	if token == "" {
		return nil, ErrPaymentLinkNotFound
	}

	row, err := s.store.GetSplitContributionByPaymentLink(ctx, token)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrContributionNotFound
		}
		return nil, domain.Internal(err, op, "failed to load contribution")
	}

	c := contributionFromModel(row)
	return &c, nil
}

// UpdateContributionStatus moves a contribution from pending to paid. In the
// same transaction it locks the parent split and, when no contribution remains
// unpaid, completes the split and marks the invoice paid. Concurrent payments
// for one split serialize on the split row lock. A paid contribution cannot be
// reopened and a completed split accepts no further changes.
func (s *splitPaymentService) UpdateContributionStatus(ctx context.Context, contributionID uuid.UUID, status domain.ContributionStatus) (*domain.SplitPayment, error) {
	const op = "split.update_contribution"

	st, err := domain.ParseContributionStatus(string(status))
	if err != nil {
		return nil, &domain.Error{Code: domain.EINVALID, Op: op, Message: domain.ErrInvalidContribStatus.Message}
	}

	var (
		split        *domain.SplitPayment
		contribution repository.SplitContribution
		changed      bool
		completed    bool
	)

	err = s.store.InTx(ctx, func(q repository.Querier) error {
		current, err := q.GetSplitContribution(ctx, contributionID)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrContributionNotFound
			}
			return fmt.Errorf("load contribution: %w", err)
		}

		row, err := q.GetPaymentSplitForUpdate(ctx, current.SplitID)
		if err != nil {
			return fmt.Errorf("lock split: %w", err)
		}

		// Re-read under the split lock; another payer may have won the race.
		current, err = q.GetSplitContribution(ctx, contributionID)
		if err != nil {
			return fmt.Errorf("reload contribution: %w", err)
		}

		if err := domain.CheckContributionTransition(
			domain.ContributionStatus(current.Status), st, domain.SplitStatus(row.Status),
		); err != nil {
			return &domain.Error{Code: domain.ErrorCode(err), Op: op, Message: domain.ErrorMessage(err)}
		}

		contribution = current
		if domain.ContributionStatus(current.Status) != st {
			contribution, err = q.UpdateSplitContributionStatus(ctx, repository.UpdateSplitContributionStatusParams{
				ID:     contributionID,
				Status: string(st),
			})
			if err != nil {
				return fmt.Errorf("update contribution: %w", err)
			}
			changed = true
		}

		unpaid, err := q.CountUnpaidContributions(ctx, row.ID)
		if err != nil {
			return fmt.Errorf("count unpaid contributions: %w", err)
		}

		if unpaid == 0 {
			row, err = q.UpdatePaymentSplitStatus(ctx, repository.UpdatePaymentSplitStatusParams{
				ID:     row.ID,
				Status: string(domain.SplitStatusCompleted),
			})
			if err != nil {
				return fmt.Errorf("complete split: %w", err)
			}

			if _, err := q.UpdateInvoiceStatus(ctx, repository.UpdateInvoiceStatusParams{
				ID:     row.InvoiceID,
				Status: string(domain.InvoiceStatusPaid),
			}); err != nil {
				return fmt.Errorf("mark invoice paid: %w", err)
			}
			completed = true
		}

		split, err = s.withContributions(ctx, q, row)
		return err
	})
	if err != nil {
		return nil, asDomainError(err, op, "failed to update contribution")
	}

	s.logger.Info("contribution status updated",
		"contribution_id", contributionID,
		"split_id", split.ID,
		"status", st,
		"split_completed", completed,
	)

	now := s.now().UTC()
	if changed && st == domain.ContributionStatusPaid {
		s.publish(ctx, events.SubjectContributionPaid, events.ContributionPaid{
			ContributionID: contribution.ID,
			SplitID:        contribution.SplitID,
			Amount:         contribution.Amount,
			PaidAt:         now,
		})
	}
	if completed {
		s.publish(ctx, events.SubjectSplitCompleted, events.SplitCompleted{
			SplitID:     split.ID,
			InvoiceID:   split.InvoiceID,
			CompletedAt: now,
		})
		s.publish(ctx, events.SubjectInvoicePaid, events.InvoicePaid{
			InvoiceID: split.InvoiceID,
			Total:     split.TotalAmount,
			PaidAt:    now,
		})
	}

	return split, nil
}

func (s *splitPaymentService) HasPaidShares(ctx context.Context, invoiceID uuid.UUID) (bool, error) {
	n, err := s.store.CountPaidSharesForInvoice(ctx, invoiceID)
	if err != nil {
		return false, domain.Internal(err, "split.has_paid_shares", "failed to check split payments")
	}
	return n > 0, nil
}

func (s *splitPaymentService) withContributions(ctx context.Context, q repository.Querier, row repository.PaymentSplit) (*domain.SplitPayment, error) {
	split, err := splitFromModel(row)
	if err != nil {
		return nil, err
	}

	rows, err := q.ListSplitContributions(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}

	split.Contributions = make([]domain.Contribution, 0, len(rows))
	for _, c := range rows {
		split.Contributions = append(split.Contributions, contributionFromModel(c))
	}
	return split, nil
}

func (s *splitPaymentService) publish(ctx context.Context, subject string, payload any) {
	if err := s.events.Publish(ctx, subject, payload); err != nil {
		s.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}
