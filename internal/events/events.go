package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
)

// Event subjects. The publisher prefixes them with the configured namespace,
// so "invoice.paid" goes out on "tenancy.invoice.paid".
const (
	SubjectInvoicePaid       = "invoice.paid"
	SubjectContributionPaid  = "contribution.paid"
	SubjectSplitCompleted    = "split.completed"
	SubjectMaintenanceUrgent = "maintenance.urgent"
)

// Publisher emits domain events. Publishing is best effort: callers log a
// failure and carry on, the database remains the source of truth.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// InvoicePaid is published when an invoice transitions to paid.
type InvoicePaid struct {
	InvoiceID uuid.UUID       `json:"invoice_id"`
	Total     decimal.Decimal `json:"total"`
	PaymentID string          `json:"payment_id,omitempty"`
	PaidAt    time.Time       `json:"paid_at"`
}

// ContributionPaid is published when one contributor's share is paid.
type ContributionPaid struct {
	ContributionID uuid.UUID       `json:"contribution_id"`
	SplitID        uuid.UUID       `json:"split_id"`
	Amount         decimal.Decimal `json:"amount"`
	PaidAt         time.Time       `json:"paid_at"`
}

// SplitCompleted is published when the last contribution of a split is paid.
type SplitCompleted struct {
	SplitID     uuid.UUID `json:"split_id"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// MaintenanceUrgent is published when a maintenance request is flagged urgent.
type MaintenanceUrgent struct {
	RequestID  uuid.UUID `json:"request_id"`
	PropertyID uuid.UUID `json:"property_id"`
	Title      string    `json:"title"`
	Diagnosis  string    `json:"diagnosis,omitempty"`
}

// envelope wraps every payload with an id and timestamp for consumers.
type envelope struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// NATSPublisher publishes JSON-encoded events to a NATS server.
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
	logger *slog.Logger
}

// NewNATSPublisher connects to url and publishes under prefix.
func NewNATSPublisher(url, prefix string, logger *slog.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("tenancy"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	return &NATSPublisher{
		conn:   conn,
		prefix: prefix,
		logger: logger.With("component", "events"),
	}, nil
}

// Publish encodes payload in an envelope and publishes it.
func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(envelope{
		ID:         uuid.NewString(),
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
		Data:       payload,
	})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", subject, err)
	}

	full := p.Subject(subject)
	if err := p.conn.Publish(full, data); err != nil {
		return fmt.Errorf("publish %s: %w", full, err)
	}

	p.logger.Debug("event published", "subject", full)
	return nil
}

// Subject returns the fully-qualified subject for s.
func (p *NATSPublisher) Subject(s string) string {
	if p.prefix == "" {
		return s
	}
	return p.prefix + "." + s
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}

// NopPublisher discards events. Used when NATS_URL is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
