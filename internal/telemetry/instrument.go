package telemetry

import (
	"context"
	"time"

	"github.com/dukerupert/tenancy/internal/billing"
	"github.com/dukerupert/tenancy/internal/notify"
)

// InstrumentProvider times every gateway call and counts failures.
func InstrumentProvider(p billing.Provider, m *BusinessMetrics) billing.Provider {
	if m == nil {
		return p
	}
	return &instrumentedProvider{next: p, metrics: m}
}

type instrumentedProvider struct {
	next    billing.Provider
	metrics *BusinessMetrics
}

func (p *instrumentedProvider) observe(ctx context.Context, op string, start time.Time, err error) {
	p.metrics.GatewayLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		p.metrics.GatewayErrors.WithLabelValues(op).Inc()
	}
	AddBreadcrumb(ctx, "gateway", op, map[string]interface{}{"ok": err == nil})
}

func (p *instrumentedProvider) CreateCustomer(ctx context.Context, params billing.CreateCustomerParams) (*billing.Customer, error) {
	ctx, finish := StartSpan(ctx, "gateway", "create_customer")
	defer finish()
	start := time.Now()
	c, err := p.next.CreateCustomer(ctx, params)
	p.observe(ctx, "create_customer", start, err)
	return c, err
}

func (p *instrumentedProvider) CreatePayment(ctx context.Context, params billing.CreatePaymentParams) (*billing.Payment, error) {
	ctx, finish := StartSpan(ctx, "gateway", "create_payment")
	defer finish()
	start := time.Now()
	pay, err := p.next.CreatePayment(ctx, params)
	p.observe(ctx, "create_payment", start, err)
	return pay, err
}

func (p *instrumentedProvider) CreateRecurringPayment(ctx context.Context, params billing.CreateRecurringPaymentParams) (*billing.Payment, error) {
	ctx, finish := StartSpan(ctx, "gateway", "create_recurring_payment")
	defer finish()
	start := time.Now()
	pay, err := p.next.CreateRecurringPayment(ctx, params)
	p.observe(ctx, "create_recurring_payment", start, err)
	return pay, err
}

func (p *instrumentedProvider) CreatePaymentLink(ctx context.Context, params billing.CreatePaymentLinkParams) (*billing.PaymentLink, error) {
	start := time.Now()
	link, err := p.next.CreatePaymentLink(ctx, params)
	p.observe(ctx, "create_payment_link", start, err)
	return link, err
}

func (p *instrumentedProvider) CreateMerchant(ctx context.Context, params billing.CreateMerchantParams) (*billing.Merchant, error) {
	ctx, finish := StartSpan(ctx, "gateway", "create_merchant")
	defer finish()
	start := time.Now()
	merchant, err := p.next.CreateMerchant(ctx, params)
	p.observe(ctx, "create_merchant", start, err)
	return merchant, err
}

// Mailer is the set of transactional emails the services send.
type Mailer interface {
	SendInvoice(ctx context.Context, data notify.InvoiceEmail) error
	SendContributionLink(ctx context.Context, data notify.ContributionLinkEmail) error
}

// InstrumentMailer counts sent and failed emails by type.
func InstrumentMailer(next Mailer, m *BusinessMetrics) Mailer {
	if m == nil {
		return next
	}
	return &instrumentedMailer{next: next, metrics: m}
}

type instrumentedMailer struct {
	next    Mailer
	metrics *BusinessMetrics
}

func (im *instrumentedMailer) record(emailType string, err error) {
	if err != nil {
		im.metrics.EmailFailed.WithLabelValues(emailType).Inc()
		return
	}
	im.metrics.EmailSent.WithLabelValues(emailType).Inc()
}

func (im *instrumentedMailer) SendInvoice(ctx context.Context, data notify.InvoiceEmail) error {
	err := im.next.SendInvoice(ctx, data)
	im.record("invoice", err)
	return err
}

func (im *instrumentedMailer) SendContributionLink(ctx context.Context, data notify.ContributionLinkEmail) error {
	err := im.next.SendContributionLink(ctx, data)
	im.record("contribution_link", err)
	return err
}

// InstrumentSMS counts SMS deliveries.
func InstrumentSMS(next notify.SMSSender, m *BusinessMetrics) notify.SMSSender {
	if m == nil {
		return next
	}
	return &instrumentedSMS{next: next, metrics: m}
}

type instrumentedSMS struct {
	next    notify.SMSSender
	metrics *BusinessMetrics
}

func (s *instrumentedSMS) SendSMS(ctx context.Context, to, body string) (string, error) {
	sid, err := s.next.SendSMS(ctx, to, body)
	s.metrics.SMSResult(err)
	return sid, err
}
