package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// BusinessMetrics holds Prometheus metrics for invoicing and collection.
// Every recording method is safe on a nil receiver so callers need no
// guard when metrics are disabled.
type BusinessMetrics struct {
	// Invoices
	InvoicesCreated  *prometheus.CounterVec
	InvoiceAmount    prometheus.Histogram
	InvoicesOverdue  prometheus.Counter
	InvoiceStatusSet *prometheus.CounterVec

	// Split payments
	SplitsCreated      prometheus.Counter
	SplitContributors  prometheus.Histogram
	SplitsCompleted    prometheus.Counter
	ContributionStatus *prometheus.CounterVec

	// Public payments
	PaymentAttempts  *prometheus.CounterVec
	PaymentSucceeded *prometheus.CounterVec
	PaymentFailed    *prometheus.CounterVec
	RevenueCollected *prometheus.CounterVec

	// Merchant onboarding
	MerchantsCreated *prometheus.CounterVec

	// Maintenance
	MaintenanceRequests *prometheus.CounterVec

	// Notifications
	EmailSent   *prometheus.CounterVec
	EmailFailed *prometheus.CounterVec
	SMSSent     prometheus.Counter
	SMSFailed   prometheus.Counter

	// Scheduled jobs
	JobRuns     *prometheus.CounterVec
	JobDuration *prometheus.HistogramVec

	// External API performance
	GatewayLatency *prometheus.HistogramVec
	GatewayErrors  *prometheus.CounterVec
}

// NewBusinessMetrics creates and registers all business metrics on the
// default registerer.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	return NewBusinessMetricsWith(namespace, prometheus.DefaultRegisterer)
}

// NewBusinessMetricsWith registers the metrics on reg.
func NewBusinessMetricsWith(namespace string, reg prometheus.Registerer) *BusinessMetrics {
	if namespace == "" {
		namespace = "tenancy"
	}

	subsystem := "business"
	f := promauto.With(reg)

	return &BusinessMetrics{
		InvoicesCreated: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "invoices_created_total",
				Help:      "Total invoices created",
			},
			[]string{"recipient"}, // recipient: tenant, contact, none
		),
		InvoiceAmount: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "invoice_amount_dollars",
				Help:      "Distribution of invoice totals",
				Buckets:   []float64{50, 100, 250, 500, 1000, 1500, 2500, 5000, 10000},
			},
		),
		InvoicesOverdue: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "invoices_marked_overdue_total",
				Help:      "Invoices moved to overdue by the sweep",
			},
		),
		InvoiceStatusSet: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "invoice_status_updates_total",
				Help:      "Manual invoice status changes",
			},
			[]string{"status"},
		),

		SplitsCreated: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "splits_created_total",
				Help:      "Total split payments created",
			},
		),
		SplitContributors: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "split_contributors",
				Help:      "Number of contributors per split payment",
				Buckets:   []float64{2, 3, 4, 5, 6, 8, 10},
			},
		),
		SplitsCompleted: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "splits_completed_total",
				Help:      "Split payments whose contributions were all paid",
			},
		),
		ContributionStatus: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "contribution_status_updates_total",
				Help:      "Contribution status transitions",
			},
			[]string{"status"},
		),

		PaymentAttempts: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "payment_attempts_total",
				Help:      "Payments submitted through a payment link",
			},
			[]string{"kind"}, // kind: invoice, contribution
		),
		PaymentSucceeded: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "payment_succeeded_total",
				Help:      "Payments the gateway approved",
			},
			[]string{"kind"},
		),
		PaymentFailed: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "payment_failed_total",
				Help:      "Payments rejected or errored",
			},
			[]string{"kind", "code"},
		),
		RevenueCollected: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "revenue_collected_dollars_total",
				Help:      "Dollars collected through payment links",
			},
			[]string{"kind"},
		),

		MerchantsCreated: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "merchants_created_total",
				Help:      "Merchant account registrations",
			},
			[]string{"result"},
		),

		MaintenanceRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "maintenance_requests_total",
				Help:      "Maintenance requests by priority",
			},
			[]string{"priority"},
		),

		EmailSent: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "emails_sent_total",
				Help:      "Total emails sent by type",
			},
			[]string{"email_type"}, // email_type: invoice, contribution_link
		),
		EmailFailed: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "emails_failed_total",
				Help:      "Total email delivery failures",
			},
			[]string{"email_type"},
		),
		SMSSent: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "sms_sent_total",
				Help:      "SMS messages accepted by the provider",
			},
		),
		SMSFailed: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "sms_failed_total",
				Help:      "SMS messages that could not be sent",
			},
		),

		JobRuns: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "job_runs_total",
				Help:      "Scheduled job runs",
			},
			[]string{"job", "result"},
		),
		JobDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "job_duration_seconds",
				Help:      "Scheduled job duration",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"job"},
		),

		GatewayLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "gateway_api_duration_seconds",
				Help:      "Payment gateway call duration (separates app slowness from gateway issues)",
				Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"}, // operation: create_payment, create_customer, create_merchant, ...
		),
		GatewayErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "gateway_api_errors_total",
				Help:      "Payment gateway calls that returned an error",
			},
			[]string{"operation"},
		),
	}
}

// Global instance for easy access from handlers
var Business *BusinessMetrics

// InitBusinessMetrics initializes the global business metrics instance
func InitBusinessMetrics(namespace string) *BusinessMetrics {
	Business = NewBusinessMetrics(namespace)
	return Business
}

func (m *BusinessMetrics) InvoiceCreated(recipient string, total decimal.Decimal) {
	if m == nil {
		return
	}
	m.InvoicesCreated.WithLabelValues(recipient).Inc()
	m.InvoiceAmount.Observe(total.InexactFloat64())
}

func (m *BusinessMetrics) InvoiceStatusUpdated(status string) {
	if m == nil {
		return
	}
	m.InvoiceStatusSet.WithLabelValues(status).Inc()
}

func (m *BusinessMetrics) InvoicesMarkedOverdue(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.InvoicesOverdue.Add(float64(n))
}

func (m *BusinessMetrics) SplitCreated(contributors int) {
	if m == nil {
		return
	}
	m.SplitsCreated.Inc()
	m.SplitContributors.Observe(float64(contributors))
}

// ContributionUpdated counts a contribution transition, plus the split
// completion it may have caused.
func (m *BusinessMetrics) ContributionUpdated(status string, splitCompleted bool) {
	if m == nil {
		return
	}
	m.ContributionStatus.WithLabelValues(status).Inc()
	if splitCompleted {
		m.SplitsCompleted.Inc()
	}
}

func (m *BusinessMetrics) PaymentAttempted(kind string) {
	if m == nil {
		return
	}
	m.PaymentAttempts.WithLabelValues(kind).Inc()
}

func (m *BusinessMetrics) PaymentCompleted(kind string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.PaymentSucceeded.WithLabelValues(kind).Inc()
	m.RevenueCollected.WithLabelValues(kind).Add(amount.InexactFloat64())
}

func (m *BusinessMetrics) PaymentRejected(kind, code string) {
	if m == nil {
		return
	}
	m.PaymentFailed.WithLabelValues(kind, code).Inc()
}

func (m *BusinessMetrics) MerchantCreated(result string) {
	if m == nil {
		return
	}
	m.MerchantsCreated.WithLabelValues(result).Inc()
}

func (m *BusinessMetrics) MaintenanceRequested(priority string) {
	if m == nil {
		return
	}
	m.MaintenanceRequests.WithLabelValues(priority).Inc()
}

func (m *BusinessMetrics) SMSResult(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.SMSFailed.Inc()
		return
	}
	m.SMSSent.Inc()
}
