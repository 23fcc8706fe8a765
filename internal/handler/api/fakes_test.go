package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dukerupert/tenancy/internal/assistant"
	"github.com/dukerupert/tenancy/internal/billing"
	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fakes embed the service interface; calling a method a test did not stub
// panics, which fails the test loudly.

type fakeInvoices struct {
	service.InvoiceService
	create   func(ctx context.Context, p service.CreateInvoiceParams) (*domain.Invoice, error)
	list     func(ctx context.Context) ([]domain.Invoice, error)
	byStatus func(ctx context.Context, statuses []domain.InvoiceStatus) ([]domain.Invoice, error)
	get      func(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	update   func(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error)
}

func (f *fakeInvoices) CreateInvoice(ctx context.Context, p service.CreateInvoiceParams) (*domain.Invoice, error) {
	return f.create(ctx, p)
}

func (f *fakeInvoices) GetInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return f.list(ctx)
}

func (f *fakeInvoices) ListInvoicesByStatus(ctx context.Context, statuses []domain.InvoiceStatus) ([]domain.Invoice, error) {
	return f.byStatus(ctx, statuses)
}

func (f *fakeInvoices) GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return f.get(ctx, id)
}

func (f *fakeInvoices) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error) {
	return f.update(ctx, id, status)
}

type fakePayments struct {
	service.PaymentService
	resolve   func(ctx context.Context, token string) (*service.PaymentLinkDetails, error)
	pay       func(ctx context.Context, token string, p service.PayParams) (*service.PaymentResult, error)
	recurring func(ctx context.Context, id uuid.UUID, p service.RecurringParams) (*billing.Payment, error)
}

func (f *fakePayments) ResolvePaymentLink(ctx context.Context, token string) (*service.PaymentLinkDetails, error) {
	return f.resolve(ctx, token)
}

func (f *fakePayments) PayByLink(ctx context.Context, token string, p service.PayParams) (*service.PaymentResult, error) {
	return f.pay(ctx, token, p)
}

func (f *fakePayments) SetupRecurringPayment(ctx context.Context, id uuid.UUID, p service.RecurringParams) (*billing.Payment, error) {
	return f.recurring(ctx, id, p)
}

type fakeSplits struct {
	service.SplitPaymentService
	create func(ctx context.Context, p service.CreateSplitParams) (*domain.SplitPayment, error)
	update func(ctx context.Context, id uuid.UUID, status domain.ContributionStatus) (*domain.SplitPayment, error)
}

func (f *fakeSplits) CreateSplitPayment(ctx context.Context, p service.CreateSplitParams) (*domain.SplitPayment, error) {
	return f.create(ctx, p)
}

func (f *fakeSplits) UpdateContributionStatus(ctx context.Context, id uuid.UUID, status domain.ContributionStatus) (*domain.SplitPayment, error) {
	return f.update(ctx, id, status)
}

type fakeTenants struct {
	service.TenantService
	list   func(ctx context.Context) ([]domain.Tenant, error)
	update func(ctx context.Context, t domain.Tenant) (*domain.Tenant, error)
	remove func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeTenants) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	return f.list(ctx)
}

func (f *fakeTenants) UpdateTenant(ctx context.Context, t domain.Tenant) (*domain.Tenant, error) {
	return f.update(ctx, t)
}

func (f *fakeTenants) DeleteTenant(ctx context.Context, id uuid.UUID) error {
	return f.remove(ctx, id)
}

type fakeSMS struct {
	to, body string
	err      error
}

func (f *fakeSMS) SendSMS(_ context.Context, to, body string) (string, error) {
	f.to, f.body = to, body
	if f.err != nil {
		return "", f.err
	}
	return "SM123", nil
}

type fakeAnalyzer struct {
	filename, text string
}

func (f *fakeAnalyzer) AnalyzeDocument(_ context.Context, filename, text string) (*assistant.DocumentAnalysis, error) {
	f.filename, f.text = filename, text
	return &assistant.DocumentAnalysis{DocumentType: "lease", Summary: "Twelve month lease."}, nil
}

type errorEnvelope struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
