package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dukerupert/tenancy/internal/billing"
	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/invoicepdf"
	"github.com/dukerupert/tenancy/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvoiceHandler(invoices service.InvoiceService, payments service.PaymentService) *InvoiceHandler {
	h := NewInvoiceHandler(invoices, payments, invoicepdf.Issuer{Name: "Harbor View Rentals"},
		"https://app.example.com/", nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.now = func() time.Time { return fixedNow }
	return h
}

func sampleInvoice(status domain.InvoiceStatus, due time.Time) *domain.Invoice {
	tenantID := uuid.New()
	return &domain.Invoice{
		ID:          uuid.New(),
		TenantID:    &tenantID,
		Items:       []domain.LineItem{{Description: "March rent", Amount: decimal.NewFromInt(1500)}},
		Total:       decimal.NewFromInt(1500),
		DueDate:     due,
		Status:      status,
		PaymentLink: "AbCdEfGhJk",
		CreatedAt:   fixedNow.AddDate(0, -1, 0),
		TenantName:  "Dana Nunez",
	}
}

func TestInvoiceHandler_Create(t *testing.T) {
	var got service.CreateInvoiceParams
	invoices := &fakeInvoices{
		create: func(_ context.Context, p service.CreateInvoiceParams) (*domain.Invoice, error) {
			got = p
			inv := sampleInvoice(domain.InvoiceStatusPending, *p.DueDate)
			inv.TenantID = p.TenantID
			return inv, nil
		},
	}
	h := newTestInvoiceHandler(invoices, nil)

	tenantID := uuid.New()
	body := `{"tenant_id":"` + tenantID.String() + `","items":[{"description":"March rent","amount":"1500.00"}],"due_date":"2025-04-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, got.TenantID)
	assert.Equal(t, tenantID, *got.TenantID)
	assert.Nil(t, got.ContactID)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2025-04-01", got.DueDate.Format(time.DateOnly))
	assert.True(t, got.Items[0].Amount.Equal(decimal.NewFromInt(1500)))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp["display_status"])
	assert.Equal(t, "https://app.example.com/pay/AbCdEfGhJk", resp["payment_url"])
}

func TestInvoiceHandler_Create_Errors(t *testing.T) {
	invoices := &fakeInvoices{
		create: func(_ context.Context, p service.CreateInvoiceParams) (*domain.Invoice, error) {
			return nil, p.Validate()
		},
	}
	h := newTestInvoiceHandler(invoices, nil)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "no recipient", body: `{"items":[{"description":"Rent","amount":100}]}`, wantField: "recipient"},
		{name: "no items", body: `{"contact_id":"` + uuid.NewString() + `","items":[]}`, wantField: "items"},
		{name: "unknown field", body: `{"tenant":"x"}`},
		{name: "bad date", body: `{"due_date":"next week"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeError(t, rec)
			assert.Equal(t, domain.EINVALID, env.Error.Code)
			if tt.wantField != "" {
				assert.Contains(t, env.Error.Fields, tt.wantField)
			}
		})
	}
}

func TestInvoiceHandler_List(t *testing.T) {
	overdue := sampleInvoice(domain.InvoiceStatusPending, fixedNow.AddDate(0, 0, -3))
	current := sampleInvoice(domain.InvoiceStatusPending, fixedNow.AddDate(0, 0, 10))

	invoices := &fakeInvoices{
		list: func(context.Context) ([]domain.Invoice, error) {
			return []domain.Invoice{*overdue, *current}, nil
		},
	}
	h := newTestInvoiceHandler(invoices, nil)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/invoices", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)

	// Stored status stays pending; only the display status changes.
	assert.Equal(t, "pending", resp[0]["status"])
	assert.Equal(t, "overdue", resp[0]["display_status"])
	assert.Equal(t, "pending", resp[1]["display_status"])
}

func TestInvoiceHandler_List_StatusFilter(t *testing.T) {
	var got []domain.InvoiceStatus
	invoices := &fakeInvoices{
		byStatus: func(_ context.Context, statuses []domain.InvoiceStatus) ([]domain.Invoice, error) {
			got = statuses
			return nil, nil
		},
	}
	h := newTestInvoiceHandler(invoices, nil)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/invoices?status=pending,%20overdue", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
	assert.Equal(t, []domain.InvoiceStatus{domain.InvoiceStatusPending, domain.InvoiceStatusOverdue}, got)

	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/invoices?status=void", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvoiceHandler_Get_NotFound(t *testing.T) {
	invoices := &fakeInvoices{
		get: func(context.Context, uuid.UUID) (*domain.Invoice, error) {
			return nil, domain.ErrInvoiceNotFound
		},
	}
	h := newTestInvoiceHandler(invoices, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/x", nil)
	req.SetPathValue("id", uuid.NewString())
	rec := httptest.NewRecorder()
	h.Get(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/invoices/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	rec = httptest.NewRecorder()
	h.Get(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvoiceHandler_UpdateStatus(t *testing.T) {
	id := uuid.New()
	invoices := &fakeInvoices{
		update: func(_ context.Context, gotID uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error) {
			if _, err := domain.ParseInvoiceStatus(string(status)); err != nil {
				return nil, err
			}
			inv := sampleInvoice(status, fixedNow)
			inv.ID = gotID
			return inv, nil
		},
	}
	h := newTestInvoiceHandler(invoices, nil)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "paid", body: `{"status":"paid"}`, wantCode: http.StatusOK},
		{name: "unknown status", body: `{"status":"void"}`, wantCode: http.StatusBadRequest},
		{name: "empty body", body: ``, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/api/invoices/"+id.String()+"/status", strings.NewReader(tt.body))
			req.SetPathValue("id", id.String())
			rec := httptest.NewRecorder()

			h.UpdateStatus(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestInvoiceHandler_PDF(t *testing.T) {
	inv := sampleInvoice(domain.InvoiceStatusPending, fixedNow.AddDate(0, 0, 20))
	invoices := &fakeInvoices{
		get: func(context.Context, uuid.UUID) (*domain.Invoice, error) { return inv, nil },
	}
	h := newTestInvoiceHandler(invoices, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/"+inv.ID.String()+"/pdf", nil)
	req.SetPathValue("id", inv.ID.String())
	rec := httptest.NewRecorder()

	h.PDF(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), invoicepdf.Filename(inv))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestInvoiceHandler_SetupRecurring(t *testing.T) {
	id := uuid.New()
	payments := &fakePayments{
		recurring: func(_ context.Context, gotID uuid.UUID, p service.RecurringParams) (*billing.Payment, error) {
			assert.Equal(t, id, gotID)
			assert.Equal(t, "pm_123", p.PaymentMethodID)
			return &billing.Payment{ID: "rp_1", Status: "active", AmountCents: 150000, Currency: "usd", CustomerID: p.CustomerID}, nil
		},
	}
	h := newTestInvoiceHandler(nil, payments)

	req := httptest.NewRequest(http.MethodPost, "/api/invoices/"+id.String()+"/recurring",
		strings.NewReader(`{"payment_method_id":"pm_123","customer_id":"cus_9","interval":"month"}`))
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.SetupRecurring(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp recurringResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rp_1", resp.PaymentID)
	assert.Equal(t, int64(150000), resp.AmountCents)
	assert.Equal(t, "cus_9", resp.CustomerID)
}
