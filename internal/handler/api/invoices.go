package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/handler"
	"github.com/dukerupert/tenancy/internal/invoicepdf"
	"github.com/dukerupert/tenancy/internal/service"
	"github.com/dukerupert/tenancy/internal/telemetry"
	"github.com/google/uuid"
)

// InvoiceHandler serves /api/invoices.
type InvoiceHandler struct {
	invoices service.InvoiceService
	payments service.PaymentService
	issuer   invoicepdf.Issuer
	baseURL  string
	metrics  *telemetry.BusinessMetrics
	logger   *slog.Logger
	now      func() time.Time
}

// NewInvoiceHandler creates an invoice handler. metrics may be nil.
func NewInvoiceHandler(
	invoices service.InvoiceService,
	payments service.PaymentService,
	issuer invoicepdf.Issuer,
	baseURL string,
	metrics *telemetry.BusinessMetrics,
	logger *slog.Logger,
) *InvoiceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceHandler{
		invoices: invoices,
		payments: payments,
		issuer:   issuer,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		metrics:  metrics,
		logger:   logger.With("handler", "invoice"),
		now:      time.Now,
	}
}

// InvoiceResponse adds the read-time status and the public payment URL.
type InvoiceResponse struct {
	domain.Invoice
	DisplayStatus domain.InvoiceStatus `json:"display_status"`
	PaymentURL    string               `json:"payment_url"`
}

func (h *InvoiceHandler) response(inv *domain.Invoice, now time.Time) InvoiceResponse {
	return InvoiceResponse{
		Invoice:       *inv,
		DisplayStatus: inv.DisplayStatus(now),
		PaymentURL:    service.PaymentURL(h.baseURL, inv.PaymentLink),
	}
}

type createInvoiceRequest struct {
	TenantID   *uuid.UUID        `json:"tenant_id"`
	ContactID  *uuid.UUID        `json:"contact_id"`
	PropertyID *uuid.UUID        `json:"property_id"`
	Items      []domain.LineItem `json:"items"`
	DueDate    *Date             `json:"due_date"`
}

// Create handles POST /api/invoices
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	inv, err := h.invoices.CreateInvoice(r.Context(), service.CreateInvoiceParams{
		TenantID:   req.TenantID,
		ContactID:  req.ContactID,
		PropertyID: req.PropertyID,
		Items:      req.Items,
		DueDate:    req.DueDate.Ptr(),
	})
	if err != nil {
		handler.Fail(w, r, err)
		return
	}

	recipient := "tenant"
	if inv.ContactID != nil {
		recipient = "contact"
	}
	h.metrics.InvoiceCreated(recipient, inv.Total)

	handler.JSON(w, http.StatusCreated, h.response(inv, h.now()))
}

// List handles GET /api/invoices
//
// ?status=pending,overdue filters on the stored status.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		invoices []domain.Invoice
		err      error
	)
	if raw := r.URL.Query().Get("status"); raw != "" {
		var statuses []domain.InvoiceStatus
		for _, s := range strings.Split(raw, ",") {
			st, perr := domain.ParseInvoiceStatus(strings.TrimSpace(s))
			if perr != nil {
				handler.ErrorResponse(w, r, perr)
				return
			}
			statuses = append(statuses, st)
		}
		invoices, err = h.invoices.ListInvoicesByStatus(ctx, statuses)
	} else {
		invoices, err = h.invoices.GetInvoices(ctx)
	}
	if err != nil {
		handler.Fail(w, r, err)
		return
	}

	now := h.now()
	out := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		out = append(out, h.response(&invoices[i], now))
	}
	handler.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/invoices/{id}
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id uuid.UUID) error {
		inv, err := h.invoices.GetInvoice(r.Context(), id)
		if err != nil {
			return err
		}
		handler.JSON(w, http.StatusOK, h.response(inv, h.now()))
		return nil
	})
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/invoices/{id}/status
func (h *InvoiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id uuid.UUID) error {
		var req statusRequest
		if err := handler.DecodeJSON(r, &req); err != nil {
			return err
		}

		inv, err := h.invoices.UpdateInvoiceStatus(r.Context(), id, domain.InvoiceStatus(req.Status))
		if err != nil {
			return err
		}
		h.metrics.InvoiceStatusUpdated(string(inv.Status))

		handler.JSON(w, http.StatusOK, h.response(inv, h.now()))
		return nil
	})
}

// PDF handles GET /api/invoices/{id}/pdf
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id uuid.UUID) error {
		inv, err := h.invoices.GetInvoice(r.Context(), id)
		if err != nil {
			return err
		}

		out, err := invoicepdf.Render(inv, h.issuer, service.PaymentURL(h.baseURL, inv.PaymentLink), h.now())
		if err != nil {
			return domain.Internal(err, "invoice.pdf", "Failed to render invoice")
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+invoicepdf.Filename(inv)+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(out)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(out); err != nil {
			h.logger.Warn("failed to write invoice pdf", "invoice_id", id, "error", err)
		}
		return nil
	})
}

type recurringResponse struct {
	PaymentID       string    `json:"payment_id"`
	Status          string    `json:"status"`
	AmountCents     int64     `json:"amount_cents"`
	Currency        string    `json:"currency"`
	CustomerID      string    `json:"customer_id"`
	PaymentMethodID string    `json:"payment_method_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// SetupRecurring handles POST /api/invoices/{id}/recurring
func (h *InvoiceHandler) SetupRecurring(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id uuid.UUID) error {
		var req service.RecurringParams
		if err := handler.DecodeJSON(r, &req); err != nil {
			return err
		}

		payment, err := h.payments.SetupRecurringPayment(r.Context(), id, req)
		if err != nil {
			return err
		}
		handler.JSON(w, http.StatusCreated, recurringResponse{
			PaymentID:       payment.ID,
			Status:          payment.Status,
			AmountCents:     payment.AmountCents,
			Currency:        payment.Currency,
			CustomerID:      payment.CustomerID,
			PaymentMethodID: payment.PaymentMethodID,
			CreatedAt:       payment.CreatedAt,
		})
		return nil
	})
}
