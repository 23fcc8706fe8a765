package api

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/handler"
	"github.com/dukerupert/tenancy/internal/service"
	"github.com/dukerupert/tenancy/internal/telemetry"
)

// PayHandler serves the public payment page API. It needs no user.
type PayHandler struct {
	payments service.PaymentService
	metrics  *telemetry.BusinessMetrics
	logger   *slog.Logger
}

// NewPayHandler creates a pay handler. metrics may be nil.
func NewPayHandler(payments service.PaymentService, metrics *telemetry.BusinessMetrics, logger *slog.Logger) *PayHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PayHandler{
		payments: payments,
		metrics:  metrics,
		logger:   logger.With("handler", "pay"),
	}
}

// Show handles GET /api/pay/{paymentId}
func (h *PayHandler) Show(w http.ResponseWriter, r *http.Request) {
	details, err := h.payments.ResolvePaymentLink(r.Context(), r.PathValue("paymentId"))
	if err != nil {
		handler.Fail(w, r, err)
		return
	}
	handler.JSON(w, http.StatusOK, details)
}

// Pay handles POST /api/pay/{paymentId}
func (h *PayHandler) Pay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := r.PathValue("paymentId")

	var req service.PayParams
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	// Resolve first so attempts are counted per kind.
	link, err := h.payments.ResolvePaymentLink(ctx, token)
	if err != nil {
		handler.Fail(w, r, err)
		return
	}
	h.metrics.PaymentAttempted(link.Kind)

	result, err := h.payments.PayByLink(ctx, token, req)
	if err != nil {
		h.metrics.PaymentRejected(link.Kind, domain.ErrorCode(err))
		handler.Fail(w, r, err)
		return
	}

	if result.Pending {
		handler.JSON(w, http.StatusAccepted, result)
		return
	}

	h.metrics.PaymentCompleted(link.Kind, link.Amount)
	if result.Split != nil {
		h.metrics.ContributionUpdated(string(domain.ContributionStatusPaid), result.Split.Status == domain.SplitStatusCompleted)
	}

	handler.JSON(w, http.StatusOK, result)
}
