package api

import (
	"net/http"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/handler"
	"github.com/dukerupert/tenancy/internal/service"
	"github.com/dukerupert/tenancy/internal/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SplitHandler serves split payments and their contributions.
type SplitHandler struct {
	splits  service.SplitPaymentService
	metrics *telemetry.BusinessMetrics
}

// NewSplitHandler creates a split handler. metrics may be nil.
func NewSplitHandler(splits service.SplitPaymentService, metrics *telemetry.BusinessMetrics) *SplitHandler {
	return &SplitHandler{
		splits:  splits,
		metrics: metrics,
	}
}

type createSplitRequest struct {
	InvoiceID    uuid.UUID            `json:"invoice_id"`
	TotalAmount  decimal.Decimal      `json:"total_amount"`
	Contributors []domain.Contributor `json:"contributors"`
}

// Create handles POST /api/splits
func (h *SplitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSplitRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if req.InvoiceID == uuid.Nil {
		handler.Fail(w, r, domain.NewValidationError("split.create", "invoice_id", "is required"))
		return
	}

	split, err := h.splits.CreateSplitPayment(r.Context(), service.CreateSplitParams{
		InvoiceID:    req.InvoiceID,
		TotalAmount:  req.TotalAmount,
		Contributors: req.Contributors,
	})
	if err != nil {
		handler.Fail(w, r, err)
		return
	}
	h.metrics.SplitCreated(len(split.Contributions))

	handler.JSON(w, http.StatusCreated, split)
}

// Get handles GET /api/splits/{id}
func (h *SplitHandler) Get(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id uuid.UUID) error {
		split, err := h.splits.GetSplitPayment(r.Context(), id)
		if err != nil {
			return err
		}
		handler.JSON(w, http.StatusOK, split)
		return nil
	})
}

// UpdateContributionStatus handles PATCH /api/contributions/{id}/status and
// returns the parent split.
func (h *SplitHandler) UpdateContributionStatus(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id uuid.UUID) error {
		var req statusRequest
		if err := handler.DecodeJSON(r, &req); err != nil {
			return err
		}

		split, err := h.splits.UpdateContributionStatus(r.Context(), id, domain.ContributionStatus(req.Status))
		if err != nil {
			return err
		}
		h.metrics.ContributionUpdated(req.Status, split.Status == domain.SplitStatusCompleted)

		handler.JSON(w, http.StatusOK, split)
		return nil
	})
}
