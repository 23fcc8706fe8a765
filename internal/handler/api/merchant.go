package api

import (
	"net/http"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/handler"
	"github.com/dukerupert/tenancy/internal/service"
	"github.com/dukerupert/tenancy/internal/telemetry"
)

// MerchantHandler onboards the signed-in landlord with the payment gateway.
type MerchantHandler struct {
	merchants service.MerchantService
	metrics   *telemetry.BusinessMetrics
}

// NewMerchantHandler creates a merchant handler. metrics may be nil.
func NewMerchantHandler(merchants service.MerchantService, metrics *telemetry.BusinessMetrics) *MerchantHandler {
	return &MerchantHandler{
		merchants: merchants,
		metrics:   metrics,
	}
}

// Create handles POST /api/merchant
func (h *MerchantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateMerchantParams
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	account, err := h.merchants.CreateMerchantAccount(r.Context(), req)
	if err != nil {
		h.metrics.MerchantCreated(domain.ErrorCode(err))
		handler.Fail(w, r, err)
		return
	}
	h.metrics.MerchantCreated("ok")

	handler.JSON(w, http.StatusCreated, account)
}

// Get handles GET /api/merchant
func (h *MerchantHandler) Get(w http.ResponseWriter, r *http.Request) {
	account, err := h.merchants.GetMerchantAccount(r.Context())
	if err != nil {
		handler.Fail(w, r, err)
		return
	}
	handler.JSON(w, http.StatusOK, account)
}
