package routes

import (
	"net/http"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/handler/api"
	"github.com/dukerupert/tenancy/internal/router"
)

// PublicDeps contains dependencies for routes that need no user
type PublicDeps struct {
	Health  http.Handler
	Metrics http.Handler // nil disables /metrics

	// Payment page API, called by anonymous payers
	PayHandler *api.PayHandler

	// PayLimiter throttles /api/pay per client IP
	PayLimiter router.Middleware
}

// APIDeps contains dependencies for authenticated API routes
type APIDeps struct {
	// Auth verifies the bearer token and requires a user
	Auth router.Middleware

	// Invoices (CRUD, status, PDF, recurring)
	InvoiceHandler *api.InvoiceHandler

	// Split payments and contributions
	SplitHandler *api.SplitHandler

	// Merchant onboarding
	MerchantHandler *api.MerchantHandler

	// Plain CRUD
	TenantHandler      *api.ResourceHandler[domain.Tenant]
	PropertyHandler    *api.ResourceHandler[domain.Property]
	ContactHandler     *api.ResourceHandler[domain.Contact]
	MaintenanceHandler *api.ResourceHandler[domain.MaintenanceRequest]

	// Integrations
	QuickBooksHandler *api.QuickBooksHandler
	SMSHandler        *api.SMSHandler
	DocumentHandler   *api.DocumentHandler
}
