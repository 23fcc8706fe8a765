package routes

import (
	"net/http"

	"github.com/dukerupert/tenancy/internal/handler/api"
	"github.com/dukerupert/tenancy/internal/middleware"
	"github.com/dukerupert/tenancy/internal/router"
)

// RegisterPublicRoutes registers health, metrics and the payment page API.
// These routes do not require authentication.
func RegisterPublicRoutes(r *router.Router, deps PublicDeps) {
	r.Get("/health", deps.Health.ServeHTTP)
	if deps.Metrics != nil {
		r.Get("/metrics", deps.Metrics.ServeHTTP)
	}

	pay := r.Group(middleware.MaxBodySize(middleware.SmallMaxBodySize), middleware.Timeout())
	if deps.PayLimiter != nil {
		pay = pay.Group(deps.PayLimiter)
	}
	pay.Get("/api/pay/{paymentId}", deps.PayHandler.Show)
	pay.Post("/api/pay/{paymentId}", deps.PayHandler.Pay)
}

// RegisterAPIRoutes registers the routes the SPA calls on behalf of a
// signed-in landlord. Every route requires a bearer token.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	authed := r.Group(deps.Auth)
	small := authed.Group(middleware.MaxBodySize(middleware.SmallMaxBodySize), middleware.Timeout())

	// Invoices
	small.Post("/api/invoices", deps.InvoiceHandler.Create)
	small.Get("/api/invoices", deps.InvoiceHandler.List)
	small.Get("/api/invoices/{id}", deps.InvoiceHandler.Get)
	small.Patch("/api/invoices/{id}/status", deps.InvoiceHandler.UpdateStatus)
	small.Post("/api/invoices/{id}/recurring", deps.InvoiceHandler.SetupRecurring)
	authed.Get("/api/invoices/{id}/pdf", deps.InvoiceHandler.PDF, middleware.Timeout())

	// Split payments
	small.Post("/api/splits", deps.SplitHandler.Create)
	small.Get("/api/splits/{id}", deps.SplitHandler.Get)
	small.Patch("/api/contributions/{id}/status", deps.SplitHandler.UpdateContributionStatus)

	// Merchant onboarding
	small.Post("/api/merchant", deps.MerchantHandler.Create)
	small.Get("/api/merchant", deps.MerchantHandler.Get)

	// CRUD
	registerResource(small, "/api/tenants", deps.TenantHandler)
	registerResource(small, "/api/properties", deps.PropertyHandler)
	registerResource(small, "/api/contacts", deps.ContactHandler)
	registerResource(small, "/api/maintenance", deps.MaintenanceHandler)

	// Integrations
	small.Get("/api/quickbooks/connect", deps.QuickBooksHandler.Connect)
	small.Post("/api/quickbooks/callback", deps.QuickBooksHandler.Callback)
	small.Post("/api/notifications/sms", deps.SMSHandler.Send)
	authed.Post("/api/documents", deps.DocumentHandler.Upload,
		middleware.MaxBodySize(middleware.UploadMaxBodySize),
		middleware.Timeout(middleware.LongTimeout),
	)
}

func registerResource[T any](r *router.Router, base string, h *api.ResourceHandler[T]) {
	r.Post(base, h.Create)
	r.Get(base, h.List)
	r.Get(base+"/{id}", h.Get)
	r.Put(base+"/{id}", h.Update)
	r.Delete(base+"/{id}", h.Delete)
}

// RequireUser verifies the bearer token and rejects requests without a user.
func RequireUser(cfg middleware.AuthConfig) router.Middleware {
	withUser := middleware.WithUser(cfg)
	return func(next http.Handler) http.Handler {
		return withUser(middleware.RequireAuth(next))
	}
}
