package api

import (
	"context"
	"net/http"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/handler"
	"github.com/dukerupert/tenancy/internal/service"
	"github.com/dukerupert/tenancy/internal/telemetry"
	"github.com/google/uuid"
)

// ResourceHandler serves plain CRUD for one entity type:
//
//	POST   /api/<name>
//	GET    /api/<name>
//	GET    /api/<name>/{id}
//	PUT    /api/<name>/{id}
//	DELETE /api/<name>/{id}
type ResourceHandler[T any] struct {
	create func(context.Context, T) (*T, error)
	get    func(context.Context, uuid.UUID) (*T, error)
	list   func(context.Context) ([]T, error)
	update func(context.Context, T) (*T, error)
	remove func(context.Context, uuid.UUID) error
	setID  func(*T, uuid.UUID)

	// created runs after a successful create.
	created func(*T)
}

// NewTenantHandler serves /api/tenants.
func NewTenantHandler(svc service.TenantService) *ResourceHandler[domain.Tenant] {
	return &ResourceHandler[domain.Tenant]{
		create: svc.CreateTenant,
		get:    svc.GetTenant,
		list:   svc.ListTenants,
		update: svc.UpdateTenant,
		remove: svc.DeleteTenant,
		setID:  func(t *domain.Tenant, id uuid.UUID) { t.ID = id },
	}
}

// NewPropertyHandler serves /api/properties.
func NewPropertyHandler(svc service.PropertyService) *ResourceHandler[domain.Property] {
	return &ResourceHandler[domain.Property]{
		create: svc.CreateProperty,
		get:    svc.GetProperty,
		list:   svc.ListProperties,
		update: svc.UpdateProperty,
		remove: svc.DeleteProperty,
		setID:  func(p *domain.Property, id uuid.UUID) { p.ID = id },
	}
}

// NewContactHandler serves /api/contacts.
func NewContactHandler(svc service.ContactService) *ResourceHandler[domain.Contact] {
	return &ResourceHandler[domain.Contact]{
		create: svc.CreateContact,
		get:    svc.GetContact,
		list:   svc.ListContacts,
		update: svc.UpdateContact,
		remove: svc.DeleteContact,
		setID:  func(c *domain.Contact, id uuid.UUID) { c.ID = id },
	}
}

// NewMaintenanceHandler serves /api/maintenance. metrics may be nil.
func NewMaintenanceHandler(svc service.MaintenanceService, metrics *telemetry.BusinessMetrics) *ResourceHandler[domain.MaintenanceRequest] {
	return &ResourceHandler[domain.MaintenanceRequest]{
		create: svc.CreateRequest,
		get:    svc.GetRequest,
		list:   svc.ListRequests,
		update: svc.UpdateRequest,
		remove: svc.DeleteRequest,
		setID:  func(m *domain.MaintenanceRequest, id uuid.UUID) { m.ID = id },
		created: func(m *domain.MaintenanceRequest) {
			metrics.MaintenanceRequested(m.Priority)
		},
	}
}

// Create handles POST /api/<name>
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var in T
	if err := handler.DecodeJSON(r, &in); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	out, err := h.create(r.Context(), in)
	if err != nil {
		handler.Fail(w, r, err)
		return
	}
	if h.created != nil {
		h.created(out)
	}

	handler.JSON(w, http.StatusCreated, out)
}

// List handles GET /api/<name>
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.list(r.Context())
	if err != nil {
		handler.Fail(w, r, err)
		return
	}
	if out == nil {
		out = []T{}
	}
	handler.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/<name>/{id}
func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id uuid.UUID) error {
		out, err := h.get(r.Context(), id)
		if err != nil {
			return err
		}
		handler.JSON(w, http.StatusOK, out)
		return nil
	})
}

// Update handles PUT /api/<name>/{id}. The path ID wins over any ID in the body.
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id uuid.UUID) error {
		var in T
		if err := handler.DecodeJSON(r, &in); err != nil {
			return err
		}
		h.setID(&in, id)

		out, err := h.update(r.Context(), in)
		if err != nil {
			return err
		}
		handler.JSON(w, http.StatusOK, out)
		return nil
	})
}

// Delete handles DELETE /api/<name>/{id}
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id uuid.UUID) error {
		if err := h.remove(r.Context(), id); err != nil {
			return err
		}
		w.WriteHeader(http.StatusNoContent)
		return nil
	})
}
