package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPropertyNotFound    = &Error{Code: ENOTFOUND, Message: "Property not found"}
	ErrTenantNotFound      = &Error{Code: ENOTFOUND, Message: "Tenant not found"}
	ErrContactNotFound     = &Error{Code: ENOTFOUND, Message: "Contact not found"}
	ErrMaintenanceNotFound = &Error{Code: ENOTFOUND, Message: "Maintenance request not found"}
)

// Property is a managed building or unit group.
type Property struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Name       string    `json:"name" validate:"required,max=200"`
	Address    string    `json:"address" validate:"required"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Units      int32     `json:"units" validate:"gte=0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Tenant occupies a unit and can be billed.
type Tenant struct {
	ID         uuid.UUID       `json:"id"`
	PropertyID *uuid.UUID      `json:"property_id,omitempty"`
	Name       string          `json:"name" validate:"required,max=200"`
	Email      string          `json:"email" validate:"omitempty,email"`
	Phone      string          `json:"phone"`
	Unit       string          `json:"unit"`
	RentAmount decimal.Decimal `json:"rent_amount"`
	LeaseStart *time.Time      `json:"lease_start,omitempty"`
	LeaseEnd   *time.Time      `json:"lease_end,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Contact roles.
const (
	ContactRoleVendor  = "vendor"
	ContactRoleManager = "manager"
	ContactRoleOwner   = "owner"
)

// Contact is a vendor, manager or other party that can be billed or alerted.
type Contact struct {
	ID         uuid.UUID  `json:"id"`
	PropertyID *uuid.UUID `json:"property_id,omitempty"`
	Name       string     `json:"name" validate:"required,max=200"`
	Email      string     `json:"email" validate:"omitempty,email"`
	Phone      string     `json:"phone"`
	Role       string     `json:"role" validate:"omitempty,oneof=vendor manager owner"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Maintenance priorities and statuses.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	MaintenanceOpen       = "open"
	MaintenanceInProgress = "in_progress"
	MaintenanceResolved   = "resolved"
)

// MaintenanceRequest is a reported issue at a property.
type MaintenanceRequest struct {
	ID          uuid.UUID  `json:"id"`
	PropertyID  uuid.UUID  `json:"property_id" validate:"required"`
	TenantID    *uuid.UUID `json:"tenant_id,omitempty"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Status      string     `json:"status" validate:"omitempty,oneof=open in_progress resolved"`
	Diagnosis   string     `json:"diagnosis,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsUrgent reports whether the request should trigger an alert.
func (m *MaintenanceRequest) IsUrgent() bool {
	return m.Priority == PriorityUrgent
}

// PropertyService manages properties.
type PropertyService interface {
	CreateProperty(ctx context.Context, p Property) (*Property, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*Property, error)
	ListProperties(ctx context.Context) ([]Property, error)
	UpdateProperty(ctx context.Context, p Property) (*Property, error)
	DeleteProperty(ctx context.Context, id uuid.UUID) error
}

// TenantService manages tenants.
type TenantService interface {
	CreateTenant(ctx context.Context, t Tenant) (*Tenant, error)
	GetTenant(ctx context.Context, id uuid.UUID) (*Tenant, error)
	ListTenants(ctx context.Context) ([]Tenant, error)
	UpdateTenant(ctx context.Context, t Tenant) (*Tenant, error)
	DeleteTenant(ctx context.Context, id uuid.UUID) error
}

// ContactService manages contacts.
type ContactService interface {
	CreateContact(ctx context.Context, c Contact) (*Contact, error)
	GetContact(ctx context.Context, id uuid.UUID) (*Contact, error)
	ListContacts(ctx context.Context) ([]Contact, error)
	UpdateContact(ctx context.Context, c Contact) (*Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error
}

// MaintenanceService manages maintenance requests. Creating a request may run
// an AI diagnosis and alert the property's contacts when it is urgent.
type MaintenanceService interface {
	CreateRequest(ctx context.Context, m MaintenanceRequest) (*MaintenanceRequest, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*MaintenanceRequest, error)
	ListRequests(ctx context.Context) ([]MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, m MaintenanceRequest) (*MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id uuid.UUID) error
}
