package service

import (
	"context"
	"log/slog"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/repository"
	"github.com/google/uuid"
)

// TenantService is re-exported from domain.
type TenantService = domain.TenantService

type tenantService struct {
	repo   repository.Querier
	logger *slog.Logger
}

// NewTenantService creates a TenantService.
func NewTenantService(repo repository.Querier, logger *slog.Logger) TenantService {
	return &tenantService{
		repo:   repo,
		logger: logger.With("service", "tenant"),
	}
}

func (s *tenantService) CreateTenant(ctx context.Context, t domain.Tenant) (*domain.Tenant, error) {
	const op = "tenant.create"

	if err := validateTenant(op, t); err != nil {
		return nil, err
	}

	row, err := s.repo.CreateTenant(ctx, repository.CreateTenantParams{
		PropertyID: nullUUID(t.PropertyID),
		Name:       t.Name,
		Email:      t.Email,
		Phone:      t.Phone,
		Unit:       t.Unit,
		RentAmount: t.RentAmount,
		LeaseStart: nullTime(t.LeaseStart),
		LeaseEnd:   nullTime(t.LeaseEnd),
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, domain.WrapError(err, domain.EINVALID, op, domain.ErrPropertyNotFound.Message)
		}
		return nil, domain.Internal(err, op, "failed to save tenant")
	}

	out := tenantFromModel(row)
	return &out, nil
}

func (s *tenantService) GetTenant(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	row, err := s.repo.GetTenant(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, domain.Internal(err, "tenant.get", "failed to load tenant")
	}

	out := tenantFromModel(row)
	return &out, nil
}

func (s *tenantService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	rows, err := s.repo.ListTenants(ctx)
	if err != nil {
		return nil, domain.Internal(err, "tenant.list", "failed to list tenants")
	}

	out := make([]domain.Tenant, 0, len(rows))
	for _, r := range rows {
		out = append(out, tenantFromModel(r))
	}
	return out, nil
}

func (s *tenantService) UpdateTenant(ctx context.Context, t domain.Tenant) (*domain.Tenant, error) {
	const op = "tenant.update"

	if err := validateTenant(op, t); err != nil {
		return nil, err
	}

	row, err := s.repo.UpdateTenant(ctx, repository.UpdateTenantParams{
		ID:         t.ID,
		PropertyID: nullUUID(t.PropertyID),
		Name:       t.Name,
		Email:      t.Email,
		Phone:      t.Phone,
		Unit:       t.Unit,
		RentAmount: t.RentAmount,
		LeaseStart: nullTime(t.LeaseStart),
		LeaseEnd:   nullTime(t.LeaseEnd),
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrTenantNotFound
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, domain.WrapError(err, domain.EINVALID, op, domain.ErrPropertyNotFound.Message)
		}
		return nil, domain.Internal(err, op, "failed to update tenant")
	}

	out := tenantFromModel(row)
	return &out, nil
}

func (s *tenantService) DeleteTenant(ctx context.Context, id uuid.UUID) error {
	const op = "tenant.delete"

	if err := s.repo.DeleteTenant(ctx, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return &domain.Error{Code: domain.ECONFLICT, Op: op, Message: ErrRecordInUse.Error(), Err: err}
		}
		return domain.Internal(err, op, "failed to delete tenant")
	}

	s.logger.Info("tenant deleted", "tenant_id", id)
	return nil
}

func validateTenant(op string, t domain.Tenant) error {
	if err := validateStruct(op, t); err != nil {
		return err
	}

	var err error
	if t.RentAmount.IsNegative() {
		err = domain.AddFieldError(err, "rent_amount", "must not be negative")
	}
	if t.LeaseStart != nil && t.LeaseEnd != nil && t.LeaseEnd.Before(*t.LeaseStart) {
		err = domain.AddFieldError(err, "lease_end", "must be after lease_start")
	}
	if ve, ok := err.(*domain.ValidationError); ok {
		ve.Op = op
		return ve
	}
	return nil
}
