package service

import (
	"context"
	"log/slog"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/repository"
	"github.com/google/uuid"
)

// PropertyService is re-exported from domain.
type PropertyService = domain.PropertyService

type propertyService struct {
	repo   repository.Querier
	logger *slog.Logger
}

// NewPropertyService creates a PropertyService.
func NewPropertyService(repo repository.Querier, logger *slog.Logger) PropertyService {
	return &propertyService{
		repo:   repo,
		logger: logger.With("service", "property"),
	}
}

// CreateProperty saves a property owned by the current user.
func (s *propertyService) CreateProperty(ctx context.Context, p domain.Property) (*domain.Property, error) {
	const op = "property.create"

	user, err := domain.RequireUser(ctx, op)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(op, p); err != nil {
		return nil, err
	}
	if p.Units == 0 {
		p.Units = 1
	}

	row, err := s.repo.CreateProperty(ctx, repository.CreatePropertyParams{
		OwnerID:    user.ID,
		Name:       p.Name,
		Address:    p.Address,
		City:       p.City,
		State:      p.State,
		PostalCode: p.PostalCode,
		Units:      p.Units,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to save property")
	}

	out := propertyFromModel(row)
	return &out, nil
}

func (s *propertyService) GetProperty(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	row, err := s.repo.GetProperty(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, domain.Internal(err, "property.get", "failed to load property")
	}

	out := propertyFromModel(row)
	return &out, nil
}

func (s *propertyService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	rows, err := s.repo.ListProperties(ctx)
	if err != nil {
		return nil, domain.Internal(err, "property.list", "failed to list properties")
	}

	out := make([]domain.Property, 0, len(rows))
	for _, r := range rows {
		out = append(out, propertyFromModel(r))
	}
	return out, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, p domain.Property) (*domain.Property, error) {
	const op = "property.update"

	if err := validateStruct(op, p); err != nil {
		return nil, err
	}
	if p.Units == 0 {
		p.Units = 1
	}

	row, err := s.repo.UpdateProperty(ctx, repository.UpdatePropertyParams{
		ID:         p.ID,
		Name:       p.Name,
		Address:    p.Address,
		City:       p.City,
		State:      p.State,
		PostalCode: p.PostalCode,
		Units:      p.Units,
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, domain.Internal(err, op, "failed to update property")
	}

	out := propertyFromModel(row)
	return &out, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	const op = "property.delete"

	if err := s.repo.DeleteProperty(ctx, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return &domain.Error{Code: domain.ECONFLICT, Op: op, Message: ErrPropertyInUse.Error(), Err: err}
		}
		return domain.Internal(err, op, "failed to delete property")
	}

	s.logger.Info("property deleted", "property_id", id)
	return nil
}
