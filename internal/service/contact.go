package service

import (
	"context"
	"log/slog"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/notify"
	"github.com/dukerupert/tenancy/internal/repository"
	"github.com/google/uuid"
)

// ContactService is re-exported from domain.
type ContactService = domain.ContactService

type contactService struct {
	repo   repository.Querier
	logger *slog.Logger
}

// NewContactService creates a ContactService.
func NewContactService(repo repository.Querier, logger *slog.Logger) ContactService {
	return &contactService{
		repo:   repo,
		logger: logger.With("service", "contact"),
	}
}

func (s *contactService) CreateContact(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
	const op = "contact.create"

	if err := validateContact(op, c); err != nil {
		return nil, err
	}

	row, err := s.repo.CreateContact(ctx, repository.CreateContactParams{
		PropertyID: nullUUID(c.PropertyID),
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Role:       roleOrDefault(c.Role),
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, domain.WrapError(err, domain.EINVALID, op, domain.ErrPropertyNotFound.Message)
		}
		return nil, domain.Internal(err, op, "failed to save contact")
	}

	out := contactFromModel(row)
	return &out, nil
}

func (s *contactService) GetContact(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	row, err := s.repo.GetContact(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrContactNotFound
		}
		return nil, domain.Internal(err, "contact.get", "failed to load contact")
	}

	out := contactFromModel(row)
	return &out, nil
}

func (s *contactService) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	rows, err := s.repo.ListContacts(ctx)
	if err != nil {
		return nil, domain.Internal(err, "contact.list", "failed to list contacts")
	}

	out := make([]domain.Contact, 0, len(rows))
	for _, r := range rows {
		out = append(out, contactFromModel(r))
	}
	return out, nil
}

func (s *contactService) UpdateContact(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
	const op = "contact.update"

	if err := validateContact(op, c); err != nil {
		return nil, err
	}

	row, err := s.repo.UpdateContact(ctx, repository.UpdateContactParams{
		ID:         c.ID,
		PropertyID: nullUUID(c.PropertyID),
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Role:       roleOrDefault(c.Role),
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrContactNotFound
		}
		return nil, domain.Internal(err, op, "failed to update contact")
	}

	out := contactFromModel(row)
	return &out, nil
}

func (s *contactService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	const op = "contact.delete"

	if err := s.repo.DeleteContact(ctx, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return &domain.Error{Code: domain.ECONFLICT, Op: op, Message: ErrRecordInUse.Error(), Err: err}
		}
		return domain.Internal(err, op, "failed to delete contact")
	}

	s.logger.Info("contact deleted", "contact_id", id)
	return nil
}

// validateContact also requires alert phones to be dialable.
func validateContact(op string, c domain.Contact) error {
	if err := validateStruct(op, c); err != nil {
		return err
	}
	if c.Phone != "" && notify.ValidatePhone(c.Phone) != nil {
		return domain.NewValidationError(op, "phone", "must be in E.164 format, e.g. +15551234567")
	}
	return nil
}

func roleOrDefault(role string) string {
	if role == "" {
		return domain.ContactRoleVendor
	}
	return role
}
