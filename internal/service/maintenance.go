package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dukerupert/tenancy/internal/assistant"
	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/events"
	"github.com/dukerupert/tenancy/internal/notify"
	"github.com/dukerupert/tenancy/internal/repository"
	"github.com/google/uuid"
)

// MaintenanceService is re-exported from domain.
type MaintenanceService = domain.MaintenanceService

// Diagnoser triages a maintenance request.
type Diagnoser interface {
	DiagnoseMaintenance(ctx context.Context, title, description string) (*assistant.Diagnosis, error)
}

// alertTimeout bounds each background SMS dispatch.
const alertTimeout = 15 * time.Second

type maintenanceService struct {
	repo      repository.Querier
	diagnoser Diagnoser
	sms       notify.SMSSender
	events    events.Publisher
	logger    *slog.Logger

	// dispatch runs fire-and-forget work.
	dispatch func(func())
}

// NewMaintenanceService creates a MaintenanceService. diagnoser and sms may be
// nil to disable AI triage and urgent alerts.
func NewMaintenanceService(
	repo repository.Querier,
	diagnoser Diagnoser,
	sms notify.SMSSender,
	publisher events.Publisher,
	logger *slog.Logger,
) MaintenanceService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &maintenanceService{
		repo:      repo,
		diagnoser: diagnoser,
		sms:       sms,
		events:    publisher,
		logger:    logger.With("service", "maintenance"),
		dispatch:  func(f func()) { go f() },
	}
}

// CreateRequest saves a maintenance request. When a diagnoser is configured
// and the request has no diagnosis yet, the AI triage result is stored with it.
// Urgent requests alert the property's contacts by SMS.
func (s *maintenanceService) CreateRequest(ctx context.Context, m domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	const op = "maintenance.create"

	if err := validateStruct(op, m); err != nil {
		return nil, err
	}
	if m.Priority == "" {
		m.Priority = domain.PriorityNormal
	}
	if m.Status == "" {
		m.Status = domain.MaintenanceOpen
	}

	if s.diagnoser != nil && m.Diagnosis == "" {
		s.applyDiagnosis(ctx, &m)
	}

	row, err := s.repo.CreateMaintenanceRequest(ctx, repository.CreateMaintenanceRequestParams{
		PropertyID:  m.PropertyID,
		TenantID:    nullUUID(m.TenantID),
		Title:       m.Title,
		Description: m.Description,
		Priority:    m.Priority,
		Status:      m.Status,
		Diagnosis:   m.Diagnosis,
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, domain.WrapError(err, domain.EINVALID, op, "Property or tenant does not exist")
		}
		return nil, domain.Internal(err, op, "failed to save maintenance request")
	}

	out := maintenanceFromModel(row)
	s.logger.Info("maintenance request created",
		"request_id", out.ID,
		"property_id", out.PropertyID,
		"priority", out.Priority,
	)

	if out.IsUrgent() {
		s.alertUrgent(ctx, &out)
	}
	return &out, nil
}

// applyDiagnosis fills the diagnosis and raises priority to urgent when the
// model flags it. A failed call leaves the request unchanged.
func (s *maintenanceService) applyDiagnosis(ctx context.Context, m *domain.MaintenanceRequest) {
	d, err := s.diagnoser.DiagnoseMaintenance(ctx, m.Title, m.Description)
	if err != nil {
		s.logger.Warn("maintenance diagnosis failed", "error", err)
		return
	}

	m.Diagnosis = d.Summary
	if d.SuggestedAction != "" {
		m.Diagnosis += "\nSuggested action: " + d.SuggestedAction
	}
	if d.Urgent {
		m.Priority = domain.PriorityUrgent
	}
}

// alertUrgent publishes maintenance.urgent and texts every contact phone on
// the property in the background.
func (s *maintenanceService) alertUrgent(ctx context.Context, m *domain.MaintenanceRequest) {
	if err := s.events.Publish(ctx, events.SubjectMaintenanceUrgent, events.MaintenanceUrgent{
		RequestID:  m.ID,
		PropertyID: m.PropertyID,
		Title:      m.Title,
		Diagnosis:  m.Diagnosis,
	}); err != nil {
		s.logger.Warn("failed to publish event", "subject", events.SubjectMaintenanceUrgent, "error", err)
	}

	if s.sms == nil {
		return
	}

	phones, err := s.repo.ListPropertyAlertPhones(ctx, uuid.NullUUID{UUID: m.PropertyID, Valid: true})
	if err != nil {
		s.logger.Error("failed to load alert phones", "property_id", m.PropertyID, "error", err)
		return
	}
	if len(phones) == 0 {
		s.logger.Info("urgent request has no contact phones", "request_id", m.ID)
		return
	}

	body := fmt.Sprintf("URGENT maintenance: %s", m.Title)
	if m.Diagnosis != "" {
		body += "\n" + m.Diagnosis
	}

	// Detach from the request so the response isn't held up by the SMS provider.
	bg := context.WithoutCancel(ctx)
	s.dispatch(func() {
		for _, phone := range phones {
			sendCtx, cancel := context.WithTimeout(bg, alertTimeout)
			if _, err := s.sms.SendSMS(sendCtx, phone, body); err != nil {
				s.logger.Error("urgent alert sms failed", "request_id", m.ID, "error", err)
			}
			cancel()
		}
	})
}

func (s *maintenanceService) GetRequest(ctx context.Context, id uuid.UUID) (*domain.MaintenanceRequest, error) {
	row, err := s.repo.GetMaintenanceRequest(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrMaintenanceNotFound
		}
		return nil, domain.Internal(err, "maintenance.get", "failed to load maintenance request")
	}

	out := maintenanceFromModel(row)
	return &out, nil
}

func (s *maintenanceService) ListRequests(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	rows, err := s.repo.ListMaintenanceRequests(ctx)
	if err != nil {
		return nil, domain.Internal(err, "maintenance.list", "failed to list maintenance requests")
	}

	out := make([]domain.MaintenanceRequest, 0, len(rows))
	for _, r := range rows {
		out = append(out, maintenanceFromModel(r))
	}
	return out, nil
}

// UpdateRequest changes a request. The property cannot be changed.
func (s *maintenanceService) UpdateRequest(ctx context.Context, m domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	const op = "maintenance.update"

	existing, err := s.repo.GetMaintenanceRequest(ctx, m.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrMaintenanceNotFound
		}
		return nil, domain.Internal(err, op, "failed to load maintenance request")
	}
	m.PropertyID = existing.PropertyID

	if err := validateStruct(op, m); err != nil {
		return nil, err
	}
	if m.Priority == "" {
		m.Priority = domain.PriorityNormal
	}
	if m.Status == "" {
		m.Status = domain.MaintenanceOpen
	}

	row, err := s.repo.UpdateMaintenanceRequest(ctx, repository.UpdateMaintenanceRequestParams{
		ID:          m.ID,
		TenantID:    nullUUID(m.TenantID),
		Title:       m.Title,
		Description: m.Description,
		Priority:    m.Priority,
		Status:      m.Status,
		Diagnosis:   m.Diagnosis,
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrMaintenanceNotFound
		}
		return nil, domain.Internal(err, op, "failed to update maintenance request")
	}

	out := maintenanceFromModel(row)
	return &out, nil
}

func (s *maintenanceService) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteMaintenanceRequest(ctx, id); err != nil {
		return domain.Internal(err, "maintenance.delete", "failed to delete maintenance request")
	}
	return nil
}
