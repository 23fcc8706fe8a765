package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/repository"
	"github.com/google/uuid"
)

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func uuidPtr(n uuid.NullUUID) *uuid.UUID {
	if !n.Valid {
		return nil
	}
	id := n.UUID
	return &id
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(n sql.NullTime) *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}

func invoiceFromRow(r repository.InvoiceDetailRow) (*domain.Invoice, error) {
	var items []domain.LineItem
	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &items); err != nil {
			return nil, fmt.Errorf("decode items for invoice %s: %w", r.ID, err)
		}
	}

	return &domain.Invoice{
		ID:           r.ID,
		TenantID:     uuidPtr(r.TenantID),
		ContactID:    uuidPtr(r.ContactID),
		PropertyID:   uuidPtr(r.PropertyID),
		Items:        items,
		Total:        r.Total,
		DueDate:      r.DueDate,
		Status:       domain.InvoiceStatus(r.Status),
		PaymentLink:  r.PaymentLink,
		CreatedAt:    r.CreatedAt,
		TenantName:   r.TenantName,
		TenantEmail:  r.TenantEmail,
		ContactName:  r.ContactName,
		ContactEmail: r.ContactEmail,
		PropertyName: r.PropertyName,
	}, nil
}

func invoicesFromRows(rows []repository.InvoiceDetailRow) ([]domain.Invoice, error) {
	out := make([]domain.Invoice, 0, len(rows))
	for _, r := range rows {
		inv, err := invoiceFromRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, *inv)
	}
	return out, nil
}

func splitFromModel(s repository.PaymentSplit) (*domain.SplitPayment, error) {
	var contributors []domain.Contributor
	if len(s.Contributors) > 0 {
		if err := json.Unmarshal(s.Contributors, &contributors); err != nil {
			return nil, fmt.Errorf("decode contributors for split %s: %w", s.ID, err)
		}
	}

	return &domain.SplitPayment{
		ID:           s.ID,
		InvoiceID:    s.InvoiceID,
		TotalAmount:  s.TotalAmount,
		Contributors: contributors,
		Status:       domain.SplitStatus(s.Status),
		ExpiresAt:    s.ExpiresAt,
		CreatedAt:    s.CreatedAt,
	}, nil
}

func contributionFromModel(c repository.SplitContribution) domain.Contribution {
	return domain.Contribution{
		ID:               c.ID,
		SplitID:          c.SplitID,
		ContributorName:  c.ContributorName,
		ContributorEmail: c.ContributorEmail,
		Amount:           c.Amount,
		Status:           domain.ContributionStatus(c.Status),
		PaymentLink:      c.PaymentLink,
		CreatedAt:        c.CreatedAt,
	}
}

func propertyFromModel(p repository.Property) domain.Property {
	return domain.Property{
		ID:         p.ID,
		OwnerID:    p.OwnerID,
		Name:       p.Name,
		Address:    p.Address,
		City:       p.City,
		State:      p.State,
		PostalCode: p.PostalCode,
		Units:      p.Units,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func tenantFromModel(t repository.Tenant) domain.Tenant {
	return domain.Tenant{
		ID:         t.ID,
		PropertyID: uuidPtr(t.PropertyID),
		Name:       t.Name,
		Email:      t.Email,
		Phone:      t.Phone,
		Unit:       t.Unit,
		RentAmount: t.RentAmount,
		LeaseStart: timePtr(t.LeaseStart),
		LeaseEnd:   timePtr(t.LeaseEnd),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func contactFromModel(c repository.Contact) domain.Contact {
	return domain.Contact{
		ID:         c.ID,
		PropertyID: uuidPtr(c.PropertyID),
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Role:       c.Role,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func maintenanceFromModel(m repository.MaintenanceRequest) domain.MaintenanceRequest {
	return domain.MaintenanceRequest{
		ID:          m.ID,
		PropertyID:  m.PropertyID,
		TenantID:    uuidPtr(m.TenantID),
		Title:       m.Title,
		Description: m.Description,
		Priority:    m.Priority,
		Status:      m.Status,
		Diagnosis:   m.Diagnosis,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func merchantFromModel(m repository.MerchantAccount) *domain.MerchantAccount {
	return &domain.MerchantAccount{
		ID:           m.ID,
		UserID:       m.UserID,
		MerchantID:   m.MerchantID,
		PublicKey:    m.PublicKey,
		BusinessName: m.BusinessName,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
