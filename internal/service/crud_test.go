package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPropertyService_CreateProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)
	svc := NewPropertyService(repo, testLogger())
	ctx, user := userContext()

	repo.EXPECT().CreateProperty(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.CreatePropertyParams) (repository.Property, error) {
			assert.Equal(t, user.ID, arg.OwnerID)
			assert.Equal(t, int32(1), arg.Units)
			return repository.Property{ID: uuid.New(), OwnerID: arg.OwnerID, Name: arg.Name, Address: arg.Address, Units: arg.Units}, nil
		})

	p, err := svc.CreateProperty(ctx, domain.Property{Name: "Harbor View", Address: "100 Main St"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, p.OwnerID)
	assert.Equal(t, int32(1), p.Units)

	_, err = svc.CreateProperty(context.Background(), domain.Property{Name: "Harbor View", Address: "100 Main St"})
	assert.Equal(t, domain.EUNAUTHORIZED, domain.ErrorCode(err))

	_, err = svc.CreateProperty(ctx, domain.Property{Address: "100 Main St"})
	assert.Equal(t, "is required", domain.GetValidationFields(err)["name"])
}

func TestPropertyService_DeleteProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)
	svc := NewPropertyService(repo, testLogger())

	inUse := uuid.New()
	free := uuid.New()
	repo.EXPECT().DeleteProperty(gomock.Any(), inUse).Return(&pgconn.PgError{Code: "23503"})
	repo.EXPECT().DeleteProperty(gomock.Any(), free).Return(nil)

	err := svc.DeleteProperty(context.Background(), inUse)
	assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
	assert.NoError(t, svc.DeleteProperty(context.Background(), free))
}

func TestPropertyService_GetProperty_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)
	svc := NewPropertyService(repo, testLogger())

	repo.EXPECT().GetProperty(gomock.Any(), gomock.Any()).Return(repository.Property{}, sql.ErrNoRows)
	repo.EXPECT().UpdateProperty(gomock.Any(), gomock.Any()).Return(repository.Property{}, sql.ErrNoRows)

	_, err := svc.GetProperty(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

	_, err = svc.UpdateProperty(context.Background(), domain.Property{ID: uuid.New(), Name: "x", Address: "y"})
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestTenantService_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewTenantService(repository.NewMockQuerier(ctrl), testLogger())

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)

	tests := []struct {
		name   string
		tenant domain.Tenant
		field  string
	}{
		{"missing name", domain.Tenant{Email: "a@example.com"}, "name"},
		{"bad email", domain.Tenant{Name: "Dana", Email: "dana"}, "email"},
		{"negative rent", domain.Tenant{Name: "Dana", RentAmount: decimal.NewFromInt(-1)}, "rent_amount"},
		{"lease ends before it starts", domain.Tenant{Name: "Dana", LeaseStart: &start, LeaseEnd: &end}, "lease_end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTenant(context.Background(), tt.tenant)
			require.True(t, domain.IsValidationError(err), "got %v", err)
			assert.Contains(t, domain.GetValidationFields(err), tt.field)
		})
	}
}

func TestTenantService_CreateTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)
	svc := NewTenantService(repo, testLogger())

	propertyID := uuid.New()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.CreateTenantParams) (repository.Tenant, error) {
			assert.Equal(t, uuid.NullUUID{UUID: propertyID, Valid: true}, arg.PropertyID)
			assert.True(t, arg.LeaseStart.Valid)
			assert.False(t, arg.LeaseEnd.Valid)
			return repository.Tenant{
				ID:         uuid.New(),
				PropertyID: arg.PropertyID,
				Name:       arg.Name,
				RentAmount: arg.RentAmount,
				LeaseStart: arg.LeaseStart,
			}, nil
		})

	tenant, err := svc.CreateTenant(context.Background(), domain.Tenant{
		PropertyID: &propertyID,
		Name:       "Dana Ruiz",
		RentAmount: decimal.NewFromInt(1500),
		LeaseStart: &start,
	})
	require.NoError(t, err)
	assert.Equal(t, &propertyID, tenant.PropertyID)
	assert.Equal(t, &start, tenant.LeaseStart)
	assert.Nil(t, tenant.LeaseEnd)

	repo.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).
		Return(repository.Tenant{}, &pgconn.PgError{Code: "23503"})
	_, err = svc.CreateTenant(context.Background(), domain.Tenant{PropertyID: &propertyID, Name: "Dana Ruiz"})
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestTenantService_DeleteTenant_Referenced(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)
	svc := NewTenantService(repo, testLogger())

	repo.EXPECT().DeleteTenant(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23503"})

	err := svc.DeleteTenant(context.Background(), uuid.New())
	assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
}

func TestContactService_CreateContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)
	svc := NewContactService(repo, testLogger())

	repo.EXPECT().CreateContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.CreateContactParams) (repository.Contact, error) {
			assert.Equal(t, domain.ContactRoleVendor, arg.Role)
			return repository.Contact{ID: uuid.New(), Name: arg.Name, Phone: arg.Phone, Role: arg.Role}, nil
		})

	c, err := svc.CreateContact(context.Background(), domain.Contact{Name: "Quick Plumbing", Phone: "+14065550100"})
	require.NoError(t, err)
	assert.Equal(t, domain.ContactRoleVendor, c.Role)

	_, err = svc.CreateContact(context.Background(), domain.Contact{Name: "Quick Plumbing", Phone: "406-555-0100"})
	assert.Contains(t, domain.GetValidationFields(err), "phone")

	_, err = svc.CreateContact(context.Background(), domain.Contact{Name: "Quick Plumbing", Role: "landlord"})
	assert.Equal(t, "must be one of vendor manager owner", domain.GetValidationFields(err)["role"])
}

func TestContactService_GetContact_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)
	svc := NewContactService(repo, testLogger())

	repo.EXPECT().GetContact(gomock.Any(), gomock.Any()).Return(repository.Contact{}, sql.ErrNoRows)

	_, err := svc.GetContact(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}
