package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceHandler_List_Empty(t *testing.T) {
	h := NewTenantHandler(&fakeTenants{
		list: func(context.Context) ([]domain.Tenant, error) { return nil, nil },
	})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/tenants", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestResourceHandler_Update_UsesPathID(t *testing.T) {
	pathID := uuid.New()
	var got domain.Tenant
	h := NewTenantHandler(&fakeTenants{
		update: func(_ context.Context, t domain.Tenant) (*domain.Tenant, error) {
			got = t
			return &t, nil
		},
	})

	body := `{"id":"` + uuid.NewString() + `","name":"Dana","email":"dana@example.com","rent_amount":"1450.00"}`
	req := httptest.NewRequest(http.MethodPut, "/api/tenants/"+pathID.String(), strings.NewReader(body))
	req.SetPathValue("id", pathID.String())
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, pathID, got.ID)
	assert.Equal(t, "1450", got.RentAmount.String())

	var resp domain.Tenant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Dana", resp.Name)
}

func TestResourceHandler_Delete(t *testing.T) {
	inUse := uuid.New()
	h := NewTenantHandler(&fakeTenants{
		remove: func(_ context.Context, id uuid.UUID) error {
			if id == inUse {
				return &domain.Error{Code: domain.ECONFLICT, Message: "Tenant has invoices", Err: errors.New("fk")}
			}
			return nil
		},
	})

	tests := []struct {
		name     string
		id       string
		wantCode int
	}{
		{name: "deleted", id: uuid.NewString(), wantCode: http.StatusNoContent},
		{name: "referenced", id: inUse.String(), wantCode: http.StatusConflict},
		{name: "bad id", id: "7", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/tenants/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()

			h.Delete(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
