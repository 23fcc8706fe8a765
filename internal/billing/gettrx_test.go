package billing

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGetTRX(t *testing.T, handler http.HandlerFunc) *GetTRXProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGetTRXProvider(Config{
		Provider:   ProviderGetTRX,
		BaseURL:    srv.URL + "/",
		SecretKey:  "test_secret",
		MerchantID: "mer_42",
		Timeout:    5 * time.Second,
	})
}

func TestGetTRX_CreatePayment(t *testing.T) {
	var got map[string]any

	p := newTestGetTRX(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments", r.URL.Path)
		assert.Equal(t, "Bearer test_secret", r.Header.Get("Authorization"))
		assert.Equal(t, "mer_42", r.Header.Get("X-Merchant-ID"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pay_1","status":"succeeded","amount":150050,"currency":"usd","customer_id":"cus_9","created_at":1735689600}`))
	})

	payment, err := p.CreatePayment(t.Context(), CreatePaymentParams{
		Amount:           decimal.RequireFromString("1500.50"),
		PaymentToken:     "tok_abc",
		CustomerID:       "cus_9",
		SetupFutureUsage: true,
	})
	require.NoError(t, err)

	// amounts travel as integer cents
	assert.Equal(t, float64(150050), got["amount"])
	assert.Equal(t, "tok_abc", got["payment_token"])
	assert.Equal(t, "usd", got["currency"])
	assert.Equal(t, "off_session", got["setup_future_usage"])

	assert.Equal(t, "pay_1", payment.ID)
	assert.Equal(t, int64(150050), payment.AmountCents)
	assert.True(t, payment.Succeeded())
	assert.Equal(t, time.Unix(1735689600, 0), payment.CreatedAt)
}

func TestGetTRX_CreatePayment_MissingToken(t *testing.T) {
	called := false
	p := newTestGetTRX(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := p.CreatePayment(t.Context(), CreatePaymentParams{Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ErrMissingToken)
	assert.False(t, called, "no request should be sent without a token")
}

func TestGetTRX_ErrorBodies(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantCode    string
		declined    bool
	}{
		{
			name:        "nested error object",
			status:      http.StatusPaymentRequired,
			body:        `{"error":{"message":"Insufficient funds","code":"card_declined","decline_code":"insufficient_funds"}}`,
			wantMessage: "Insufficient funds",
			wantCode:    "card_declined",
			declined:    true,
		},
		{
			name:        "flat message",
			status:      http.StatusBadRequest,
			body:        `{"message":"amount must be positive","code":"invalid_amount"}`,
			wantMessage: "amount must be positive",
			wantCode:    "invalid_amount",
		},
		{
			name:        "non-json body",
			status:      http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			wantMessage: "gateway returned 502",
		},
		{
			name:        "rate limited",
			status:      http.StatusTooManyRequests,
			body:        `{}`,
			wantMessage: "gateway returned 429",
			wantCode:    "rate_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestGetTRX(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Request-ID", "req_7")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := p.CreatePaymentLink(t.Context(), CreatePaymentLinkParams{Amount: decimal.NewFromInt(400)})
			require.Error(t, err)

			var gwErr *GatewayError
			require.ErrorAs(t, err, &gwErr)
			assert.Equal(t, tt.wantMessage, gwErr.Message)
			assert.Equal(t, tt.wantCode, gwErr.Code)
			assert.Equal(t, tt.status, gwErr.StatusCode)
			assert.Equal(t, "req_7", gwErr.RequestID)
			assert.Equal(t, tt.declined, gwErr.IsDeclined())
		})
	}
}

func TestGetTRX_CreatePaymentLink_FallsBackToID(t *testing.T) {
	p := newTestGetTRX(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment-links", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"Xy7kLm2pQr","url":"https://pay.gettrx.com/Xy7kLm2pQr"}`))
	})

	link, err := p.CreatePaymentLink(t.Context(), CreatePaymentLinkParams{Amount: decimal.NewFromInt(400)})
	require.NoError(t, err)
	assert.Equal(t, "Xy7kLm2pQr", link.Token)
	assert.Equal(t, "https://pay.gettrx.com/Xy7kLm2pQr", link.URL)
}

func TestGetTRX_CreateRecurringPayment_DefaultsInterval(t *testing.T) {
	var got gettrxPaymentRequest
	p := newTestGetTRX(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recurring-payments", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"rec_1","status":"active","amount":120000}`))
	})

	payment, err := p.CreateRecurringPayment(t.Context(), CreateRecurringPaymentParams{
		Amount:          decimal.NewFromInt(1200),
		PaymentMethodID: "pm_1",
		CustomerID:      "cus_1",
	})
	require.NoError(t, err)
	assert.Equal(t, "month", got.Interval)
	assert.Equal(t, int64(120000), got.Amount)
	assert.Equal(t, "active", payment.Status)
}

func TestGetTRX_CreateMerchant(t *testing.T) {
	var got gettrxMerchantRequest
	p := newTestGetTRX(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/merchants", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"merchant_id":"mer_new","public_key":"pk_live_xyz","status":"active"}`))
	})

	m, err := p.CreateMerchant(t.Context(), CreateMerchantParams{
		Business:    BusinessInfo{LegalName: "Maple Court LLC", TaxID: "12-3456789"},
		Address:     Address{Line1: "1 Main St", City: "Helena", State: "MT", PostalCode: "59601", Country: "US"},
		BankAccount: BankAccount{RoutingNumber: "123456789", AccountNumber: "0001234", AccountType: "checking"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Maple Court LLC", got.BusinessInfo.LegalName)
	assert.Equal(t, "59601", got.Address.PostalCode)
	assert.Equal(t, "mer_new", m.MerchantID)
	assert.Equal(t, "pk_live_xyz", m.PublicKey)
}

func TestGetTRX_Unreachable(t *testing.T) {
	p := NewGetTRXProvider(Config{BaseURL: "http://127.0.0.1:1", SecretKey: "x", MerchantID: "m", Timeout: time.Second})

	_, err := p.CreateCustomer(t.Context(), CreateCustomerParams{Name: "A", Email: "a@example.com"})

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.True(t, gwErr.IsTemporary())
	assert.Equal(t, "payment gateway unreachable", gwErr.Message)
}
