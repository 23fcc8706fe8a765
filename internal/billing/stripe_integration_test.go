//go:build integration
// +build integration

package billing

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadTestConfig loads Stripe test credentials from .env.test
func loadTestConfig(t *testing.T) Config {
	t.Helper()

	err := godotenv.Load("../../.env.test")
	if err != nil {
		t.Skipf("Skipping integration test: .env.test not found (%v)", err)
	}

	apiKey := os.Getenv("GATEWAY_SECRET_KEY")
	if apiKey == "" || !strings.HasPrefix(apiKey, "sk_test_") {
		t.Skip("Skipping integration test: GATEWAY_SECRET_KEY must be a sk_test_ key in .env.test")
	}

	cfg := Config{Provider: ProviderStripe, SecretKey: apiKey, Timeout: 30 * time.Second}
	require.True(t, cfg.IsTestMode())
	return cfg
}

func TestStripeIntegration_CustomerAndPayment(t *testing.T) {
	cfg := loadTestConfig(t)
	p := NewStripeProvider(cfg.SecretKey)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cust, err := p.CreateCustomer(ctx, CreateCustomerParams{
		Name:  "Integration Tenant",
		Email: "integration-tenant@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, cust.ID)

	// pm_card_visa is Stripe's test payment method
	payment, err := p.CreatePayment(ctx, CreatePaymentParams{
		Amount:       decimal.RequireFromString("12.34"),
		PaymentToken: "pm_card_visa",
		CustomerID:   cust.ID,
		Description:  "integration test invoice",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1234), payment.AmountCents)
	assert.True(t, payment.Succeeded())
}

func TestStripeIntegration_Declined(t *testing.T) {
	cfg := loadTestConfig(t)
	p := NewStripeProvider(cfg.SecretKey)

	_, err := p.CreatePayment(context.Background(), CreatePaymentParams{
		Amount:       decimal.NewFromInt(20),
		PaymentToken: "pm_card_chargeDeclined",
	})
	require.Error(t, err)

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.True(t, gwErr.IsDeclined())
	assert.NotEmpty(t, gwErr.Message)
}
