package billing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DeclineToken is a payment token the mock provider always declines.
const DeclineToken = "tok_declined"

// MockProvider is a mock gateway for development and tests.
// Simulates successful payment flows without calling a real gateway.
type MockProvider struct {
	// CreatePaymentFunc allows customizing charge behavior
	CreatePaymentFunc func(ctx context.Context, params CreatePaymentParams) (*Payment, error)

	// CreatePaymentLinkFunc allows customizing link minting behavior
	CreatePaymentLinkFunc func(ctx context.Context, params CreatePaymentLinkParams) (*PaymentLink, error)

	// CreateCustomerFunc allows customizing customer creation behavior
	CreateCustomerFunc func(ctx context.Context, params CreateCustomerParams) (*Customer, error)

	// CreateMerchantFunc allows customizing merchant registration behavior
	CreateMerchantFunc func(ctx context.Context, params CreateMerchantParams) (*Merchant, error)

	// Payments stores created payments for retrieval
	Payments map[string]*Payment

	// Customers stores created customers for retrieval
	Customers map[string]*Customer

	// CallLog tracks method calls for test assertions
	CallLog []string

	mu sync.Mutex
}

// NewMockProvider creates a new mock gateway.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Payments:  make(map[string]*Payment),
		Customers: make(map[string]*Customer),
		CallLog:   []string{},
	}
}

func (m *MockProvider) log(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallLog = append(m.CallLog, fmt.Sprintf(format, args...))
}

// Calls returns a copy of the call log.
func (m *MockProvider) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.CallLog...)
}

// CreateCustomer creates a mock customer.
func (m *MockProvider) CreateCustomer(ctx context.Context, params CreateCustomerParams) (*Customer, error) {
	m.log("CreateCustomer(%s)", params.Email)

	if m.CreateCustomerFunc != nil {
		return m.CreateCustomerFunc(ctx, params)
	}

	customer := &Customer{
		ID:        "cus_" + uuid.New().String()[:8],
		Email:     params.Email,
		Name:      params.Name,
		CreatedAt: time.Now(),
	}

	m.mu.Lock()
	m.Customers[customer.ID] = customer
	m.mu.Unlock()
	return customer, nil
}

// CreatePayment creates a mock charge. DeclineToken is always declined.
func (m *MockProvider) CreatePayment(ctx context.Context, params CreatePaymentParams) (*Payment, error) {
	m.log("CreatePayment(%d, %s)", ToCents(params.Amount), params.PaymentToken)

	if m.CreatePaymentFunc != nil {
		return m.CreatePaymentFunc(ctx, params)
	}
	if params.PaymentToken == "" {
		return nil, ErrMissingToken
	}
	if params.PaymentToken == DeclineToken {
		return nil, &GatewayError{
			Message:       "Your card was declined.",
			Code:          "card_declined",
			DeclineCode:   "generic_decline",
			StatusCode:    402,
			OriginalError: ErrPaymentFailed,
		}
	}

	p := &Payment{
		ID:          "pay_" + uuid.New().String(),
		Status:      "succeeded",
		AmountCents: ToCents(params.Amount),
		Currency:    currencyOrDefault(params.Currency),
		CustomerID:  params.CustomerID,
		CreatedAt:   time.Now(),
	}
	if params.SetupFutureUsage {
		p.PaymentMethodID = "pm_" + uuid.New().String()[:8]
	}

	m.mu.Lock()
	m.Payments[p.ID] = p
	m.mu.Unlock()
	return p, nil
}

// CreateRecurringPayment creates a mock recurring setup.
func (m *MockProvider) CreateRecurringPayment(ctx context.Context, params CreateRecurringPaymentParams) (*Payment, error) {
	m.log("CreateRecurringPayment(%d, %s)", ToCents(params.Amount), params.CustomerID)

	p := &Payment{
		ID:              "rec_" + uuid.New().String(),
		Status:          "active",
		AmountCents:     ToCents(params.Amount),
		Currency:        currencyOrDefault(params.Currency),
		CustomerID:      params.CustomerID,
		PaymentMethodID: params.PaymentMethodID,
		CreatedAt:       time.Now(),
	}

	m.mu.Lock()
	m.Payments[p.ID] = p
	m.mu.Unlock()
	return p, nil
}

// CreatePaymentLink mints a random local token.
func (m *MockProvider) CreatePaymentLink(ctx context.Context, params CreatePaymentLinkParams) (*PaymentLink, error) {
	m.log("CreatePaymentLink(%d)", ToCents(params.Amount))

	if m.CreatePaymentLinkFunc != nil {
		return m.CreatePaymentLinkFunc(ctx, params)
	}

	token, err := GenerateLinkToken(DefaultLinkTokenLength)
	if err != nil {
		return nil, err
	}
	return &PaymentLink{ID: "plink_" + token, Token: token}, nil
}

// CreateMerchant registers a mock merchant.
func (m *MockProvider) CreateMerchant(ctx context.Context, params CreateMerchantParams) (*Merchant, error) {
	m.log("CreateMerchant(%s)", params.Business.LegalName)

	if m.CreateMerchantFunc != nil {
		return m.CreateMerchantFunc(ctx, params)
	}

	id := uuid.New().String()[:12]
	return &Merchant{
		MerchantID: "mer_" + id,
		PublicKey:  "pk_test_" + id,
		Status:     "active",
	}, nil
}
