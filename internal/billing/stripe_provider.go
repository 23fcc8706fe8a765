package billing

import (
	"context"
	"errors"
	"time"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/customer"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// StripeProvider implements Provider using Stripe payment intents.
// Payment links are minted locally; merchant registration is not supported.
type StripeProvider struct {
	apiKey string
}

// NewStripeProvider creates a Stripe gateway and sets the SDK's API key.
func NewStripeProvider(apiKey string) *StripeProvider {
	stripe.Key = apiKey
	return &StripeProvider{apiKey: apiKey}
}

// CreateCustomer creates a Stripe customer.
func (s *StripeProvider) CreateCustomer(ctx context.Context, params CreateCustomerParams) (*Customer, error) {
	cp := &stripe.CustomerParams{
		Email: stripe.String(params.Email),
		Name:  stripe.String(params.Name),
	}
	if params.Phone != "" {
		cp.Phone = stripe.String(params.Phone)
	}
	for k, v := range params.Metadata {
		cp.AddMetadata(k, v)
	}
	cp.Context = ctx

	c, err := customer.New(cp)
	if err != nil {
		return nil, toGatewayError(err)
	}
	return &Customer{
		ID:        c.ID,
		Email:     c.Email,
		Name:      c.Name,
		CreatedAt: time.Unix(c.Created, 0),
	}, nil
}

// CreatePayment creates and confirms a payment intent for the token.
func (s *StripeProvider) CreatePayment(ctx context.Context, params CreatePaymentParams) (*Payment, error) {
	if params.PaymentToken == "" {
		return nil, ErrMissingToken
	}
	cents := ToCents(params.Amount)
	if cents < 50 {
		return nil, ErrAmountTooSmall
	}

	pp := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(cents),
		Currency:           stripe.String(currencyOrDefault(params.Currency)),
		PaymentMethod:      stripe.String(params.PaymentToken),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Confirm:            stripe.Bool(true),
	}
	if params.CustomerID != "" {
		pp.Customer = stripe.String(params.CustomerID)
	}
	if params.Description != "" {
		pp.Description = stripe.String(params.Description)
	}
	if params.SetupFutureUsage {
		pp.SetupFutureUsage = stripe.String(string(stripe.PaymentIntentSetupFutureUsageOffSession))
	}
	for k, v := range params.Metadata {
		pp.AddMetadata(k, v)
	}
	pp.Context = ctx

	pi, err := paymentintent.New(pp)
	if err != nil {
		return nil, toGatewayError(err)
	}
	return paymentFromIntent(pi), nil
}

// CreateRecurringPayment charges a saved payment method off-session. The
// schedule itself is tracked in metadata; Stripe subscriptions are not used
// because invoices carry no Stripe price.
func (s *StripeProvider) CreateRecurringPayment(ctx context.Context, params CreateRecurringPaymentParams) (*Payment, error) {
	if params.PaymentMethodID == "" || params.CustomerID == "" {
		return nil, ErrMissingToken
	}
	interval := params.Interval
	if interval == "" {
		interval = "month"
	}

	pp := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(ToCents(params.Amount)),
		Currency:      stripe.String(currencyOrDefault(params.Currency)),
		Customer:      stripe.String(params.CustomerID),
		PaymentMethod: stripe.String(params.PaymentMethodID),
		OffSession:    stripe.Bool(true),
		Confirm:       stripe.Bool(true),
	}
	if params.Description != "" {
		pp.Description = stripe.String(params.Description)
	}
	pp.AddMetadata("interval", interval)
	for k, v := range params.Metadata {
		pp.AddMetadata(k, v)
	}
	pp.Context = ctx

	pi, err := paymentintent.New(pp)
	if err != nil {
		return nil, toGatewayError(err)
	}
	return paymentFromIntent(pi), nil
}

// CreatePaymentLink mints a local token. Stripe-hosted payment links require
// catalog prices, which invoices do not have.
func (s *StripeProvider) CreatePaymentLink(ctx context.Context, params CreatePaymentLinkParams) (*PaymentLink, error) {
	token, err := GenerateLinkToken(DefaultLinkTokenLength)
	if err != nil {
		return nil, err
	}
	return &PaymentLink{ID: token, Token: token}, nil
}

// CreateMerchant is not supported for Stripe; landlords onboard through the
// Stripe dashboard instead.
func (s *StripeProvider) CreateMerchant(ctx context.Context, params CreateMerchantParams) (*Merchant, error) {
	return nil, ErrNotImplemented
}

func paymentFromIntent(pi *stripe.PaymentIntent) *Payment {
	p := &Payment{
		ID:          pi.ID,
		Status:      string(pi.Status),
		AmountCents: pi.Amount,
		Currency:    string(pi.Currency),
		CreatedAt:   time.Unix(pi.Created, 0),
	}
	if pi.Customer != nil {
		p.CustomerID = pi.Customer.ID
	}
	if pi.PaymentMethod != nil {
		p.PaymentMethodID = pi.PaymentMethod.ID
	}
	return p
}

func toGatewayError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return &GatewayError{
			Message:       stripeErr.Msg,
			Code:          string(stripeErr.Code),
			DeclineCode:   string(stripeErr.DeclineCode),
			StatusCode:    stripeErr.HTTPStatusCode,
			RequestID:     stripeErr.RequestID,
			OriginalError: err,
		}
	}
	return &GatewayError{
		Message:       err.Error(),
		Code:          "api_connection_error",
		OriginalError: err,
	}
}
