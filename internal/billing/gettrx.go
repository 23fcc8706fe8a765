package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// GetTRXProvider implements Provider against the GetTRX REST API.
//
// Every request carries "Authorization: Bearer <secret>" and "X-Merchant-ID".
// Amounts are sent as integer cents. Requests are not retried.
type GetTRXProvider struct {
	baseURL    string
	secretKey  string
	merchantID string
	httpClient *http.Client
}

// NewGetTRXProvider creates a GetTRX gateway client.
func NewGetTRXProvider(cfg Config) *GetTRXProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GetTRXProvider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
		merchantID: cfg.MerchantID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type gettrxCustomerRequest struct {
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Phone    string            `json:"phone,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type gettrxCustomer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
}

// CreateCustomer creates a GetTRX customer.
func (p *GetTRXProvider) CreateCustomer(ctx context.Context, params CreateCustomerParams) (*Customer, error) {
	var out gettrxCustomer
	err := p.post(ctx, "/customers", gettrxCustomerRequest{
		Name:     params.Name,
		Email:    params.Email,
		Phone:    params.Phone,
		Metadata: params.Metadata,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &Customer{
		ID:        out.ID,
		Name:      out.Name,
		Email:     out.Email,
		CreatedAt: unixOrNow(out.CreatedAt),
	}, nil
}

type gettrxPaymentRequest struct {
	Amount           int64             `json:"amount"`
	Currency         string            `json:"currency"`
	PaymentToken     string            `json:"payment_token,omitempty"`
	PaymentMethodID  string            `json:"payment_method_id,omitempty"`
	CustomerID       string            `json:"customer_id,omitempty"`
	SetupFutureUsage string            `json:"setup_future_usage,omitempty"`
	Interval         string            `json:"interval,omitempty"`
	Description      string            `json:"description,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

type gettrxPayment struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	CustomerID      string `json:"customer_id"`
	PaymentMethodID string `json:"payment_method_id"`
	CreatedAt       int64  `json:"created_at"`
}

func (g gettrxPayment) toPayment() *Payment {
	return &Payment{
		ID:              g.ID,
		Status:          g.Status,
		AmountCents:     g.Amount,
		Currency:        g.Currency,
		CustomerID:      g.CustomerID,
		PaymentMethodID: g.PaymentMethodID,
		CreatedAt:       unixOrNow(g.CreatedAt),
	}
}

// CreatePayment submits a tokenized one-time charge.
func (p *GetTRXProvider) CreatePayment(ctx context.Context, params CreatePaymentParams) (*Payment, error) {
	if params.PaymentToken == "" {
		return nil, ErrMissingToken
	}

	req := gettrxPaymentRequest{
		Amount:       ToCents(params.Amount),
		Currency:     currencyOrDefault(params.Currency),
		PaymentToken: params.PaymentToken,
		CustomerID:   params.CustomerID,
		Description:  params.Description,
		Metadata:     params.Metadata,
	}
	if params.SetupFutureUsage {
		req.SetupFutureUsage = "off_session"
	}

	var out gettrxPayment
	if err := p.post(ctx, "/payments", req, &out); err != nil {
		return nil, err
	}
	return out.toPayment(), nil
}

// CreateRecurringPayment sets up a recurring charge on a saved payment method.
func (p *GetTRXProvider) CreateRecurringPayment(ctx context.Context, params CreateRecurringPaymentParams) (*Payment, error) {
	interval := params.Interval
	if interval == "" {
		interval = "month"
	}

	var out gettrxPayment
	err := p.post(ctx, "/recurring-payments", gettrxPaymentRequest{
		Amount:          ToCents(params.Amount),
		Currency:        currencyOrDefault(params.Currency),
		PaymentMethodID: params.PaymentMethodID,
		CustomerID:      params.CustomerID,
		Interval:        interval,
		Description:     params.Description,
		Metadata:        params.Metadata,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.toPayment(), nil
}

type gettrxLinkRequest struct {
	Amount      int64             `json:"amount"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type gettrxLink struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	URL   string `json:"url"`
}

// CreatePaymentLink mints a payment-link token at the gateway.
func (p *GetTRXProvider) CreatePaymentLink(ctx context.Context, params CreatePaymentLinkParams) (*PaymentLink, error) {
	var out gettrxLink
	err := p.post(ctx, "/payment-links", gettrxLinkRequest{
		Amount:      ToCents(params.Amount),
		Description: params.Description,
		Metadata:    params.Metadata,
	}, &out)
	if err != nil {
		return nil, err
	}

	token := out.Token
	if token == "" {
		token = out.ID
	}
	return &PaymentLink{ID: out.ID, Token: token, URL: out.URL}, nil
}

type gettrxMerchantRequest struct {
	BusinessInfo BusinessInfo `json:"business_info"`
	Address      Address      `json:"address"`
	BankAccount  BankAccount  `json:"bank_account"`
}

type gettrxMerchant struct {
	MerchantID string `json:"merchant_id"`
	PublicKey  string `json:"public_key"`
	Status     string `json:"status"`
}

// CreateMerchant registers a merchant with GetTRX.
func (p *GetTRXProvider) CreateMerchant(ctx context.Context, params CreateMerchantParams) (*Merchant, error) {
	var out gettrxMerchant
	err := p.post(ctx, "/merchants", gettrxMerchantRequest{
		BusinessInfo: params.Business,
		Address:      params.Address,
		BankAccount:  params.BankAccount,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &Merchant{MerchantID: out.MerchantID, PublicKey: out.PublicKey, Status: out.Status}, nil
}

// gettrxErrorBody covers both error shapes the API returns:
// {"error":{"message":..,"code":..}} and {"message":..,"code":..}.
type gettrxErrorBody struct {
	Error *struct {
		Message     string `json:"message"`
		Code        string `json:"code"`
		DeclineCode string `json:"decline_code"`
	} `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (p *GetTRXProvider) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("gettrx: encode %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("gettrx: build %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+p.secretKey)
	req.Header.Set("X-Merchant-ID", p.merchantID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return &GatewayError{
			Message:       "payment gateway unreachable",
			Code:          "api_connection_error",
			OriginalError: err,
		}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("gettrx: read %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeGatewayError(resp, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("gettrx: decode %s: %w", path, err)
	}
	return nil
}

func decodeGatewayError(resp *http.Response, data []byte) error {
	gwErr := &GatewayError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get("X-Request-ID"),
	}

	var body gettrxErrorBody
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != nil {
			gwErr.Message = body.Error.Message
			gwErr.Code = body.Error.Code
			gwErr.DeclineCode = body.Error.DeclineCode
		} else {
			gwErr.Message = body.Message
			gwErr.Code = body.Code
		}
	}
	if gwErr.Message == "" {
		gwErr.Message = fmt.Sprintf("gateway returned %d", resp.StatusCode)
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests && gwErr.Code == "":
		gwErr.Code = "rate_limit"
	case resp.StatusCode == http.StatusPaymentRequired && gwErr.Code == "":
		gwErr.Code = "card_declined"
	}
	return gwErr
}

func currencyOrDefault(c string) string {
	if c == "" {
		return "usd"
	}
	return strings.ToLower(c)
}

func unixOrNow(sec int64) time.Time {
	if sec == 0 {
		return time.Now()
	}
	return time.Unix(sec, 0)
}
