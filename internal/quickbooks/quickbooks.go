// Package quickbooks completes the QuickBooks Online OAuth handshake.
// Tokens are returned to the caller; nothing is stored server side.
package quickbooks

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dukerupert/tenancy/internal/domain"
	"golang.org/x/oauth2"
)

const (
	defaultAuthURL  = "https://appcenter.intuit.com/connect/oauth2"
	defaultTokenURL = "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer"

	scopeAccounting = "com.intuit.quickbooks.accounting"
)

// ErrNotConfigured is returned when no client credentials are set.
var ErrNotConfigured = domain.Errorf(domain.ENOTIMPL, "quickbooks", "QuickBooks integration is not configured")

// Config holds the Intuit app credentials.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	// TokenURL overrides the Intuit token endpoint.
	TokenURL string
}

// Connection is the result of a successful code exchange.
type Connection struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	RealmID      string    `json:"realm_id"`
}

// Client exchanges authorization codes for tokens.
type Client struct {
	oauth      *oauth2.Config
	httpClient *http.Client
}

// New creates a Client. httpClient may be nil.
func New(cfg Config, httpClient *http.Client) *Client {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{scopeAccounting},
			Endpoint: oauth2.Endpoint{
				AuthURL:   defaultAuthURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		httpClient: httpClient,
	}
}

// Configured reports whether client credentials are present.
func (c *Client) Configured() bool {
	return c.oauth.ClientID != "" && c.oauth.ClientSecret != ""
}

// AuthCodeURL returns the Intuit consent URL for state.
func (c *Client) AuthCodeURL(state string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// Exchange trades an authorization code for tokens.
func (c *Client) Exchange(ctx context.Context, code, realmID string) (*Connection, error) {
	const op = "quickbooks.exchange"

	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var verr error
	if code == "" {
		verr = domain.AddFieldError(verr, "code", "is required")
	}
	if realmID == "" {
		verr = domain.AddFieldError(verr, "realmId", "is required")
	}
	if verr != nil {
		return nil, verr
	}

	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}

	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil && re.Response.StatusCode < http.StatusInternalServerError {
			return nil, domain.WrapError(err, domain.EINVALID, op, "QuickBooks rejected the authorization code")
		}
		return nil, domain.Internal(err, op, "Failed to reach QuickBooks")
	}

	return &Connection{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		ExpiresAt:    tok.Expiry,
		RealmID:      realmID,
	}, nil
}
