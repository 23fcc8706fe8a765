package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

// AuthConfig configures bearer token verification.
type AuthConfig struct {
	// Secret is the HS256 signing key.
	Secret []byte

	// Issuer and Audience are checked when non-empty.
	Issuer   string
	Audience string
}

// Claims is the JWT payload issued to property managers.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

var errMissingToken = errors.New("missing bearer token")

// WithUser verifies the Authorization bearer token, when present, and adds
// the user to the request context. Requests without a token pass through.
// A token that is present but invalid is rejected with 401.
func WithUser(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authenticate(r, cfg)
			if errors.Is(err, errMissingToken) {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				GetLogger(r.Context()).Info("rejected bearer token", "error", err)
				respondUnauthorized(w, r)
				return
			}

			ctx := domain.NewContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that carry no authenticated user.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if domain.UserFromContext(r.Context()) == nil {
			respondUnauthorized(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole ensures the authenticated user has the given role.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := domain.UserFromContext(r.Context())
			if user == nil {
				respondUnauthorized(w, r)
				return
			}
			if user.Role != role {
				respondForbidden(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func authenticate(r *http.Request, cfg AuthConfig) (*domain.User, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, errMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return nil, errors.New("malformed authorization header")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return cfg.Secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.New("subject is not a user id")
	}

	role := claims.Role
	if role == "" {
		role = "authenticated"
	}

	return &domain.User{ID: id, Email: claims.Email, Role: role}, nil
}

// IssueToken signs a token for user. Used by tenancyctl and tests.
func IssueToken(cfg AuthConfig, user domain.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{cfg.Audience}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
}
