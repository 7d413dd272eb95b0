package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuerName = "catalog"
	roleAdmin  = "admin"
	roleReader = "reader"
)

var (
	// ErrMissingSecret is returned when no signing secret is configured
	ErrMissingSecret = errors.New("jwt secret is not configured")
	// ErrInvalidToken is returned for tokens that fail verification
	ErrInvalidToken = errors.New("invalid token")
)

// Identity is an authenticated caller
type Identity struct {
	Subject string
	Admin   bool
}

// Anonymous is the caller of a request without a token
var Anonymous = Identity{}

// Claims are the JWT claims carried by catalog tokens
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authority issues and verifies HS256 tokens with a shared secret
type Authority struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthority creates an authority. ttl <= 0 issues tokens without expiry.
func NewAuthority(secret string, ttl time.Duration) (*Authority, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Authority{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for subject
func (a *Authority) Issue(subject string, admin bool) (string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", fmt.Errorf("subject is required")
	}

	role := roleReader
	if admin {
		role = roleAdmin
	}
	now := a.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  subject,
			Issuer:   issuerName,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if a.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(a.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns the identity it carries
func (a *Authority) Verify(token string) (Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerName),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return Anonymous, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return Anonymous, ErrInvalidToken
	}
	return Identity{Subject: claims.Subject, Admin: claims.Role == roleAdmin}, nil
}

// BearerToken extracts the token from an Authorization header value
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

type ctxKey struct{}

// WithIdentity returns a context carrying id
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity carried by ctx, or Anonymous
func FromContext(ctx context.Context) Identity {
	if id, ok := ctx.Value(ctxKey{}).(Identity); ok {
		return id
	}
	return Anonymous
}
