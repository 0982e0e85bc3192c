package jwtinfra

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/promo-api-nosql/internal/config"
	"github.com/promo-api-nosql/internal/domain"
)

// Claims holds the token payload. The user id is the only claim of
// interest; everything else is standard validity bookkeeping.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 identity tokens using a shared
// secret from process-wide configuration.
type Provider struct {
	secret []byte
	ttl    time.Duration
}

func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.TokenSecret == "" {
		return nil, errors.New("token secret is not configured")
	}
	return &Provider{secret: []byte(cfg.TokenSecret), ttl: cfg.TokenTTL}, nil
}

// Generate issues a token bound to userID with a fixed validity window.
func (p *Provider) Generate(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// Verify checks signature and expiry and returns the embedded user id
// exactly as issued. All failure modes wrap domain.ErrUnauthorized.
func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims: %w", domain.ErrUnauthorized)
	}
	return claims, nil
}
