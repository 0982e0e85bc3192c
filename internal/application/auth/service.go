package auth

import (
	"context"
	"fmt"

	"github.com/promo-api-nosql/internal/domain"
	"github.com/promo-api-nosql/internal/infrastructure/oauth"
)

// Result is a completed SSO login: the issued identity token plus the
// (possibly just created) user record.
type Result struct {
	Token string
	User  *domain.User
}

type Service interface {
	AuthCodeURL(provider, state string) (string, error)
	Login(ctx context.Context, provider, code string) (*Result, error)
}

// SSOProvider is the slice of an OAuth2 provider this service needs.
type SSOProvider interface {
	Name() string
	AuthCodeURL(state string) string
	FetchUser(ctx context.Context, code string) (*oauth.UserInfo, error)
}

type tokenIssuer interface {
	Generate(userID string) (string, error)
}

type userService interface {
	GetOrCreate(ctx context.Context, userID string, attrs map[string]string) (*domain.User, error)
}

type service struct {
	providers map[string]SSOProvider
	tokens    tokenIssuer
	users     userService
}

func NewService(tokens tokenIssuer, users userService, providers ...SSOProvider) Service {
	m := make(map[string]SSOProvider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &service{providers: m, tokens: tokens, users: users}
}

func (s *service) AuthCodeURL(provider, state string) (string, error) {
	p, ok := s.providers[provider]
	if !ok {
		return "", fmt.Errorf("unknown sso provider %q: %w", provider, domain.ErrBadRequest)
	}
	return p.AuthCodeURL(state), nil
}

// Login completes the authorization-code flow: userinfo from the
// provider, user record created on first login, identity token issued.
func (s *service) Login(ctx context.Context, provider, code string) (*Result, error) {
	p, ok := s.providers[provider]
	if !ok {
		return nil, fmt.Errorf("unknown sso provider %q: %w", provider, domain.ErrBadRequest)
	}
	info, err := p.FetchUser(ctx, code)
	if err != nil {
		return nil, err
	}
	attrs := map[string]string{}
	if info.Name != "" {
		attrs["name"] = info.Name
	}
	u, err := s.users.GetOrCreate(ctx, info.Login, attrs)
	if err != nil {
		return nil, err
	}
	token, err := s.tokens.Generate(u.UserID)
	if err != nil {
		return nil, err
	}
	return &Result{Token: token, User: u}, nil
}
