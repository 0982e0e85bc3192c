// Package oauth implements the GitHub and Facebook SSO legs: it runs the
// authorization-code flow against the provider and fetches the userinfo
// document the authenticated principal is derived from.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/promo-api-nosql/internal/config"
	"github.com/promo-api-nosql/internal/domain"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/github"
)

const (
	githubUserInfoURL   = "https://api.github.com/user"
	facebookUserInfoURL = "https://graph.facebook.com/me?fields=id,name"
)

// UserInfo holds the identity fields extracted from a provider's
// userinfo endpoint. Login becomes the user id in our system.
type UserInfo struct {
	Login string
	Name  string
}

// Provider wraps an oauth2.Config plus the provider-specific userinfo
// endpoint and response shape.
type Provider struct {
	name        string
	conf        *oauth2.Config
	userInfoURL string
	extract     func([]byte) (*UserInfo, error)
}

// NewGitHub builds the GitHub SSO provider.
func NewGitHub(cfg *config.Config) *Provider {
	return &Provider{
		name: "github",
		conf: &oauth2.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			Endpoint:     github.Endpoint,
			RedirectURL:  cfg.OAuthRedirectBase + "/login/github/callback",
			Scopes:       []string{"read:user"},
		},
		userInfoURL: githubUserInfoURL,
		extract:     extractGitHub,
	}
}

// NewFacebook builds the Facebook SSO provider.
func NewFacebook(cfg *config.Config) *Provider {
	return &Provider{
		name: "facebook",
		conf: &oauth2.Config{
			ClientID:     cfg.FacebookClientID,
			ClientSecret: cfg.FacebookClientSecret,
			Endpoint:     facebook.Endpoint,
			RedirectURL:  cfg.OAuthRedirectBase + "/login/facebook/callback",
			Scopes:       []string{"public_profile"},
		},
		userInfoURL: facebookUserInfoURL,
		extract:     extractFacebook,
	}
}

func (p *Provider) Name() string { return p.name }

// AuthCodeURL returns the provider login URL for the given CSRF state.
func (p *Provider) AuthCodeURL(state string) string {
	return p.conf.AuthCodeURL(state)
}

// FetchUser exchanges the authorization code and retrieves the userinfo
// document. Returns a domain.ErrUnauthorized-wrapped error if the
// exchange fails or the provider rejects the token.
func (p *Provider) FetchUser(ctx context.Context, code string) (*UserInfo, error) {
	tok, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s code exchange failed: %w", p.name, domain.ErrUnauthorized)
	}
	resp, err := p.conf.Client(ctx, tok).Get(p.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s userinfo: %w", p.name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s userinfo returned %d: %w", p.name, resp.StatusCode, domain.ErrUnauthorized)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s userinfo: %w", p.name, err)
	}
	return p.extract(body)
}

func extractGitHub(body []byte) (*UserInfo, error) {
	var doc struct {
		Login string `json:"login"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode github userinfo: %w", err)
	}
	if doc.Login == "" {
		return nil, fmt.Errorf("github userinfo has no login: %w", domain.ErrUnauthorized)
	}
	return &UserInfo{Login: doc.Login, Name: doc.Name}, nil
}

func extractFacebook(body []byte) (*UserInfo, error) {
	var doc struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode facebook userinfo: %w", err)
	}
	if doc.ID == "" {
		return nil, fmt.Errorf("facebook userinfo has no id: %w", domain.ErrUnauthorized)
	}
	return &UserInfo{Login: doc.ID, Name: doc.Name}, nil
}
