package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/promo-api-nosql/internal/application/auth"
	"github.com/promo-api-nosql/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthSvc struct{ mock.Mock }

var _ auth.Service = (*mockAuthSvc)(nil)

func (m *mockAuthSvc) AuthCodeURL(provider, state string) (string, error) {
	args := m.Called(provider, state)
	return args.String(0), args.Error(1)
}
func (m *mockAuthSvc) Login(ctx context.Context, provider, code string) (*auth.Result, error) {
	args := m.Called(ctx, provider, code)
	if res, _ := args.Get(0).(*auth.Result); res != nil {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func authRouter(svc auth.Service) http.Handler {
	h := NewAuthHandler(svc)
	r := chi.NewRouter()
	r.Get("/login/{provider}", h.Login)
	r.Get("/login/{provider}/callback", h.Callback)
	return r
}

func TestLogin_RedirectsWithStateCookie(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("AuthCodeURL", "github", mock.Anything).
		Return("https://github.com/login/oauth/authorize?state=x", nil)

	req := httptest.NewRequest(http.MethodGet, "/login/github", nil)
	rr := httptest.NewRecorder()
	authRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Contains(t, rr.Header().Get("Location"), "github.com")

	var found bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == "oauth_state" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "state cookie not set")
}

func TestLogin_UnknownProvider(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("AuthCodeURL", "myspace", mock.Anything).
		Return("", fmt.Errorf("unknown sso provider %q: %w", "myspace", domain.ErrBadRequest))

	req := httptest.NewRequest(http.MethodGet, "/login/myspace", nil)
	rr := httptest.NewRecorder()
	authRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCallback_StateMismatch(t *testing.T) {
	svc := &mockAuthSvc{}

	req := httptest.NewRequest(http.MethodGet, "/login/github/callback?state=evil&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "good"})
	rr := httptest.NewRecorder()
	authRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestCallback_MissingCookie(t *testing.T) {
	svc := &mockAuthSvc{}

	req := httptest.NewRequest(http.MethodGet, "/login/github/callback?state=good&code=abc", nil)
	rr := httptest.NewRecorder()
	authRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestCallback_IssuesToken(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("Login", mock.Anything, "github", "abc").
		Return(&auth.Result{
			Token: "signed-token",
			User:  &domain.User{UserID: "Krtek", Attributes: map[string]string{"name": "Krtecek"}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/login/github/callback?state=good&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "good"})
	rr := httptest.NewRecorder()
	authRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var env TokenEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	assert.Equal(t, "signed-token", env.Token)
	require.NotNil(t, env.User)
	assert.Equal(t, "Krtek", env.User.UserID)
	svc.AssertExpectations(t)
}

func TestHealthCheck_Ping(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/v1/health-check/{action}", NewHealthHandler().Ping)

	req := httptest.NewRequest(http.MethodGet, "/v1/health-check/ping", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var env MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	assert.Equal(t, "pong", env.Message)
}

func TestHealthCheck_UnknownAction(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/v1/health-check/{action}", NewHealthHandler().Ping)

	req := httptest.NewRequest(http.MethodGet, "/v1/health-check/status", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
