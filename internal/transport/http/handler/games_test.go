package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/promo-api-nosql/internal/application/game"
	"github.com/promo-api-nosql/internal/domain"
	jwtinfra "github.com/promo-api-nosql/internal/infrastructure/jwt"
	"github.com/promo-api-nosql/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGameSvc struct{ mock.Mock }

var _ game.Service = (*mockGameSvc)(nil)

func (m *mockGameSvc) List(ctx context.Context, userID string) ([]domain.Game, error) {
	args := m.Called(ctx, userID)
	if g, _ := args.Get(0).([]domain.Game); g != nil {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGameSvc) Get(ctx context.Context, userID, gameID string) (*domain.Game, error) {
	args := m.Called(ctx, userID, gameID)
	if g, _ := args.Get(0).(*domain.Game); g != nil {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGameSvc) Create(ctx context.Context, userID, details string) (*domain.Game, error) {
	args := m.Called(ctx, userID, details)
	if g, _ := args.Get(0).(*domain.Game); g != nil {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGameSvc) Update(ctx context.Context, userID string, g domain.Game) (*domain.Game, error) {
	args := m.Called(ctx, userID, g)
	if out, _ := args.Get(0).(*domain.Game); out != nil {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGameSvc) Delete(ctx context.Context, userID, gameID string) error {
	return m.Called(ctx, userID, gameID).Error(0)
}

func gameRouter(p *jwtinfra.Provider, svc game.Service) http.Handler {
	h := NewGameHandler(svc)
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(p))
		r.Get("/games/list", h.List)
		r.Post("/games", h.Create)
		r.Put("/games", h.Update)
		r.Get("/games/{gameId}", h.Get)
		r.Delete("/games/{gameId}", h.Delete)
	})
	return r
}

func TestListGames_EmptyIsJSONArray(t *testing.T) {
	p := newTestTokenProvider(t)
	svc := &mockGameSvc{}
	svc.On("List", mock.Anything, "Krtek").Return(nil, nil)

	req := tokenReq(t, p, http.MethodGet, "/api/v1/games/list", "Krtek", nil)
	rr := httptest.NewRecorder()
	gameRouter(p, svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestCreateGame_ServerAssignsID(t *testing.T) {
	p := newTestTokenProvider(t)
	svc := &mockGameSvc{}
	svc.On("Create", mock.Anything, "Krtek", "word game").
		Return(&domain.Game{UserID: "Krtek", GameID: "01HZX", Details: "word game"}, nil)

	body := []byte(`{"details":"word game"}`)
	req := tokenReq(t, p, http.MethodPost, "/api/v1/games", "Krtek", body)
	rr := httptest.NewRecorder()
	gameRouter(p, svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var g domain.Game
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&g))
	assert.Equal(t, "01HZX", g.GameID)
	svc.AssertExpectations(t)
}

func TestCreateGame_ClientSuppliedIDRejected(t *testing.T) {
	p := newTestTokenProvider(t)
	svc := &mockGameSvc{}

	body := []byte(`{"gameId":"auticko","details":"word game"}`)
	req := tokenReq(t, p, http.MethodPost, "/api/v1/games", "Krtek", body)
	rr := httptest.NewRecorder()
	gameRouter(p, svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateGame_MissingID(t *testing.T) {
	p := newTestTokenProvider(t)
	svc := &mockGameSvc{}
	svc.On("Update", mock.Anything, "Krtek", mock.Anything).
		Return(nil, fmt.Errorf("game id is required: %w", domain.ErrBadRequest))

	body := []byte(`{"details":"word game"}`)
	req := tokenReq(t, p, http.MethodPut, "/api/v1/games", "Krtek", body)
	rr := httptest.NewRecorder()
	gameRouter(p, svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetGame_NotFound(t *testing.T) {
	p := newTestTokenProvider(t)
	svc := &mockGameSvc{}
	svc.On("Get", mock.Anything, "Krtek", "auticko").
		Return(nil, fmt.Errorf("game not found: %w", domain.ErrNotFound))

	req := tokenReq(t, p, http.MethodGet, "/api/v1/games/auticko", "Krtek", nil)
	rr := httptest.NewRecorder()
	gameRouter(p, svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteGame_OK(t *testing.T) {
	p := newTestTokenProvider(t)
	svc := &mockGameSvc{}
	svc.On("Delete", mock.Anything, "Krtek", "auticko").Return(nil)

	req := tokenReq(t, p, http.MethodDelete, "/api/v1/games/auticko", "Krtek", nil)
	rr := httptest.NewRecorder()
	gameRouter(p, svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestListGames_MissingToken(t *testing.T) {
	p := newTestTokenProvider(t)
	svc := &mockGameSvc{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games/list", nil)
	rr := httptest.NewRecorder()
	gameRouter(p, svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
