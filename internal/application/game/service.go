package game

import (
	"context"
	"fmt"

	"github.com/promo-api-nosql/internal/domain"
	"github.com/promo-api-nosql/internal/pkg/id"
)

type Service interface {
	List(ctx context.Context, userID string) ([]domain.Game, error)
	Get(ctx context.Context, userID, gameID string) (*domain.Game, error)
	Create(ctx context.Context, userID, details string) (*domain.Game, error)
	Update(ctx context.Context, userID string, g domain.Game) (*domain.Game, error)
	Delete(ctx context.Context, userID, gameID string) error
}

type gameStore interface {
	List(ctx context.Context, userID string) ([]domain.Game, error)
	Get(ctx context.Context, userID, gameID string) (*domain.Game, error)
	Put(ctx context.Context, g *domain.Game) error
	Delete(ctx context.Context, userID, gameID string) error
}

type service struct {
	repo gameStore
}

func NewService(repo gameStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, userID string) ([]domain.Game, error) {
	return s.repo.List(ctx, userID)
}

func (s *service) Get(ctx context.Context, userID, gameID string) (*domain.Game, error) {
	return s.repo.Get(ctx, userID, gameID)
}

// Create persists a new game under userID with a server-assigned id.
// The transport layer guarantees the client did not supply one.
func (s *service) Create(ctx context.Context, userID, details string) (*domain.Game, error) {
	g := &domain.Game{
		UserID:  userID,
		GameID:  id.New(),
		Details: details,
	}
	if err := s.repo.Put(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Update is an idempotent upsert by (userId, gameId). The owner is
// always forced to the token's user, so a body naming someone else's
// game lands in the caller's own partition instead of touching theirs.
func (s *service) Update(ctx context.Context, userID string, g domain.Game) (*domain.Game, error) {
	if g.GameID == "" {
		return nil, fmt.Errorf("game id is required: %w", domain.ErrBadRequest)
	}
	g.UserID = userID
	if err := s.repo.Put(ctx, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Delete removes the game if owned by userID; a miss is a silent no-op.
// Codes under the game are left in place (no cascade).
func (s *service) Delete(ctx context.Context, userID, gameID string) error {
	return s.repo.Delete(ctx, userID, gameID)
}
