// Package memory provides in-memory store implementations used when
// APP_ENV=development. They mirror the DynamoDB repos' contracts so the
// rest of the application cannot tell the two apart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/promo-api-nosql/internal/domain"
)

// GameStore keeps games in an insertion-ordered map keyed by the
// composite (userId, gameId) identity. Saving under an existing key
// replaces the record in place and keeps its original position.
type GameStore struct {
	mu    sync.RWMutex
	items map[domain.GameKey]domain.Game
	order []domain.GameKey
}

func NewGameStore() *GameStore {
	return &GameStore{items: make(map[domain.GameKey]domain.Game)}
}

// Seed installs the development fixtures: two games for Krtek, one for Sova.
func (s *GameStore) Seed() {
	ctx := context.Background()
	_ = s.Put(ctx, &domain.Game{UserID: "Krtek", GameID: "GAME-1", Details: "{}"})
	_ = s.Put(ctx, &domain.Game{UserID: "Krtek", GameID: "GAME-2", Details: "{}"})
	_ = s.Put(ctx, &domain.Game{UserID: "Sova", GameID: "GAME-3", Details: "{}"})
}

// List returns all games owned by userID in insertion order.
func (s *GameStore) List(_ context.Context, userID string) ([]domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var games []domain.Game
	for _, k := range s.order {
		if k.UserID == userID {
			games = append(games, s.items[k])
		}
	}
	return games, nil
}

// Get is owner-scoped: a game that exists under a different owner is
// indistinguishable from one that does not exist at all.
func (s *GameStore) Get(_ context.Context, userID, gameID string) (*domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.items[domain.GameKey{UserID: userID, GameID: gameID}]
	if !ok {
		return nil, fmt.Errorf("game not found: %w", domain.ErrNotFound)
	}
	return &g, nil
}

func (s *GameStore) Put(_ context.Context, g *domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := g.Key()
	if _, exists := s.items[k]; !exists {
		s.order = append(s.order, k)
	}
	s.items[k] = *g
	return nil
}

// Delete removes the game if present and owned by userID; otherwise it
// is a silent no-op.
func (s *GameStore) Delete(_ context.Context, userID, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := domain.GameKey{UserID: userID, GameID: gameID}
	if _, ok := s.items[k]; !ok {
		return nil
	}
	delete(s.items, k)
	for i, o := range s.order {
		if o == k {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
