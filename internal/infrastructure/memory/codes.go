package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/promo-api-nosql/internal/domain"
)

// CodeStore keeps codes in an insertion-ordered map keyed by the
// composite (gameId, codeId) identity.
type CodeStore struct {
	mu    sync.RWMutex
	items map[domain.CodeKey]domain.Code
	order []domain.CodeKey
}

func NewCodeStore() *CodeStore {
	return &CodeStore{items: make(map[domain.CodeKey]domain.Code)}
}

// List returns all codes belonging to gameID in insertion order.
func (s *CodeStore) List(_ context.Context, gameID string) ([]domain.Code, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var codes []domain.Code
	for _, k := range s.order {
		if k.GameID == gameID {
			codes = append(codes, s.items[k])
		}
	}
	return codes, nil
}

func (s *CodeStore) Get(_ context.Context, gameID, codeID string) (*domain.Code, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.items[domain.CodeKey{GameID: gameID, CodeID: codeID}]
	if !ok {
		return nil, fmt.Errorf("code not found: %w", domain.ErrNotFound)
	}
	return &c, nil
}

// Put upserts by composite identity. Existence policy (create vs update)
// is the caller's job; the store always overwrites.
func (s *CodeStore) Put(_ context.Context, c *domain.Code) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := c.Key()
	if _, exists := s.items[k]; !exists {
		s.order = append(s.order, k)
	}
	s.items[k] = *c
	return nil
}

func (s *CodeStore) Delete(_ context.Context, gameID, codeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := domain.CodeKey{GameID: gameID, CodeID: codeID}
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
