package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/promo-api-nosql/internal/domain"
)

// UserStore keeps users in a mutex-guarded map keyed by user id.
type UserStore struct {
	mu    sync.RWMutex
	items map[string]domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{items: make(map[string]domain.User)}
}

func (s *UserStore) Get(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.items[userID]
	if !ok {
		return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
	}
	return &u, nil
}

func (s *UserStore) Put(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[u.UserID] = *u
	return nil
}
