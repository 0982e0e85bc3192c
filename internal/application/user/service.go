package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/promo-api-nosql/internal/domain"
)

type Service interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, tokenUserID string, u domain.User) (*domain.User, error)
	GetOrCreate(ctx context.Context, userID string, attrs map[string]string) (*domain.User, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}

type service struct {
	repo userStore
}

func NewService(repo userStore) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.Get(ctx, userID)
}

// Update overwrites the caller's own record. The id embedded in the
// body must equal the token's resolved user id; a mismatch is rejected
// before the store is touched (spoofing guard).
func (s *service) Update(ctx context.Context, tokenUserID string, u domain.User) (*domain.User, error) {
	if u.UserID != tokenUserID {
		return nil, fmt.Errorf("user id %q does not match the token identity: %w", u.UserID, domain.ErrBadRequest)
	}
	if err := s.repo.Put(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetOrCreate returns the user, creating it on first login. attrs seeds
// the attribute bag only when the record is new; an existing user's
// attributes are never touched here.
func (s *service) GetOrCreate(ctx context.Context, userID string, attrs map[string]string) (*domain.User, error) {
	u, err := s.repo.Get(ctx, userID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if attrs == nil {
		attrs = map[string]string{}
	}
	created := &domain.User{UserID: userID, Attributes: attrs}
	if err := s.repo.Put(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}
