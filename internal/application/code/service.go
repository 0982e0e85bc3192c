package code

import (
	"context"
	"errors"
	"fmt"

	"github.com/promo-api-nosql/internal/domain"
)

type Service interface {
	List(ctx context.Context, userID, gameID string) ([]domain.Code, error)
	Get(ctx context.Context, userID, gameID, codeID string) (*domain.Code, error)
	Create(ctx context.Context, userID string, c domain.Code) (*domain.Code, error)
	Update(ctx context.Context, userID string, c domain.Code) (*domain.Code, error)
	Delete(ctx context.Context, userID, gameID, codeID string) error
}

type codeStore interface {
	List(ctx context.Context, gameID string) ([]domain.Code, error)
	Get(ctx context.Context, gameID, codeID string) (*domain.Code, error)
	Put(ctx context.Context, c *domain.Code) error
	Delete(ctx context.Context, gameID, codeID string) error
}

type gameStore interface {
	Get(ctx context.Context, userID, gameID string) (*domain.Game, error)
}

type service struct {
	repo  codeStore
	games gameStore
}

func NewService(repo codeStore, games gameStore) Service {
	return &service{repo: repo, games: games}
}

// authorize resolves (userID, gameID) through the owner-scoped game
// lookup. A miss means the game either does not exist or belongs to
// someone else; both are reported as forbidden, and the caller must not
// touch the code store afterwards.
func (s *service) authorize(ctx context.Context, userID, gameID string) error {
	_, err := s.games.Get(ctx, userID, gameID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("game %s does not belong to %s: %w", gameID, userID, domain.ErrForbidden)
		}
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context, userID, gameID string) ([]domain.Code, error) {
	if err := s.authorize(ctx, userID, gameID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, gameID)
}

func (s *service) Get(ctx context.Context, userID, gameID, codeID string) (*domain.Code, error) {
	if err := s.authorize(ctx, userID, gameID); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, gameID, codeID)
}

// Create persists a new code. A code that already exists under the same
// (gameId, codeId) is a conflict and the save is never attempted.
func (s *service) Create(ctx context.Context, userID string, c domain.Code) (*domain.Code, error) {
	if err := s.authorize(ctx, userID, c.GameID); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, c.GameID, c.CodeID); err == nil {
		return nil, fmt.Errorf("code %s already exists: %w", c.CodeID, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if err := s.repo.Put(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update overwrites the payload of an existing code. Updating a code
// that does not exist is a bad request and the save is never attempted.
func (s *service) Update(ctx context.Context, userID string, c domain.Code) (*domain.Code, error) {
	if err := s.authorize(ctx, userID, c.GameID); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, c.GameID, c.CodeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("code %s does not exist: %w", c.CodeID, domain.ErrBadRequest)
		}
		return nil, err
	}
	if err := s.repo.Put(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *service) Delete(ctx context.Context, userID, gameID, codeID string) error {
	if err := s.authorize(ctx, userID, gameID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, gameID, codeID)
}
