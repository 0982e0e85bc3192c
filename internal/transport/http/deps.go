package http

import (
	"context"

	"github.com/promo-api-nosql/internal/domain"
	jwtinfra "github.com/promo-api-nosql/internal/infrastructure/jwt"
	"github.com/promo-api-nosql/internal/infrastructure/oauth"
)

// GameStore is the minimal interface the router requires from a game store.
// Lookups are owner-scoped: Get must behave identically for a missing
// game and for a game held by another user.
type GameStore interface {
	List(ctx context.Context, userID string) ([]domain.Game, error)
	Get(ctx context.Context, userID, gameID string) (*domain.Game, error)
	Put(ctx context.Context, g *domain.Game) error
	Delete(ctx context.Context, userID, gameID string) error
}

// CodeStore is the minimal interface the router requires from a code store.
type CodeStore interface {
	List(ctx context.Context, gameID string) ([]domain.Code, error)
	Get(ctx context.Context, gameID, codeID string) (*domain.Code, error)
	Put(ctx context.Context, c *domain.Code) error
	Delete(ctx context.Context, gameID, codeID string) error
}

// UserStore is the minimal interface the router requires from a user store.
type UserStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}

// Deps holds all infrastructure dependencies for the router. Stores are
// interfaces so main can wire either the in-memory or the DynamoDB
// implementations depending on APP_ENV.
type Deps struct {
	Games         GameStore
	Codes         CodeStore
	Users         UserStore
	TokenProvider *jwtinfra.Provider
	SSOProviders  []*oauth.Provider
}
