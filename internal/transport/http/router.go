package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/promo-api-nosql/internal/application/auth"
	"github.com/promo-api-nosql/internal/application/code"
	"github.com/promo-api-nosql/internal/application/game"
	"github.com/promo-api-nosql/internal/application/user"
	"github.com/promo-api-nosql/internal/config"
	"github.com/promo-api-nosql/internal/transport/http/handler"
	appmiddleware "github.com/promo-api-nosql/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", appmiddleware.TokenHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.TokenProvider)

	// 5 requests/second, burst of 10 — applied to the SSO endpoints.
	loginRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	gameSvc := game.NewService(deps.Games)
	codeSvc := code.NewService(deps.Codes, deps.Games)
	userSvc := user.NewService(deps.Users)

	sso := make([]auth.SSOProvider, 0, len(deps.SSOProviders))
	for _, p := range deps.SSOProviders {
		sso = append(sso, p)
	}
	authSvc := auth.NewService(deps.TokenProvider, userSvc, sso...)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	gameH := handler.NewGameHandler(gameSvc)
	codeH := handler.NewCodeHandler(codeSvc)
	userH := handler.NewUserHandler(userSvc)

	// ── Public routes (no auth) ──────────────────────────────────────────
	r.Get("/v1/health-check/{action}", healthH.Ping)
	r.With(loginRL.Limit).Get("/login/{provider}", authH.Login)
	r.With(loginRL.Limit).Get("/login/{provider}/callback", authH.Callback)

	// ── Authenticated routes ─────────────────────────────────────────────
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authMw)

		r.Get("/games/list", gameH.List)
		r.Post("/games", gameH.Create)
		r.Put("/games", gameH.Update)
		r.Get("/games/{gameId}", gameH.Get)
		r.Delete("/games/{gameId}", gameH.Delete)

		r.Get("/games/{gameId}/codes/list", codeH.List)
		r.Post("/games/{gameId}/codes", codeH.Create)
		r.Put("/games/{gameId}/codes", codeH.Update)
		r.Get("/games/{gameId}/codes/{codeId}", codeH.Get)
		r.Delete("/games/{gameId}/codes/{codeId}", codeH.Delete)

		r.Get("/user", userH.Get)
		r.Put("/user", userH.Update)
	})

	return r
}
