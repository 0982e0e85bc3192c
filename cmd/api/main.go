package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/promo-api-nosql/internal/config"
	"github.com/promo-api-nosql/internal/infrastructure/dynamo"
	jwtinfra "github.com/promo-api-nosql/internal/infrastructure/jwt"
	"github.com/promo-api-nosql/internal/infrastructure/memory"
	"github.com/promo-api-nosql/internal/infrastructure/oauth"
	transporthttp "github.com/promo-api-nosql/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	tokenProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatalf("token provider: %v", err)
	}

	deps := &transporthttp.Deps{
		TokenProvider: tokenProvider,
	}

	// Store backend is chosen once at startup: in-memory maps for
	// development, DynamoDB everywhere else.
	if cfg.AppEnv == "development" {
		games := memory.NewGameStore()
		games.Seed()
		deps.Games = games
		deps.Codes = memory.NewCodeStore()
		deps.Users = memory.NewUserStore()
		log.Println("Using in-memory stores (development)")
	} else {
		dynamoClient := dynamo.NewClient(cfg)
		dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)
		deps.Games = dynamo.NewGameRepo(dynamoClient, cfg.DynamoTables.Games)
		deps.Codes = dynamo.NewCodeRepo(dynamoClient, cfg.DynamoTables.Codes)
		deps.Users = dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users)
	}

	if cfg.GitHubClientID != "" {
		deps.SSOProviders = append(deps.SSOProviders, oauth.NewGitHub(cfg))
	}
	if cfg.FacebookClientID != "" {
		deps.SSOProviders = append(deps.SSOProviders, oauth.NewFacebook(cfg))
	}
	if len(deps.SSOProviders) == 0 {
		log.Println("WARN: no SSO providers configured, /login routes will reject all requests")
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
