package main

import (
	"context"
	"errors"
	"log"

	"github.com/specforge-io/specforge-backend/config"
	"github.com/specforge-io/specforge-backend/internal/auth"
	"github.com/specforge-io/specforge-backend/internal/bootstrap"
	"github.com/specforge-io/specforge-backend/internal/llm"
	"github.com/specforge-io/specforge-backend/internal/results"
)

const serviceName = "specforge-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	deps := bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		GenOptions: llm.Options{
			Model:       cfg.Generation.Model,
			Temperature: float32(cfg.Generation.Temperature),
			MaxTokens:   int32(cfg.Generation.MaxTokens),
		},
		GenTimeout: cfg.Generation.Timeout,
	}

	// Collaborators are optional at startup: a missing one degrades the
	// matching routes instead of blocking the whole service.
	if db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()}); err != nil {
		log.Printf("postgres unavailable, document persistence disabled: %v", err)
	} else {
		deps.DB = db
		defer db.Close()
	}

	if rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis); err != nil {
		log.Printf("redis unavailable, result cache disabled: %v", err)
	} else {
		deps.Redis = rdb
		defer rdb.Close()

		sweeper := results.NewSweeper(results.NewStore(rdb))
		sweeper.Start()
		defer sweeper.Stop()
	}

	if authClient, err := auth.InitializeFirebase(&cfg.Firebase); err != nil {
		log.Printf("firebase unavailable, authenticated routes disabled: %v", err)
	} else {
		deps.AuthClient = authClient
	}

	if gen, err := llm.NewGeminiClient(ctx, cfg.Generation.APIKey, cfg.Generation.Model); err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			log.Println("GEMINI_API_KEY not set, document generation disabled")
		} else {
			log.Printf("gemini unavailable, document generation disabled: %v", err)
		}
	} else {
		deps.Generator = gen
	}

	r := bootstrap.BuildRouter(deps)

	log.Printf("%s v%s listening on :%s", serviceName, cfg.App.Version, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
