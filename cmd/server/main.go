package main

import (
	"arena-route-planner/internal/adapters/repositories"
	"arena-route-planner/internal/api"
	"arena-route-planner/internal/config"
	"arena-route-planner/internal/domain"
	"arena-route-planner/internal/platform/db"
	"arena-route-planner/internal/ports"
	"arena-route-planner/internal/services"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires the configured layout store behind the repository port, creates the
// editing session and starts the HTTP server.
func main() {
	if !config.LoadDotEnv() {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeRepo()

	model, err := domain.NewRouteModel(cfg.Arena)
	if err != nil {
		log.Fatal(err)
	}
	session, err := services.NewSession(model)
	if err != nil {
		log.Fatal(err)
	}

	// Optionally seed a layout and open it as the starting route.
	if cfg.SeedPath != "" {
		if err := seed(session, repo, cfg.SeedPath, cfg.SeedName); err != nil {
			log.Fatal(err)
		}
	}

	router := api.NewRouter(api.RouterConfig{
		Session:   session,
		Repo:      repo,
		StoreName: cfg.LayoutStore,
		HitRadius: cfg.HitRadius,
	})

	log.Printf("Server listening addr=:%s store=%s arena=%dx%d speed=%v", cfg.Port, cfg.LayoutStore, cfg.Arena.Width, cfg.Arena.Height, cfg.Arena.Speed)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openRepository builds the layout store selected by LAYOUT_STORE.
// The returned func releases its connections.
func openRepository(cfg *config.Config) (ports.LayoutRepository, func(), error) {
	noop := func() {}

	switch cfg.LayoutStore {
	case config.StoreMemory:
		return repositories.NewMemoryLayoutRepository(), noop, nil

	case config.StoreFile:
		repo, err := repositories.NewFileLayoutRepository(cfg.LayoutDir)
		if err != nil {
			return nil, nil, err
		}
		return repo, noop, nil

	case config.StoreSqlite:
		sqlDB, err := db.OpenSqlite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitSchema(sqlDB); err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		return repositories.NewSqliteLayoutRepository(sqlDB), func() { sqlDB.Close() }, nil

	case config.StorePostgres:
		sqlDB, err := db.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitPostgresSchema(context.Background(), sqlDB); err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		return repositories.NewSQLLayoutRepository(sqlDB), func() { sqlDB.Close() }, nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("open redis %q: %w", cfg.RedisAddr, err)
		}
		return repositories.NewRedisLayoutRepository(client), func() { client.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown layout store %q", cfg.LayoutStore)
}

func seed(session *services.Session, repo ports.LayoutRepository, path, name string) error {
	ctx := context.Background()

	rec, err := repositories.SeedFromJSON(ctx, repo, path, name)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := services.LoadLayout(ctx, session, repo, rec.Name); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log.Printf("Seeded layout name=%s id=%s", rec.Name, rec.ID)
	return nil
}
