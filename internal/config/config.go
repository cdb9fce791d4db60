package config

import (
	"arena-route-planner/internal/domain"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Layout store backends selectable with LAYOUT_STORE.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreSqlite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	Port string

	LayoutStore string
	LayoutDir   string
	DBPath      string
	DatabaseURL string
	RedisAddr   string
	RedisDB     int

	// Layout stored under SeedName on startup when set.
	SeedPath string
	SeedName string

	Arena     domain.ArenaConfig
	HitRadius float64
}

// LoadDotEnv loads a .env file when present. A missing file is not an error.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the server configuration from the environment.
// Malformed numbers and an invalid arena are reported rather than
// silently replaced by defaults.
func Load() (*Config, error) {
	defaults := domain.DefaultArenaConfig()
	var errs []error

	cfg := &Config{
		Port:        Get("PORT", "8080"),
		LayoutStore: strings.ToLower(Get("LAYOUT_STORE", StoreFile)),
		LayoutDir:   Get("LAYOUT_DIR", "data/layouts"),
		DBPath:      Get("DB_PATH", "data/layouts.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   Get("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getInt("REDIS_DB", 0, &errs),
		SeedPath:    os.Getenv("SEED_PATH"),
		SeedName:    os.Getenv("SEED_NAME"),
		Arena: domain.ArenaConfig{
			Width:            getInt("ARENA_WIDTH", defaults.Width, &errs),
			Height:           getInt("ARENA_HEIGHT", defaults.Height, &errs),
			Speed:            getFloat("ROBOT_SPEED", defaults.Speed, &errs),
			ActiveMultiplier: getFloat("ACTIVE_MULTIPLIER", defaults.ActiveMultiplier, &errs),
		},
		HitRadius: getFloat("HIT_RADIUS", domain.DefaultHitRadius, &errs),
	}

	switch cfg.LayoutStore {
	case StoreMemory, StoreFile, StoreSqlite, StoreRedis:
	case StorePostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when LAYOUT_STORE=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("LAYOUT_STORE %q is not one of memory, file, sqlite, postgres, redis", cfg.LayoutStore))
	}

	if !(cfg.HitRadius > 0) {
		errs = append(errs, fmt.Errorf("HIT_RADIUS must be positive, got %v", cfg.HitRadius))
	}
	if err := cfg.Arena.Validate(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func getInt(key string, fallback int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return i
}

func getFloat(key string, fallback float64, errs *[]error) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return f
}
