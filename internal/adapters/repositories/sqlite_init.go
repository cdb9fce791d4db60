package repositories

import (
	"arena-route-planner/internal/layout"
	"arena-route-planner/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLayoutsQuery := `
	CREATE TABLE IF NOT EXISTS layouts (
		layout_id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		document TEXT NOT NULL,
		updated_at_ns INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_layouts_updated_at
	ON layouts(updated_at_ns);
	`

	statements := []string{
		createLayoutsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Store the layout file at jsonPath in repo. When name is empty the file's
// base name without extension is used.
func SeedFromJSON(ctx context.Context, repo ports.LayoutRepository, jsonPath string, name string) (ports.LayoutRecord, error) {
	m, err := layout.LoadFile(jsonPath)
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("seed layout: %w", err)
	}

	if strings.TrimSpace(name) == "" {
		name = strings.TrimSuffix(filepath.Base(jsonPath), filepath.Ext(jsonPath))
	}

	rec, err := repo.SaveLayout(ctx, name, m)
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("seed layout %q: %w", name, err)
	}

	return rec, nil
}
