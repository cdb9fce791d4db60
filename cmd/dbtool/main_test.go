package main

import (
	"arena-route-planner/internal/adapters/repositories"
	"arena-route-planner/internal/domain"
	"arena-route-planner/internal/layout"
	"context"
	"path/filepath"
	"testing"
)

func TestParseFlagsIgnoresUnprefixedEnv(t *testing.T) {
	t.Setenv("NAME", "stray")
	t.Setenv("IMPORT", "stray.json")
	t.Setenv("LIST", "true")
	t.Setenv("DBTOOL_NAME", "")
	t.Setenv("DBTOOL_IMPORT", "")
	t.Setenv("DBTOOL_LIST", "")

	opts, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.name != "" || opts.importPath != "" || opts.list {
		t.Fatalf("generic env leaked into flags: %+v", opts)
	}
}

func TestParseFlagsReadsPrefixedEnvAndConnectionDefaults(t *testing.T) {
	t.Setenv("DBTOOL_NAME", "warehouse")
	t.Setenv("DBTOOL_LIST", "true")
	t.Setenv("DATABASE_URL", "postgres://localhost/layouts")
	t.Setenv("DB_PATH", "/tmp/layouts.db")

	opts, err := parseFlags([]string{"-import", "arena.json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.name != "warehouse" || !opts.list || opts.importPath != "arena.json" {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.databaseURL != "postgres://localhost/layouts" || opts.dbPath != "/tmp/layouts.db" {
		t.Fatalf("connection defaults not applied: %+v", opts)
	}
}

func TestExportWritesStoredLayout(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryLayoutRepository()

	m, err := domain.NewRouteModel(domain.DefaultArenaConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.AddWaypoint(5, 5)
	if _, err := repo.SaveLayout(ctx, "arena", m); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := export(ctx, repo, "arena", ""); err == nil {
		t.Fatal("expected error without -out")
	}

	out := filepath.Join(t.TempDir(), "arena.json")
	if err := export(ctx, repo, "arena", out); err != nil {
		t.Fatalf("export: %v", err)
	}
	got, err := layout.LoadFile(out)
	if err != nil {
		t.Fatalf("load exported file: %v", err)
	}
	if wps := got.Waypoints(); len(wps) != 1 || wps[0] != (domain.Point{X: 5, Y: 5}) {
		t.Fatalf("waypoints = %v, want [{5 5}]", wps)
	}
}
