package repositories

import (
	"arena-route-planner/internal/domain"
	"arena-route-planner/internal/layout"
	"arena-route-planner/internal/platform/obs"
	"arena-route-planner/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLite-backed implementation of the LayoutRepository port.
type SqliteLayoutRepository struct{ DB *sql.DB }

func NewSqliteLayoutRepository(db *sql.DB) *SqliteLayoutRepository {
	return &SqliteLayoutRepository{DB: db}
}

// Store the layout document, keeping the existing layout_id on overwrite.
func (s *SqliteLayoutRepository) SaveLayout(ctx context.Context, name string, m *domain.RouteModel) (_ ports.LayoutRecord, err error) {
	defer obs.Time(ctx, "layout.sqlite.Save", "name", name)(&err)

	if s.DB == nil {
		return ports.LayoutRecord{}, errors.New("sqlite layout repository: DB is nil")
	}

	name, err = normalizeName(name)
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("save layout: %w", err)
	}

	doc, err := layout.Marshal(m)
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("save layout %q: %w", name, err)
	}

	now := time.Now().UTC()
	query := `
	INSERT INTO layouts (
		layout_id,
		name,
		document,
		updated_at_ns
	)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(name) DO UPDATE
	SET document = excluded.document,
		updated_at_ns = excluded.updated_at_ns
	RETURNING layout_id;
	`

	var id string
	if err := s.DB.QueryRowContext(ctx, query, uuid.NewString(), name, string(doc), now.UnixNano()).Scan(&id); err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("save layout %q: upsert layouts table: %w: %w", name, domain.ErrIOFailure, err)
	}

	return ports.LayoutRecord{ID: id, Name: name, UpdatedAt: now}, nil
}

// Load and validate the stored layout document.
func (s *SqliteLayoutRepository) LoadLayout(ctx context.Context, name string) (_ *domain.RouteModel, err error) {
	defer obs.Time(ctx, "layout.sqlite.Load", "name", name)(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite layout repository: DB is nil")
	}

	query := `
	SELECT document
	FROM layouts
	WHERE name = ?;
	`

	var doc string
	err = s.DB.QueryRowContext(ctx, query, name).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load layout %q: %w", name, domain.ErrLayoutNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load layout %q: query layouts table: %w: %w", name, domain.ErrIOFailure, err)
	}

	m, err := layout.Deserialize([]byte(doc))
	if err != nil {
		return nil, fmt.Errorf("load layout %q: %w", name, err)
	}
	return m, nil
}

// Return all stored layouts ordered by name.
func (s *SqliteLayoutRepository) ListLayouts(ctx context.Context) ([]ports.LayoutRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite layout repository: DB is nil")
	}

	query := `
	SELECT
		layout_id,
		name,
		updated_at_ns
	FROM layouts
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list layouts: query layouts table: %w: %w", domain.ErrIOFailure, err)
	}
	defer rows.Close()

	records := make([]ports.LayoutRecord, 0, 16)
	for rows.Next() {
		var rec ports.LayoutRecord
		var updatedAtNs int64
		if err := rows.Scan(&rec.ID, &rec.Name, &updatedAtNs); err != nil {
			return nil, fmt.Errorf("list layouts: scan row: %w: %w", domain.ErrIOFailure, err)
		}
		rec.UpdatedAt = time.Unix(0, updatedAtNs).UTC()
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list layouts: row iteration: %w: %w", domain.ErrIOFailure, err)
	}

	return records, nil
}
