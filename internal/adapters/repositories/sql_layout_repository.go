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

// SQLLayoutRepository is a Postgres-backed LayoutRepository.
// Documents are stored as JSONB.
type SQLLayoutRepository struct {
	DB *sql.DB
}

func NewSQLLayoutRepository(db *sql.DB) *SQLLayoutRepository {
	return &SQLLayoutRepository{DB: db}
}

func (s *SQLLayoutRepository) SaveLayout(
	ctx context.Context,
	name string,
	m *domain.RouteModel,
) (_ ports.LayoutRecord, err error) {
	defer obs.Time(ctx, "layout.sql.Save", "name", name)(&err)

	if s.DB == nil {
		return ports.LayoutRecord{}, errors.New("sql layout repository: db is nil")
	}

	name, err = normalizeName(name)
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("save layout: %w", err)
	}

	doc, err := layout.Marshal(m)
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("save layout %q: %w", name, err)
	}

	q := `
	INSERT INTO layouts (layout_id, name, document, updated_at)
	VALUES ($1, $2, $3::jsonb, $4)
	ON CONFLICT (name) DO UPDATE
	SET document = EXCLUDED.document,
		updated_at = EXCLUDED.updated_at
	RETURNING layout_id::text, updated_at;
	`

	rec := ports.LayoutRecord{Name: name}
	err = s.DB.QueryRowContext(ctx, q, uuid.New(), name, string(doc), time.Now().UTC()).Scan(&rec.ID, &rec.UpdatedAt)
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("save layout %q: upsert layouts table: %w: %w", name, domain.ErrIOFailure, err)
	}

	return rec, nil
}

func (s *SQLLayoutRepository) LoadLayout(
	ctx context.Context,
	name string,
) (_ *domain.RouteModel, err error) {
	defer obs.Time(ctx, "layout.sql.Load", "name", name)(&err)

	if s.DB == nil {
		return nil, errors.New("sql layout repository: db is nil")
	}

	q := `
	SELECT document::text
	FROM layouts
	WHERE name = $1;
	`

	var doc string
	err = s.DB.QueryRowContext(ctx, q, name).Scan(&doc)
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

func (s *SQLLayoutRepository) ListLayouts(ctx context.Context) (_ []ports.LayoutRecord, err error) {
	defer obs.Time(ctx, "layout.sql.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql layout repository: db is nil")
	}

	q := `
	SELECT layout_id::text, name, updated_at
	FROM layouts
	ORDER BY name;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list layouts: query layouts table: %w: %w", domain.ErrIOFailure, err)
	}
	defer rows.Close()

	out := make([]ports.LayoutRecord, 0, 16)
	for rows.Next() {
		var rec ports.LayoutRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list layouts: scan rows: %w: %w", domain.ErrIOFailure, err)
		}
		rec.UpdatedAt = rec.UpdatedAt.UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list layouts: row iteration: %w: %w", domain.ErrIOFailure, err)
	}

	return out, nil
}
