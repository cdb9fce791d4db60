package services

import (
	"arena-route-planner/internal/domain"
	"arena-route-planner/internal/platform/obs"
	"arena-route-planner/internal/ports"
	"context"
	"errors"
	"fmt"
	"strings"
)

// SaveLayout stores the session's current model under name.
// The session is held for the duration of the write, as a save is one
// blocking step of the editing loop.
func SaveLayout(
	ctx context.Context,
	session *Session,
	repo ports.LayoutRepository,
	name string,
) (rec ports.LayoutRecord, err error) {
	defer obs.Time(ctx, "layout.save", "name", name)(&err)

	name = strings.TrimSpace(name)
	if name == "" {
		return ports.LayoutRecord{}, fmt.Errorf("save layout: name must be non-empty: %w", domain.ErrInvalidLayoutName)
	}
	if repo == nil {
		return ports.LayoutRecord{}, errors.New("save layout: repository must be non-nil")
	}

	err = session.Do(func(m *domain.RouteModel) error {
		var e error
		rec, e = repo.SaveLayout(ctx, name, m)
		return e
	})
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("save layout %q: %w", name, err)
	}

	return rec, nil
}

// LoadLayout replaces the session's model with the layout stored under name.
// On any failure the session keeps its current model.
func LoadLayout(
	ctx context.Context,
	session *Session,
	repo ports.LayoutRepository,
	name string,
) (err error) {
	defer obs.Time(ctx, "layout.load", "name", name)(&err)

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("load layout: name must be non-empty: %w", domain.ErrInvalidLayoutName)
	}
	if repo == nil {
		return errors.New("load layout: repository must be non-nil")
	}

	m, err := repo.LoadLayout(ctx, name)
	if err != nil {
		return fmt.Errorf("load layout %q: %w", name, err)
	}

	if err := session.Replace(m); err != nil {
		return fmt.Errorf("load layout %q: %w", name, err)
	}
	return nil
}
