package ports

import (
	"arena-route-planner/internal/domain"
	"context"
	"time"
)

// Stored layout metadata, without the document itself.
type LayoutRecord struct {
	ID        string
	Name      string
	UpdatedAt time.Time
}

// Port: a boundary for persisting named layouts.
//
// Implementations store the JSON layout document and must return
// domain.ErrLayoutNotFound for unknown names and wrap storage failures
// with domain.ErrIOFailure.
type LayoutRepository interface {
	// Store the model under name, replacing any layout with the same name.
	SaveLayout(ctx context.Context, name string, model *domain.RouteModel) (LayoutRecord, error)
	// Load and validate the layout stored under name.
	LoadLayout(ctx context.Context, name string) (*domain.RouteModel, error)
	// List stored layouts ordered by name.
	ListLayouts(ctx context.Context) ([]LayoutRecord, error)
}
