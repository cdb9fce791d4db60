package repositories

import (
	"arena-route-planner/internal/domain"
	"arena-route-planner/internal/layout"
	"arena-route-planner/internal/ports"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	record ports.LayoutRecord
	doc    []byte
}

// In-process implementation of the LayoutRepository port.
// Layouts are kept as encoded documents so loads validate exactly like
// the persistent stores.
type MemoryLayoutRepository struct {
	mu      sync.Mutex
	layouts map[string]memoryEntry
}

func NewMemoryLayoutRepository() *MemoryLayoutRepository {
	return &MemoryLayoutRepository{layouts: make(map[string]memoryEntry)}
}

func (r *MemoryLayoutRepository) SaveLayout(ctx context.Context, name string, m *domain.RouteModel) (ports.LayoutRecord, error) {
	name, err := normalizeName(name)
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("memory layout repository: save: %w", err)
	}

	doc, err := layout.Marshal(m)
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("memory layout repository: save %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := ports.LayoutRecord{ID: uuid.NewString(), Name: name, UpdatedAt: time.Now().UTC()}
	if prev, ok := r.layouts[name]; ok {
		rec.ID = prev.record.ID
	}
	r.layouts[name] = memoryEntry{record: rec, doc: doc}

	return rec, nil
}

func (r *MemoryLayoutRepository) LoadLayout(ctx context.Context, name string) (*domain.RouteModel, error) {
	r.mu.Lock()
	entry, ok := r.layouts[strings.TrimSpace(name)]
	r.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("memory layout repository: load %q: %w", name, domain.ErrLayoutNotFound)
	}

	m, err := layout.Deserialize(entry.doc)
	if err != nil {
		return nil, fmt.Errorf("memory layout repository: load %q: %w", name, err)
	}
	return m, nil
}

func (r *MemoryLayoutRepository) ListLayouts(ctx context.Context) ([]ports.LayoutRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]ports.LayoutRecord, 0, len(r.layouts))
	for _, e := range r.layouts {
		out = append(out, e.record)
	}
	slices.SortFunc(out, func(a, b ports.LayoutRecord) int { return strings.Compare(a.Name, b.Name) })

	return out, nil
}
