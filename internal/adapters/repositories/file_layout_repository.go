package repositories

import (
	"arena-route-planner/internal/domain"
	"arena-route-planner/internal/layout"
	"arena-route-planner/internal/platform/obs"
	"arena-route-planner/internal/ports"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const layoutExt = ".json"

// Directory-backed implementation of the LayoutRepository port.
// Each layout is a JSON document named <name>.json; the name doubles as
// the record ID.
type FileLayoutRepository struct{ Dir string }

func NewFileLayoutRepository(dir string) (*FileLayoutRepository, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("file layout repository: dir must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file layout repository: create %q: %w: %w", dir, domain.ErrIOFailure, err)
	}
	return &FileLayoutRepository{Dir: dir}, nil
}

func (f *FileLayoutRepository) path(name string) string {
	return filepath.Join(f.Dir, name+layoutExt)
}

func (f *FileLayoutRepository) SaveLayout(ctx context.Context, name string, m *domain.RouteModel) (_ ports.LayoutRecord, err error) {
	defer obs.Time(ctx, "layout.file.Save", "name", name)(&err)

	name, err = normalizeName(name)
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("file layout repository: save: %w", err)
	}

	p := f.path(name)
	if err := layout.SaveFile(p, m); err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("file layout repository: %w", err)
	}

	info, err := os.Stat(p)
	if err != nil {
		return ports.LayoutRecord{}, fmt.Errorf("file layout repository: stat %q: %w: %w", p, domain.ErrIOFailure, err)
	}

	return ports.LayoutRecord{ID: name, Name: name, UpdatedAt: info.ModTime().UTC()}, nil
}

func (f *FileLayoutRepository) LoadLayout(ctx context.Context, name string) (_ *domain.RouteModel, err error) {
	defer obs.Time(ctx, "layout.file.Load", "name", name)(&err)

	name, err = normalizeName(name)
	if err != nil {
		return nil, fmt.Errorf("file layout repository: load: %w", err)
	}

	m, err := layout.LoadFile(f.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("file layout repository: load %q: %w", name, domain.ErrLayoutNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("file layout repository: %w", err)
	}
	return m, nil
}

func (f *FileLayoutRepository) ListLayouts(ctx context.Context) ([]ports.LayoutRecord, error) {
	entries, err := os.ReadDir(f.Dir)
	if err != nil {
		return nil, fmt.Errorf("file layout repository: list %q: %w: %w", f.Dir, domain.ErrIOFailure, err)
	}

	// ReadDir returns entries sorted by file name.
	out := make([]ports.LayoutRecord, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), layoutExt) || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("file layout repository: stat %q: %w: %w", e.Name(), domain.ErrIOFailure, err)
		}
		name := strings.TrimSuffix(e.Name(), layoutExt)
		out = append(out, ports.LayoutRecord{ID: name, Name: name, UpdatedAt: info.ModTime().UTC()})
	}

	return out, nil
}
