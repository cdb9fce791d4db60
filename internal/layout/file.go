package layout

import (
	"arena-route-planner/internal/domain"
	"fmt"
	"os"
	"path/filepath"
)

// SaveFile writes the layout document to path. The document is written to a
// temporary file in the same directory and renamed into place, so a failed
// save never leaves a truncated layout behind.
func SaveFile(path string, m *domain.RouteModel) error {
	b, err := Marshal(m)
	if err != nil {
		return fmt.Errorf("save layout file %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".layout-*.json")
	if err != nil {
		return fmt.Errorf("save layout file %q: create temp: %w: %w", path, domain.ErrIOFailure, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(b, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("save layout file %q: write: %w: %w", path, domain.ErrIOFailure, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save layout file %q: close: %w: %w", path, domain.ErrIOFailure, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save layout file %q: rename: %w: %w", path, domain.ErrIOFailure, err)
	}

	return nil
}

// LoadFile reads and validates the layout document at path.
func LoadFile(path string) (*domain.RouteModel, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load layout file %q: %w: %w", path, domain.ErrIOFailure, err)
	}

	m, err := Deserialize(b)
	if err != nil {
		return nil, fmt.Errorf("load layout file %q: %w", path, err)
	}
	return m, nil
}
