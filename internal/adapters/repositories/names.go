package repositories

import (
	"arena-route-planner/internal/domain"
	"fmt"
	"strings"
)

// normalizeName trims a layout name and rejects names that cannot be used
// as a file name or key.
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("layout name must not be empty: %w", domain.ErrInvalidLayoutName)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("layout name %q must not contain path separators: %w", name, domain.ErrInvalidLayoutName)
	}
	return name, nil
}
