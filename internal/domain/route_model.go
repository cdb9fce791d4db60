package domain

import (
	"fmt"
	"slices"
)

// Radius in pixels within which a click selects a waypoint.
const DefaultHitRadius = 8.0

// Route aggregate holding the arena config, the waypoint sequence, the
// active marks and the landmark/obstacle lists.
//
// Waypoints are identified only by their position in the sequence and are
// append-only. A RouteModel is not safe for concurrent use; the owner
// serializes access.
type RouteModel struct {
	config    ArenaConfig
	waypoints []Point
	active    map[int]struct{}
	landmarks []Landmark
	obstacles []Obstacle
}

func NewRouteModel(cfg ArenaConfig) (*RouteModel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new route model: %w", err)
	}

	return &RouteModel{
		config: cfg,
		active: make(map[int]struct{}),
	}, nil
}

// RestoreRouteModel rebuilds a model from persisted parts.
// Every part is validated the same way the mutating operations validate it,
// and active indices must refer to existing waypoints.
func RestoreRouteModel(
	cfg ArenaConfig,
	waypoints []Point,
	active []int,
	landmarks []Landmark,
	obstacles []Obstacle,
) (*RouteModel, error) {
	m, err := NewRouteModel(cfg)
	if err != nil {
		return nil, fmt.Errorf("restore route model: %w", err)
	}

	m.waypoints = slices.Clone(waypoints)

	for _, i := range active {
		if i < 0 || i >= len(m.waypoints) {
			return nil, fmt.Errorf("restore route model: active index %d outside waypoint range [0,%d): %w", i, len(m.waypoints), ErrMalformedDocument)
		}
		m.active[i] = struct{}{}
	}

	for i, lm := range landmarks {
		if _, err := NewLandmark(lm.Center.X, lm.Center.Y, lm.Radius); err != nil {
			return nil, fmt.Errorf("restore route model: landmark %d: %w", i, err)
		}
	}
	m.landmarks = slices.Clone(landmarks)

	for i, o := range obstacles {
		if _, err := NewObstacle(o.Center.X, o.Center.Y, o.Width, o.Height); err != nil {
			return nil, fmt.Errorf("restore route model: rectangle %d: %w", i, err)
		}
	}
	m.obstacles = slices.Clone(obstacles)

	return m, nil
}

func (m *RouteModel) Config() ArenaConfig { return m.config }

// Replace the arena config. The prior config is kept when validation fails.
func (m *RouteModel) SetArenaConfig(cfg ArenaConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("set arena config: %w", err)
	}
	m.config = cfg
	return nil
}

// Append a waypoint and return its 0-based index.
func (m *RouteModel) AddWaypoint(x, y float64) int {
	m.waypoints = append(m.waypoints, Point{X: x, Y: y})
	return len(m.waypoints) - 1
}

// ToggleActive flips the active mark of the first waypoint whose center lies
// strictly within hitRadius of (x, y). Lower indices win when waypoints
// overlap. ok is false when no waypoint was hit.
func (m *RouteModel) ToggleActive(x, y, hitRadius float64) (index int, ok bool) {
	if !(hitRadius > 0) {
		return -1, false
	}

	limit := hitRadius * hitRadius
	for i, wp := range m.waypoints {
		dx, dy := x-wp.X, y-wp.Y
		if dx*dx+dy*dy < limit {
			if _, on := m.active[i]; on {
				delete(m.active, i)
			} else {
				m.active[i] = struct{}{}
			}
			return i, true
		}
	}
	return -1, false
}

// Append a circular landmark. Non-positive radii are rejected with ErrInvalidShape.
func (m *RouteModel) AddLandmark(x, y, radius float64) error {
	lm, err := NewLandmark(x, y, radius)
	if err != nil {
		return fmt.Errorf("add landmark: %w", err)
	}
	m.landmarks = append(m.landmarks, lm)
	return nil
}

// Append a rectangular obstacle centered on (x, y).
func (m *RouteModel) AddObstacle(x, y, width, height float64) error {
	o, err := NewObstacle(x, y, width, height)
	if err != nil {
		return fmt.Errorf("add obstacle: %w", err)
	}
	m.obstacles = append(m.obstacles, o)
	return nil
}

// Reset clears the route and every marker. The arena config is kept.
func (m *RouteModel) Reset() {
	m.waypoints = nil
	clear(m.active)
	m.landmarks = nil
	m.obstacles = nil
}

func (m *RouteModel) Waypoints() []Point { return slices.Clone(m.waypoints) }

func (m *RouteModel) Landmarks() []Landmark { return slices.Clone(m.landmarks) }

func (m *RouteModel) Obstacles() []Obstacle { return slices.Clone(m.obstacles) }

func (m *RouteModel) IsActive(i int) bool {
	_, ok := m.active[i]
	return ok
}

// Return the active waypoint indices in ascending order.
func (m *RouteModel) ActiveIndices() []int {
	out := make([]int, 0, len(m.active))
	for i := range m.active {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// SegmentActive reports whether the segment ending at waypoint i is active,
// which requires both of its endpoints to be marked.
func (m *RouteModel) SegmentActive(i int) bool {
	return i > 0 && m.IsActive(i-1) && m.IsActive(i)
}
