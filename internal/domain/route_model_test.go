package domain

import (
	"errors"
	"testing"
)

func newTestModel(t *testing.T) *RouteModel {
	t.Helper()
	m, err := NewRouteModel(DefaultArenaConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestRouteModelAddLandmarkRejectsNonPositiveRadius(t *testing.T) {
	m := newTestModel(t)

	for _, r := range []float64{0, -5} {
		err := m.AddLandmark(10, 10, r)
		if !errors.Is(err, ErrInvalidShape) {
			t.Errorf("AddLandmark radius=%v err = %v, want ErrInvalidShape", r, err)
		}
	}
	if got := len(m.Landmarks()); got != 0 {
		t.Fatalf("landmarks = %d, want 0", got)
	}

	if err := m.AddLandmark(10, 10, 0.01); err != nil {
		t.Fatalf("AddLandmark radius=0.01: unexpected error: %v", err)
	}
	if got := len(m.Landmarks()); got != 1 {
		t.Fatalf("landmarks = %d, want 1", got)
	}
}

func TestRouteModelAddObstacle(t *testing.T) {
	m := newTestModel(t)

	cases := []struct {
		w, h float64
		ok   bool
	}{
		{60, 40, true},
		{0, 40, false},
		{60, 0, false},
		{-1, -1, false},
	}
	for _, c := range cases {
		err := m.AddObstacle(100, 100, c.w, c.h)
		if c.ok && err != nil {
			t.Errorf("AddObstacle %vx%v: unexpected error: %v", c.w, c.h, err)
		}
		if !c.ok && !errors.Is(err, ErrInvalidShape) {
			t.Errorf("AddObstacle %vx%v err = %v, want ErrInvalidShape", c.w, c.h, err)
		}
	}

	obstacles := m.Obstacles()
	if len(obstacles) != 1 {
		t.Fatalf("obstacles = %d, want 1", len(obstacles))
	}

	// (x, y) is the center of the rectangle.
	tl, br := obstacles[0].Bounds()
	if tl != (Point{X: 70, Y: 80}) || br != (Point{X: 130, Y: 120}) {
		t.Fatalf("bounds = %v %v, want {70 80} {130 120}", tl, br)
	}
}

func TestRouteModelToggleActive(t *testing.T) {
	m := newTestModel(t)
	m.AddWaypoint(100, 100)
	m.AddWaypoint(104, 100)

	// Both waypoints are within range; the lowest index wins.
	i, ok := m.ToggleActive(102, 100, DefaultHitRadius)
	if !ok || i != 0 {
		t.Fatalf("toggle = (%d, %v), want (0, true)", i, ok)
	}
	if !m.IsActive(0) || m.IsActive(1) {
		t.Fatalf("active = %v, want [0]", m.ActiveIndices())
	}

	// Toggling again flips the mark back.
	if _, ok := m.ToggleActive(100, 100, DefaultHitRadius); !ok {
		t.Fatal("expected second toggle to hit")
	}
	if m.IsActive(0) {
		t.Fatal("waypoint 0 should be inactive after second toggle")
	}

	if _, ok := m.ToggleActive(500, 500, DefaultHitRadius); ok {
		t.Fatal("toggle far from every waypoint should be a no-op")
	}
}

func TestRouteModelToggleActiveBoundaryIsExclusive(t *testing.T) {
	m := newTestModel(t)
	m.AddWaypoint(0, 0)

	// Squared distance exactly 64 does not toggle.
	if _, ok := m.ToggleActive(8, 0, 8); ok {
		t.Fatal("point at distance 8 must not toggle")
	}
	if _, ok := m.ToggleActive(0, 7.99, 8); !ok {
		t.Fatal("point at distance 7.99 should toggle")
	}
}

func TestRouteModelReset(t *testing.T) {
	cfg := ArenaConfig{Width: 640, Height: 480, Speed: 25, ActiveMultiplier: 3}
	m, err := NewRouteModel(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 5; i++ {
		m.AddWaypoint(float64(i*20), 0)
	}
	m.ToggleActive(0, 0, DefaultHitRadius)
	m.ToggleActive(20, 0, DefaultHitRadius)
	if err := m.AddLandmark(50, 50, 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.AddObstacle(50, 50, 60, 40); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.Reset()

	if got := len(m.Waypoints()); got != 0 {
		t.Errorf("waypoints = %d, want 0", got)
	}
	if got := len(m.ActiveIndices()); got != 0 {
		t.Errorf("active = %d, want 0", got)
	}
	if got := len(m.Landmarks()); got != 0 {
		t.Errorf("landmarks = %d, want 0", got)
	}
	if got := len(m.Obstacles()); got != 0 {
		t.Errorf("obstacles = %d, want 0", got)
	}
	if m.Config() != cfg {
		t.Errorf("config = %+v, want %+v", m.Config(), cfg)
	}

	// Marks do not leak onto waypoints appended after a reset.
	m.AddWaypoint(0, 0)
	if m.IsActive(0) {
		t.Error("new waypoint inherited a stale active mark")
	}
}

func TestRouteModelSetArenaConfig(t *testing.T) {
	m := newTestModel(t)
	prior := m.Config()

	bad := []ArenaConfig{
		{Width: 0, Height: 600, Speed: 50, ActiveMultiplier: 2},
		{Width: 800, Height: -1, Speed: 50, ActiveMultiplier: 2},
		{Width: 800, Height: 600, Speed: 0, ActiveMultiplier: 2},
		{Width: 800, Height: 600, Speed: 50, ActiveMultiplier: 0},
	}
	for _, cfg := range bad {
		if err := m.SetArenaConfig(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("SetArenaConfig(%+v) err = %v, want ErrInvalidConfig", cfg, err)
		}
		if m.Config() != prior {
			t.Fatalf("config changed after rejected update: %+v", m.Config())
		}
	}

	next := ArenaConfig{Width: 1024, Height: 768, Speed: 80, ActiveMultiplier: 1.5}
	if err := m.SetArenaConfig(next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Config() != next {
		t.Fatalf("config = %+v, want %+v", m.Config(), next)
	}
}

func TestRestoreRouteModelRejectsStaleActiveIndex(t *testing.T) {
	_, err := RestoreRouteModel(
		DefaultArenaConfig(),
		[]Point{{X: 1, Y: 2}},
		[]int{0, 3},
		nil,
		nil,
	)
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("err = %v, want ErrMalformedDocument", err)
	}
}

func TestSegmentActiveRequiresBothEndpoints(t *testing.T) {
	// Every membership combination of two adjacent endpoints.
	for _, c := range []struct {
		prev, cur bool
		want      bool
	}{
		{false, false, false},
		{true, false, false},
		{false, true, false},
		{true, true, true},
	} {
		m := newTestModel(t)
		m.AddWaypoint(0, 0)
		m.AddWaypoint(100, 0)
		if c.prev {
			m.ToggleActive(0, 0, DefaultHitRadius)
		}
		if c.cur {
			m.ToggleActive(100, 0, DefaultHitRadius)
		}

		if got := m.SegmentActive(1); got != c.want {
			t.Errorf("prev=%v cur=%v: SegmentActive = %v, want %v", c.prev, c.cur, got, c.want)
		}
	}
}
