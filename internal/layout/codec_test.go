package layout

import (
	"arena-route-planner/internal/domain"
	"bytes"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type modelView struct {
	Config    domain.ArenaConfig
	Waypoints []domain.Point
	Active    []int
	Landmarks []domain.Landmark
	Obstacles []domain.Obstacle
}

func viewOf(m *domain.RouteModel) modelView {
	return modelView{
		Config:    m.Config(),
		Waypoints: m.Waypoints(),
		Active:    m.ActiveIndices(),
		Landmarks: m.Landmarks(),
		Obstacles: m.Obstacles(),
	}
}

func randomModel(t *testing.T, rng *rand.Rand) *domain.RouteModel {
	t.Helper()

	cfg := domain.ArenaConfig{
		Width:            100 + rng.IntN(1000),
		Height:           100 + rng.IntN(1000),
		Speed:            0.5 + rng.Float64()*100,
		ActiveMultiplier: 0.1 + rng.Float64()*5,
	}
	m, err := domain.NewRouteModel(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < rng.IntN(20); i++ {
		x, y := rng.Float64()*float64(cfg.Width), rng.Float64()*float64(cfg.Height)
		m.AddWaypoint(x, y)
		if rng.IntN(2) == 0 {
			m.ToggleActive(x, y, domain.DefaultHitRadius)
		}
	}
	for i := 0; i < rng.IntN(5); i++ {
		if err := m.AddLandmark(rng.Float64()*100, rng.Float64()*100, 0.01+rng.Float64()*50); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for i := 0; i < rng.IntN(5); i++ {
		if err := m.AddObstacle(rng.Float64()*100, rng.Float64()*100, 1+rng.Float64()*80, 1+rng.Float64()*80); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return m
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for n := 0; n < 50; n++ {
		m := randomModel(t, rng)

		b, err := Marshal(m)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		got, err := Deserialize(b)
		if err != nil {
			t.Fatalf("deserialize: %v\n%s", err, b)
		}

		if diff := cmp.Diff(viewOf(m), viewOf(got), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDeserializeAppliesDefaults(t *testing.T) {
	doc := `{"arena_width":800,"arena_height":600,"speed":50.0,"waypoints":[[1,2]],"landmarks":[]}`

	m, err := Deserialize([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := modelView{
		Config:    domain.ArenaConfig{Width: 800, Height: 600, Speed: 50, ActiveMultiplier: 2.0},
		Waypoints: []domain.Point{{X: 1, Y: 2}},
		Active:    []int{},
		Landmarks: []domain.Landmark{},
		Obstacles: []domain.Obstacle{},
	}
	if diff := cmp.Diff(want, viewOf(m), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestDeserializeRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"missing arena_width":   `{"arena_height":600,"speed":50,"waypoints":[],"landmarks":[]}`,
		"missing speed":         `{"arena_width":800,"arena_height":600,"waypoints":[],"landmarks":[]}`,
		"missing waypoints":     `{"arena_width":800,"arena_height":600,"speed":50,"landmarks":[]}`,
		"null landmarks":        `{"arena_width":800,"arena_height":600,"speed":50,"waypoints":[],"landmarks":null}`,
		"waypoint arity":        `{"arena_width":800,"arena_height":600,"speed":50,"waypoints":[[1,2,3]],"landmarks":[]}`,
		"landmark arity":        `{"arena_width":800,"arena_height":600,"speed":50,"waypoints":[],"landmarks":[[1,2]]}`,
		"rectangle arity":       `{"arena_width":800,"arena_height":600,"speed":50,"waypoints":[],"landmarks":[],"rectangles":[[1,2,3]]}`,
		"not json":              `arena`,
		"string coordinate":     `{"arena_width":800,"arena_height":600,"speed":50,"waypoints":[["a",1]],"landmarks":[]}`,
		"active out of range":   `{"arena_width":800,"arena_height":600,"speed":50,"waypoints":[[1,2]],"active_indices":[1],"landmarks":[]}`,
		"null waypoint coord":   `{"arena_width":800,"arena_height":600,"speed":50,"waypoints":[[1,null]],"landmarks":[]}`,
		"null landmark coord":   `{"arena_width":800,"arena_height":600,"speed":50,"waypoints":[],"landmarks":[[null,1,5]]}`,
		"null rectangle coord":  `{"arena_width":800,"arena_height":600,"speed":50,"waypoints":[],"landmarks":[],"rectangles":[[1,null,4,4]]}`,
		"null active index":     `{"arena_width":800,"arena_height":600,"speed":50,"waypoints":[[1,2]],"active_indices":[null],"landmarks":[]}`,
		"null waypoint group":   `{"arena_width":800,"arena_height":600,"speed":50,"waypoints":[null],"landmarks":[]}`,
		"negative active index": `{"arena_width":800,"arena_height":600,"speed":50,"waypoints":[[1,2]],"active_indices":[-1],"landmarks":[]}`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Deserialize([]byte(doc))
			if !errors.Is(err, domain.ErrMalformedDocument) {
				t.Fatalf("err = %v, want ErrMalformedDocument", err)
			}
		})
	}
}

func TestDeserializeRevalidatesValues(t *testing.T) {
	_, err := Deserialize([]byte(`{"arena_width":800,"arena_height":600,"speed":0,"waypoints":[],"landmarks":[]}`))
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("zero speed: err = %v, want ErrInvalidConfig", err)
	}

	_, err = Deserialize([]byte(`{"arena_width":800,"arena_height":600,"speed":50,"waypoints":[],"landmarks":[[1,1,0]]}`))
	if !errors.Is(err, domain.ErrInvalidShape) {
		t.Fatalf("zero radius: err = %v, want ErrInvalidShape", err)
	}
}

func TestMarshalFieldNames(t *testing.T) {
	m, err := domain.NewRouteModel(domain.DefaultArenaConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.AddWaypoint(10, 20)

	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		t.Fatalf("encode: %v", err)
	}

	for _, field := range []string{
		`"arena_width": 800`,
		`"arena_height": 600`,
		`"speed": 50`,
		`"active_multiplier": 2`,
		`"waypoints"`,
		`"active_indices": []`,
		`"landmarks": []`,
		`"rectangles": []`,
	} {
		if !strings.Contains(buf.String(), field) {
			t.Errorf("encoded document missing %s:\n%s", field, buf.String())
		}
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(viewOf(m), viewOf(got), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("decode mismatch (-want +got):\n%s", diff)
	}
}

func TestFileRoundTrip(t *testing.T) {
	m := randomModel(t, rand.New(rand.NewPCG(1, 2)))
	path := filepath.Join(t.TempDir(), "arena.json")

	if err := SaveFile(path, m); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(viewOf(m), viewOf(got), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("file round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileMissingIsIOFailure(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, domain.ErrIOFailure) {
		t.Fatalf("err = %v, want ErrIOFailure", err)
	}
}
