package layout

import (
	"arena-route-planner/internal/domain"
	"encoding/json"
	"fmt"
	"io"
)

// Serialize converts a model into its document form. Active indices are
// written in ascending order so equal models produce equal documents.
func Serialize(m *domain.RouteModel) Document {
	cfg := m.Config()
	wps, lms, obs := m.Waypoints(), m.Landmarks(), m.Obstacles()

	waypoints := make([][]float64, 0, len(wps))
	for _, wp := range wps {
		waypoints = append(waypoints, wp.PointToList())
	}

	landmarks := make([][]float64, 0, len(lms))
	for _, lm := range lms {
		landmarks = append(landmarks, []float64{lm.Center.X, lm.Center.Y, lm.Radius})
	}

	rectangles := make([][]float64, 0, len(obs))
	for _, o := range obs {
		rectangles = append(rectangles, []float64{o.Center.X, o.Center.Y, o.Width, o.Height})
	}

	return Document{
		ArenaWidth:       cfg.Width,
		ArenaHeight:      cfg.Height,
		Speed:            cfg.Speed,
		ActiveMultiplier: cfg.ActiveMultiplier,
		Waypoints:        waypoints,
		ActiveIndices:    m.ActiveIndices(),
		Landmarks:        landmarks,
		Rectangles:       rectangles,
	}
}

// Marshal encodes the model as an indented JSON document.
func Marshal(m *domain.RouteModel) ([]byte, error) {
	b, err := json.MarshalIndent(Serialize(m), "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	return b, nil
}

// Encode writes the model's document to w.
func Encode(w io.Writer, m *domain.RouteModel) error {
	b, err := Marshal(m)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("encode layout: %w: %w", domain.ErrIOFailure, err)
	}
	return nil
}

// Decode reads one layout document from r.
func Decode(r io.Reader) (*domain.RouteModel, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode layout: %w: %w", domain.ErrIOFailure, err)
	}
	return Deserialize(b)
}

// Deserialize parses and validates a layout document.
//
// arena_width, arena_height, speed, waypoints and landmarks are required.
// active_multiplier, active_indices and rectangles default when absent.
// Structural problems fail with domain.ErrMalformedDocument; the config
// and shapes are then validated like the model's own operations, so a
// document with a zero speed fails with domain.ErrInvalidConfig.
func Deserialize(data []byte) (*domain.RouteModel, error) {
	var raw rawDocument

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("deserialize layout: parse json: %w: %w", domain.ErrMalformedDocument, err)
	}

	if err := requireFields(&raw); err != nil {
		return nil, fmt.Errorf("deserialize layout: %w", err)
	}

	cfg := domain.ArenaConfig{
		Width:            *raw.ArenaWidth,
		Height:           *raw.ArenaHeight,
		Speed:            *raw.Speed,
		ActiveMultiplier: DefaultActiveMultiplier,
	}
	if raw.ActiveMultiplier != nil {
		cfg.ActiveMultiplier = *raw.ActiveMultiplier
	}

	waypoints := make([]domain.Point, 0, len(raw.Waypoints))
	for i, group := range raw.Waypoints {
		wp, err := numbers("waypoint", i, group, 2)
		if err != nil {
			return nil, err
		}
		waypoints = append(waypoints, domain.Point{X: wp[0], Y: wp[1]})
	}

	active := make([]int, 0, len(raw.ActiveIndices))
	for i, idx := range raw.ActiveIndices {
		if idx == nil {
			return nil, fmt.Errorf("deserialize layout: active index %d is null: %w", i, domain.ErrMalformedDocument)
		}
		active = append(active, *idx)
	}

	landmarks := make([]domain.Landmark, 0, len(raw.Landmarks))
	for i, group := range raw.Landmarks {
		lm, err := numbers("landmark", i, group, 3)
		if err != nil {
			return nil, err
		}
		landmarks = append(landmarks, domain.Landmark{
			Center: domain.Point{X: lm[0], Y: lm[1]},
			Radius: lm[2],
		})
	}

	obstacles := make([]domain.Obstacle, 0, len(raw.Rectangles))
	for i, group := range raw.Rectangles {
		r, err := numbers("rectangle", i, group, 4)
		if err != nil {
			return nil, err
		}
		obstacles = append(obstacles, domain.Obstacle{
			Center: domain.Point{X: r[0], Y: r[1]},
			Width:  r[2],
			Height: r[3],
		})
	}

	m, err := domain.RestoreRouteModel(cfg, waypoints, active, landmarks, obstacles)
	if err != nil {
		return nil, fmt.Errorf("deserialize layout: %w", err)
	}

	return m, nil
}

func requireFields(raw *rawDocument) error {
	missing := ""
	switch {
	case raw.ArenaWidth == nil:
		missing = "arena_width"
	case raw.ArenaHeight == nil:
		missing = "arena_height"
	case raw.Speed == nil:
		missing = "speed"
	case raw.Waypoints == nil:
		missing = "waypoints"
	case raw.Landmarks == nil:
		missing = "landmarks"
	}
	if missing != "" {
		return fmt.Errorf("missing required field %q: %w", missing, domain.ErrMalformedDocument)
	}
	return nil
}

// numbers checks that a coordinate group holds exactly want non-null values.
func numbers(kind string, index int, group []*float64, want int) ([]float64, error) {
	if len(group) != want {
		return nil, fmt.Errorf(
			"deserialize layout: %s %d has %d values, want %d: %w",
			kind, index, len(group), want, domain.ErrMalformedDocument,
		)
	}

	out := make([]float64, want)
	for j, v := range group {
		if v == nil {
			return nil, fmt.Errorf(
				"deserialize layout: %s %d value %d is null: %w",
				kind, index, j, domain.ErrMalformedDocument,
			)
		}
		out[j] = *v
	}
	return out, nil
}
