package services

import (
	"arena-route-planner/internal/domain"
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

// Derive per-segment distance and travel time from a route.
//
// Segment i joins waypoints i-1 and i and is reported with the 1-based
// index i. A segment is active only when both endpoints are marked, and its
// time is then scaled by the arena's active multiplier. The analysis is
// recomputed from scratch on every call; routes are small and the result
// must not depend on call history.
func AnalyzeSegments(model *domain.RouteModel) (*domain.RouteAnalysis, error) {
	if model == nil {
		return nil, errors.New("analyze segments: model must be non-nil")
	}

	cfg := model.Config()
	waypoints := model.Waypoints()

	if len(waypoints) < 2 {
		return &domain.RouteAnalysis{
			Segments:      []domain.SegmentMetric{},
			TotalDistance: 0,
			TotalTime:     0,
		}, nil
	}

	segments := make([]domain.SegmentMetric, 0, len(waypoints)-1)
	totalDistance := 0.0
	totalTime := 0.0

	for i := 1; i < len(waypoints); i++ {
		from := r2.Vec{X: waypoints[i-1].X, Y: waypoints[i-1].Y}
		to := r2.Vec{X: waypoints[i].X, Y: waypoints[i].Y}
		dist := r2.Norm(r2.Sub(to, from))

		active := model.SegmentActive(i)
		multiplier := 1.0
		if active {
			multiplier = cfg.ActiveMultiplier
		}
		// Speed is positive by the ArenaConfig invariant.
		t := (dist / cfg.Speed) * multiplier

		totalDistance += dist
		totalTime += t

		segments = append(segments, domain.SegmentMetric{
			Index:    i,
			Distance: dist,
			Time:     t,
			Active:   active,
		})
	}

	return &domain.RouteAnalysis{
		Segments:      segments,
		TotalDistance: totalDistance,
		TotalTime:     totalTime,
	}, nil
}
