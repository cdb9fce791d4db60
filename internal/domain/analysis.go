package domain

// Distance and travel time of the segment ending at waypoint Index.
// Index is 1-based, matching the displayed waypoint numbers.
type SegmentMetric struct {
	Index    int
	Distance float64
	Time     float64
	Active   bool
}

// Represents the derived metrics of a route.
// A RouteAnalysis is recomputed from a RouteModel on demand and contains
// no references back into the model.
type RouteAnalysis struct {
	Segments      []SegmentMetric
	TotalDistance float64
	TotalTime     float64
}
