package dto

type PointRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type ToggleRequest struct {
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	HitRadius *float64 `json:"hit_radius"`
}

type LandmarkRequest struct {
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Radius float64  `json:"radius"`
}

type ObstacleRequest struct {
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
}

type ArenaConfigRequest struct {
	ArenaWidth       int     `json:"arena_width"`
	ArenaHeight      int     `json:"arena_height"`
	Speed            float64 `json:"speed"`
	ActiveMultiplier float64 `json:"active_multiplier"`
}

type ArenaConfigResponse struct {
	ArenaWidth       int     `json:"arena_width"`
	ArenaHeight      int     `json:"arena_height"`
	Speed            float64 `json:"speed"`
	ActiveMultiplier float64 `json:"active_multiplier"`
}

type WaypointResponse struct {
	Index  int     `json:"index"`
	Label  int     `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Active bool    `json:"active"`
}

type ToggleResponse struct {
	Toggled bool `json:"toggled"`
	Index   *int `json:"index,omitempty"`
	Active  bool `json:"active"`
}

type LandmarkResponse struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

type ObstacleResponse struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type SegmentResponse struct {
	Index           int     `json:"index"`
	DistancePixels  float64 `json:"distance_px"`
	DurationSeconds float64 `json:"time_s"`
	Active          bool    `json:"active"`
}

type AnalysisResponse struct {
	TotalDistancePixels  float64           `json:"total_distance_px"`
	TotalDurationSeconds float64           `json:"total_time_s"`
	Segments             []SegmentResponse `json:"segments"`
}

type RouteResponse struct {
	Config     ArenaConfigResponse `json:"config"`
	Waypoints  []WaypointResponse  `json:"waypoints"`
	Landmarks  []LandmarkResponse  `json:"landmarks"`
	Rectangles []ObstacleResponse  `json:"rectangles"`
	Analysis   AnalysisResponse    `json:"analysis"`
}
