package layout

// Document is the persisted layout format.
//
// Coordinate groups are stored as plain arrays: waypoints as [x, y],
// landmarks as [x, y, radius] and rectangles as [x, y, width, height],
// with (x, y) the rectangle's center.
type Document struct {
	ArenaWidth       int         `json:"arena_width"`
	ArenaHeight      int         `json:"arena_height"`
	Speed            float64     `json:"speed"`
	ActiveMultiplier float64     `json:"active_multiplier"`
	Waypoints        [][]float64 `json:"waypoints"`
	ActiveIndices    []int       `json:"active_indices"`
	Landmarks        [][]float64 `json:"landmarks"`
	Rectangles       [][]float64 `json:"rectangles"`
}

// Default for documents written before active_multiplier existed.
const DefaultActiveMultiplier = 2.0

// rawDocument distinguishes absent fields from zero values on load.
// A JSON null counts as absent; a null inside a group or index list is
// kept as nil so it can be rejected.
type rawDocument struct {
	ArenaWidth       *int         `json:"arena_width"`
	ArenaHeight      *int         `json:"arena_height"`
	Speed            *float64     `json:"speed"`
	ActiveMultiplier *float64     `json:"active_multiplier"`
	Waypoints        [][]*float64 `json:"waypoints"`
	ActiveIndices    []*int       `json:"active_indices"`
	Landmarks        [][]*float64 `json:"landmarks"`
	Rectangles       [][]*float64 `json:"rectangles"`
}
