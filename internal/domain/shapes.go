package domain

import "fmt"

// Immutable arena position in pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Return the point as [x, y] for the layout document.
func (p Point) PointToList() []float64 { return []float64{p.X, p.Y} }

// Circular reference marker. It has no effect on computed metrics.
type Landmark struct {
	Center Point
	Radius float64
}

func NewLandmark(x, y, radius float64) (Landmark, error) {
	if !(radius > 0) {
		return Landmark{}, fmt.Errorf("new landmark: radius must be positive, got %v: %w", radius, ErrInvalidShape)
	}
	return Landmark{Center: Point{X: x, Y: y}, Radius: radius}, nil
}

// Rectangular marker stored by its center. Informational only, despite the name.
type Obstacle struct {
	Center Point
	Width  float64
	Height float64
}

func NewObstacle(x, y, width, height float64) (Obstacle, error) {
	if !(width > 0) || !(height > 0) {
		return Obstacle{}, fmt.Errorf("new obstacle: width and height must be positive, got %vx%v: %w", width, height, ErrInvalidShape)
	}
	return Obstacle{Center: Point{X: x, Y: y}, Width: width, Height: height}, nil
}

// Bounds returns the top-left and bottom-right corners of the rectangle.
func (o Obstacle) Bounds() (Point, Point) {
	hw, hh := o.Width/2, o.Height/2
	return Point{X: o.Center.X - hw, Y: o.Center.Y - hh},
		Point{X: o.Center.X + hw, Y: o.Center.Y + hh}
}
