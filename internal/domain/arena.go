package domain

import "fmt"

// Arena dimensions and travel parameters for a route.
// Width and Height are in pixels, Speed in pixels per second.
// ActiveMultiplier scales the travel time of active segments.
type ArenaConfig struct {
	Width            int
	Height           int
	Speed            float64
	ActiveMultiplier float64
}

// DefaultArenaConfig returns the values offered when a session starts without input.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Width:            800,
		Height:           600,
		Speed:            50.0,
		ActiveMultiplier: 2.0,
	}
}

// Validate reports ErrInvalidConfig unless every field is strictly positive.
func (c ArenaConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("validate arena config: dimensions must be positive (width=%d, height=%d): %w", c.Width, c.Height, ErrInvalidConfig)
	}

	// Negated comparisons also reject NaN.
	if !(c.Speed > 0) {
		return fmt.Errorf("validate arena config: speed must be positive, got %v: %w", c.Speed, ErrInvalidConfig)
	}
	if !(c.ActiveMultiplier > 0) {
		return fmt.Errorf("validate arena config: active multiplier must be positive, got %v: %w", c.ActiveMultiplier, ErrInvalidConfig)
	}

	return nil
}
