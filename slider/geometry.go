// Package slider implements the before/after comparison slider: a horizontal
// reveal boundary moved by relative drag deltas, clamped to the control's
// width, that settles on a damped spring when the drag is released.
//
// The package knows nothing about terminals or mouse protocols. Hosts feed it
// three gesture events (DragStart, DragUpdate, DragEnd), call Step once per
// animation frame while Settling reports true, and draw the VisualTree
// returned by Render.
package slider

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned when a slider is mounted into a viewport
// with a non-positive width or height.
var ErrInvalidGeometry = errors.New("invalid slider geometry")

// Geometry is the size of a mounted slider in layout units. It is a value:
// when the viewport changes, build a new one and pass it to Resize.
type Geometry struct {
	Width  float64
	Height float64
	// HandleWidth only centers the handle on the reveal boundary. It plays
	// no part in clamping.
	HandleWidth float64
}

// NewGeometry builds and validates a Geometry.
func NewGeometry(width, height, handleWidth float64) (Geometry, error) {
	if !positive(handleWidth) {
		handleWidth = 0
	}
	g := Geometry{Width: width, Height: height, HandleWidth: handleWidth}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

// Validate reports ErrInvalidGeometry unless width and height are finite and positive.
func (g Geometry) Validate() error {
	if !positive(g.Width) || !positive(g.Height) {
		return fmt.Errorf("%w: width=%v height=%v", ErrInvalidGeometry, g.Width, g.Height)
	}
	return nil
}

// Clamp saturates v to [0, Width]. Both bounds are valid positions.
func (g Geometry) Clamp(v float64) float64 {
	return math.Max(0, math.Min(g.Width, v))
}

// Center is the initial reveal boundary.
func (g Geometry) Center() float64 {
	return g.Width / 2
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
