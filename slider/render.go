package slider

// ImageRef names an image resource. The slider never loads images; it only
// tells the renderer which one goes where.
type ImageRef string

const (
	BackgroundImage ImageRef = "background"
	ForegroundImage ImageRef = "foreground"
)

// Rect is an axis-aligned rectangle in slider coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Right is the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Contains reports whether (x, y) lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset grows (or shrinks, for negative d) r horizontally by d on each side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y, W: r.W + 2*d, H: r.H}
}

// Layer is an image drawn into Frame. Content is where the whole image sits;
// when Frame is smaller than Content the image is clipped, never squeezed.
type Layer struct {
	Image   ImageRef
	Frame   Rect
	Content Rect
}

// VisualTree is the complete drawing description of a slider: the background
// layer, the clipped foreground layer on top of it, and the handle.
type VisualTree struct {
	Geometry   Geometry
	Background Layer
	Foreground Layer
	// Handle spans the full height, centered on Boundary.
	Handle   Rect
	Boundary float64
	Phase    Phase
	Settling bool
}

// HitHandle reports whether a press at (x, y) grabs the handle. slop widens
// the hit region on both sides.
func (t VisualTree) HitHandle(x, y, slop float64) bool {
	return t.Handle.Inset(slop).Contains(x, y)
}

// Render describes how to draw the slider right now. It is a pure function of
// the position and geometry.
func (s *Slider) Render() VisualTree {
	g := s.geom
	full := Rect{W: g.Width, H: g.Height}
	return VisualTree{
		Geometry: g,
		Background: Layer{
			Image:   s.opts.background,
			Frame:   full,
			Content: full,
		},
		Foreground: Layer{
			Image:   s.opts.foreground,
			Frame:   Rect{W: s.position, H: g.Height},
			Content: full,
		},
		Handle: Rect{
			X: s.position - g.HandleWidth/2,
			W: g.HandleWidth,
			H: g.Height,
		},
		Boundary: s.position,
		Phase:    s.phase,
		Settling: s.Settling(),
	}
}
