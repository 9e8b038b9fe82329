package slider

import (
	"fmt"
	"math"
)

// Phase is the gesture state of a slider.
type Phase int

const (
	// Idle means no pointer is down. A settle animation may still be running.
	Idle Phase = iota
	// Dragging means a pointer is down and deltas move the boundary directly.
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

type options struct {
	fps        int
	frequency  float64
	damping    float64
	velocity   float64
	background ImageRef
	foreground ImageRef
}

// DefaultReleaseVelocity is the release impulse speed in cells per second.
const DefaultReleaseVelocity = 20

func defaultOptions() options {
	return options{
		fps:        60,
		frequency:  10,
		damping:    1.0,
		velocity:   DefaultReleaseVelocity,
		background: BackgroundImage,
		foreground: ForegroundImage,
	}
}

// Option configures a slider at mount time.
type Option func(*options)

// WithSpring sets the settle spring. Damping ratios below one oscillate and
// are raised to one; non-positive values keep the defaults.
func WithSpring(fps int, frequency, damping float64) Option {
	return func(o *options) {
		if fps > 0 {
			o.fps = fps
		}
		if frequency > 0 {
			o.frequency = frequency
		}
		if damping > 0 {
			o.damping = math.Max(1, damping)
		}
	}
}

// WithReleaseVelocity sets the speed of the impulse applied on release.
func WithReleaseVelocity(v float64) Option {
	return func(o *options) {
		o.velocity = math.Abs(v)
	}
}

// WithImages names the images drawn behind and in front of the boundary.
func WithImages(background, foreground ImageRef) Option {
	return func(o *options) {
		o.background = background
		o.foreground = foreground
	}
}

// Slider is one mounted comparison control. It is not safe for concurrent
// use: the host's event loop is its single writer.
type Slider struct {
	geom     Geometry
	position float64
	anchor   float64
	phase    Phase
	// applied is the change made by the most recent DragUpdate after clamping.
	applied float64
	settle  *settle
	opts    options
}

// Mount creates a slider centered in g.
func Mount(g Geometry, opts ...Option) (*Slider, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Slider{
		geom:     g,
		position: g.Center(),
		anchor:   g.Center(),
		opts:     o,
	}, nil
}

// Position is the current reveal boundary, always inside [0, Width].
func (s *Slider) Position() float64 { return s.position }

// Geometry returns the geometry the slider is mounted in.
func (s *Slider) Geometry() Geometry { return s.geom }

// Phase returns the gesture state.
func (s *Slider) Phase() Phase { return s.phase }

// Anchor is the position captured when the current or last drag started.
func (s *Slider) Anchor() float64 { return s.anchor }

// Settling reports whether a settle animation is in flight.
func (s *Slider) Settling() bool { return s.settle != nil }

// DragStart begins a gesture. An in-flight settle is cancelled and the
// boundary stays where the animation had brought it.
func (s *Slider) DragStart() {
	if s.phase == Dragging {
		return
	}
	s.settle = nil
	s.phase = Dragging
	s.anchor = s.position
	s.applied = 0
}

// DragUpdate applies a relative horizontal delta and returns the new
// position. Out-of-range results saturate at the bounds. A delta arriving
// without DragStart begins the gesture first.
func (s *Slider) DragUpdate(dx float64) float64 {
	if s.phase != Dragging {
		s.DragStart()
	}
	if math.IsNaN(dx) {
		s.applied = 0
		return s.position
	}
	next := s.geom.Clamp(s.position + dx)
	s.applied = next - s.position
	s.position = next
	return s.position
}

// DragEnd releases the gesture and springs the boundary toward its current
// value. The impulse follows the direction of the last applied change, so a
// release right after the boundary moved eases out of that motion, while a
// release with no final movement starts no animation.
func (s *Slider) DragEnd() Transition {
	t := Transition{
		From:      s.position,
		Target:    s.position,
		Frequency: s.opts.frequency,
		Damping:   s.opts.damping,
		FPS:       s.opts.fps,
	}
	if s.phase != Dragging {
		return t
	}
	s.phase = Idle

	switch {
	case s.applied > 0:
		t.Velocity = s.opts.velocity
	case s.applied < 0:
		t.Velocity = -s.opts.velocity
	}
	s.applied = 0

	if t.Animated() {
		s.settle = newSettle(t)
	}
	return t
}

// DragCancel ends a gesture the host lost track of, such as when the
// terminal loses focus mid-drag. It settles exactly like DragEnd.
func (s *Slider) DragCancel() Transition {
	return s.DragEnd()
}

// Step advances the settle animation by one frame and reports whether more
// frames are needed. When the spring comes to rest the boundary snaps onto
// the target.
func (s *Slider) Step() bool {
	if s.settle == nil {
		return false
	}
	done := s.settle.step(s.geom.Width)
	if done {
		s.position = s.settle.target
		s.settle = nil
		return false
	}
	s.position = s.settle.pos
	return true
}

// Resize remounts the slider into a new geometry, clamping the boundary and
// any settle target into the new width.
func (s *Slider) Resize(g Geometry) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	s.geom = g
	s.position = g.Clamp(s.position)
	s.anchor = g.Clamp(s.anchor)
	if s.settle != nil {
		s.settle.reclamp(g)
		s.position = s.settle.pos
	}
	return nil
}
