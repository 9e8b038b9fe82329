package slider

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// settleEpsilon is how close position and velocity must get to rest
	// before the spring snaps onto its target.
	settleEpsilon = 0.01
	// settleSeconds caps a settle so a pathological spring cannot tick forever.
	settleSeconds = 3
)

// Transition describes the spring started by releasing a drag.
type Transition struct {
	From   float64
	Target float64
	// Velocity is the initial velocity in layout units per second. Zero means
	// no animation was started.
	Velocity  float64
	Frequency float64
	Damping   float64
	FPS       int
}

// Animated reports whether the transition produces any motion.
func (t Transition) Animated() bool {
	return t.Velocity != 0 || t.From != t.Target
}

type settle struct {
	spring    harmonica.Spring
	pos       float64
	vel       float64
	target    float64
	frames    int
	maxFrames int
}

func newSettle(t Transition) *settle {
	return &settle{
		spring:    harmonica.NewSpring(harmonica.FPS(t.FPS), t.Frequency, t.Damping),
		pos:       t.From,
		vel:       t.Velocity,
		target:    t.Target,
		maxFrames: t.FPS * settleSeconds,
	}
}

// step advances one frame inside [0, width]. Hitting a bound kills the
// velocity so the spring cannot push past it on the next frame.
func (s *settle) step(width float64) (done bool) {
	pos, vel := s.spring.Update(s.pos, s.vel, s.target)
	switch {
	case pos < 0:
		pos, vel = 0, 0
	case pos > width:
		pos, vel = width, 0
	}
	s.pos, s.vel = pos, vel
	s.frames++

	if math.Abs(s.pos-s.target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon {
		return true
	}
	return s.frames >= s.maxFrames
}

func (s *settle) reclamp(g Geometry) {
	s.pos = g.Clamp(s.pos)
	s.target = g.Clamp(s.target)
}
