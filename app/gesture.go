package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"whitebox/log"
	"whitebox/slider"
)

// frameMsg advances the settle animation by one frame. Ticks whose
// generation is not current belong to a chain that was preempted.
type frameMsg struct {
	generation int
}

// sliderOrigin is the terminal cell of the slider image's top-left corner.
func (m *home) sliderOrigin() (x, y int) {
	return m.constraints.SliderLeft() + 1, m.plan.SliderTop + 1 - m.viewport.YOffset
}

// sliderPoint maps a terminal cell to slider coordinates. A cell maps to
// its top-left corner, so the handle line's own column hits at the boundary.
func (m *home) sliderPoint(col, row int) (x, y float64) {
	ox, oy := m.sliderOrigin()
	return float64(col - ox), float64(row - oy)
}

// onHandle reports whether the terminal cell (col, row) grabs the handle.
func (m *home) onHandle(col, row int) bool {
	if m.slider == nil || row < 0 || row >= m.constraints.PageHeight {
		return false
	}
	x, y := m.sliderPoint(col, row)
	return m.slider.Render().HitHandle(x, y, handleSlop)
}

// handleMouse turns terminal mouse events into slider gestures. Only
// horizontal movement matters; the wheel scrolls the page.
func (m *home) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state != stateReady || m.slider == nil {
		return nil
	}

	if tea.MouseEvent(msg).IsWheel() {
		if m.grabbed {
			return nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.onHandle(msg.X, msg.Y) {
			return nil
		}
		m.grabbed = true
		m.lastX = msg.X
		m.generation++
		m.slider.DragStart()
		log.InputTrace("drag start at %d,%d position=%.2f", msg.X, msg.Y, m.slider.Position())
		m.updateMenuState()
		m.syncPage()

	case tea.MouseActionMotion:
		if !m.grabbed {
			return nil
		}
		dx := msg.X - m.lastX
		if dx == 0 {
			return nil
		}
		m.lastX = msg.X
		pos := m.slider.DragUpdate(float64(dx))
		log.InputTrace("drag %+d position=%.2f", dx, pos)
		m.syncPage()

	case tea.MouseActionRelease:
		if !m.grabbed {
			return nil
		}
		if dx := msg.X - m.lastX; dx != 0 {
			m.lastX = msg.X
			m.slider.DragUpdate(float64(dx))
		}
		return m.release(m.slider.DragEnd())
	}
	return nil
}

// release finishes a gesture and starts the settle frames if the slider
// began an animation.
func (m *home) release(t slider.Transition) tea.Cmd {
	m.grabbed = false
	m.updateMenuState()
	m.syncPage()
	log.InputTrace("release at %.2f velocity=%.2f", t.Target, t.Velocity)
	if !t.Animated() {
		return nil
	}
	m.generation++
	log.SettleTrace("settle %d from %.2f velocity %.2f", m.generation, t.From, t.Velocity)
	return m.nextFrame()
}

func (m *home) nextFrame() tea.Cmd {
	gen := m.generation
	return tea.Tick(m.appConfig.FrameInterval(), func(time.Time) tea.Msg {
		return frameMsg{generation: gen}
	})
}

func (m *home) handleFrame(msg frameMsg) tea.Cmd {
	if msg.generation != m.generation || m.slider == nil {
		log.SettleTrace("dropped stale frame %d (current %d)", msg.generation, m.generation)
		return nil
	}
	start := time.Now()
	more := m.slider.Step()
	m.syncPage()
	log.GetProfiler().RecordFrame(time.Since(start))
	if !more {
		log.SettleTrace("settle %d done at %.2f", m.generation, m.slider.Position())
		return nil
	}
	return m.nextFrame()
}

// moveTo places the boundary at fraction of the slider width the way a
// user would: a drag followed by a release that settles completely.
func (m *home) moveTo(fraction float64) {
	if m.slider == nil {
		return
	}
	fraction = min(max(fraction, 0), 1)
	target := fraction * m.slider.Geometry().Width
	m.slider.DragStart()
	m.slider.DragUpdate(target - m.slider.Position())
	m.slider.DragEnd()
	for m.slider.Step() {
	}
	m.syncPage()
}
