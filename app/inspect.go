package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"whitebox/config"
	"whitebox/inspect"
	"whitebox/ui"
)

// appState reports the screen state for snapshots.
func (m *home) appState() inspect.AppStateInfo {
	info := inspect.AppStateInfo{
		State:        m.state.String(),
		ScrollOffset: m.viewport.YOffset,
	}
	if m.state != stateReady {
		info.Overlay = m.state.String()
	}
	if m.page != nil {
		info.ContentFile = m.page.Source
	}
	if err := m.errBox.Err(); err != nil {
		info.ErrorMessage = err.Error()
	}
	return info
}

// snapshot captures the current screen for inspection.
func (m *home) snapshot() *inspect.Snapshot {
	s := inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithAppState(m.appState())
	if m.slider == nil {
		return s
	}
	return s.WithSlider(inspect.SliderInfo{
		Phase:    m.slider.Phase().String(),
		Position: m.slider.Position(),
		Width:    m.slider.Geometry().Width,
		Settling: m.slider.Settling(),
		Grabbed:  m.grabbed,
	}).
		WithLayout(m.constraints, m.degradation, m.plan).
		WithComponents(ui.PageNode(m.view, m.plan, m.slider.InspectNode()))
}

// RenderFrame loads the page and draws a single frame of the given size
// without a terminal, with the boundary at position (a share of the slider
// width). Image load failures do not fail the render; they are reported in
// the snapshot's error message.
func RenderFrame(cfg *config.Config, opts Options, profile termenv.Profile, width, height int, position float64) (string, *inspect.Snapshot, error) {
	if width <= 0 || height <= 0 {
		return "", nil, fmt.Errorf("invalid size %dx%d", width, height)
	}

	m := newHome(context.Background(), cfg, opts, profile)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m.Update(m.load(false)())
	m.moveTo(position)

	return m.View(), m.snapshot(), nil
}
