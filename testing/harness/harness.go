// Package harness drives a Bubble Tea model in tests without a terminal.
// Messages go straight to Update; commands are returned, not run, so a test
// decides which ones to execute.
package harness

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type Harness struct {
	t      *testing.T
	model  tea.Model
	width  int
	height int
}

// New wraps model and sends it the initial window size.
func New(t *testing.T, model tea.Model, width, height int) *Harness {
	h := &Harness{t: t, model: model}
	h.Resize(width, height)
	return h
}

func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey types key as runes.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// Keys types each key in turn and returns the last command.
func (h *Harness) Keys(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = h.SendKey(k)
	}
	return cmd
}

func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

func (h *Harness) mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: action, Button: button})
}

// Press is a left button press at cell (x, y).
func (h *Harness) Press(x, y int) tea.Cmd {
	return h.mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft)
}

// Motion moves to (x, y) with the left button held.
func (h *Harness) Motion(x, y int) tea.Cmd {
	return h.mouse(x, y, tea.MouseActionMotion, tea.MouseButtonLeft)
}

// Release lets go of the button at (x, y). Terminals do not report which
// button was released.
func (h *Harness) Release(x, y int) tea.Cmd {
	return h.mouse(x, y, tea.MouseActionRelease, tea.MouseButtonNone)
}

// Drag presses at (fromX, y), moves one column at a time to toX and
// releases there. It returns the command produced by the release.
func (h *Harness) Drag(fromX, toX, y int) tea.Cmd {
	h.Press(fromX, y)
	step := 1
	if toX < fromX {
		step = -1
	}
	for x := fromX; x != toX; {
		x += step
		h.Motion(x, y)
	}
	return h.Release(toX, y)
}

// Wheel turns the wheel once at (x, y). button is one of the wheel buttons.
func (h *Harness) Wheel(button tea.MouseButton, x, y int) tea.Cmd {
	return h.mouse(x, y, tea.MouseActionPress, button)
}

// Exec runs cmd and feeds its message back to the model, returning the
// follow-up command. cmd must not block; nil commands and nil messages are
// ignored.
func (h *Harness) Exec(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	return h.SendMsg(msg)
}

func (h *Harness) Resize(width, height int) tea.Cmd {
	h.width, h.height = width, height
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

func (h *Harness) View() string {
	return h.model.View()
}

// Size is the last size sent to the model.
func (h *Harness) Size() (width, height int) {
	return h.width, h.height
}

type TerminalSize struct {
	Name   string
	Width  int
	Height int
}

// CommonSizes are the terminal sizes every screen test should hold at.
var CommonSizes = []TerminalSize{
	{Name: "classic", Width: 80, Height: 24},
	{Name: "laptop", Width: 100, Height: 30},
	{Name: "full", Width: 120, Height: 40},
	{Name: "large", Width: 200, Height: 50},
	{Name: "wide", Width: 200, Height: 24},
	{Name: "tall", Width: 80, Height: 60},
}

// RunWithSizes runs fn as a subtest for each size.
func RunWithSizes(t *testing.T, sizes []TerminalSize, fn func(t *testing.T, size TerminalSize)) {
	for _, size := range sizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}

func RunWithCommonSizes(t *testing.T, fn func(t *testing.T, size TerminalSize)) {
	RunWithSizes(t, CommonSizes, fn)
}
