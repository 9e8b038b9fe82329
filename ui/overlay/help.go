package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"whitebox/keys"
)

// HelpOverlay explains the gestures and lists the key bindings.
type HelpOverlay struct {
	width  int
	height int
	closed bool
}

var helpKeys = []keys.KeyName{keys.KeyScrollUp, keys.KeyScrollDown, keys.KeyReload, keys.KeyHelp, keys.KeyQuit}

const helpIntro = "Press on the handle in the middle of the picture and drag " +
	"left or right to compare before and after. When you let go the " +
	"boundary eases to a stop. The mouse wheel scrolls the page."

// NewHelpOverlay creates the help box.
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{}
}

// SetSize sets the box size from layout.ComputeOverlaySize.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// HandleKeyPress closes the overlay on esc, ? or q and reports whether it did.
func (h *HelpOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keys.GlobalkeyBindings[keys.KeyEsc]),
		key.Matches(msg, keys.GlobalkeyBindings[keys.KeyHelp]),
		key.Matches(msg, keys.GlobalkeyBindings[keys.KeyQuit]):
		h.closed = true
	}
	return h.closed
}

// IsClosed reports whether the user dismissed the overlay.
func (h *HelpOverlay) IsClosed() bool {
	return h.closed
}

// Render draws the help box.
func (h *HelpOverlay) Render() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	keyStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(muted)

	// Border and padding take 6 columns.
	inner := max(h.width-6, 10)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Whitebox"))
	b.WriteString("\n\n")
	b.WriteString(wordwrap.String(helpIntro, inner))
	b.WriteString("\n\n")

	keyWidth := 0
	for _, k := range helpKeys {
		keyWidth = max(keyWidth, lipgloss.Width(keys.GlobalkeyBindings[k].Help().Key))
	}
	for i, k := range helpKeys {
		help := keys.GlobalkeyBindings[k].Help()
		b.WriteString(keyStyle.Width(keyWidth + 2).Render(help.Key))
		b.WriteString(descStyle.Render(help.Desc))
		if i < len(helpKeys)-1 {
			b.WriteString("\n")
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2)
	if h.width > 0 {
		box = box.Width(h.width - 2)
	}
	if h.height > 0 {
		box = box.MaxHeight(h.height)
	}
	return box.Render(b.String())
}
