package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"whitebox/keys"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(Primary)

var separator = " • "
var verticalSeparator = " │ "

// MenuState picks the gesture hint and the key list.
type MenuState int

const (
	StateDefault MenuState = iota
	StateLoading
	StateDragging
	StateHelp
)

// Menu is the key hint bar under the page.
type Menu struct {
	options       []keys.KeyName
	height, width int
	state         MenuState
	short         bool
	warning       string

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

var defaultMenuOptions = []keys.KeyName{keys.KeyReload, keys.KeyHelp, keys.KeyQuit}
var shortMenuOptions = []keys.KeyName{keys.KeyHelp, keys.KeyQuit}
var helpMenuOptions = []keys.KeyName{keys.KeyEsc, keys.KeyQuit}

const (
	dragHint     = "drag"
	dragHintDesc = "compare"
	draggingHint = "release to settle"
)

func NewMenu() *Menu {
	return &Menu{
		options: defaultMenuOptions,
		state:   StateDefault,
		keyDown: -1,
	}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

func (m *Menu) SetState(state MenuState) {
	m.state = state
	m.updateOptions()
}

// State returns the current menu state.
func (m *Menu) State() MenuState {
	return m.state
}

// SetShort switches to the short option list for narrow terminals.
func (m *Menu) SetShort(short bool) {
	m.short = short
	m.updateOptions()
}

// SetWarning replaces the hints with a warning; empty restores them.
func (m *Menu) SetWarning(warning string) {
	m.warning = warning
}

func (m *Menu) updateOptions() {
	switch {
	case m.state == StateHelp:
		m.options = helpMenuOptions
	case m.short:
		m.options = shortMenuOptions
	default:
		m.options = defaultMenuOptions
	}
}

// SetSize sets the bar size; hints are centered in it.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// gestureHint describes what the mouse does right now.
func (m *Menu) gestureHint() string {
	switch m.state {
	case StateLoading:
		return descStyle.Render("loading images")
	case StateDragging:
		return actionGroupStyle.Render(draggingHint)
	case StateDefault:
		return actionGroupStyle.Render(dragHint + " " + dragHintDesc)
	}
	return ""
}

func (m *Menu) keyHint(k keys.KeyName) string {
	help := keys.GlobalkeyBindings[k].Help()
	ks, ds := keyStyle, descStyle
	if m.keyDown == k {
		ks, ds = ks.Underline(true), ds.Underline(true)
	}
	return ks.Render(help.Key) + " " + ds.Render(help.Desc)
}

func (m *Menu) String() string {
	var line string
	if m.warning != "" {
		line = StatusStyles.Warning.Render(IconWarning + " " + m.warning)
	} else {
		hints := make([]string, len(m.options))
		for i, k := range m.options {
			hints[i] = m.keyHint(k)
		}
		line = strings.Join(hints, sepStyle.Render(separator))
		if g := m.gestureHint(); g != "" {
			line = g + sepStyle.Render(verticalSeparator) + line
		}
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, line)
}
