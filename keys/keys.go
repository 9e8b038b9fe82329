// Package keys defines the keyboard bindings. The slider itself has no
// keyboard control; keys only drive the page around it.
package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyHelp KeyName = iota
	KeyReload
	KeyQuit
	KeyEsc
	KeyScrollUp
	KeyScrollDown
)

// GlobalKeyStringsMap is a global, immutable map from key strings to key names.
var GlobalKeyStringsMap = map[string]KeyName{
	"?":      KeyHelp,
	"r":      KeyReload,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
	"esc":    KeyEsc,
	"up":     KeyScrollUp,
	"k":      KeyScrollUp,
	"down":   KeyScrollDown,
	"j":      KeyScrollDown,
}

// GlobalkeyBindings is a global, immutable map of KeyName to key binding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyReload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	KeyScrollUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	KeyScrollDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
}

// Lookup resolves a key press string such as "ctrl+c" to its name.
func Lookup(s string) (KeyName, bool) {
	name, ok := GlobalKeyStringsMap[s]
	return name, ok
}
