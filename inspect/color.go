package inspect

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ExtractStyleInfo reads the inspectable attributes off style. names are
// the registered styles it was built from.
func ExtractStyleInfo(style lipgloss.Style, names ...string) *StyleInfo {
	info := &StyleInfo{
		Foreground:    colorString(style.GetForeground()),
		Background:    colorString(style.GetBackground()),
		Bold:          style.GetBold(),
		Italic:        style.GetItalic(),
		Underline:     style.GetUnderline(),
		AppliedStyles: names,
	}
	if top, right, bottom, left := style.GetPadding(); top+right+bottom+left > 0 {
		info.Padding = []int{top, right, bottom, left}
	}
	if style.GetBorderTop() || style.GetBorderRight() || style.GetBorderBottom() || style.GetBorderLeft() {
		info.Border = borderName(style.GetBorderStyle())
		info.BorderColor = colorString(style.GetBorderTopForeground())
	}
	return info
}

var borderNames = []struct {
	name   string
	border lipgloss.Border
}{
	{"rounded", lipgloss.RoundedBorder()},
	{"normal", lipgloss.NormalBorder()},
	{"thick", lipgloss.ThickBorder()},
	{"double", lipgloss.DoubleBorder()},
	{"hidden", lipgloss.HiddenBorder()},
}

func borderName(b lipgloss.Border) string {
	for _, n := range borderNames {
		if n.border == b {
			return n.name
		}
	}
	return "custom"
}

// colorString prints a terminal color. Hex values are normalized to
// lowercase #rrggbb; ANSI numbers are kept as they are.
func colorString(c lipgloss.TerminalColor) string {
	switch v := c.(type) {
	case nil, lipgloss.NoColor:
		return ""
	case lipgloss.Color:
		return hex(string(v))
	case lipgloss.AdaptiveColor:
		return fmt.Sprintf("adaptive(light=%s, dark=%s)", hex(v.Light), hex(v.Dark))
	case lipgloss.CompleteColor:
		return fmt.Sprintf("complete(true=%s, ansi=%s, ansi256=%s)", hex(v.TrueColor), v.ANSI, v.ANSI256)
	case lipgloss.CompleteAdaptiveColor:
		return fmt.Sprintf("complete_adaptive(light=%s, dark=%s)", hex(v.Light.TrueColor), hex(v.Dark.TrueColor))
	default:
		return fmt.Sprintf("%v", c)
	}
}

func hex(s string) string {
	if !strings.HasPrefix(s, "#") {
		return s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return s
	}
	return c.Hex()
}

// The registry maps style names to the styles the ui package declares, so
// snapshots can say which named style a node is drawn with.
var (
	registryMu sync.RWMutex
	registry   = map[string]lipgloss.Style{}
)

// RegisterStyle records style under name and returns it, so declarations can
// register themselves inline.
func RegisterStyle(name string, style lipgloss.Style) lipgloss.Style {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = style
	return style
}

func GetRegisteredStyle(name string) (lipgloss.Style, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	style, ok := registry[name]
	return style, ok
}

// GetAllStyles describes every registered style, keyed by name.
func GetAllStyles() map[string]*StyleInfo {
	registryMu.RLock()
	defer registryMu.RUnlock()
	all := make(map[string]*StyleInfo, len(registry))
	for name, style := range registry {
		all[name] = ExtractStyleInfo(style, name)
	}
	return all
}

// ListRegisteredStyles returns the registered names in sorted order.
func ListRegisteredStyles() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(registry))
}
