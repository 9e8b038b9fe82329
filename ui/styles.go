package ui

import (
	"github.com/charmbracelet/lipgloss"

	"whitebox/inspect"
)

// Palette
// The light values follow the page design (off-white page, near-black
// title, gray subtitle); dark terminals get the inverse.
var (
	// Primary is the accent used while the slider is grabbed.
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#9F87F7"}

	// Border frames the slider.
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// TextPrimary is the title color.
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1E1E1E", Dark: "#F8F7F7"}

	// TextSecondary is the subtitle color.
	TextSecondary = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#A3A3A3"}

	// TextMuted is for hints and subtle text.
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// Background is the page color.
	Background = lipgloss.AdaptiveColor{Light: "#F8F7F7", Dark: "#1E1E1E"}

	// BackgroundSubtle is for overlays.
	BackgroundSubtle = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#2A2A2A"}

	// StatusError indicates errors/failures
	StatusError = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}

	// StatusWarning indicates needs attention
	StatusWarning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}
)

// HandleColor is the handle line and grip. It sits on top of photos, so it
// does not adapt to the terminal background.
const HandleColor = "#FFFFFF"

// Status icons for accessibility (shape + color)
const (
	IconWarning = "!"
	IconError   = "×"
)

// Pre-built styles for common UI elements

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Key      lipgloss.Style
}{
	Title:    inspect.RegisterStyle("title", lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)),
	Subtitle: inspect.RegisterStyle("subtitle", lipgloss.NewStyle().Foreground(TextSecondary)),
	Muted:    inspect.RegisterStyle("muted", lipgloss.NewStyle().Foreground(TextMuted)),
	Key:      inspect.RegisterStyle("key", lipgloss.NewStyle().Bold(true).Foreground(TextSecondary)),
}

// StatusStyles contains pre-built styles for each status type
var StatusStyles = struct {
	Warning lipgloss.Style
	Error   lipgloss.Style
}{
	Warning: inspect.RegisterStyle("warning", lipgloss.NewStyle().Foreground(StatusWarning)),
	Error:   inspect.RegisterStyle("error", lipgloss.NewStyle().Foreground(StatusError)),
}

// FrameStyles frame the slider; Grabbed is used while dragging.
var FrameStyles = struct {
	Idle    lipgloss.Style
	Grabbed lipgloss.Style
}{
	Idle: inspect.RegisterStyle("frame", lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)),
	Grabbed: inspect.RegisterStyle("frame-grabbed", lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary)),
}

// OverlayStyle creates a style for overlay/modal containers
func OverlayStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2).
		Background(BackgroundSubtle)
}
