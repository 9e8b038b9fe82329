package overlay

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// LoadingOverlay is shown over the page while images decode.
type LoadingOverlay struct {
	title   string
	status  string
	source  string
	spinner *spinner.Model
	width   int
}

func NewLoadingOverlay(title string, spinner *spinner.Model) *LoadingOverlay {
	return &LoadingOverlay{title: title, spinner: spinner}
}

func (l *LoadingOverlay) SetStatus(status string) {
	l.status = status
}

// SetSource names the content file being read. Empty means the built-in page.
func (l *LoadingOverlay) SetSource(path string) {
	l.source = path
}

func (l *LoadingOverlay) SetWidth(width int) {
	l.width = width
}

// Render draws the box. The source line is cut to fit inside the border and
// padding so a long path never widens the overlay.
func (l *LoadingOverlay) Render() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2)
	inner := 0
	if l.width > 0 {
		box = box.Width(l.width)
		inner = l.width - box.GetHorizontalPadding()
	}

	line := l.status
	if l.spinner != nil {
		line = l.spinner.View() + " " + line
	}
	rows := []string{
		lipgloss.NewStyle().Bold(true).Foreground(accent).Render(l.title),
		"",
		lipgloss.NewStyle().Foreground(muted).Render(line),
	}

	if l.source != "" {
		src := filepath.Base(l.source)
		if inner > 0 {
			src = truncate.StringWithTail(src, uint(inner), "…")
		}
		rows = append(rows, lipgloss.NewStyle().Foreground(muted).Italic(true).Render(src))
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
