// Package overlay draws boxes on top of the rendered page.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"whitebox/ui"
)

var (
	accent = ui.Primary
	muted  = ui.TextMuted
)

// PlaceOverlay draws fg over bg with fg's top-left corner at (x, y). Cells of
// bg outside fg are kept, styling included.
func PlaceOverlay(x, y int, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	fgWidth := 0
	for _, l := range fgLines {
		fgWidth = max(fgWidth, ansi.StringWidth(l))
	}

	for i, l := range fgLines {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(bgLines) {
			bgLines = append(bgLines, "")
		}
		base := bgLines[row]
		baseWidth := ansi.StringWidth(base)
		if baseWidth < x+fgWidth {
			base += strings.Repeat(" ", x+fgWidth-baseWidth)
		}

		left := ansi.Truncate(base, max(x, 0), "")
		right := ansi.TruncateLeft(base, x+fgWidth, "")
		pad := strings.Repeat(" ", fgWidth-ansi.StringWidth(l))
		bgLines[row] = left + l + pad + "\x1b[0m" + right
	}
	return strings.Join(bgLines, "\n")
}

// PlaceCentered draws fg centered over a width x height bg.
func PlaceCentered(width, height int, fg, bg string) string {
	x := max((width-lipgloss.Width(fg))/2, 0)
	y := max((height-lipgloss.Height(fg))/2, 0)
	return PlaceOverlay(x, y, fg, bg)
}
