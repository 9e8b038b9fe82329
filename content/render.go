package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderBody renders the page's markdown at the given width with a glamour
// standard style. An empty body renders to "".
func RenderBody(body, style string, width int) (string, error) {
	if strings.TrimSpace(body) == "" {
		return "", nil
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	} else {
		opts = append(opts, glamour.WithWordWrap(0))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(body)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
