package ui

import (
	"image"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"whitebox/log"
	"whitebox/slider"
)

const (
	lineGlyph = "│"
	gripGlyph = "┃"
	// gripRows is the height of the grip drawn at the middle of the handle.
	gripRows = 3
)

// Comparison draws a slider's visual tree with real pictures: the
// background image everywhere, the foreground image left of the boundary,
// and the handle line on top.
type Comparison struct {
	painter Painter
	images  map[slider.ImageRef]image.Image
	// pictures caches the sampled images for the current size.
	pictures map[slider.ImageRef]*Picture
	width    int
	height   int
}

// NewComparison creates an empty comparison. Until images are set both
// layers are black.
func NewComparison(painter Painter) *Comparison {
	return &Comparison{
		painter:  painter,
		images:   make(map[slider.ImageRef]image.Image),
		pictures: make(map[slider.ImageRef]*Picture),
	}
}

// SetImage assigns the image drawn for ref.
func (c *Comparison) SetImage(ref slider.ImageRef, img image.Image) {
	c.images[ref] = img
	delete(c.pictures, ref)
}

func (c *Comparison) picture(ref slider.ImageRef, w, h int) *Picture {
	if w != c.width || h != c.height {
		c.pictures = make(map[slider.ImageRef]*Picture)
		c.width, c.height = w, h
	}
	if p, ok := c.pictures[ref]; ok {
		return p
	}
	done := log.GetProfiler().StartRender("picture")
	p := NewPicture(c.images[ref], w, h)
	done()
	c.pictures[ref] = p
	return p
}

// HandleColumn is the cell column the handle line is drawn in.
func HandleColumn(tree slider.VisualTree) int {
	w := int(tree.Geometry.Width)
	return min(max(int(math.Floor(tree.Boundary)), 0), max(w-1, 0))
}

// Rows renders the slider content without its frame.
func (c *Comparison) Rows(tree slider.VisualTree) []string {
	w, h := int(tree.Geometry.Width), int(tree.Geometry.Height)
	bg := c.picture(tree.Background.Image, w, h)
	fg := c.picture(tree.Foreground.Image, w, h)

	hx := HandleColumn(tree)
	gripTop := (h - min(gripRows, h)) / 2
	gripBottom := gripTop + min(gripRows, h)
	clip := tree.Foreground.Frame.Right()

	rows := make([]string, h)
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.Reset()
		for x := 0; x < w; x++ {
			layer := bg
			if float64(x)+0.5 < clip {
				layer = fg
			}
			top, bottom := layer.Cell(x, y)
			if x != hx {
				b.WriteString(c.painter.HalfBlock(top, bottom))
				continue
			}
			glyph, bold := lineGlyph, false
			if y >= gripTop && y < gripBottom {
				glyph, bold = gripGlyph, true
			}
			b.WriteString(c.painter.Glyph(glyph, HandleColor, top.BlendLab(bottom, 0.5), bold))
		}
		rows[y] = b.String()
	}
	return rows
}

// View renders the framed slider.
func (c *Comparison) View(tree slider.VisualTree) string {
	style := FrameStyles.Idle
	if tree.Phase == slider.Dragging {
		style = FrameStyles.Grabbed
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, c.Rows(tree)...))
}
