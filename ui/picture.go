package ui

import (
	"image"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"whitebox/assets"
)

// Picture is an image sampled for the terminal. Every cell shows two pixels
// stacked vertically, drawn as an upper half block.
type Picture struct {
	width  int
	height int
	// px holds width x 2*height pixels, row major.
	px []colorful.Color
}

// NewPicture cover-scales img to width x height cells.
func NewPicture(img image.Image, width, height int) *Picture {
	width, height = max(width, 0), max(height, 0)
	p := &Picture{
		width:  width,
		height: height,
		px:     make([]colorful.Color, width*height*2),
	}
	if width == 0 || height == 0 || img == nil {
		return p
	}

	scaled := assets.Cover(img, width, height*2)
	for y := 0; y < height*2; y++ {
		for x := 0; x < width; x++ {
			c, ok := colorful.MakeColor(scaled.At(x, y))
			if !ok {
				// Fully transparent pixels
				c = colorful.Color{}
			}
			p.px[y*width+x] = c
		}
	}
	return p
}

// Width is the picture width in cells.
func (p *Picture) Width() int { return p.width }

// Height is the picture height in cells.
func (p *Picture) Height() int { return p.height }

// Cell returns the top and bottom pixel of the cell at (x, y). Out of range
// cells are black.
func (p *Picture) Cell(x, y int) (top, bottom colorful.Color) {
	if p == nil || x < 0 || y < 0 || x >= p.width || y >= p.height {
		return colorful.Color{}, colorful.Color{}
	}
	return p.px[2*y*p.width+x], p.px[(2*y+1)*p.width+x]
}

// shades run from dark to light for terminals without color.
var shades = []string{" ", "░", "▒", "▓", "█"}

// Painter turns pixel pairs into terminal cells for one color profile.
type Painter struct {
	profile termenv.Profile
}

// NewPainter creates a painter for profile.
func NewPainter(profile termenv.Profile) Painter {
	return Painter{profile: profile}
}

// Profile returns the painter's color profile.
func (pt Painter) Profile() termenv.Profile { return pt.profile }

// HalfBlock paints one cell showing top over bottom.
func (pt Painter) HalfBlock(top, bottom colorful.Color) string {
	if pt.profile == termenv.Ascii {
		return shade(top.BlendLab(bottom, 0.5))
	}
	return pt.profile.String("▀").
		Foreground(pt.profile.Color(top.Clamped().Hex())).
		Background(pt.profile.Color(bottom.Clamped().Hex())).
		String()
}

// Glyph paints s in fg over a background of bg.
func (pt Painter) Glyph(s, fg string, bg colorful.Color, bold bool) string {
	if pt.profile == termenv.Ascii {
		return s
	}
	st := pt.profile.String(s).
		Foreground(pt.profile.Color(fg)).
		Background(pt.profile.Color(bg.Clamped().Hex()))
	if bold {
		st = st.Bold()
	}
	return st.String()
}

// Render paints the whole picture, one string per row.
func (pt Painter) Render(p *Picture) []string {
	rows := make([]string, p.Height())
	var b strings.Builder
	for y := range rows {
		b.Reset()
		for x := 0; x < p.Width(); x++ {
			b.WriteString(pt.HalfBlock(p.Cell(x, y)))
		}
		rows[y] = b.String()
	}
	return rows
}

func shade(c colorful.Color) string {
	l, _, _ := c.Lab()
	i := int(l * float64(len(shades)))
	return shades[min(max(i, 0), len(shades)-1)]
}
