package ui

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whitebox/keys"
	"whitebox/slider"
	"whitebox/ui/layout"
)

func bounded(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestPicture(t *testing.T) {
	p := NewPicture(bounded(20, 20, color.RGBA{255, 0, 0, 255}), 4, 2)
	assert.Equal(t, 4, p.Width())
	assert.Equal(t, 2, p.Height())

	top, bottom := p.Cell(1, 1)
	assert.InDelta(t, 1.0, top.R, 0.01)
	assert.InDelta(t, 0.0, top.G, 0.01)
	assert.InDelta(t, 1.0, bottom.R, 0.01)

	top, _ = p.Cell(9, 9)
	assert.Equal(t, colorful.Color{}, top, "out of range cells are black")

	empty := NewPicture(nil, 3, 1)
	top, _ = empty.Cell(0, 0)
	assert.Equal(t, colorful.Color{}, top)
}

func TestPainter(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{}

	ascii := NewPainter(termenv.Ascii)
	assert.Equal(t, "█", ascii.HalfBlock(white, white))
	assert.Equal(t, " ", ascii.HalfBlock(black, black))
	assert.Equal(t, "│", ascii.Glyph("│", HandleColor, black, true))

	tc := NewPainter(termenv.TrueColor)
	cell := tc.HalfBlock(white, black)
	assert.Contains(t, cell, "▀")
	assert.Contains(t, cell, "\x1b[")
	assert.Equal(t, "▀", ansi.Strip(cell))

	rows := ascii.Render(NewPicture(bounded(8, 8, color.White), 3, 2))
	assert.Equal(t, []string{"███", "███"}, rows)
}

func mountComparison(t *testing.T) (*slider.Slider, *Comparison) {
	t.Helper()
	g, err := slider.NewGeometry(10, 4, 1)
	require.NoError(t, err)
	s, err := slider.Mount(g)
	require.NoError(t, err)

	c := NewComparison(NewPainter(termenv.Ascii))
	c.SetImage(slider.ForegroundImage, bounded(16, 16, color.White))
	c.SetImage(slider.BackgroundImage, bounded(16, 16, color.Black))
	return s, c
}

func TestComparisonRows(t *testing.T) {
	s, c := mountComparison(t)

	rows := c.Rows(s.Render())
	assert.Equal(t, []string{
		"█████┃    ",
		"█████┃    ",
		"█████┃    ",
		"█████│    ",
	}, rows)

	s.DragUpdate(-100)
	rows = c.Rows(s.Render())
	assert.Equal(t, "│         ", rows[3], "fully revealed background")

	s.DragUpdate(100)
	rows = c.Rows(s.Render())
	assert.Equal(t, "█████████│", rows[3], "fully covered background")
}

func TestComparisonRescalesOnResize(t *testing.T) {
	s, c := mountComparison(t)
	c.Rows(s.Render())

	g, err := slider.NewGeometry(6, 2, 1)
	require.NoError(t, err)
	require.NoError(t, s.Resize(g))

	rows := c.Rows(s.Render())
	require.Len(t, rows, 2)
	assert.Equal(t, 6, ansi.StringWidth(rows[0]))
}

func TestComparisonView(t *testing.T) {
	s, c := mountComparison(t)

	lines := strings.Split(ansi.Strip(c.View(s.Render())), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Equal(t, "│█████┃    │", lines[1])
	assert.Equal(t, 12, ansi.StringWidth(lines[5]))
}

func TestHandleColumn(t *testing.T) {
	g, _ := slider.NewGeometry(10, 4, 1)
	tests := []struct {
		boundary float64
		want     int
	}{
		{0, 0}, {4.9, 4}, {5, 5}, {10, 9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HandleColumn(slider.VisualTree{Geometry: g, Boundary: tt.boundary}))
	}
}

func TestSubtitleLines(t *testing.T) {
	subtitle := "Transform your space with our innovative design solutions"

	tests := []struct {
		name  string
		width int
		want  []string
	}{
		{name: "fits on one line", width: 80, want: []string{subtitle}},
		{name: "wraps", width: 40, want: []string{"Transform your space with our", "innovative design solutions"}},
		{name: "capped with ellipsis", width: 20, want: []string{"Transform your", "space with our…"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := layout.ComputeConstraints(tt.width, 24, layout.DefaultSizing())
			assert.Equal(t, tt.want, SubtitleLines(subtitle, c))
		})
	}

	assert.Nil(t, SubtitleLines("  ", layout.ComputeConstraints(80, 24, layout.DefaultSizing())))
}

func samplePage(width, height int) PageView {
	c := layout.ComputeConstraints(width, height, layout.DefaultSizing())
	frame := make([]string, c.SliderHeight+layout.SliderBorder)
	for i := range frame {
		frame[i] = strings.Repeat("x", c.SliderWidth+layout.SliderBorder)
	}
	return PageView{
		Title:       "Welcome to Whitebox",
		Subtitle:    "Transform your space with our innovative design solutions",
		Logo:        []string{"LLL", "LLL", "LLL"},
		Slider:      strings.Join(frame, "\n"),
		Body:        "first\nsecond",
		Constraints: c,
		Degradation: layout.ComputeDegradation(c),
	}
}

func TestRenderPage(t *testing.T) {
	v := samplePage(80, 24)
	out, plan := RenderPage(v)
	rows := strings.Split(ansi.Strip(out), "\n")

	require.Len(t, rows, plan.Height)
	assert.Equal(t, strings.Repeat(" ", 38)+"LLL", rows[plan.LogoTop])
	assert.Equal(t, strings.Repeat(" ", 30)+"Welcome to Whitebox", rows[plan.TitleTop])
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rows[plan.SubtitleTop]), "Transform"))
	assert.Equal(t, "   x", rows[plan.SliderTop][:4])
	assert.Equal(t, -1, plan.BodyTop, "the body is hidden on a 24 row terminal")
}

func TestRenderPageWithBody(t *testing.T) {
	v := samplePage(120, 50)
	out, plan := RenderPage(v)
	rows := strings.Split(ansi.Strip(out), "\n")

	require.GreaterOrEqual(t, plan.BodyTop, 0)
	assert.Equal(t, "  first", rows[plan.BodyTop])
	assert.Equal(t, "  second", rows[plan.BodyTop+1])
}

func TestRenderPageTruncatesTitle(t *testing.T) {
	v := samplePage(40, 20)
	v.Title = strings.Repeat("W", 60)
	out, plan := RenderPage(v)
	rows := strings.Split(ansi.Strip(out), "\n")

	title := strings.TrimSpace(rows[plan.TitleTop])
	assert.Equal(t, v.Constraints.ContentWidth, ansi.StringWidth(title))
	assert.True(t, strings.HasSuffix(title, "…"))

	node := PageNode(v, plan, nil)
	tn := node.Find("title")
	require.NotNil(t, tn)
	require.NotNil(t, tn.Truncated)
	assert.Equal(t, 60, tn.Truncated.OriginalLength)
}

func TestPageNodePlacesSlider(t *testing.T) {
	g, err := slider.NewGeometry(72, 9, 3)
	require.NoError(t, err)
	s, err := slider.Mount(g)
	require.NoError(t, err)

	v := samplePage(80, 24)
	plan := v.PlanPage()
	node := PageNode(v, plan, s.InspectNode())

	sn := node.Find("slider")
	require.NotNil(t, sn)
	assert.Equal(t, v.Constraints.SliderLeft()+1, sn.Bounds.X)
	assert.Equal(t, plan.SliderTop+1, sn.Bounds.Y)
	assert.False(t, node.Find("body").Visible)
	assert.True(t, node.Find("logo").Visible)

	require.NotNil(t, sn.Styles)
	assert.Equal(t, []string{"frame"}, sn.Styles.AppliedStyles)
	assert.Equal(t, "rounded", sn.Styles.Border)
	require.NotNil(t, node.Find("title").Styles)
	assert.True(t, node.Find("title").Styles.Bold)

	s.DragUpdate(4)
	node = PageNode(v, plan, s.InspectNode())
	assert.Equal(t, []string{"frame-grabbed"}, node.Find("slider").Styles.AppliedStyles)
}

func TestMenu(t *testing.T) {
	m := NewMenu()
	m.SetSize(80, 1)

	out := ansi.Strip(m.String())
	assert.Contains(t, out, "drag compare")
	assert.Contains(t, out, "r reload")
	assert.Contains(t, out, "? help")
	assert.Contains(t, out, "q quit")

	m.SetShort(true)
	out = ansi.Strip(m.String())
	assert.NotContains(t, out, "reload")

	m.SetState(StateHelp)
	assert.Contains(t, ansi.Strip(m.String()), "esc close")

	m.SetState(StateDragging)
	assert.Contains(t, ansi.Strip(m.String()), "release to settle")

	m.Keydown(keys.KeyQuit)
	assert.Contains(t, ansi.Strip(m.String()), "q quit")
	m.ClearKeydown()

	m.SetWarning("terminal too small")
	out = ansi.Strip(m.String())
	assert.Contains(t, out, "terminal too small")
	assert.NotContains(t, out, "quit")
}

func TestErrBox(t *testing.T) {
	e := NewErrBox()
	e.SetSize(20, 1)
	assert.Equal(t, strings.Repeat(" ", 20), ansi.Strip(e.String()))

	e.SetError(errors.New("failed to decode image /a/very/long/path.png\nsecond line"))
	out := strings.TrimSpace(ansi.Strip(e.String()))
	assert.True(t, strings.HasPrefix(out, IconError))
	assert.True(t, strings.HasSuffix(out, "…"))
	assert.LessOrEqual(t, ansi.StringWidth(out), 18)

	e.Clear()
	assert.Nil(t, e.Err())
}
