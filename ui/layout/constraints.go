package layout

// Sizing carries the user-tunable slider sizing and safe-area insets.
type Sizing struct {
	WidthRatio  float64
	HeightRatio float64
	MaxWidth    int
	MaxHeight   int
	MinWidth    int
	MinHeight   int
	HandleWidth int

	InsetTop        int
	InsetBottom     int
	InsetHorizontal int
}

// DefaultSizing matches the default configuration.
func DefaultSizing() Sizing {
	return Sizing{
		WidthRatio:      0.9,
		HeightRatio:     0.4,
		MaxWidth:        100,
		MaxHeight:       20,
		MinWidth:        10,
		MinHeight:       3,
		HandleWidth:     3,
		InsetTop:        1,
		InsetBottom:     1,
		InsetHorizontal: 2,
	}
}

// Constraints holds the computed layout constraints for all components.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode LayoutMode

	// PageWidth and PageHeight size the scrolling viewport.
	PageWidth  int
	PageHeight int
	// ContentWidth is the page width inside the horizontal insets.
	ContentWidth int

	// SliderWidth and SliderHeight are the image area of the slider in
	// cells, excluding its frame.
	SliderWidth  int
	SliderHeight int
	HandleWidth  int

	MenuWidth    int
	MenuHeight   int
	ErrBoxWidth  int
	ErrBoxHeight int

	InsetTop    int
	InsetBottom int

	ShowMinWarning bool // Terminal or slider is below its minimum size
}

// ComputeConstraints calculates layout constraints for the given terminal dimensions.
func ComputeConstraints(width, height int, s Sizing) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		HandleWidth:    max(s.HandleWidth, 1),
		InsetTop:       max(s.InsetTop, 0),
		InsetBottom:    max(s.InsetBottom, 0),
	}

	// 1. Determine layout mode
	c.Mode = DetermineMode(width, height)

	// 2. Fixed chrome below the page
	c.MenuHeight = MenuHeight
	c.MenuWidth = width
	c.ErrBoxHeight = ErrBoxHeight
	c.ErrBoxWidth = width

	// 3. The page takes what is left
	c.PageWidth = max(width, 1)
	c.PageHeight = max(height-c.MenuHeight-c.ErrBoxHeight, 1)
	c.ContentWidth = max(c.PageWidth-2*max(s.InsetHorizontal, 0), 1)

	// 4. Slider: a share of the terminal, capped, never wider than the content
	sw := min(int(float64(width)*s.WidthRatio), s.MaxWidth)
	sw = min(sw, c.ContentWidth-SliderBorder)
	sh := min(int(float64(height)*s.HeightRatio), s.MaxHeight)
	c.SliderWidth = max(sw, 1)
	c.SliderHeight = max(sh, 1)

	if c.Mode == LayoutMinimal || sw < s.MinWidth || sh < s.MinHeight {
		c.ShowMinWarning = true
	}

	return c
}

// SliderLeft is the page column of the slider frame's left edge.
func (c Constraints) SliderLeft() int {
	return max((c.PageWidth-c.SliderWidth-SliderBorder)/2, 0)
}

// Page is the vertical placement of each page section, in page rows.
// A negative row means the section is not drawn.
type Page struct {
	LogoTop     int
	TitleTop    int
	SubtitleTop int
	// SliderTop is the row of the slider frame's top edge.
	SliderTop int
	BodyTop   int
	// Height is the total page height including the bottom inset.
	Height int
}

// PlanPage stacks the page sections top to bottom.
func (c Constraints) PlanPage(d Degradation, subtitleRows, bodyRows int) Page {
	gap := c.Mode.SectionGap()
	p := Page{LogoTop: -1, SubtitleTop: -1, BodyTop: -1}
	row := c.InsetTop

	if !d.HideLogo {
		p.LogoTop = row
		row += LogoRows + gap
	}

	p.TitleTop = row
	row += TitleRows

	if !d.HideSubtitle && subtitleRows > 0 {
		p.SubtitleTop = row
		row += min(subtitleRows, SubtitleMaxRows)
	}
	row += max(gap, 1)

	p.SliderTop = row
	row += c.SliderHeight + SliderBorder

	if !d.HideBody && bodyRows > 0 {
		row += max(gap, 1)
		p.BodyTop = row
		row += bodyRows
	}

	p.Height = row + c.InsetBottom
	return p
}

// ComputeOverlaySize calculates constrained overlay dimensions.
func ComputeOverlaySize(termWidth, termHeight int, preferredWidth, preferredHeight int) (int, int) {
	maxW := termWidth - OverlayMargin*2
	maxH := termHeight - OverlayMargin*2

	w := clamp(preferredWidth, OverlayMinWidth, min(maxW, OverlayMaxWidth))
	h := clamp(preferredHeight, OverlayMinHeight, min(maxH, OverlayMaxHeight))

	return w, h
}

// Helper functions

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
