package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineMode(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   LayoutMode
	}{
		{
			name:   "full mode - large terminal",
			width:  140,
			height: 50,
			want:   LayoutFull,
		},
		{
			name:   "standard mode - classic terminal",
			width:  80,
			height: 24,
			want:   LayoutStandard,
		},
		{
			name:   "compact mode - small terminal",
			width:  60,
			height: 20,
			want:   LayoutCompact,
		},
		{
			name:   "minimal mode - below minimum width",
			width:  39,
			height: 30,
			want:   LayoutMinimal,
		},
		{
			name:   "minimal mode - below minimum height",
			width:  100,
			height: 15,
			want:   LayoutMinimal,
		},
		{
			name:   "wide but short",
			width:  150,
			height: 18,
			want:   LayoutCompact, // Uses most restrictive mode (height-based)
		},
		{
			name:   "tall but narrow",
			width:  50,
			height: 60,
			want:   LayoutCompact, // Uses most restrictive mode (width-based)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineMode(tt.width, tt.height)
			assert.Equal(t, tt.want, got, "DetermineMode(%d, %d)", tt.width, tt.height)
		})
	}
}

func TestLayoutModeString(t *testing.T) {
	assert.Equal(t, "full", LayoutFull.String())
	assert.Equal(t, "standard", LayoutStandard.String())
	assert.Equal(t, "compact", LayoutCompact.String())
	assert.Equal(t, "minimal", LayoutMinimal.String())
	assert.Equal(t, "unknown", LayoutMode(99).String())
	assert.Equal(t, "unknown", LayoutMode(-1).String())
}

func TestComputeConstraints(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		wantMode    LayoutMode
		wantSliderW int
		wantSliderH int
		wantWarning bool
	}{
		{
			name:        "classic 80x24",
			width:       80,
			height:      24,
			wantMode:    LayoutStandard,
			wantSliderW: 72, // 90% of the width
			wantSliderH: 9,  // 40% of the height
		},
		{
			name:        "large terminal hits the caps",
			width:       150,
			height:      60,
			wantMode:    LayoutFull,
			wantSliderW: 100,
			wantSliderH: 20,
		},
		{
			name:        "narrow terminal is limited by the insets",
			width:       42,
			height:      30,
			wantMode:    LayoutCompact,
			wantSliderW: 36, // 42 - 2*2 insets - 2 border
			wantSliderH: 12,
		},
		{
			name:        "tiny terminal warns but stays positive",
			width:       5,
			height:      3,
			wantMode:    LayoutMinimal,
			wantSliderW: 1,
			wantSliderH: 1,
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ComputeConstraints(tt.width, tt.height, DefaultSizing())

			assert.Equal(t, tt.wantMode, c.Mode, "Mode")
			assert.Equal(t, tt.wantSliderW, c.SliderWidth, "SliderWidth")
			assert.Equal(t, tt.wantSliderH, c.SliderHeight, "SliderHeight")
			assert.Equal(t, tt.wantWarning, c.ShowMinWarning, "ShowMinWarning")

			assert.Positive(t, c.PageWidth)
			assert.Positive(t, c.PageHeight)
			assert.Positive(t, c.ContentWidth)
			assert.LessOrEqual(t, c.PageHeight+c.MenuHeight+c.ErrBoxHeight, max(tt.height, 3))
		})
	}
}

func TestComputeConstraintsCustomSizing(t *testing.T) {
	s := DefaultSizing()
	s.WidthRatio = 0.5
	s.MaxHeight = 5
	s.MinWidth = 50

	c := ComputeConstraints(80, 24, s)
	assert.Equal(t, 40, c.SliderWidth)
	assert.Equal(t, 5, c.SliderHeight)
	assert.True(t, c.ShowMinWarning, "slider narrower than the configured minimum")
}

func TestSliderLeftCentersFrame(t *testing.T) {
	c := ComputeConstraints(80, 24, DefaultSizing())
	left := c.SliderLeft()
	right := c.PageWidth - (left + c.SliderWidth + SliderBorder)
	assert.Equal(t, 3, left)
	assert.InDelta(t, left, right, 1)
}

func TestPlanPage(t *testing.T) {
	t.Run("classic terminal hides the body", func(t *testing.T) {
		c := ComputeConstraints(80, 24, DefaultSizing())
		d := ComputeDegradation(c)
		p := c.PlanPage(d, 1, 10)

		assert.Equal(t, 1, p.LogoTop)
		assert.Equal(t, 5, p.TitleTop)
		assert.Equal(t, 6, p.SubtitleTop)
		assert.Equal(t, 8, p.SliderTop)
		assert.Equal(t, -1, p.BodyTop)
		assert.Equal(t, 20, p.Height)
		assert.LessOrEqual(t, p.Height, c.PageHeight, "the page fits without scrolling")
	})

	t.Run("full terminal shows everything", func(t *testing.T) {
		c := ComputeConstraints(150, 50, DefaultSizing())
		d := ComputeDegradation(c)
		p := c.PlanPage(d, 2, 10)

		assert.Equal(t, 1, p.LogoTop)
		assert.Equal(t, 6, p.TitleTop)
		assert.Equal(t, 7, p.SubtitleTop)
		assert.Equal(t, 11, p.SliderTop)
		assert.Equal(t, 35, p.BodyTop)
		assert.Equal(t, 46, p.Height)
	})

	t.Run("short terminal drops logo and subtitle", func(t *testing.T) {
		c := ComputeConstraints(60, 14, DefaultSizing())
		d := ComputeDegradation(c)
		p := c.PlanPage(d, 2, 0)

		assert.Equal(t, -1, p.LogoTop)
		assert.Equal(t, -1, p.SubtitleTop)
		assert.Equal(t, 1, p.TitleTop)
		assert.Equal(t, 3, p.SliderTop)
	})

	t.Run("subtitle rows are capped", func(t *testing.T) {
		c := ComputeConstraints(80, 24, DefaultSizing())
		d := ComputeDegradation(c)
		two := c.PlanPage(d, 2, 0)
		five := c.PlanPage(d, 5, 0)
		assert.Equal(t, two, five)
	})
}

func TestComputeDegradation(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          Degradation
	}{
		{
			name:   "full terminal",
			width:  150,
			height: 50,
			want:   Degradation{},
		},
		{
			name:   "classic terminal",
			width:  80,
			height: 24,
			want:   Degradation{HideBody: true},
		},
		{
			name:   "narrow and short",
			width:  50,
			height: 18,
			want:   Degradation{HideBody: true, ShortHints: true, HideLogo: true},
		},
		{
			name:   "tiny",
			width:  20,
			height: 10,
			want: Degradation{
				HideBody: true, ShortHints: true, HideLogo: true,
				HideSubtitle: true, ShowMinWarning: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ComputeConstraints(tt.width, tt.height, DefaultSizing())
			assert.Equal(t, tt.want, ComputeDegradation(c))
		})
	}
}

func TestLogoRows(t *testing.T) {
	assert.Equal(t, LogoRows, Degradation{}.LogoRows())
	assert.Equal(t, 0, Degradation{HideLogo: true}.LogoRows())
}

func TestComputeOverlaySize(t *testing.T) {
	tests := []struct {
		name         string
		termW, termH int
		prefW, prefH int
		wantW, wantH int
	}{
		{name: "fits", termW: 80, termH: 24, prefW: 50, prefH: 12, wantW: 50, wantH: 12},
		{name: "capped at max", termW: 200, termH: 80, prefW: 100, prefH: 40, wantW: OverlayMaxWidth, wantH: OverlayMaxHeight},
		{name: "grown to min", termW: 80, termH: 24, prefW: 10, prefH: 2, wantW: OverlayMinWidth, wantH: OverlayMinHeight},
		{name: "limited by margin", termW: 40, termH: 14, prefW: 50, prefH: 12, wantW: 36, wantH: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ComputeOverlaySize(tt.termW, tt.termH, tt.prefW, tt.prefH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
