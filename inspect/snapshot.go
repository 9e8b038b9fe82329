package inspect

import (
	"fmt"
	"strings"
	"time"

	"whitebox/ui/layout"
)

// FormatVersion changes whenever a field of Snapshot is renamed or removed.
const FormatVersion = "whitebox/2"

// Snapshot is everything a script needs to know about one rendered frame.
type Snapshot struct {
	Timestamp   time.Time        `json:"timestamp"`
	Version     string           `json:"version"`
	Terminal    TerminalInfo     `json:"terminal"`
	AppState    AppStateInfo     `json:"app_state"`
	Slider      SliderInfo       `json:"slider"`
	Layout      LayoutInfo       `json:"layout"`
	Breakpoints []BreakpointInfo `json:"breakpoints"`
	Components  *Node            `json:"components"`
}

type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AppStateInfo describes the screen around the slider.
type AppStateInfo struct {
	State        string `json:"state"`             // loading, ready or help
	Overlay      string `json:"overlay,omitempty"` // loading or help
	ScrollOffset int    `json:"scroll_offset"`
	ContentFile  string `json:"content_file,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// SliderInfo is the comparison slider's gesture state. Position is in cells
// from the left edge; Fraction is the same boundary as a share of Width.
type SliderInfo struct {
	Mounted  bool    `json:"mounted"`
	Phase    string  `json:"phase,omitempty"`
	Position float64 `json:"position"`
	Fraction float64 `json:"fraction"`
	Width    float64 `json:"width"`
	Settling bool    `json:"settling"`
	Grabbed  bool    `json:"grabbed"`
}

type LayoutInfo struct {
	Mode         string          `json:"mode"`
	PageWidth    int             `json:"page_width"`
	PageHeight   int             `json:"page_height"`
	PageRows     int             `json:"page_rows"` // before scrolling
	ContentWidth int             `json:"content_width"`
	SliderWidth  int             `json:"slider_width"`
	SliderHeight int             `json:"slider_height"`
	SliderLeft   int             `json:"slider_left"`
	SliderTop    int             `json:"slider_top"`
	Degradation  DegradationInfo `json:"degradation"`
}

type DegradationInfo struct {
	HideBody       bool `json:"hide_body"`
	ShortHints     bool `json:"short_hints"`
	HideLogo       bool `json:"hide_logo"`
	HideSubtitle   bool `json:"hide_subtitle"`
	ShowMinWarning bool `json:"show_min_warning"`
}

// BreakpointInfo is one size threshold and whether the terminal is below it.
type BreakpointInfo struct {
	Name      string `json:"name"`
	Dimension string `json:"dimension"` // width or height
	Threshold int    `json:"threshold"`
	Active    bool   `json:"active"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{Timestamp: time.Now(), Version: FormatVersion}
}

func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

func (s *Snapshot) WithAppState(state AppStateInfo) *Snapshot {
	s.AppState = state
	return s
}

// WithSlider records the slider state and derives Fraction from it.
func (s *Snapshot) WithSlider(info SliderInfo) *Snapshot {
	info.Mounted = true
	if info.Width > 0 {
		info.Fraction = info.Position / info.Width
	}
	s.Slider = info
	return s
}

// WithLayout records the constraints, the degradation flags and where the
// page plan put the slider. Breakpoints are listed in the order features
// are given up.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation, p layout.Page) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:         c.Mode.String(),
		PageWidth:    c.PageWidth,
		PageHeight:   c.PageHeight,
		PageRows:     p.Height,
		ContentWidth: c.ContentWidth,
		SliderWidth:  c.SliderWidth,
		SliderHeight: c.SliderHeight,
		SliderLeft:   c.SliderLeft(),
		SliderTop:    p.SliderTop,
		Degradation: DegradationInfo{
			HideBody:       d.HideBody,
			ShortHints:     d.ShortHints,
			HideLogo:       d.HideLogo,
			HideSubtitle:   d.HideSubtitle,
			ShowMinWarning: d.ShowMinWarning,
		},
	}

	w, h := c.TerminalWidth, c.TerminalHeight
	s.Breakpoints = nil
	for _, bp := range []struct {
		name, dim string
		threshold int
	}{
		{"hide_body", "height", layout.BodyHideHeight},
		{"short_hints", "width", layout.ShortHintsWidth},
		{"hide_logo", "height", layout.LogoHideHeight},
		{"hide_logo", "width", layout.LogoHideWidth},
		{"hide_subtitle", "height", layout.SubtitleHideHeight},
	} {
		size := h
		if bp.dim == "width" {
			size = w
		}
		s.Breakpoints = append(s.Breakpoints, BreakpointInfo{
			Name:      bp.name,
			Dimension: bp.dim,
			Threshold: bp.threshold,
			Active:    size < bp.threshold,
		})
	}
	return s
}

func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText renders the snapshot for people: a header, the slider, the layout,
// the breakpoints and then the component tree.
func (s *Snapshot) ToText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "whitebox %dx%d %s at %s\n", s.Terminal.Width, s.Terminal.Height,
		s.AppState.State, s.Timestamp.Format(time.RFC3339))
	if s.AppState.ContentFile != "" {
		fmt.Fprintf(&b, "page: %s\n", s.AppState.ContentFile)
	}
	if s.AppState.ErrorMessage != "" {
		fmt.Fprintf(&b, "error: %s\n", s.AppState.ErrorMessage)
	}

	if s.Slider.Mounted {
		fmt.Fprintf(&b, "slider: %s at %.2f of %.0f (%.0f%%)", s.Slider.Phase,
			s.Slider.Position, s.Slider.Width, s.Slider.Fraction*100)
		if s.Slider.Settling {
			b.WriteString(", settling")
		}
		b.WriteString("\n")
	} else {
		b.WriteString("slider: not mounted\n")
	}

	l := s.Layout
	fmt.Fprintf(&b, "layout: %s, page %dx%d (%d rows, scrolled %d)\n",
		l.Mode, l.PageWidth, l.PageHeight, l.PageRows, s.AppState.ScrollOffset)
	fmt.Fprintf(&b, "slider box: %dx%d at column %d, row %d\n",
		l.SliderWidth, l.SliderHeight, l.SliderLeft, l.SliderTop)
	if l.Degradation.ShowMinWarning {
		b.WriteString("terminal too small\n")
	}

	for _, bp := range s.Breakpoints {
		mark := " "
		if bp.Active {
			mark = "x"
		}
		fmt.Fprintf(&b, "[%s] %s (%s < %d)\n", mark, bp.Name, bp.Dimension, bp.Threshold)
	}

	if s.Components != nil {
		b.WriteString("\n")
		writeNodeText(&b, s.Components, 0)
	}
	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth) + node.Type)
	if node.ID != "" {
		b.WriteString(" #" + node.ID)
	}
	fmt.Fprintf(b, " %dx%d+%d+%d", node.Bounds.Width, node.Bounds.Height, node.Bounds.X, node.Bounds.Y)
	if !node.Visible {
		b.WriteString(" hidden")
	}
	if t := node.Truncated; t != nil {
		fmt.Fprintf(b, " cut %d->%d", t.OriginalLength, t.DisplayLength)
	}
	b.WriteString("\n")
	for _, child := range node.Children {
		writeNodeText(b, child, depth+1)
	}
}
