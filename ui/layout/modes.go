// Package layout sizes the page and the comparison slider for the terminal.
package layout

// LayoutMode is a size class of the terminal. Larger values are tighter.
type LayoutMode int

const (
	LayoutFull     LayoutMode = iota // >= 120x40, two blank rows between sections
	LayoutStandard                   // >= 80x24
	LayoutCompact                    // >= 40x16, sections packed
	LayoutMinimal                    // below 40x16, slider and a warning only
)

var modeNames = [...]string{"full", "standard", "compact", "minimal"}

func (m LayoutMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// SectionGap is the number of blank rows between page sections.
func (m LayoutMode) SectionGap() int {
	switch m {
	case LayoutFull:
		return 2
	case LayoutStandard:
		return 1
	}
	return 0
}

// DetermineMode picks the tighter of the width and height classes.
func DetermineMode(width, height int) LayoutMode {
	return max(
		classify(width, FullWidth, StandardWidth, MinWidth),
		classify(height, FullHeight, StandardHeight, MinHeight),
	)
}

func classify(size, full, standard, minimum int) LayoutMode {
	switch {
	case size >= full:
		return LayoutFull
	case size >= standard:
		return LayoutStandard
	case size >= minimum:
		return LayoutCompact
	}
	return LayoutMinimal
}
