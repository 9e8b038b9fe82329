package layout

// Width breakpoints
const (
	// MinWidth is the narrowest terminal the page is laid out for.
	MinWidth = 40

	// StandardWidth is the threshold for standard layout.
	StandardWidth = 80

	// FullWidth is the threshold for full layout with generous spacing.
	FullWidth = 120
)

// Height breakpoints
const (
	// MinHeight is the shortest terminal the page is laid out for.
	MinHeight = 16

	// StandardHeight is the threshold for standard layout (a classic 80x24).
	StandardHeight = 24

	// FullHeight is the threshold for full layout.
	FullHeight = 40
)

// Chrome below the page
const (
	// MenuHeight is the key hint bar height.
	MenuHeight = 1

	// ErrBoxHeight is the fixed error box height.
	ErrBoxHeight = 1
)

// Page sections
const (
	// LogoRows is the height of the logo art.
	LogoRows = 3

	// TitleRows is the height of the title line.
	TitleRows = 1

	// SubtitleMaxRows caps the wrapped subtitle.
	SubtitleMaxRows = 2

	// SliderBorder is the number of cells the slider frame adds on each axis.
	SliderBorder = 2
)

// Overlay constraints
const (
	// OverlayMaxWidth is the maximum overlay width.
	OverlayMaxWidth = 60

	// OverlayMaxHeight is the maximum overlay height.
	OverlayMaxHeight = 20

	// OverlayMinWidth is the minimum overlay width.
	OverlayMinWidth = 24

	// OverlayMinHeight is the minimum overlay height.
	OverlayMinHeight = 6

	// OverlayMargin is the minimum margin from terminal edges.
	OverlayMargin = 2
)
