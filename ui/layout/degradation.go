package layout

// Degradation holds flags indicating which UI features should be hidden or simplified.
// Features are listed in order of degradation priority (first to hide).
type Degradation struct {
	HideBody     bool // Hide the markdown body (height < 30)
	ShortHints   bool // Use short key hint labels (width < 60)
	HideLogo     bool // Hide the logo art (height < 20 or width < 30)
	HideSubtitle bool // Hide the subtitle (height < 16)

	// Critical degradation
	ShowMinWarning bool // Terminal too small warning
}

// Threshold constants for degradation
const (
	BodyHideHeight     = 30
	ShortHintsWidth    = 60
	LogoHideHeight     = 20
	LogoHideWidth      = 30
	SubtitleHideHeight = 16
)

// ComputeDegradation calculates which UI features should be degraded.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		HideBody:     c.TerminalHeight < BodyHideHeight,
		ShortHints:   c.TerminalWidth < ShortHintsWidth,
		HideLogo:     c.TerminalHeight < LogoHideHeight || c.TerminalWidth < LogoHideWidth,
		HideSubtitle: c.TerminalHeight < SubtitleHideHeight,

		ShowMinWarning: c.ShowMinWarning,
	}
}

// LogoRows returns the number of rows the logo occupies.
func (d Degradation) LogoRows() int {
	if d.HideLogo {
		return 0
	}
	return LogoRows
}
