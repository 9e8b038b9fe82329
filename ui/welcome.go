package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"whitebox/inspect"
	"whitebox/slider"
	"whitebox/ui/layout"
)

const ellipsis = "…"

// LogoSize is the logo picture size in cells.
func LogoSize() (width, height int) {
	return layout.LogoRows * 6, layout.LogoRows
}

// PageView is everything the welcome page shows for one frame.
type PageView struct {
	Title    string
	Subtitle string
	// Logo holds rendered logo rows; nil hides the logo.
	Logo []string
	// Slider is the framed comparison slider.
	Slider string
	// Body is the rendered markdown, already wrapped to the content width.
	Body string

	Constraints layout.Constraints
	Degradation layout.Degradation
}

// subtitleWidth keeps the subtitle narrower than the page.
func subtitleWidth(c layout.Constraints) int {
	return max(min(c.ContentWidth, c.PageWidth*8/10), 1)
}

// SubtitleLines wraps the subtitle for the page, at most
// layout.SubtitleMaxRows lines; the last kept line gets an ellipsis when
// text was dropped.
func SubtitleLines(subtitle string, c layout.Constraints) []string {
	subtitle = strings.TrimSpace(subtitle)
	if subtitle == "" {
		return nil
	}
	w := subtitleWidth(c)
	lines := strings.Split(wordwrap.String(subtitle, w), "\n")
	for i, l := range lines {
		lines[i] = truncate.StringWithTail(strings.TrimSpace(l), uint(w), ellipsis)
	}
	if len(lines) > layout.SubtitleMaxRows {
		lines = lines[:layout.SubtitleMaxRows]
		last := lines[len(lines)-1]
		if runewidth.StringWidth(last)+1 > w {
			last = truncate.String(last, uint(max(w-1, 0)))
		}
		lines[len(lines)-1] = last + ellipsis
	}
	return lines
}

// BodyLines splits rendered markdown into page rows.
func BodyLines(body string) []string {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	return strings.Split(body, "\n")
}

// PlanPage lays out v's sections.
func (v PageView) PlanPage() layout.Page {
	subtitle := 0
	if !v.Degradation.HideSubtitle {
		subtitle = len(SubtitleLines(v.Subtitle, v.Constraints))
	}
	return v.Constraints.PlanPage(v.Degradation, subtitle, len(BodyLines(v.Body)))
}

// title returns the title truncated to the content width.
func (v PageView) title() string {
	return truncate.StringWithTail(v.Title, uint(v.Constraints.ContentWidth), ellipsis)
}

// RenderPage draws the page and returns it with the plan it followed.
func RenderPage(v PageView) (string, layout.Page) {
	c := v.Constraints
	plan := v.PlanPage()
	rows := make([]string, plan.Height)

	if plan.LogoTop >= 0 {
		for i, l := range v.Logo {
			if i >= layout.LogoRows {
				break
			}
			rows[plan.LogoTop+i] = centerStyled(l, c.PageWidth)
		}
	}

	title := v.title()
	rows[plan.TitleTop] = center(title, TextStyles.Title.Render(title), c.PageWidth)

	if plan.SubtitleTop >= 0 {
		for i, l := range SubtitleLines(v.Subtitle, c) {
			rows[plan.SubtitleTop+i] = center(l, TextStyles.Subtitle.Render(l), c.PageWidth)
		}
	}

	pad := strings.Repeat(" ", c.SliderLeft())
	for i, l := range strings.Split(v.Slider, "\n") {
		if plan.SliderTop+i >= plan.Height {
			break
		}
		rows[plan.SliderTop+i] = pad + l
	}

	if plan.BodyTop >= 0 {
		indent := strings.Repeat(" ", max((c.PageWidth-c.ContentWidth)/2, 0))
		for i, l := range BodyLines(v.Body) {
			rows[plan.BodyTop+i] = indent + ansi.Truncate(l, c.ContentWidth, "")
		}
	}

	return strings.Join(rows, "\n"), plan
}

// center pads styled so that plain, its unstyled text, is centered.
func center(plain, styled string, width int) string {
	left := max((width-runewidth.StringWidth(plain))/2, 0)
	return strings.Repeat(" ", left) + styled
}

func centerStyled(s string, width int) string {
	left := max((width-ansi.StringWidth(s))/2, 0)
	return strings.Repeat(" ", left) + s
}

// PageNode describes the page for inspection. sliderNode is placed at the
// slider's image origin.
func PageNode(v PageView, plan layout.Page, sliderNode *inspect.Node) *inspect.Node {
	c := v.Constraints
	root := inspect.NewNode("Page").
		WithID("page").
		WithBounds(0, 0, c.PageWidth, plan.Height).
		WithState("mode", c.Mode.String())

	logoW, _ := LogoSize()
	logo := inspect.NewNode("Logo").WithID("logo").
		WithBounds((c.PageWidth-logoW)/2, plan.LogoTop, logoW, layout.LogoRows)
	logo.Visible = plan.LogoTop >= 0 && len(v.Logo) > 0
	root.AddChild(logo)

	title := v.title()
	tn := inspect.NewNode("Title").WithID("title").
		WithBounds((c.PageWidth-runewidth.StringWidth(title))/2, plan.TitleTop, runewidth.StringWidth(title), 1).
		WithContent(title).
		WithStyles(inspect.ExtractStyleInfo(TextStyles.Title, "title"))
	if title != v.Title {
		tn.WithTruncation(runewidth.StringWidth(v.Title), runewidth.StringWidth(title), true)
	}
	root.AddChild(tn)

	lines := SubtitleLines(v.Subtitle, c)
	sub := inspect.NewNode("Subtitle").WithID("subtitle").
		WithBounds((c.PageWidth-subtitleWidth(c))/2, plan.SubtitleTop, subtitleWidth(c), len(lines)).
		WithContent(strings.Join(lines, " ")).
		WithStyles(inspect.ExtractStyleInfo(TextStyles.Subtitle, "subtitle"))
	sub.Visible = plan.SubtitleTop >= 0 && len(lines) > 0
	root.AddChild(sub)

	if sliderNode != nil {
		sliderNode.Bounds.X = c.SliderLeft() + 1
		sliderNode.Bounds.Y = plan.SliderTop + 1
		frame := "frame"
		if sliderNode.State["phase"] == slider.Dragging.String() {
			frame = "frame-grabbed"
		}
		if st, ok := inspect.GetRegisteredStyle(frame); ok {
			sliderNode.WithStyles(inspect.ExtractStyleInfo(st, frame))
		}
		root.AddChild(sliderNode)
	}

	body := inspect.NewNode("Body").WithID("body").
		WithBounds((c.PageWidth-c.ContentWidth)/2, plan.BodyTop, c.ContentWidth, len(BodyLines(v.Body)))
	body.Visible = plan.BodyTop >= 0
	root.AddChild(body)

	return root
}
