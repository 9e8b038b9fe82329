package inspect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whitebox/ui/layout"
)

func sampleTree() *Node {
	root := NewNode("Page").WithID("page").WithBounds(0, 0, 80, 22)
	slider := NewNode("ComparisonSlider").WithID("slider").WithBounds(4, 9, 72, 9).
		WithState("position", 36.0)
	slider.AddChild(NewNode("Handle").WithID("handle").WithBounds(35, 0, 3, 9))
	root.AddChild(NewNode("Title").WithID("title").WithContent("Welcome to Whitebox"))
	root.AddChild(slider)
	return root
}

func TestNodeFind(t *testing.T) {
	root := sampleTree()

	handle := root.Find("handle")
	require.NotNil(t, handle)
	assert.Equal(t, "Handle", handle.Type)
	assert.Nil(t, root.Find("missing"))

	var nilNode *Node
	assert.Nil(t, nilNode.Find("handle"))
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{X: 4, Y: 9, Width: 72, Height: 9}
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "top-left corner", x: 4, y: 9, want: true},
		{name: "bottom-right corner", x: 75, y: 17, want: true},
		{name: "right edge is exclusive", x: 76, y: 10, want: false},
		{name: "bottom edge is exclusive", x: 10, y: 18, want: false},
		{name: "left of it", x: 3, y: 10, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.x, tt.y))
		})
	}
	assert.False(t, Bounds{}.Contains(0, 0))
}

func TestNodeBuilders(t *testing.T) {
	n := NewNode("Subtitle").
		WithID("subtitle").
		WithBounds(1, 2, 3, 4).
		WithContent("Transform your space").
		WithTruncation(40, 20, true)

	assert.True(t, n.Visible)
	assert.Equal(t, Bounds{X: 1, Y: 2, Width: 3, Height: 4}, n.Bounds)
	require.NotNil(t, n.Truncated)
	assert.True(t, n.Truncated.Ellipsis)
}

func TestSnapshotWithLayout(t *testing.T) {
	c := layout.ComputeConstraints(80, 24, layout.DefaultSizing())
	d := layout.ComputeDegradation(c)
	p := c.PlanPage(d, 1, 0)

	snap := NewSnapshot().
		WithTerminal(80, 24).
		WithAppState(AppStateInfo{State: "ready"}).
		WithSlider(SliderInfo{Phase: "idle", Position: 36, Width: 72}).
		WithLayout(c, d, p).
		WithComponents(sampleTree())

	assert.Equal(t, FormatVersion, snap.Version)
	assert.Equal(t, "standard", snap.Layout.Mode)
	assert.Equal(t, 72, snap.Layout.SliderWidth)
	assert.Equal(t, p.SliderTop, snap.Layout.SliderTop)
	assert.True(t, snap.Layout.Degradation.HideBody)
	assert.True(t, snap.Slider.Mounted)
	assert.Equal(t, 0.5, snap.Slider.Fraction)

	active := map[string]bool{}
	for _, bp := range snap.Breakpoints {
		active[bp.Name+"/"+bp.Dimension] = bp.Active
	}
	assert.Equal(t, map[string]bool{
		"hide_body/height":     true,
		"short_hints/width":    false,
		"hide_logo/height":     false,
		"hide_logo/width":      false,
		"hide_subtitle/height": false,
	}, active)

	text := snap.ToText()
	assert.Contains(t, text, "whitebox 80x24 ready")
	assert.Contains(t, text, "slider: idle at 36.00 of 72 (50%)")
	assert.Contains(t, text, "[x] hide_body (height < 30)")
	assert.Contains(t, text, "[ ] short_hints (width < 60)")
	assert.Contains(t, text, "    Handle #handle 3x9+35+0")
}

func TestSnapshotWithoutSlider(t *testing.T) {
	snap := NewSnapshot().WithTerminal(80, 24).WithAppState(AppStateInfo{State: "loading", Overlay: "loading"})

	assert.False(t, snap.Slider.Mounted)
	assert.Contains(t, snap.ToText(), "slider: not mounted")
}

func TestWriteSnapshotToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	snap := NewSnapshot().WithTerminal(100, 30).WithComponents(sampleTree())

	require.NoError(t, WriteSnapshotToPath(snap, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Snapshot
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 100, got.Terminal.Width)
	require.NotNil(t, got.Components)
	assert.NotNil(t, got.Components.Find("slider"))
}

func TestExtractStyleInfo(t *testing.T) {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#666666"))

	info := ExtractStyleInfo(style, "frame")
	assert.Equal(t, "#ffffff", info.Foreground)
	assert.True(t, info.Bold)
	assert.Equal(t, []int{0, 1, 0, 1}, info.Padding)
	assert.Equal(t, "rounded", info.Border)
	assert.Equal(t, "#666666", info.BorderColor)
	assert.Equal(t, []string{"frame"}, info.AppliedStyles)
}

func TestStyleRegistry(t *testing.T) {
	s := RegisterStyle("test-handle", lipgloss.NewStyle().Bold(true))
	assert.True(t, s.GetBold())

	got, ok := GetRegisteredStyle("test-handle")
	require.True(t, ok)
	assert.True(t, got.GetBold())
	assert.Contains(t, ListRegisteredStyles(), "test-handle")
	assert.Contains(t, GetAllStyles(), "test-handle")
}

func TestColorString(t *testing.T) {
	tests := []struct {
		name  string
		color lipgloss.TerminalColor
		want  string
	}{
		{name: "none", color: nil, want: ""},
		{name: "no color", color: lipgloss.NoColor{}, want: ""},
		{name: "hex is lowercased", color: lipgloss.Color("#7D56F4"), want: "#7d56f4"},
		{name: "ansi number kept", color: lipgloss.Color("212"), want: "212"},
		{name: "adaptive", color: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E1E"}, want: "adaptive(light=#ffffff, dark=#1e1e1e)"},
		{name: "bad hex kept", color: lipgloss.Color("#zz"), want: "#zz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, colorString(tt.color))
		})
	}
}
