package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "before after", want: "before after"},
		{name: "truecolor half blocks", input: "\x1b[38;2;10;20;30;48;2;1;2;3m▀▀\x1b[0m", want: "▀▀"},
		{name: "bold and color", input: "\x1b[1;31mWhitebox\x1b[0m v\x1b[32m1\x1b[0m", want: "Whitebox v1"},
		{name: "osc8 hyperlink", input: "\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\", want: "link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}

func TestLinesAndWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lines int
		width int
	}{
		{name: "single line", input: "hello", lines: 1, width: 5},
		{name: "widest line wins", input: "ab\nabcdef\nabc", lines: 3, width: 6},
		{name: "escapes take no cells", input: "\x1b[31mred\x1b[0m\nblue", lines: 2, width: 4},
		{name: "wide runes take two cells", input: "日本\nab", lines: 2, width: 4},
		{name: "half blocks are one cell", input: "\x1b[38;2;1;2;3m▀▀▀\x1b[0m", lines: 1, width: 3},
		{name: "trailing blanks are not counted", input: "Loft conversion  \nab \t", lines: 2, width: 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lines, Lines(tt.input))
			assert.Equal(t, tt.width, Width(tt.input))
		})
	}
}

func TestRow(t *testing.T) {
	view := "\x1b[1mtitle\x1b[0m   \r\nbody\nhint"

	assert.Equal(t, "title", Row(view, 0))
	assert.Equal(t, "body", Row(view, 1))
	assert.Equal(t, "hint", Row(view, 2))
	assert.Equal(t, "", Row(view, 3))
	assert.Equal(t, "", Row(view, -1))
}

func TestSnapAssertions(t *testing.T) {
	s := New(t)
	view := "\x1b[32mLoft conversion\x1b[0m  \nBefore and after"

	s.AssertContains(view, "Loft conversion\nBefore")
	s.AssertNotContains(view, "\x1b")
	s.AssertFits(view, 16, 2)
}
