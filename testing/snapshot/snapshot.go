// Package snapshot checks rendered screens in tests. Views are compared as
// plain text: escape sequences are removed and trailing blanks trimmed.
package snapshot

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/ansi"
)

// Snap reports screen mismatches against t.
type Snap struct {
	t *testing.T
}

func New(t *testing.T) *Snap {
	return &Snap{t: t}
}

// AssertContains fails unless the plain text of view contains substr.
func (s *Snap) AssertContains(view, substr string) {
	s.t.Helper()
	plain := normalizeOutput(view)
	if !strings.Contains(plain, substr) {
		s.t.Errorf("screen does not contain %q\n%s", substr, plain)
	}
}

func (s *Snap) AssertNotContains(view, substr string) {
	s.t.Helper()
	plain := normalizeOutput(view)
	if strings.Contains(plain, substr) {
		s.t.Errorf("screen unexpectedly contains %q\n%s", substr, plain)
	}
}

// AssertFits fails when view is taller or wider than a width x height
// terminal.
func (s *Snap) AssertFits(view string, width, height int) {
	s.t.Helper()
	if n := Lines(view); n > height {
		s.t.Errorf("screen has %d lines, terminal has %d", n, height)
	}
	if w := Width(view); w > width {
		s.t.Errorf("screen is %d cells wide, terminal has %d", w, width)
	}
}

// Row returns the plain text of line i, or "" past the end.
func Row(view string, i int) string {
	rows := strings.Split(normalizeOutput(view), "\n")
	if i < 0 || i >= len(rows) {
		return ""
	}
	return rows[i]
}

func normalizeOutput(s string) string {
	s = strings.ReplaceAll(StripANSI(s), "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes all escape sequences, hyperlinks included.
func StripANSI(s string) string {
	return xansi.Strip(s)
}

func Lines(s string) int {
	return len(strings.Split(StripANSI(s), "\n"))
}

// Width is the widest line in cells, measured like the assertions see it:
// escapes removed and trailing blanks trimmed. Wide runes count as two.
func Width(s string) int {
	widest := 0
	for _, line := range strings.Split(normalizeOutput(s), "\n") {
		widest = max(widest, ansi.PrintableRuneWidth(line))
	}
	return widest
}
