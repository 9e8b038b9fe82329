package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// ErrBox is the one-line error area under the hint bar.
type ErrBox struct {
	height, width int
	err           error
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
}

func (e *ErrBox) Clear() {
	e.err = nil
}

// Err returns the error being shown, if any.
func (e *ErrBox) Err() error {
	return e.err
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *ErrBox) String() string {
	var msg string
	if e.err != nil {
		// Only the first line fits.
		msg = strings.SplitN(e.err.Error(), "\n", 2)[0]
		msg = truncate.StringWithTail(IconError+" "+msg, uint(max(e.width-2, 0)), ellipsis)
		msg = StatusStyles.Error.Render(msg)
	}
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Center, msg)
}
