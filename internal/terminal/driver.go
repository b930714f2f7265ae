// Package terminal paints rows and reads keys. The editor only talks to the
// Driver interface; TcellDriver backs it with a tcell screen.
package terminal

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"voider/internal/input"
)

var (
	// ErrNotTerminal is returned when stdin is not a terminal.
	ErrNotTerminal = errors.New("stdin is not a terminal")
	// ErrClosed is returned by ReadKey once the screen has shut down.
	ErrClosed = errors.New("terminal closed")
	// ErrNoSize is returned when the terminal reports no usable size.
	ErrNoSize = errors.New("cannot determine terminal size")
)

// Segment is a run of text painted with one style.
type Segment struct {
	Text  string
	Style tcell.Style
}

// Driver is the terminal surface the editor needs. Init switches the
// terminal into raw mode and Fini restores it; every other call happens in
// between.
//
// Driver описывает терминал, с которым работает редактор.
type Driver interface {
	Init() error
	Fini()
	// ReadKey blocks until the next key press.
	ReadKey() (input.Event, error)
	Size() (width, height int, err error)
	// Paint replaces screen row y with segs, clearing the rest of the row.
	Paint(y int, segs []Segment)
	SetCursor(x, y int)
	// Show flushes painted rows to the terminal.
	Show()
}
