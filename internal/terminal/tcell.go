package terminal

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"voider/internal/input"
	"voider/internal/log"
)

// TcellDriver implements Driver on a tcell screen.
// TcellDriver реализует Driver поверх экрана tcell.
type TcellDriver struct {
	screen tcell.Screen
}

// NewTcellDriver creates a driver for the controlling terminal.
func NewTcellDriver() (*TcellDriver, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewDriver(s), nil
}

// NewDriver wraps an existing screen, such as a simulation screen in tests.
func NewDriver(s tcell.Screen) *TcellDriver {
	return &TcellDriver{screen: s}
}

func (d *TcellDriver) Init() error {
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	d.screen.SetStyle(tcell.StyleDefault)
	d.screen.Clear()
	w, h := d.screen.Size()
	log.Info(log.CatTerm, "screen ready", "width", w, "height", h)
	return nil
}

func (d *TcellDriver) Fini() {
	d.screen.Fini()
}

// ReadKey waits for the next key press. Resizes are reported as input.Resize
// so the caller can redraw; other events are skipped.
func (d *TcellDriver) ReadKey() (input.Event, error) {
	for {
		switch ev := d.screen.PollEvent().(type) {
		case nil:
			return input.Event{}, ErrClosed
		case *tcell.EventKey:
			return translate(ev), nil
		case *tcell.EventResize:
			d.screen.Sync()
			return input.Of(input.Resize), nil
		}
	}
}

func (d *TcellDriver) Size() (int, int, error) {
	w, h := d.screen.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, ErrNoSize
	}
	return w, h, nil
}

func (d *TcellDriver) Paint(y int, segs []Segment) {
	w, _ := d.screen.Size()
	x := 0
paint:
	for _, seg := range segs {
		for _, r := range seg.Text {
			rw := runewidth.RuneWidth(r)
			if rw == 0 {
				continue
			}
			if x+rw > w {
				break paint
			}
			d.screen.SetContent(x, y, r, nil, seg.Style)
			x += rw
		}
	}
	for ; x < w; x++ {
		d.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

func (d *TcellDriver) SetCursor(x, y int) {
	d.screen.ShowCursor(x, y)
}

func (d *TcellDriver) Show() {
	d.screen.Show()
}

// translate maps a tcell key event to a logical key. Function keys F3, F5
// and F8 are aliases for find, save and quit.
//
// translate переводит событие tcell в логическую клавишу.
func translate(ev *tcell.EventKey) input.Event {
	switch ev.Key() {
	case tcell.KeyRune:
		return input.Char(ev.Rune())
	case tcell.KeyTab:
		return input.Char('\t')
	case tcell.KeyEnter:
		return input.Of(input.Enter)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.Of(input.Backspace)
	case tcell.KeyDelete:
		return input.Of(input.Delete)
	case tcell.KeyEscape:
		return input.Of(input.Escape)
	case tcell.KeyUp:
		return input.Of(input.Up)
	case tcell.KeyDown:
		return input.Of(input.Down)
	case tcell.KeyLeft:
		return input.Of(input.Left)
	case tcell.KeyRight:
		return input.Of(input.Right)
	case tcell.KeyHome:
		return input.Of(input.Home)
	case tcell.KeyEnd:
		return input.Of(input.End)
	case tcell.KeyPgUp:
		return input.Of(input.PageUp)
	case tcell.KeyPgDn:
		return input.Of(input.PageDown)
	case tcell.KeyCtrlF, tcell.KeyF3:
		return input.Of(input.Find)
	case tcell.KeyCtrlS, tcell.KeyF5:
		return input.Of(input.Save)
	case tcell.KeyCtrlQ, tcell.KeyF8:
		return input.Of(input.Quit)
	case tcell.KeyCtrlC:
		return input.Of(input.Copy)
	case tcell.KeyCtrlX:
		return input.Of(input.Cut)
	case tcell.KeyCtrlV:
		return input.Of(input.Paste)
	case tcell.KeyCtrlRightSq:
		return input.Of(input.MatchBracket)
	default:
		return input.Of(input.Unknown)
	}
}
