// Package editor runs the interactive loop: it reads keys from a terminal
// driver, applies them to a document and redraws the view.
package editor

import (
	"errors"
	"fmt"
	"time"

	"voider/internal/document"
	"voider/internal/input"
	"voider/internal/log"
	"voider/internal/prompt"
	"voider/internal/search"
	"voider/internal/syntax"
	"voider/internal/terminal"
)

// HelpMessage is the status shown on start.
const HelpMessage = "HELP: Ctrl-F = find | Ctrl-S = save | Ctrl-Q = quit"

// Options configures an Editor. Zero fields take their defaults.
type Options struct {
	// QuitTimes is how many Ctrl-Q presses in a row quit with unsaved changes.
	QuitTimes int

	StatusTimeout time.Duration
	Theme         Theme
	Clipboard     Clipboard

	// Now is the clock used to expire status messages.
	Now func() time.Time

	Version       string
	InitialStatus string
}

type statusMessage struct {
	text string
	at   time.Time
}

// Editor ties a document to a terminal.
// Editor связывает документ с терминалом и обрабатывает ввод.
type Editor struct {
	driver terminal.Driver
	doc    *document.Document
	opts   Options

	cursor    document.Position
	rowOffset int
	colOffset int
	width     int
	height    int // rows available for text

	status   statusMessage
	quitLeft int
	quit     bool

	prompt prompt.Prompt
	search *search.Session
}

// New creates an editor showing doc on driver.
func New(driver terminal.Driver, doc *document.Document, opts Options) *Editor {
	if opts.QuitTimes < 0 {
		opts.QuitTimes = 0
	}
	if opts.StatusTimeout <= 0 {
		opts.StatusTimeout = 5 * time.Second
	}
	if opts.Theme.Kinds == nil {
		opts.Theme = DefaultTheme()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.InitialStatus == "" {
		opts.InitialStatus = HelpMessage
	}

	e := &Editor{
		driver:   driver,
		doc:      doc,
		opts:     opts,
		quitLeft: opts.QuitTimes,
		search:   search.NewSession(doc),
	}
	e.setStatus(opts.InitialStatus)
	return e
}

// LoadDocument opens path for editing. A file that cannot be opened yields
// an empty untitled document and a status message saying so; it is never
// fatal. An empty path gives a new untitled document.
//
// LoadDocument открывает файл или создаёт пустой документ при ошибке.
func LoadDocument(path string, reg *syntax.Registry, opts ...document.Option) (*document.Document, string) {
	if path == "" {
		return document.New(reg, opts...), HelpMessage
	}
	doc, err := document.Open(path, reg, opts...)
	if err != nil {
		log.ErrorErr(log.CatUI, "falling back to empty document", err, "path", path)
		msg := "ERR: Could not open file: " + path
		if errors.Is(err, document.ErrEncoding) {
			msg += " (not valid UTF-8)"
		}
		return document.New(reg, opts...), msg
	}
	return doc, HelpMessage
}

// Run drives the editor until the user quits. The terminal is restored
// before Run returns, including on error.
//
// Run запускает основной цикл редактора.
func (e *Editor) Run() error {
	if err := e.driver.Init(); err != nil {
		return fmt.Errorf("starting terminal: %w", err)
	}
	defer e.driver.Fini()

	for {
		if err := e.refresh(); err != nil {
			log.ErrorErr(log.CatTerm, "refresh failed", err)
			return fmt.Errorf("drawing screen: %w", err)
		}
		if e.quit {
			log.Info(log.CatUI, "quit")
			return nil
		}
		ev, err := e.driver.ReadKey()
		if err != nil {
			log.ErrorErr(log.CatTerm, "read key failed", err)
			return fmt.Errorf("reading key: %w", err)
		}
		e.ProcessKey(ev)
	}
}

// ProcessKey applies one key press.
// ProcessKey обрабатывает одно нажатие клавиши.
func (e *Editor) ProcessKey(ev input.Event) {
	if ev.Key == input.Resize {
		e.scroll()
		return
	}
	if e.prompt.Active() {
		e.handlePrompt(ev)
		e.scroll()
		return
	}

	if ev.Key == input.Quit {
		e.handleQuit()
		return
	}
	if e.quitLeft < e.opts.QuitTimes {
		e.quitLeft = e.opts.QuitTimes
		e.setStatus("")
	}

	switch ev.Key {
	case input.Find:
		e.startSearch()
	case input.Save:
		e.save()
	case input.Enter:
		e.doc.Insert(e.cursor, '\n')
		e.moveCursor(input.Right)
	case input.Rune:
		if ev.IsPrintable() {
			e.doc.Insert(e.cursor, ev.Rune)
			e.moveCursor(input.Right)
		}
	case input.Delete:
		e.doc.Delete(e.cursor)
	case input.Backspace:
		if e.cursor.Row > 0 || e.cursor.Col > 0 {
			e.moveCursor(input.Left)
			e.doc.Delete(e.cursor)
		}
	case input.Up, input.Down, input.Left, input.Right,
		input.Home, input.End, input.PageUp, input.PageDown:
		e.moveCursor(ev.Key)
	case input.Copy:
		e.copyRow()
	case input.Cut:
		e.cutRow()
	case input.Paste:
		e.paste()
	case input.MatchBracket:
		e.jumpToBracket()
	}

	e.scroll()
}

// handleQuit quits at once when the document is clean. With unsaved changes
// the user must press quit QuitTimes times in a row.
func (e *Editor) handleQuit() {
	if e.doc.IsDirty() && e.quitLeft > 1 {
		e.quitLeft--
		e.setStatus(fmt.Sprintf("WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitLeft))
		return
	}
	e.quit = true
}

func (e *Editor) startSearch() {
	e.search.Begin(e.cursor)
	e.prompt.Begin(prompt.Search, "Search (Esc to cancel, arrows to navigate)", e.search)
}

func (e *Editor) save() {
	if e.doc.FileName() == "" {
		e.prompt.Begin(prompt.SaveAs, "Save as", nil)
		return
	}
	e.reportSave(e.doc.Save())
}

func (e *Editor) reportSave(err error) {
	if err != nil {
		log.ErrorErr(log.CatUI, "save failed", err, "path", e.doc.FileName())
		e.setStatus("Error writing file!")
		return
	}
	e.setStatus("File saved successfully.")
}

// handlePrompt feeds a key to the active prompt and acts on its outcome.
func (e *Editor) handlePrompt(ev input.Event) {
	kind := e.prompt.Kind()
	state := e.prompt.Handle(ev)
	if kind == prompt.Search && e.search.Active() {
		e.cursor = e.search.Cursor()
	}

	switch state {
	case prompt.Confirmed:
		text := e.prompt.Text()
		e.prompt.Reset()
		switch kind {
		case prompt.Search:
			e.cursor = e.search.Accept()
			e.endSearch()
		case prompt.SaveAs:
			e.reportSave(e.doc.SaveAs(text))
		}
	case prompt.Cancelled:
		e.prompt.Reset()
		switch kind {
		case prompt.Search:
			e.cursor = e.search.Cancel()
			e.endSearch()
		case prompt.SaveAs:
			e.setStatus("Save aborted.")
		}
	}
}

func (e *Editor) endSearch() {
	e.doc.Highlight("", document.AllRows)
	e.setStatus("")
}

func (e *Editor) setStatus(text string) {
	e.status = statusMessage{text: text, at: e.opts.Now()}
}

// Cursor returns the cursor position.
func (e *Editor) Cursor() document.Position {
	return e.cursor
}

// Document returns the document being edited.
func (e *Editor) Document() *document.Document {
	return e.doc
}

// Status returns the current status message, empty once it has expired.
func (e *Editor) Status() string {
	if e.opts.Now().Sub(e.status.at) >= e.opts.StatusTimeout {
		return ""
	}
	return e.status.text
}

// Quitting reports whether the user has asked to quit.
func (e *Editor) Quitting() bool {
	return e.quit
}
