package editor

import (
	"strings"

	"voider/internal/document"
	"voider/internal/input"
	"voider/internal/log"
)

// moveCursor applies a motion key. PageUp and PageDown move by one screen of
// text; the column is clamped to the length of the row landed on.
//
// moveCursor перемещает курсор.
func (e *Editor) moveCursor(k input.Key) {
	p := e.cursor
	rows := e.doc.RowCount()

	switch k {
	case input.Up:
		if p.Row > 0 {
			p.Row--
		}
	case input.Down:
		if p.Row < rows {
			p.Row++
		}
	case input.Left:
		p = e.doc.Prev(p)
	case input.Right:
		p = e.doc.Next(p)
	case input.PageUp:
		p.Row -= max(e.height, 1)
		if p.Row < 0 {
			p.Row = 0
		}
	case input.PageDown:
		p.Row += max(e.height, 1)
		if p.Row > rows {
			p.Row = rows
		}
	case input.Home:
		p.Col = 0
	case input.End:
		p.Col = e.doc.LineLen(p.Row)
	}

	e.cursor = e.doc.Clamp(p)
}

// copyRow puts the cursor row on the clipboard.
func (e *Editor) copyRow() {
	line, ok := e.doc.LineAt(e.cursor.Row)
	if !ok {
		return
	}
	if err := e.opts.Clipboard.WriteAll(line.String()); err != nil {
		log.ErrorErr(log.CatUI, "clipboard write failed", err)
		e.setStatus("Copy error: " + err.Error())
		return
	}
	e.setStatus("Line copied.")
}

// cutRow moves the cursor row to the clipboard and removes it.
// cutRow вырезает текущую строку в буфер обмена.
func (e *Editor) cutRow() {
	line, ok := e.doc.LineAt(e.cursor.Row)
	if !ok {
		return
	}
	if err := e.opts.Clipboard.WriteAll(line.String()); err != nil {
		log.ErrorErr(log.CatUI, "clipboard write failed", err)
		e.setStatus("Cut error: " + err.Error())
		return
	}
	e.doc.DeleteRow(e.cursor.Row)
	e.cursor = e.doc.Clamp(document.Position{Row: e.cursor.Row, Col: e.cursor.Col})
	e.setStatus("Line cut.")
}

// paste inserts the clipboard text at the cursor.
func (e *Editor) paste() {
	text, err := e.opts.Clipboard.ReadAll()
	if err != nil {
		log.ErrorErr(log.CatUI, "clipboard read failed", err)
		e.setStatus("Paste error: " + err.Error())
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return
	}
	e.cursor = e.doc.InsertString(e.cursor, text)
}

func (e *Editor) jumpToBracket() {
	if p, ok := e.doc.MatchBracket(e.cursor); ok {
		e.cursor = p
		return
	}
	e.setStatus("No matching bracket")
}
