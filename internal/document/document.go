// Package document holds the editable text buffer: its rows, the file it
// came from, its language and the highlighting kept in step with every edit.
package document

import (
	"strings"

	"voider/internal/log"
	"voider/internal/syntax"
)

// AllRows as a Highlight limit recomputes every row.
const AllRows = -1

// Document is an ordered sequence of lines plus file metadata.
// Document хранит строки файла, имя файла, язык и флаг изменений.
type Document struct {
	lines    []*Line
	fileName string
	lang     *syntax.Language
	registry *syntax.Registry
	dirty    bool
	query    []rune
	tabStop  int
}

// Option configures a Document.
type Option func(*Document)

// WithTabStop sets the tab expansion width used when rendering.
func WithTabStop(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.tabStop = n
		}
	}
}

// New creates an empty untitled document.
// New создаёт пустой безымянный документ.
func New(reg *syntax.Registry, opts ...Option) *Document {
	d := &Document{registry: reg, tabStop: DefaultTabStop}
	for _, opt := range opts {
		opt(d)
	}
	d.lang = d.detect("")
	return d
}

// FromText creates a clean document from text, as if read from path.
// An empty text has no rows at all.
func FromText(text, path string, reg *syntax.Registry, opts ...Option) *Document {
	d := New(reg, opts...)
	d.fileName = path
	d.lang = d.detect(path)
	if text != "" {
		for _, s := range strings.Split(text, "\n") {
			d.lines = append(d.lines, newLine([]rune(s), d.tabStop))
		}
	}
	d.Highlight("", AllRows)
	return d
}

func (d *Document) detect(path string) *syntax.Language {
	if d.registry == nil {
		return syntax.Plain()
	}
	return d.registry.Detect(path)
}

// FileName returns the path the document is saved to, or "" if untitled.
func (d *Document) FileName() string {
	return d.fileName
}

// SetFileName changes the target path and re-detects the language.
func (d *Document) SetFileName(path string) {
	d.fileName = path
	lang := d.detect(path)
	if lang != d.lang {
		log.Info(log.CatSyntax, "language changed", "path", path, "language", lang.Name)
		d.lang = lang
		d.invalidateAll()
		d.Highlight(string(d.query), AllRows)
	}
}

// Language returns the language tag used for highlighting.
func (d *Document) Language() string {
	return d.lang.Name
}

// IsDirty reports whether the buffer differs from the last saved state.
func (d *Document) IsDirty() bool {
	return d.dirty
}

// RowCount returns the number of rows.
func (d *Document) RowCount() int {
	return len(d.lines)
}

// IsEmpty reports whether the document has no rows.
func (d *Document) IsEmpty() bool {
	return len(d.lines) == 0
}

// LineAt returns the line at row, if it exists.
func (d *Document) LineAt(row int) (*Line, bool) {
	if row < 0 || row >= len(d.lines) {
		return nil, false
	}
	return d.lines[row], true
}

// LineLen returns the length of row, or 0 when the row does not exist.
func (d *Document) LineLen(row int) int {
	if l, ok := d.LineAt(row); ok {
		return l.Len()
	}
	return 0
}

// Text returns all rows joined by a single newline.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, l := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(l.content))
	}
	return sb.String()
}

// Insert inserts r at p. A line break splits the row at p. Inserting on the
// row just past the end appends a new row.
// Insert вставляет символ; перевод строки разбивает строку на две.
func (d *Document) Insert(p Position, r rune) {
	p = d.Clamp(p)
	d.dirty = true

	if r == '\n' {
		if p.Row == len(d.lines) {
			d.lines = append(d.lines, newLine(nil, d.tabStop))
			d.restyleFrom(p.Row)
			return
		}
		left, right := d.lines[p.Row].SplitAt(p.Col)
		d.lines[p.Row] = left
		d.lines = append(d.lines, nil)
		copy(d.lines[p.Row+2:], d.lines[p.Row+1:])
		d.lines[p.Row+1] = right
		d.restyleFrom(p.Row)
		return
	}

	if p.Row == len(d.lines) {
		d.lines = append(d.lines, newLine(nil, d.tabStop))
	}
	d.lines[p.Row].InsertAt(p.Col, r)
	d.restyleFrom(p.Row)
}

// InsertString inserts s at p and returns the position just after it.
func (d *Document) InsertString(p Position, s string) Position {
	p = d.Clamp(p)
	for _, r := range strings.ReplaceAll(s, "\r\n", "\n") {
		d.Insert(p, r)
		if r == '\n' {
			p = Position{Row: p.Row + 1}
		} else {
			p.Col++
		}
	}
	return p
}

// Delete removes the character at p. At the end of a row the next row is
// merged into it. Nothing happens past the last character of the document.
// Delete удаляет символ или склеивает строку со следующей.
func (d *Document) Delete(p Position) {
	p = d.Clamp(p)
	if p.Row >= len(d.lines) {
		return
	}
	line := d.lines[p.Row]
	if p.Col < line.Len() {
		line.DeleteAt(p.Col)
		d.dirty = true
		d.restyleFrom(p.Row)
		return
	}
	if p.Row+1 < len(d.lines) {
		line.Append(d.lines[p.Row+1])
		d.lines = append(d.lines[:p.Row+1], d.lines[p.Row+2:]...)
		d.dirty = true
		d.restyleFrom(p.Row)
	}
}

// DeleteRow removes row entirely and returns its text.
func (d *Document) DeleteRow(row int) (string, bool) {
	if row < 0 || row >= len(d.lines) {
		return "", false
	}
	text := d.lines[row].String()
	d.lines = append(d.lines[:row], d.lines[row+1:]...)
	d.dirty = true
	if row < len(d.lines) {
		d.restyleFrom(row)
	}
	return text, true
}

// Highlight brings the classification of rows 0..limit up to date for
// query. limit AllRows (or any limit past the end) covers the whole
// document. A changed query invalidates every row; otherwise only rows
// edited since their last pass, or whose carried-in state moved, are redone.
//
// Highlight пересчитывает подсветку строк до limit включительно.
func (d *Document) Highlight(query string, limit int) {
	q := []rune(query)
	if !runesEqual(q, d.query) {
		d.query = q
		d.invalidateAll()
	}
	if len(d.lines) == 0 {
		return
	}
	if limit < 0 || limit >= len(d.lines) {
		limit = len(d.lines) - 1
	}

	var carried syntax.State
	redone := 0
	for i := 0; i <= limit; i++ {
		l := d.lines[i]
		if !l.fresh || l.inState != carried {
			l.restyle(d.lang, carried, d.query)
			redone++
		}
		carried = l.outState
	}
	if redone > 0 {
		log.Debug(log.CatSyntax, "highlight pass", "rows", redone, "limit", limit)
	}
}

// restyleFrom reclassifies row and the rows after it until a row that is
// already up to date receives the same carried-in state it was computed from.
// Stale rows just above row are redone first so the carried state is valid.
func (d *Document) restyleFrom(row int) {
	for row > 0 && !d.lines[row-1].fresh {
		row--
	}
	var carried syntax.State
	if row > 0 {
		carried = d.lines[row-1].outState
	}
	for i := row; i < len(d.lines); i++ {
		l := d.lines[i]
		if i > row && l.fresh && l.inState == carried {
			break
		}
		l.restyle(d.lang, carried, d.query)
		carried = l.outState
	}
}

func (d *Document) invalidateAll() {
	for _, l := range d.lines {
		l.fresh = false
	}
}
