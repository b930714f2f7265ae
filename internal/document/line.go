package document

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"voider/internal/syntax"
)

// DefaultTabStop is the tab width used when none is configured.
const DefaultTabStop = 4

// Span is a run of rendered text sharing one classification.
// Span представляет участок отрисованного текста с одним классом подсветки.
type Span struct {
	Text string
	Kind syntax.Kind
}

// cell is one terminal column of the rendered row. Wide characters occupy
// a single cell with width 2.
type cell struct {
	r     rune
	src   int
	width int
}

// Line is one row of text together with its classification and render cache.
// highlights always has the same length as content.
//
// Line хранит одну строку документа, её подсветку и кеш отрисовки.
type Line struct {
	content    []rune
	highlights []syntax.Kind

	inState  syntax.State
	outState syntax.State
	fresh    bool

	tabStop int
	cells   []cell
}

// NewLine creates a line holding text. Its classification is None until the
// owning document highlights it.
func NewLine(text string) *Line {
	return newLine([]rune(text), DefaultTabStop)
}

func newLine(content []rune, tabStop int) *Line {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	l := &Line{content: content, tabStop: tabStop}
	l.invalidate()
	return l
}

// Len returns the number of characters, not bytes.
func (l *Line) Len() int {
	return len(l.content)
}

func (l *Line) String() string {
	return string(l.content)
}

// Highlights returns a copy of the per-character classification.
func (l *Line) Highlights() []syntax.Kind {
	out := make([]syntax.Kind, len(l.highlights))
	copy(out, l.highlights)
	return out
}

// KindAt returns the classification of the character at col.
func (l *Line) KindAt(col int) syntax.Kind {
	if col < 0 || col >= len(l.highlights) {
		return syntax.None
	}
	return l.highlights[col]
}

// InsertAt inserts r before col. col is clamped to [0, Len()].
// InsertAt вставляет символ; позиция ограничивается длиной строки.
func (l *Line) InsertAt(col int, r rune) {
	col = clampCol(col, len(l.content))
	l.content = append(l.content, 0)
	copy(l.content[col+1:], l.content[col:])
	l.content[col] = r
	l.invalidate()
}

// DeleteAt removes the character at col. Deleting at or past the end does
// nothing and reports false.
// DeleteAt удаляет символ в позиции col.
func (l *Line) DeleteAt(col int) bool {
	if col < 0 || col >= len(l.content) {
		return false
	}
	l.content = append(l.content[:col], l.content[col+1:]...)
	l.invalidate()
	return true
}

// SplitAt returns two new lines holding the text before and after col.
func (l *Line) SplitAt(col int) (left, right *Line) {
	col = clampCol(col, len(l.content))
	head := make([]rune, col)
	copy(head, l.content[:col])
	tail := make([]rune, len(l.content)-col)
	copy(tail, l.content[col:])
	return newLine(head, l.tabStop), newLine(tail, l.tabStop)
}

// Append adds other's text to the end of l.
func (l *Line) Append(other *Line) {
	l.content = append(l.content, other.content...)
	l.invalidate()
}

func (l *Line) insertRunes(col int, rs []rune) {
	col = clampCol(col, len(l.content))
	tail := append([]rune(nil), l.content[col:]...)
	l.content = append(append(l.content[:col], rs...), tail...)
	l.invalidate()
}

// invalidate resets the classification to None and drops the render cache.
func (l *Line) invalidate() {
	if cap(l.highlights) >= len(l.content) {
		l.highlights = l.highlights[:len(l.content)]
	} else {
		l.highlights = make([]syntax.Kind, len(l.content))
	}
	for i := range l.highlights {
		l.highlights[i] = syntax.None
	}
	l.fresh = false
	l.cells = nil
}

// restyle reclassifies the line from the carried-in state.
func (l *Line) restyle(lang *syntax.Language, in syntax.State, query []rune) {
	if len(l.highlights) != len(l.content) {
		l.highlights = make([]syntax.Kind, len(l.content))
	}
	l.inState = in
	l.outState = syntax.Highlight(lang, in, l.content, query, l.highlights)
	l.fresh = true
}

// layout builds the render cache: tabs expanded to the next tab stop,
// every other character taking its terminal cell width.
func (l *Line) layout() []cell {
	if l.cells != nil {
		return l.cells
	}
	cells := make([]cell, 0, len(l.content))
	x := 0
	for i, r := range l.content {
		if r == '\t' {
			n := l.tabStop - x%l.tabStop
			for k := 0; k < n; k++ {
				cells = append(cells, cell{r: ' ', src: i, width: 1})
			}
			x += n
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			// Control and zero-width characters render as a placeholder.
			r, w = '?', 1
		}
		cells = append(cells, cell{r: r, src: i, width: w})
		x += w
	}
	l.cells = cells
	return cells
}

// RenderWidth returns the width of the rendered row in terminal cells.
func (l *Line) RenderWidth() int {
	w := 0
	for _, c := range l.layout() {
		w += c.width
	}
	return w
}

// RenderCol converts a character offset into a rendered column.
// RenderCol переводит позицию символа в колонку на экране.
func (l *Line) RenderCol(col int) int {
	x := 0
	for _, c := range l.layout() {
		if c.src >= col {
			break
		}
		x += c.width
	}
	return x
}

// Render returns the cells visible in the column window [start, end) as
// spans of equal classification. A wide character cut by the right edge is
// dropped; one cut by the left edge shows its visible part as blanks.
//
// Render возвращает видимую часть строки, разбитую на участки по подсветке.
func (l *Line) Render(start, end int) []Span {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return nil
	}

	var (
		spans []Span
		sb    strings.Builder
		kind  syntax.Kind
	)
	flush := func() {
		if sb.Len() > 0 {
			spans = append(spans, Span{Text: sb.String(), Kind: kind})
			sb.Reset()
		}
	}
	emit := func(s string, k syntax.Kind) {
		if k != kind {
			flush()
			kind = k
		}
		sb.WriteString(s)
	}

	x := 0
	for _, c := range l.layout() {
		left, right := x, x+c.width
		x = right
		if right <= start {
			continue
		}
		if left >= end || right > end {
			break
		}
		k := l.KindAt(c.src)
		if left < start {
			emit(strings.Repeat(" ", right-start), k)
			continue
		}
		emit(string(c.r), k)
	}
	flush()
	return spans
}

func clampCol(col, n int) int {
	if col < 0 {
		return 0
	}
	if col > n {
		return n
	}
	return col
}

// find returns the start of the first match of q at or after from, or -1.
func (l *Line) find(q []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(q) <= len(l.content); i++ {
		if runesEqual(l.content[i:i+len(q)], q) {
			return i
		}
	}
	return -1
}

// findLast returns the start of the last match of q beginning before
// before, or -1.
func (l *Line) findLast(q []rune, before int) int {
	last := len(l.content) - len(q)
	if before-1 < last {
		last = before - 1
	}
	for i := last; i >= 0; i-- {
		if runesEqual(l.content[i:i+len(q)], q) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
