package document

var (
	openBrackets  = map[rune]rune{'(': ')', '[': ']', '{': '}'}
	closeBrackets = map[rune]rune{')': '(', ']': '[', '}': '{'}
)

// MatchBracket finds the bracket paired with the one at p, or with the one
// just before p when p is not on a bracket. Only brackets of the same kind
// count towards nesting; the search may cross rows.
//
// MatchBracket находит парную скобку для скобки под курсором или перед ним.
func (d *Document) MatchBracket(p Position) (Position, bool) {
	if m, ok := d.matchAt(p); ok {
		return m, true
	}
	if p.Col > 0 {
		return d.matchAt(Position{Row: p.Row, Col: p.Col - 1})
	}
	return Position{}, false
}

func (d *Document) matchAt(p Position) (Position, bool) {
	line, ok := d.LineAt(p.Row)
	if !ok || p.Col < 0 || p.Col >= line.Len() {
		return Position{}, false
	}
	ch := line.content[p.Col]
	if closing, isOpen := openBrackets[ch]; isOpen {
		return d.scanForward(p, ch, closing)
	}
	if opening, isClose := closeBrackets[ch]; isClose {
		return d.scanBackward(p, opening, ch)
	}
	return Position{}, false
}

// scanForward searches forward for the closing bracket.
// scanForward ищет закрывающую скобку вперёд по тексту.
func (d *Document) scanForward(start Position, opening, closing rune) (Position, bool) {
	nesting := 1
	col := start.Col + 1
	for row := start.Row; row < len(d.lines); row++ {
		content := d.lines[row].content
		for ; col < len(content); col++ {
			switch content[col] {
			case opening:
				nesting++
			case closing:
				nesting--
				if nesting == 0 {
					return Position{Row: row, Col: col}, true
				}
			}
		}
		col = 0
	}
	return Position{}, false
}

// scanBackward searches backward for the opening bracket.
// scanBackward ищет открывающую скобку назад по тексту.
func (d *Document) scanBackward(start Position, opening, closing rune) (Position, bool) {
	nesting := 1
	col := start.Col - 1
	for row := start.Row; row >= 0; row-- {
		content := d.lines[row].content
		if row != start.Row {
			col = len(content) - 1
		}
		for ; col >= 0; col-- {
			switch content[col] {
			case closing:
				nesting++
			case opening:
				nesting--
				if nesting == 0 {
					return Position{Row: row, Col: col}, true
				}
			}
		}
	}
	return Position{}, false
}
