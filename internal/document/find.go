package document

// Find looks for a case-sensitive occurrence of query starting at from.
//
// Forward returns the first match starting at or after from.Col on the start
// row, then the first match on each following row, wrapping to the top, and
// finally a match earlier on the start row. Backward mirrors it: the last
// match starting before from.Col, then the last match on each preceding row,
// wrapping to the bottom, then a later match on the start row. At most one
// full wrap is made. An empty query never matches.
//
// Find ищет строку query начиная с позиции from в заданном направлении.
func (d *Document) Find(query string, from Position, dir Direction) (Position, bool) {
	q := []rune(query)
	n := len(d.lines)
	if len(q) == 0 || n == 0 {
		return Position{}, false
	}
	if from.Row < 0 {
		from = Position{}
	}
	if from.Col < 0 {
		from.Col = 0
	}

	if dir == Backward {
		return d.findBackward(q, from)
	}
	return d.findForward(q, from)
}

func (d *Document) findForward(q []rune, from Position) (Position, bool) {
	n := len(d.lines)
	if from.Row >= n {
		from = Position{}
	}
	if col := d.lines[from.Row].find(q, from.Col); col >= 0 {
		return Position{Row: from.Row, Col: col}, true
	}
	for k := 1; k < n; k++ {
		row := (from.Row + k) % n
		if col := d.lines[row].find(q, 0); col >= 0 {
			return Position{Row: row, Col: col}, true
		}
	}
	if col := d.lines[from.Row].find(q, 0); col >= 0 {
		return Position{Row: from.Row, Col: col}, true
	}
	return Position{}, false
}

func (d *Document) findBackward(q []rune, from Position) (Position, bool) {
	n := len(d.lines)
	if from.Row >= n {
		from = Position{Row: n - 1, Col: d.lines[n-1].Len() + 1}
	}
	if col := d.lines[from.Row].findLast(q, from.Col); col >= 0 {
		return Position{Row: from.Row, Col: col}, true
	}
	for k := 1; k < n; k++ {
		row := ((from.Row-k)%n + n) % n
		if col := d.lines[row].findLast(q, d.lines[row].Len()+1); col >= 0 {
			return Position{Row: row, Col: col}, true
		}
	}
	if col := d.lines[from.Row].findLast(q, d.lines[from.Row].Len()+1); col >= 0 {
		return Position{Row: from.Row, Col: col}, true
	}
	return Position{}, false
}
