package document

import "fmt"

// Position is a cursor location in character offsets.
// Row may equal RowCount() and Col may equal the row length (append).
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Direction selects the scan order of Find.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Clamp returns the nearest valid cursor position to p.
// Clamp возвращает ближайшую допустимую позицию курсора.
func (d *Document) Clamp(p Position) Position {
	n := len(d.lines)
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row > n {
		p.Row = n
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if l := d.LineLen(p.Row); p.Col > l {
		p.Col = l
	}
	return p
}

// Next moves p one character forward, stepping onto the next row at the end
// of a row. The row past the last one is a valid stop.
// Next сдвигает позицию на один символ вперёд.
func (d *Document) Next(p Position) Position {
	p = d.Clamp(p)
	if p.Col < d.LineLen(p.Row) {
		p.Col++
	} else if p.Row < len(d.lines) {
		p.Row++
		p.Col = 0
	}
	return p
}

// Prev moves p one character back, stepping onto the end of the previous row.
// Prev сдвигает позицию на один символ назад.
func (d *Document) Prev(p Position) Position {
	p = d.Clamp(p)
	if p.Col > 0 {
		p.Col--
	} else if p.Row > 0 {
		p.Row--
		p.Col = d.LineLen(p.Row)
	}
	return p
}
