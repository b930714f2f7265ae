package editor

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"voider/internal/prompt"
	"voider/internal/terminal"
)

const maxNameWidth = 20

// scroll moves the viewport so the cursor stays inside it. Columns are
// compared in rendered cells, so tabs and wide characters count fully.
func (e *Editor) scroll() {
	height, width := max(e.height, 1), max(e.width, 1)
	rx := e.renderX()

	if e.cursor.Row < e.rowOffset {
		e.rowOffset = e.cursor.Row
	} else if e.cursor.Row >= e.rowOffset+height {
		e.rowOffset = e.cursor.Row - height + 1
	}
	if rx < e.colOffset {
		e.colOffset = rx
	} else if rx >= e.colOffset+width {
		e.colOffset = rx - width + 1
	}
}

func (e *Editor) renderX() int {
	line, ok := e.doc.LineAt(e.cursor.Row)
	if !ok {
		return 0
	}
	return line.RenderCol(e.cursor.Col)
}

// refresh redraws the whole screen: text rows, status bar and message bar.
// refresh перерисовывает экран.
func (e *Editor) refresh() error {
	w, h, err := e.driver.Size()
	if err != nil {
		return err
	}
	e.width = w
	e.height = max(h-2, 0)
	e.scroll()

	e.doc.Highlight(e.search.Word(), e.rowOffset+e.height)

	for y := 0; y < e.height; y++ {
		e.driver.Paint(y, e.drawRow(y))
	}
	e.driver.Paint(e.height, []terminal.Segment{{Text: e.statusBar(), Style: e.opts.Theme.StatusBar}})
	e.driver.Paint(e.height+1, []terminal.Segment{{Text: e.messageBar(), Style: e.opts.Theme.Text}})

	if e.prompt.Active() && e.prompt.Kind() == prompt.SaveAs {
		x := min(uniseg.StringWidth(e.prompt.Line()), max(e.width-1, 0))
		e.driver.SetCursor(x, e.height+1)
	} else {
		e.driver.SetCursor(e.renderX()-e.colOffset, e.cursor.Row-e.rowOffset)
	}
	e.driver.Show()
	return nil
}

func (e *Editor) drawRow(y int) []terminal.Segment {
	row := e.rowOffset + y
	line, ok := e.doc.LineAt(row)
	if !ok {
		if e.doc.IsEmpty() && y == e.height/3 {
			return []terminal.Segment{{Text: welcome(e.opts.Version, e.width), Style: e.opts.Theme.Text}}
		}
		return []terminal.Segment{{Text: "~", Style: e.opts.Theme.Text}}
	}

	spans := line.Render(e.colOffset, e.colOffset+e.width)
	segs := make([]terminal.Segment, 0, len(spans))
	for _, s := range spans {
		segs = append(segs, terminal.Segment{Text: s.Text, Style: e.opts.Theme.Style(s.Kind)})
	}
	return segs
}

// welcome centres the version banner on a tilde row.
func welcome(version string, width int) string {
	msg := truncate(fmt.Sprintf("Voider -- version %s", version), width)
	pad := (width - uniseg.StringWidth(msg)) / 2
	if pad < 1 {
		return truncate("~"+msg, width)
	}
	return truncate("~"+strings.Repeat(" ", pad-1)+msg, width)
}

func (e *Editor) statusBar() string {
	name := e.doc.FileName()
	if name == "" {
		name = "[No Name]"
	}
	left := fmt.Sprintf("%s - %d lines", truncate(name, maxNameWidth), e.doc.RowCount())
	if e.doc.IsDirty() {
		left += " (modified)"
	}
	right := fmt.Sprintf("%s | %d/%d", e.doc.Language(), e.cursor.Row+1, e.doc.RowCount())

	gap := e.width - uniseg.StringWidth(left) - uniseg.StringWidth(right)
	if gap < 0 {
		gap = 0
	}
	return truncate(left+strings.Repeat(" ", gap)+right, e.width)
}

func (e *Editor) messageBar() string {
	if e.prompt.Active() {
		return truncate(e.prompt.Line(), e.width)
	}
	return truncate(e.Status(), e.width)
}

// truncate cuts s to at most width terminal cells without splitting a
// grapheme cluster.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var sb strings.Builder
	used := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width {
			break
		}
		sb.WriteString(cluster)
		used += w
	}
	return sb.String()
}
