// Package input defines the logical key events the editor reacts to,
// independent of how a terminal encodes them.
package input

// Key identifies a logical key or editor action.
type Key int

const (
	Unknown Key = iota
	Rune
	Enter
	Backspace
	Delete
	Escape
	Up
	Down
	Left
	Right
	Home
	End
	PageUp
	PageDown
	Find
	Save
	Quit
	Copy
	Cut
	Paste
	MatchBracket
	Resize
)

var keyNames = map[Key]string{
	Unknown:      "unknown",
	Rune:         "rune",
	Enter:        "enter",
	Backspace:    "backspace",
	Delete:       "delete",
	Escape:       "escape",
	Up:           "up",
	Down:         "down",
	Left:         "left",
	Right:        "right",
	Home:         "home",
	End:          "end",
	PageUp:       "pgup",
	PageDown:     "pgdn",
	Find:         "find",
	Save:         "save",
	Quit:         "quit",
	Copy:         "copy",
	Cut:          "cut",
	Paste:        "paste",
	MatchBracket: "match-bracket",
	Resize:       "resize",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// Event is one key press. Rune is set only when Key is Rune; a tab arrives
// as Rune '\t'.
// Event описывает одно нажатие клавиши.
type Event struct {
	Key  Key
	Rune rune
}

// Char builds a printable-character event.
func Char(r rune) Event {
	return Event{Key: Rune, Rune: r}
}

// Of builds an event for a non-character key.
func Of(k Key) Event {
	return Event{Key: k}
}

// IsPrintable reports whether the event inserts text.
func (e Event) IsPrintable() bool {
	return e.Key == Rune && (e.Rune == '\t' || e.Rune >= ' ') && e.Rune != 0x7f
}

func (e Event) String() string {
	if e.Key == Rune {
		return string(e.Rune)
	}
	return e.Key.String()
}
