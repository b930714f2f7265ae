// Package syntax classifies the characters of a row for display.
//
// Classification is per character and carries a small lexical State from
// the end of one row into the start of the next, so constructs such as
// block comments can span rows.
package syntax

import "fmt"

// Kind is the display classification of a single character.
type Kind uint8

const (
	None Kind = iota
	Number
	String
	Character
	Comment
	Keyword1
	Keyword2
	Match
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Number:
		return "number"
	case String:
		return "string"
	case Character:
		return "character"
	case Comment:
		return "comment"
	case Keyword1:
		return "keyword1"
	case Keyword2:
		return "keyword2"
	case Match:
		return "match"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Mode is the lexical mode carried across a row boundary.
type Mode uint8

const (
	Normal Mode = iota
	InString
	InBlockComment
)

// State is carried from the end of row i into the start of row i+1.
// Quote is only meaningful when Mode is InString.
type State struct {
	Mode  Mode
	Quote rune
}

func (s State) String() string {
	switch s.Mode {
	case InString:
		return fmt.Sprintf("in-string(%q)", s.Quote)
	case InBlockComment:
		return "in-block-comment"
	default:
		return "normal"
	}
}
