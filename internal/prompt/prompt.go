// Package prompt implements the single-line modal prompt shared by
// "save as" and incremental search.
//
// A prompt moves Idle -> Prompting -> Confirmed | Cancelled. The caller
// reads the outcome from Handle and calls Reset to return to Idle.
package prompt

import (
	"voider/internal/input"
)

// Kind says what the prompt is collecting.
type Kind int

const (
	SaveAs Kind = iota
	Search
)

func (k Kind) String() string {
	if k == Search {
		return "search"
	}
	return "save-as"
}

// State is the prompt's position in its lifecycle.
type State int

const (
	Idle State = iota
	Prompting
	Confirmed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Prompting:
		return "prompting"
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

// Hook observes every keystroke that edits or steers a search prompt.
// It receives the event and the prompt text after the event was applied.
type Hook interface {
	OnKey(ev input.Event, text string)
}

// Prompt is the modal input line.
// Prompt представляет строку ввода внизу экрана.
type Prompt struct {
	kind  Kind
	state State
	label string
	text  []rune
	hook  Hook
}

// Begin starts collecting input. hook may be nil and is only consulted for
// Search prompts.
func (p *Prompt) Begin(kind Kind, label string, hook Hook) {
	p.kind = kind
	p.state = Prompting
	p.label = label
	p.text = p.text[:0]
	p.hook = hook
}

// Handle applies one key press and returns the resulting state.
// Enter on an empty line cancels, like Escape.
//
// Handle обрабатывает нажатие клавиши в режиме ввода.
func (p *Prompt) Handle(ev input.Event) State {
	if p.state != Prompting {
		return p.state
	}

	switch ev.Key {
	case input.Enter:
		if len(p.text) == 0 {
			p.state = Cancelled
		} else {
			p.state = Confirmed
		}
		return p.state
	case input.Escape, input.Quit:
		p.state = Cancelled
		return p.state
	case input.Backspace, input.Delete:
		if len(p.text) > 0 {
			p.text = p.text[:len(p.text)-1]
		}
	case input.Rune:
		if ev.IsPrintable() && ev.Rune != '\t' {
			p.text = append(p.text, ev.Rune)
		}
	}

	if p.kind == Search && p.hook != nil {
		p.hook.OnKey(ev, string(p.text))
	}
	return p.state
}

// Reset returns the prompt to Idle and forgets its text.
func (p *Prompt) Reset() {
	p.state = Idle
	p.text = p.text[:0]
	p.label = ""
	p.hook = nil
}

func (p *Prompt) Kind() Kind {
	return p.kind
}

func (p *Prompt) State() State {
	return p.state
}

// Text returns what has been typed so far.
func (p *Prompt) Text() string {
	return string(p.text)
}

func (p *Prompt) Label() string {
	return p.label
}

// Active reports whether the prompt is collecting input.
func (p *Prompt) Active() bool {
	return p.state == Prompting
}

// Line is the text shown in the message bar while prompting.
func (p *Prompt) Line() string {
	return p.label + ": " + string(p.text)
}
