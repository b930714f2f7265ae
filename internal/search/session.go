// Package search drives incremental search on top of a document's Find.
package search

import (
	"voider/internal/document"
	"voider/internal/input"
	"voider/internal/log"
)

// Finder is the part of a document a search session needs.
type Finder interface {
	Find(query string, from document.Position, dir document.Direction) (document.Position, bool)
	Next(p document.Position) document.Position
}

// State is the lifecycle of a session: Idle -> Active -> Accepted|Cancelled -> Idle.
type State int

const (
	Idle State = iota
	Active
	Accepted
	Cancelled
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Accepted:
		return "accepted"
	case Cancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

// Session tracks one interactive search. It is the per-keystroke hook of a
// search prompt.
//
// Session хранит состояние интерактивного поиска.
type Session struct {
	finder  Finder
	state   State
	outcome State

	origin document.Position
	cursor document.Position
	dir    document.Direction
	word   string
}

// NewSession creates an idle session searching f.
func NewSession(f Finder) *Session {
	return &Session{finder: f}
}

// Begin records cursor as the restore point and starts searching forward.
func (s *Session) Begin(cursor document.Position) {
	s.state = Active
	s.origin = cursor
	s.cursor = cursor
	s.dir = document.Forward
	s.word = ""
	log.Debug(log.CatSearch, "search started", "at", cursor.String())
}

// OnKey reacts to a key typed into the search prompt. query is the prompt
// text after the key was applied.
//
// Right and Down step past the current match and search forward; Left and Up
// search backward from the cursor; anything else searches forward from it.
// A step that finds nothing is undone.
//
// OnKey обрабатывает нажатие клавиши во время поиска.
func (s *Session) OnKey(ev input.Event, query string) {
	if s.state != Active {
		return
	}

	prev := s.cursor
	moved := false
	switch ev.Key {
	case input.Right, input.Down:
		s.dir = document.Forward
		s.cursor = s.finder.Next(s.cursor)
		moved = true
	case input.Left, input.Up:
		s.dir = document.Backward
	default:
		s.dir = document.Forward
	}

	s.word = query
	if pos, ok := s.finder.Find(query, s.cursor, s.dir); ok {
		s.cursor = pos
		return
	}
	if moved {
		s.cursor = prev
	}
}

// Accept ends the session keeping the current match and returns it.
func (s *Session) Accept() document.Position {
	s.finish(Accepted)
	return s.cursor
}

// Cancel ends the session and returns the position it started from.
func (s *Session) Cancel() document.Position {
	s.finish(Cancelled)
	s.cursor = s.origin
	return s.origin
}

func (s *Session) finish(outcome State) {
	log.Debug(log.CatSearch, "search finished", "outcome", outcome.String(), "query", s.word)
	s.outcome = outcome
	s.state = Idle
	s.word = ""
}

// Cursor is the working cursor: the current match or the start position.
func (s *Session) Cursor() document.Position {
	return s.cursor
}

// Word is the query to overlay as Match while the session is active.
func (s *Session) Word() string {
	return s.word
}

func (s *Session) Direction() document.Direction {
	return s.dir
}

func (s *Session) State() State {
	return s.state
}

// Outcome reports how the last session ended.
func (s *Session) Outcome() State {
	return s.outcome
}

// Active reports whether a search is in progress.
func (s *Session) Active() bool {
	return s.state == Active
}
