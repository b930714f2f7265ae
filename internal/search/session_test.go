package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"voider/internal/document"
	"voider/internal/input"
	"voider/internal/prompt"
	"voider/internal/syntax"
)

func newDoc(t *testing.T, text string) *document.Document {
	t.Helper()
	reg, err := syntax.Builtin()
	require.NoError(t, err)
	return document.FromText(text, "", reg)
}

func pos(row, col int) document.Position {
	return document.Position{Row: row, Col: col}
}

var _ prompt.Hook = (*Session)(nil)

func TestSession_TypingJumpsToFirstMatch(t *testing.T) {
	d := newDoc(t, "one\ntwo one\nthree")
	s := NewSession(d)
	s.Begin(pos(0, 1))
	require.True(t, s.Active())
	require.Equal(t, document.Forward, s.Direction())

	s.OnKey(input.Char('o'), "o")
	require.Equal(t, pos(1, 2), s.Cursor())
	s.OnKey(input.Char('n'), "on")
	require.Equal(t, pos(1, 4), s.Cursor())
	require.Equal(t, "on", s.Word())
}

func TestSession_ArrowsStepThroughMatches(t *testing.T) {
	d := newDoc(t, "ab ab\nab")
	s := NewSession(d)
	s.Begin(pos(0, 0))

	s.OnKey(input.Char('a'), "a")
	s.OnKey(input.Char('b'), "ab")
	require.Equal(t, pos(0, 0), s.Cursor())

	s.OnKey(input.Of(input.Right), "ab")
	require.Equal(t, pos(0, 3), s.Cursor())
	s.OnKey(input.Of(input.Down), "ab")
	require.Equal(t, pos(1, 0), s.Cursor())
	s.OnKey(input.Of(input.Right), "ab")
	require.Equal(t, pos(0, 0), s.Cursor(), "wraps to the top")

	s.OnKey(input.Of(input.Left), "ab")
	require.Equal(t, document.Backward, s.Direction())
	require.Equal(t, pos(1, 0), s.Cursor(), "wraps to the bottom")
	s.OnKey(input.Of(input.Up), "ab")
	require.Equal(t, pos(0, 3), s.Cursor())
}

func TestSession_MissAfterStepRestoresCursor(t *testing.T) {
	d := newDoc(t, "abc")
	s := NewSession(d)
	s.Begin(pos(0, 0))

	s.OnKey(input.Char('z'), "z")
	require.Equal(t, pos(0, 0), s.Cursor())

	s.OnKey(input.Of(input.Right), "z")
	require.Equal(t, pos(0, 0), s.Cursor())
}

func TestSession_AcceptKeepsMatch(t *testing.T) {
	d := newDoc(t, "x\nfind me")
	s := NewSession(d)
	s.Begin(pos(0, 0))
	s.OnKey(input.Char('m'), "me")

	got := s.Accept()
	require.Equal(t, pos(1, 5), got)
	require.Equal(t, Accepted, s.Outcome())
	require.Equal(t, Idle, s.State())
	require.Equal(t, "", s.Word())

	// Keys after the session ended are ignored.
	s.OnKey(input.Char('x'), "x")
	require.Equal(t, pos(1, 5), s.Cursor())
}

func TestSession_CancelRestoresOrigin(t *testing.T) {
	d := newDoc(t, "x\nfind me")
	s := NewSession(d)
	s.Begin(pos(0, 1))
	s.OnKey(input.Char('f'), "f")
	require.Equal(t, pos(1, 0), s.Cursor())

	require.Equal(t, pos(0, 1), s.Cancel())
	require.Equal(t, pos(0, 1), s.Cursor())
	require.Equal(t, Cancelled, s.Outcome())
	require.Equal(t, "", s.Word())
}

func TestSession_DrivenByPrompt(t *testing.T) {
	d := newDoc(t, "alpha\nbeta")
	s := NewSession(d)
	var p prompt.Prompt

	s.Begin(pos(0, 0))
	p.Begin(prompt.Search, "Search", s)
	for _, r := range "bet" {
		p.Handle(input.Char(r))
	}
	require.Equal(t, pos(1, 0), s.Cursor())

	p.Handle(input.Of(input.Backspace))
	require.Equal(t, "be", s.Word())

	require.Equal(t, prompt.Confirmed, p.Handle(input.Of(input.Enter)))
	require.Equal(t, pos(1, 0), s.Accept())
}
