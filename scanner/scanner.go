// Package scanner provides string-boundary-aware scanning for the rewrite
// engine. It encapsulates the tracking of paren/bracket nesting depth,
// single- and double-quoted string literals, and escape sequences,
// eliminating the need for every caller to re-implement this logic.
package scanner

import "strings"

// State identifies what the tracker last scanned.
type State uint8

const (
	// Code means the tracker is outside any string literal.
	Code State = iota
	// InString means the tracker is inside a quoted literal;
	// Quote reports the delimiter.
	InString
	// EscapePending means the previous byte was a backslash: the next
	// byte is consumed literally no matter what it is, including
	// outside strings (mirrors the escaping convention of the scanned
	// source).
	EscapePending
)

// Tracker is a single-pass automaton over source bytes. Feed it one byte
// at a time via Step and query the string/escape state and nesting depths
// between steps.
//
// Depth counters are plain integers with no lower bound: unbalanced
// closers in malformed input drive them negative, and the arithmetic
// stays well-defined so callers can detect a close that matches an
// opener consumed before scanning started.
type Tracker struct {
	state    State
	quote    byte
	parens   int
	brackets int
}

// Step consumes one byte, updating string, escape, and depth state.
// It reports whether the byte was scanned as code: false means the byte
// was string content, a string delimiter, an escape, or the byte
// following one.
func (t *Tracker) Step(ch byte) bool {
	if t.state == EscapePending {
		if t.quote != 0 {
			t.state = InString
		} else {
			t.state = Code
		}
		return false
	}
	if ch == '\\' {
		t.state = EscapePending
		return false
	}
	if t.state == InString {
		if ch == t.quote {
			t.state = Code
			t.quote = 0
		}
		return false
	}
	switch ch {
	case '"', '\'':
		t.state = InString
		t.quote = ch
		return false
	case '(':
		t.parens++
	case ')':
		t.parens--
	case '[':
		t.brackets++
	case ']':
		t.brackets--
	}
	return true
}

// State returns the current automaton state.
func (t *Tracker) State() State { return t.state }

// Quote returns the delimiter of the string being scanned, or 0 when
// outside any string.
func (t *Tracker) Quote() byte { return t.quote }

// InString reports whether the current position is inside a string
// literal (escaped bytes within a string included).
func (t *Tracker) InString() bool { return t.quote != 0 }

// ParenDepth returns the current parenthesis nesting depth. May be
// negative on unbalanced input.
func (t *Tracker) ParenDepth() int { return t.parens }

// BracketDepth returns the current square-bracket nesting depth. May be
// negative on unbalanced input.
func (t *Tracker) BracketDepth() int { return t.brackets }

// TopLevel reports whether the tracker is at paren depth 0, bracket
// depth 0, and outside any string literal.
func (t *Tracker) TopLevel() bool {
	return t.parens == 0 && t.brackets == 0 && t.quote == 0
}

// MatchingClose scans s for the closer matching the paren or bracket at
// openPos, skipping string literals and escaped bytes. Returns the byte
// offset of the matching closer, or -1 if the input ends first or
// s[openPos] is not an opener.
func MatchingClose(s string, openPos int) int {
	if openPos < 0 || openPos >= len(s) {
		return -1
	}
	open := s[openPos]
	var close byte
	switch open {
	case '(':
		close = ')'
	case '[':
		close = ']'
	default:
		return -1
	}
	depth := 0
	var t Tracker
	for i := openPos; i < len(s); i++ {
		ch := s[i]
		if !t.Step(ch) {
			continue
		}
		if ch == open {
			depth++
		} else if ch == close {
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// SplitTopLevel splits s at every sep byte occurring at paren depth 0,
// bracket depth 0, and outside string literals. Separators are not
// included in the returned segments. Splitting an empty string returns
// one empty segment.
func SplitTopLevel(s string, sep byte) []string {
	var parts []string
	var cur strings.Builder
	var t Tracker
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if t.Step(ch) && ch == sep && t.TopLevel() {
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(ch)
	}
	return append(parts, cur.String())
}
