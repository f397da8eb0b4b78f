package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(s string) *Tracker {
	var t Tracker
	for i := 0; i < len(s); i++ {
		t.Step(s[i])
	}
	return &t
}

func TestTracker_StartsAtTopLevel(t *testing.T) {
	var tr Tracker
	assert.Equal(t, Code, tr.State())
	assert.True(t, tr.TopLevel())
	assert.False(t, tr.InString())
}

func TestTracker_DepthTracking(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		parens   int
		brackets int
	}{
		{"balanced parens", "(a(b))", 0, 0},
		{"open paren", "(a(b)", 1, 0},
		{"balanced brackets", "[a, [b]]", 0, 0},
		{"open bracket", "[[x]", 1, 0},
		{"mixed", "f([a, (b)]", 1, 0},
		{"negative parens", "a))", -2, 0},
		{"negative brackets", "a]", 0, -1},
		{"closers in string ignored", `")" + "]"`, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := scan(tt.input)
			assert.Equal(t, tt.parens, tr.ParenDepth())
			assert.Equal(t, tt.brackets, tr.BracketDepth())
		})
	}
}

func TestTracker_StringState(t *testing.T) {
	tr := scan(`x = "hel`)
	assert.Equal(t, InString, tr.State())
	assert.Equal(t, byte('"'), tr.Quote())
	assert.True(t, tr.InString())

	tr = scan(`x = "hello"`)
	assert.Equal(t, Code, tr.State())
	assert.Equal(t, byte(0), tr.Quote())

	// Double quote inside a single-quoted string does not open a string.
	tr = scan(`'say "hi`)
	assert.Equal(t, byte('\''), tr.Quote())
}

func TestTracker_EscapedQuoteStaysInString(t *testing.T) {
	// 'it\'s' — the escaped quote must not terminate the literal
	tr := scan(`'it\'`)
	assert.True(t, tr.InString())
	tr = scan(`'it\'s'`)
	assert.False(t, tr.InString())
}

func TestTracker_EscapeOutsideString(t *testing.T) {
	// A backslash escapes the next byte even outside strings, so an
	// escaped paren does not change depth.
	tr := scan(`\(`)
	assert.Equal(t, 0, tr.ParenDepth())
	assert.Equal(t, Code, tr.State())
}

func TestTracker_StepReportsCode(t *testing.T) {
	var tr Tracker
	input := `a"b"c`
	var code []byte
	for i := 0; i < len(input); i++ {
		if tr.Step(input[i]) {
			code = append(code, input[i])
		}
	}
	assert.Equal(t, "ac", string(code))
}

func TestMatchingClose(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		openPos int
		want    int
	}{
		{"simple", "(abc)", 0, 4},
		{"nested", "(a(b))", 0, 5},
		{"bracket", "[a, b]", 0, 5},
		{"close in string ignored", `(")")`, 0, 4},
		{"escaped close ignored", `(\))`, 0, 3},
		{"unterminated", "(abc", 0, -1},
		{"not an opener", "abc)", 0, -1},
		{"out of range", "()", 5, -1},
		{"array form", "array('a' => 'b')", 5, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchingClose(tt.input, tt.openPos))
		})
	}
}

func TestSplitTopLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"flat", "a,b,c", []string{"a", "b", "c"}},
		{"empty", "", []string{""}},
		{"no separator", "abc", []string{"abc"}},
		{"comma in parens", "f(a,b),c", []string{"f(a,b)", "c"}},
		{"comma in brackets", "[a,b],c", []string{"[a,b]", "c"}},
		{"comma in string", `"a,b",c`, []string{`"a,b"`, "c"}},
		{"comma in single quotes", `'a,b',c`, []string{`'a,b'`, "c"}},
		{"unbalanced bracket in string", `"]",a,b`, []string{`"]"`, "a", "b"}},
		{"escaped comma", `a\,b,c`, []string{`a\,b`, "c"}},
		{"trailing comma", "a,", []string{"a", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTopLevel(tt.input, ',')
			require.Equal(t, tt.want, got)
		})
	}
}
