package rewrite

import "github.com/formshift/formshift/scanner"

// callArgs extracts the raw argument text of a call whose opening paren
// has already been consumed: start is the index immediately after the
// '('. It returns the text up to the matching close paren, the index of
// that paren, and true.
//
// If the input ends before the call is balanced, it returns the entire
// remaining text, len(content), and false. Malformed or truncated input
// is expected in free text, so this is a degraded result rather than an
// error; the caller decides whether to surface a diagnostic.
func callArgs(content string, start int) (string, int, bool) {
	var t scanner.Tracker
	for i := start; i < len(content); i++ {
		t.Step(content[i])
		// The open paren consumed before start puts the true depth at
		// ParenDepth()+1, so the matching close is the byte that takes
		// the tracker negative.
		if t.ParenDepth() < 0 {
			return content[start:i], i, true
		}
	}
	return content[start:], len(content), false
}
