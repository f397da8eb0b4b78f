package rewrite

import (
	"strings"

	"github.com/formshift/formshift/scanner"
)

// splitArgs splits raw call argument text (without the enclosing parens)
// at top-level commas: paren depth 0, bracket depth 0, outside string
// literals. Segments are whitespace-trimmed. A trailing empty segment,
// as produced by a trailing comma or empty input, is dropped; empty
// segments elsewhere are preserved.
func splitArgs(s string) []string {
	segs := scanner.SplitTopLevel(s, ',')
	var parts []string
	for i, seg := range segs {
		seg = strings.TrimSpace(seg)
		if seg == "" && i == len(segs)-1 {
			continue
		}
		parts = append(parts, seg)
	}
	return parts
}
