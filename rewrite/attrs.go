package rewrite

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/formshift/formshift/scanner"
)

// attrPairRe matches one 'key' => 'value' pair inside an attribute array
// literal. Either quote style is accepted on either side; the value
// capture is non-greedy so it stops at the first closing quote.
var attrPairRe = regexp.MustCompile(`(?:'([\w-]+)'|"([\w-]+)")\s*=>\s*(?:'(.*?)'|"(.*?)")`)

// knownAttrSetters are the structural attribute keys that map to a
// dedicated fluent setter instead of the generic attribute() call.
var knownAttrSetters = map[string]bool{
	"class":       true,
	"id":          true,
	"name":        true,
	"type":        true,
	"value":       true,
	"placeholder": true,
}

// isArrayShaped reports whether expr is a literal array expression:
// a leading [ or array( whose closer is the final byte.
func isArrayShaped(expr string) bool {
	s := strings.TrimSpace(expr)
	switch {
	case strings.HasPrefix(s, "["):
		return scanner.MatchingClose(s, 0) == len(s)-1
	case strings.HasPrefix(s, "array("):
		return scanner.MatchingClose(s, len("array")) == len(s)-1
	}
	return false
}

// convertAttributes turns a literal attribute array expression into a
// chain of fluent setter calls, preserving pair order and duplicates:
//
//	['class' => 'btn', 'data-x' => '1']
//	  → ->class('btn')->attribute('data-x', '1')
//
// Input that is not array-shaped produces an empty string; the converter
// is defensive, not an error path.
func convertAttributes(expr string) string {
	s := strings.TrimSpace(expr)
	switch {
	case isArrayShaped(s) && strings.HasPrefix(s, "["):
		s = s[1 : len(s)-1]
	case isArrayShaped(s):
		s = s[len("array(") : len(s)-1]
	default:
		return ""
	}

	var chain strings.Builder
	for _, m := range attrPairRe.FindAllStringSubmatch(s, -1) {
		key := m[1]
		if key == "" {
			key = m[2]
		}
		val := m[3]
		if val == "" {
			val = m[4]
		}
		if knownAttrSetters[key] {
			fmt.Fprintf(&chain, "->%s('%s')", key, val)
		} else {
			fmt.Fprintf(&chain, "->attribute('%s', '%s')", key, val)
		}
	}
	return chain.String()
}
