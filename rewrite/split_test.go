package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \t ", nil},
		{"single", "$name", []string{"$name"}},
		{"three top-level", "a, b(c, d), [e, f]", []string{"a", "b(c, d)", "[e, f]"}},
		{"comma in string", `'a,b', c`, []string{"'a,b'", "c"}},
		{"comma in nested brackets", "[['a', 'b'], 'c'], d", []string{"[['a', 'b'], 'c']", "d"}},
		{"unbalanced bracket in string", `']', a`, []string{"']'", "a"}},
		{"escaped quote in string", `'it\'s, fine', b`, []string{`'it\'s, fine'`, "b"}},
		{"trailing comma dropped", "a, b,", []string{"a", "b"}},
		{"trailing whitespace segment dropped", "a,  ", []string{"a"}},
		{"inner empty segment kept", "a,,b", []string{"a", "", "b"}},
		{"whitespace trimmed", "  a ,\n\tb ", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitArgs(tt.input))
		})
	}
}
