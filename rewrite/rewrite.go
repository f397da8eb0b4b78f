// Package rewrite converts legacy Laravel Collective facade calls
// (Form::x(...), Html::x(...), and aliased HtmlFacade forms) into the
// fluent html() builder API, leaving every other byte of the input
// untouched. It scans raw text with a small depth/string automaton
// rather than parsing PHP, so it tolerates malformed input and Blade
// templates alike.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

// aliasImportRe matches the facade import line, capturing the optional
// alias. The trailing newline is consumed so removal doesn't leave a
// blank line behind.
var aliasImportRe = regexp.MustCompile(`(?i)use\s+Collective\\Html\\HtmlFacade(?:\s+as\s+(\w+))?;[ \t]*\n?`)

// defaultAlias is the facade name used when the import carries no
// aliasing clause.
const defaultAlias = "HtmlFacade"

// Converter rewrites facade calls in a single text. The zero value is
// ready to use. A Converter holds no per-input state, so one instance
// may serve many goroutines as long as each Convert call gets its own
// input.
type Converter struct {
	// Facades lists extra facade names to rewrite in addition to Form,
	// Html, and any alias found in the input's import lines.
	Facades []string

	// Warn, when non-nil, receives a diagnostic for each degraded
	// rewrite, such as a call whose closing parenthesis was never
	// found before end of input.
	Warn func(msg string)
}

// Convert returns src with every recognized facade call replaced by its
// fluent equivalent. Output is byte-identical to the input outside
// recognized call sites and facade import lines, and converting the
// result again is a no-op.
func (c *Converter) Convert(src string) string {
	aliases := findAliases(src)
	src = aliasImportRe.ReplaceAllString(src, "")
	// Fully qualified call sites lose the leading backslash so the
	// prefix search below finds them.
	src = strings.ReplaceAll(src, `\Form::`, "Form::")

	seen := map[string]bool{}
	for _, facade := range c.facadeNames(aliases) {
		if facade == "" || seen[facade] {
			continue
		}
		seen[facade] = true
		src = c.convertFacade(src, facade)
	}
	return src
}

func (c *Converter) facadeNames(aliases []string) []string {
	names := []string{"Form", "Html"}
	names = append(names, c.Facades...)
	return append(names, aliases...)
}

// findAliases returns the facade names declared by import lines, in
// order of appearance. An import without an aliasing clause declares
// the default alias.
func findAliases(src string) []string {
	var aliases []string
	for _, m := range aliasImportRe.FindAllStringSubmatch(src, -1) {
		alias := m[1]
		if alias == "" {
			alias = defaultAlias
		}
		aliases = append(aliases, alias)
	}
	return aliases
}

// convertFacade performs one linear pass over src replacing calls of
// the form facade::method(...). Emitted replacement text is never
// re-scanned, and a prefix match that turns out not to be a call site
// is passed through with the search resuming right after it, so the
// pass always terminates.
func (c *Converter) convertFacade(src, facade string) string {
	prefix := facade + "::"
	var out strings.Builder
	out.Grow(len(src))

	idx := 0
	for {
		pos := strings.Index(src[idx:], prefix)
		if pos < 0 {
			out.WriteString(src[idx:])
			return out.String()
		}
		pos += idx

		// A match embedded in a longer identifier (MyForm::) is not
		// this facade.
		if pos > 0 && isIdentByte(src[pos-1]) {
			out.WriteString(src[idx : pos+len(prefix)])
			idx = pos + len(prefix)
			continue
		}

		nameEnd := pos + len(prefix)
		for nameEnd < len(src) && isIdentByte(src[nameEnd]) {
			nameEnd++
		}
		method := src[pos+len(prefix) : nameEnd]

		openPos := nameEnd
		for openPos < len(src) && isSpaceByte(src[openPos]) {
			openPos++
		}
		if method == "" || openPos >= len(src) || src[openPos] != '(' {
			// Not an invocation (method reference, constant access,
			// longer identifier): pass through as plain text.
			out.WriteString(src[idx : pos+len(prefix)])
			idx = pos + len(prefix)
			continue
		}

		args, end, balanced := callArgs(src, openPos+1)
		if !balanced {
			c.warnf("%s%s: closing parenthesis not found, consumed to end of input", prefix, method)
		}
		out.WriteString(src[idx:pos])
		out.WriteString(c.replace(method, splitArgs(args)))
		if !balanced {
			return out.String()
		}
		idx = end + 1
	}
}

// replace maps one recognized call to its replacement text. Methods
// missing from the rule table are re-emitted as a generic fluent call
// with the original arguments joined back together.
func (c *Converter) replace(method string, args []string) string {
	if r, ok := rules[method]; ok {
		return r(args)
	}
	return "html()->" + method + "(" + strings.Join(args, ", ") + ")"
}

func (c *Converter) warnf(format string, a ...any) {
	if c.Warn != nil {
		c.Warn(fmt.Sprintf(format, a...))
	}
}

func isIdentByte(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

func isSpaceByte(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
