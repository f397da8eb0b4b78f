package rewrite

import "strings"

// A rule maps the split argument list of one facade call to its fluent
// replacement text. Missing trailing arguments are defaulted per rule.
type rule func(args []string) string

// rules is the registry of recognized facade methods. Methods absent
// from the table are re-emitted through the generic fallback in
// Converter.replace.
var rules = map[string]rule{
	"open":      openRule,
	"close":     closeRule,
	"hidden":    fieldRule("hidden"),
	"email":     fieldRule("email"),
	"textarea":  fieldRule("textarea"),
	"number":    fieldRule("number"),
	"date":      fieldRule("date"),
	"time":      fieldRule("time"),
	"url":       fieldRule("url"),
	"search":    fieldRule("search"),
	"file":      fieldRule("file"),
	"text":      textRule,
	"password":  singleArgRule("password"),
	"submit":    singleArgRule("submit"),
	"button":    singleArgRule("button"),
	"select":    selectRule,
	"radio":     checkableRule("radio"),
	"checkbox":  checkableRule("checkbox"),
	"link":      linkRule,
	"linkRoute": linkRouteRule,
}

// fieldRule handles inputs with the signature (name, [value], [attrs]).
// The value is emitted only when present; a third argument is converted
// as an attribute array.
func fieldRule(method string) rule {
	return func(args []string) string {
		out := "html()->" + method + "("
		switch {
		case len(args) >= 2:
			out += args[0] + ", " + args[1]
		case len(args) == 1:
			out += args[0]
		}
		out += ")"
		if len(args) >= 3 {
			out += convertAttributes(args[2])
		}
		return out
	}
}

// singleArgRule handles methods taking (value, [attrs]).
func singleArgRule(method string) rule {
	return func(args []string) string {
		out := "html()->" + method + "("
		if len(args) >= 1 {
			out += args[0]
		}
		out += ")"
		if len(args) >= 2 {
			out += convertAttributes(args[1])
		}
		return out
	}
}

// textRule handles the overloaded (name, value-or-attrs, [attrs])
// signature: the legacy API accepts an attribute array in value
// position when no value is given, so the second argument is
// disambiguated by shape.
func textRule(args []string) string {
	out := "html()->text("
	attrs := ""
	switch {
	case len(args) >= 2 && isArrayShaped(args[1]):
		out += args[0]
		attrs = args[1]
	case len(args) >= 2:
		out += args[0] + ", " + args[1]
		if len(args) >= 3 {
			attrs = args[2]
		}
	case len(args) == 1:
		out += args[0]
	}
	out += ")"
	if attrs != "" {
		out += convertAttributes(attrs)
	}
	return out
}

// selectRule handles (name, options, [selected], [attrs]). The selected
// value becomes a chained setter and is omitted entirely when absent.
func selectRule(args []string) string {
	name, options := "''", "[]"
	if len(args) >= 1 {
		name = args[0]
	}
	if len(args) >= 2 {
		options = args[1]
	}
	out := "html()->select(" + name + ", " + options + ")"
	if len(args) >= 3 {
		out += "->selected(" + args[2] + ")"
	}
	if len(args) >= 4 {
		out += convertAttributes(args[3])
	}
	return out
}

// checkableRule handles (name, value, [checked], [attrs]) for radio and
// checkbox. The fluent API takes the checked flag positionally, so it
// defaults to the literal false when omitted.
func checkableRule(method string) rule {
	return func(args []string) string {
		name, value, checked := "''", "''", "false"
		if len(args) >= 1 {
			name = args[0]
		}
		if len(args) >= 2 {
			value = args[1]
		}
		if len(args) >= 3 {
			checked = args[2]
		}
		out := "html()->" + method + "(" + name + ", " + value + ", " + checked + ")"
		if len(args) >= 4 {
			out += convertAttributes(args[3])
		}
		return out
	}
}

// openRule maps Form::open. An attribute array argument becomes a
// setter chain ahead of open(); anything else is forwarded verbatim.
func openRule(args []string) string {
	if len(args) == 0 {
		return "html()->form()->open()"
	}
	raw := strings.Join(args, ", ")
	if isArrayShaped(raw) {
		return "html()->form()" + convertAttributes(raw) + "->open()"
	}
	return "html()->form()->open(" + raw + ")"
}

func closeRule(args []string) string {
	return "html()->form()->close()"
}

// linkRule handles (href, [title], [attrs], [escape]). The content
// setter depends on the escape flag: a false literal keeps the title
// unescaped via html(), anything else escapes via text().
func linkRule(args []string) string {
	href, title := "''", "''"
	if len(args) >= 1 {
		href = args[0]
	}
	if len(args) >= 2 {
		title = args[1]
	}
	out := "html()->a()->href(" + href + ")"
	out += attrArg(args, 2)
	out += contentSetter(args, 3, title)
	return out
}

// linkRouteRule handles (route, [title], [params], [attrs], [escape]).
func linkRouteRule(args []string) string {
	route, title, params := "''", "''", "[]"
	if len(args) >= 1 {
		route = args[0]
	}
	if len(args) >= 2 {
		title = args[1]
	}
	if len(args) >= 3 {
		params = args[2]
	}
	out := "html()->a()->route(" + route + ", " + params + ")"
	out += attrArg(args, 3)
	out += contentSetter(args, 4, title)
	return out
}

// attrArg renders the attributes argument at position idx: array-shaped
// literals become a converted setter chain, anything else is forwarded
// through a raw attributes() call.
func attrArg(args []string, idx int) string {
	if len(args) <= idx {
		return ""
	}
	if isArrayShaped(args[idx]) {
		return convertAttributes(args[idx])
	}
	return "->attributes(" + args[idx] + ")"
}

// contentSetter renders the link content using text() unless the escape
// flag at position idx is a false literal.
func contentSetter(args []string, idx int, title string) string {
	if len(args) > idx && isFalseLiteral(args[idx]) {
		return "->html(" + title + ")"
	}
	return "->text(" + title + ")"
}

func isFalseLiteral(s string) bool {
	return strings.EqualFold(s, "false") || s == "0"
}
