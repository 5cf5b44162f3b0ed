package renderer

import (
	"regexp"
	"strings"
)

// Markup functions understood by every backend
const (
	FuncTitle  = "TITLE"
	FuncAction = "ACTION"
	FuncAlert  = "ALERT"
	FuncPlayer = "PLAYER"
	FuncSubtle = "SUBTLE"
)

var markupPattern = regexp.MustCompile(`([A-Z_]+)\{([^{}]*)\}`)

// Mark wraps operand in a markup function
func Mark(function, operand string) string {
	return function + "{" + operand + "}"
}

// Expand replaces every markup call with style(function, operand). Text
// outside markup is left alone.
func Expand(text string, style func(function, operand string) string) string {
	return markupPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := markupPattern.FindStringSubmatch(m)
		return style(sub[1], sub[2])
	})
}

// StripMarkup returns text with every markup call replaced by its operand
func StripMarkup(text string) string {
	return Expand(text, func(_, operand string) string { return operand })
}

// Indent prefixes every line of text
func Indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
