package renderer

import (
	"regexp"
	"strings"
)

// markupPattern matches FUNCTION{operand} markup in messages
var markupPattern = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)

// ApplyMarkup replaces every FUNCTION{operand} in msg with the result of fn
func ApplyMarkup(msg string, fn func(function, operand string) string) string {
	matches := markupPattern.FindAllStringSubmatch(msg, -1)
	for _, match := range matches {
		msg = strings.Replace(msg, match[0], fn(match[1], match[2]), -1)
	}
	return msg
}

// StripMarkup removes markup, keeping the operands as plain text
func StripMarkup(msg string) string {
	return ApplyMarkup(msg, func(_, operand string) string {
		return operand
	})
}
