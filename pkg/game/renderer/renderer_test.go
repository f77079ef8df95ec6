package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyMarkup(t *testing.T) {
	got := ApplyMarkup("Moved to: ROOM{Room 1}, found ITEM{key_room3}", func(function, operand string) string {
		return "<" + strings.ToLower(function) + ":" + operand + ">"
	})
	assert.Equal(t, "Moved to: <room:Room 1>, found <item:key_room3>", got)
}

func TestApplyMarkup_LeavesPlainText(t *testing.T) {
	msg := "What has hands but can not clap?"
	assert.Equal(t, msg, ApplyMarkup(msg, func(string, string) string { return "x" }))
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "Wrong answer! Try again.", StripMarkup("DENIED{Wrong answer}! Try again."))
	assert.Equal(t, "Hint: look around", StripMarkup("HINT{Hint}: look around"))
}
