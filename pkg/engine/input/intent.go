package input

import (
	"strings"
	"unicode"
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota
	ActionUnknown

	// Movement
	ActionMove
	ActionBack

	// World
	ActionLook
	ActionPickup
	ActionSolve

	// Meta / UI
	ActionInventory
	ActionMap
	ActionHint
	ActionHelp
	ActionQuit
)

// Intent is what the player wants to do, parsed from a command line.
type Intent struct {
	Action Action
	// Verb is the word typed, lowercased
	Verb string
	// Arg is the rest of the line, trimmed
	Arg string
}

// verbs maps every accepted verb, including aliases, to its action
var verbs = map[string]Action{
	"move":      ActionMove,
	"back":      ActionBack,
	"look":      ActionLook,
	"pickup":    ActionPickup,
	"solve":     ActionSolve,
	"inventory": ActionInventory,
	"i":         ActionInventory,
	"map":       ActionMap,
	"hint":      ActionHint,
	"help":      ActionHelp,
	"quit":      ActionQuit,
	"exit":      ActionQuit,
}

// ParseIntent splits a command line into a verb and its argument.
// The verb is case-insensitive; a blank line is ActionNone.
func ParseIntent(line string) Intent {
	line = strings.TrimSpace(line)
	verb, arg := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		verb, arg = line[:i], line[i+1:]
	}
	verb = strings.ToLower(verb)
	if verb == "" {
		return Intent{Action: ActionNone}
	}

	action, ok := verbs[verb]
	if !ok {
		action = ActionUnknown
	}
	return Intent{Action: action, Verb: verb, Arg: strings.TrimSpace(arg)}
}
