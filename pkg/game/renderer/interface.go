package renderer

import (
	"escaperoom/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleItem
	StylePuzzle
	StyleAction
	StyleActionShort
	StyleDenied
	StyleHint
	StyleSubtle
	StyleExit
)

// Prompter asks the player a question and returns the reply.
// Pending messages are shown before the question. At end of input it
// returns io.EOF.
type Prompter interface {
	Prompt(g *state.Game, label string) (string, error)
}

// Renderer defines the interface for game rendering backends
type Renderer interface {
	Prompter

	// Init initializes the renderer (colors, wrapping width, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame shows every pending message and clears the log
	RenderFrame(g *state.Game)

	// RenderStatus shows the turn counter, current room and escape checklist
	RenderStatus(g *state.Game)

	// GetInput reads the next command line. At end of input it returns io.EOF.
	GetInput(g *state.Game) (string, error)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}
