// Package menu provides a generic numbered menu system for the game.
package menu

import (
	"fmt"
	"strconv"
	"strings"

	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
}

// MenuHandler handles menu item activation.
type MenuHandler interface {
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the question asked below the items.
	GetInstructions() string
	// OnActivate is called with the item the player picked.
	OnActivate(item MenuItem, index int)
}

// RunMenu lists the items numbered from 1 and reads the player's pick.
// It returns false, with nothing activated, when the reply is not the number
// of a selectable item. Errors come from the prompter only.
func RunMenu(g *state.Game, ask renderer.Prompter, items []MenuItem, handler MenuHandler) (bool, error) {
	logMessage(g, "%s", handler.GetTitle())
	for i, item := range items {
		logMessage(g, "%d) %s", i+1, item.GetLabel())
	}

	reply, err := ask.Prompt(g, handler.GetInstructions())
	if err != nil {
		return false, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil || n < 1 || n > len(items) || !items[n-1].IsSelectable() {
		return false, nil
	}

	handler.OnActivate(items[n-1], n-1)
	return true, nil
}

// Confirm asks a yes/no question. Only "yes" or "y" count as yes.
func Confirm(g *state.Game, ask renderer.Prompter, question string) (bool, error) {
	reply, err := ask.Prompt(g, question+" "+i18n.T("YES_NO"))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(reply)) {
	case "yes", "y":
		return true, nil
	default:
		return false, nil
	}
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(fmt.Sprintf(msg, a...))
}
