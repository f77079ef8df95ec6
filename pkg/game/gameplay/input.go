// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"fmt"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// Result tells the run loop what a command did
type Result struct {
	// Turn is true when the command used a turn (a successful move or back)
	Turn bool
	// Quit is true when the player asked to leave
	Quit bool
}

// ProcessCommand parses and runs a single command line
func ProcessCommand(g *state.Game, ask renderer.Prompter, line string) (Result, error) {
	return ProcessIntent(g, ask, engineinput.ParseIntent(line))
}

// ProcessIntent runs a parsed command against the game
func ProcessIntent(g *state.Game, ask renderer.Prompter, intent engineinput.Intent) (Result, error) {
	switch intent.Action {
	case engineinput.ActionNone:
		return Result{}, nil

	case engineinput.ActionLook:
		Look(g)
		return Result{}, nil

	case engineinput.ActionMove:
		if intent.Arg == "" {
			return Result{}, usageError("move <room>")
		}
		moved, err := Move(g, intent.Arg)
		return Result{Turn: moved}, err

	case engineinput.ActionBack:
		return Result{Turn: Back(g)}, nil

	case engineinput.ActionPickup:
		if intent.Arg == "" {
			return Result{}, usageError("pickup <item>")
		}
		Pickup(g, intent.Arg)
		return Result{}, nil

	case engineinput.ActionInventory:
		return Result{}, ShowInventory(g, intent.Arg)

	case engineinput.ActionSolve:
		if intent.Arg == "" {
			return Result{}, usageError("solve <puzzle>")
		}
		return Result{}, Solve(g, ask, intent.Arg)

	case engineinput.ActionMap:
		ShowMap(g)
		return Result{}, nil

	case engineinput.ActionHint:
		ShowLastHint(g)
		return Result{}, nil

	case engineinput.ActionHelp:
		ShowHelp(g)
		return Result{}, nil

	case engineinput.ActionQuit:
		g.Over = true
		say(g, "GOODBYE")
		return Result{Quit: true}, nil
	}

	return Result{}, fmt.Errorf("%w %q, type 'help' to see the command list", ErrInvalidCommand, intent.Verb)
}

// Step processes one command line and then does the turn bookkeeping:
// the turn counter, a hint every third turn, and the win check.
// A failed command changes nothing and skips the bookkeeping.
func Step(g *state.Game, ask renderer.Prompter, line string) (Result, error) {
	intent := engineinput.ParseIntent(line)
	if intent.Action == engineinput.ActionNone {
		return Result{}, nil
	}

	res, err := ProcessIntent(g, ask, intent)
	if err != nil {
		g.Logger.Debug("command failed", "command", intent.Verb, "error", err)
		return res, err
	}

	if res.Turn {
		g.Turns++
		surfaceHint(g)
	}
	if !g.Over {
		CheckWin(g)
	}
	return res, nil
}
