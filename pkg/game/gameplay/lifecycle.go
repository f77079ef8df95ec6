// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"errors"
	"fmt"
	"io"

	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// Welcome queues the opening banner and the command list
func Welcome(g *state.Game) {
	say(g, "WELCOME")
	ShowHelp(g)
	say(g, "HELP_TIP")
}

// Run plays the game until the player quits, escapes, or input ends.
// Command errors are shown to the player and never end the game.
func Run(g *state.Game, r renderer.Renderer) error {
	g.Logger.Info("session started", "room", g.CurrentRoomName())

	Welcome(g)
	r.RenderFrame(g)
	r.RenderStatus(g)

	for !g.Over {
		line, err := r.GetInput(g)
		if err != nil {
			if errors.Is(err, io.EOF) {
				endOfInput(g)
				break
			}
			return fmt.Errorf("read command: %w", err)
		}

		res, err := Step(g, r, line)
		if err != nil {
			if errors.Is(err, io.EOF) {
				endOfInput(g)
				break
			}
			logMessage(g, "DENIED{Error}: %v", err)
		}

		r.RenderFrame(g)
		if res.Turn {
			r.RenderStatus(g)
		}
	}

	r.RenderFrame(g)
	g.Logger.Info("session ended", "turns", g.Turns, "won", g.Won)
	return nil
}

func endOfInput(g *state.Game) {
	g.Over = true
	say(g, "GOODBYE")
}
