// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"escaperoom/pkg/game/state"
)

// hintEvery is how many turns pass between surfaced hints
const hintEvery = 3

// surfaceHint shows the oldest queued hint on every third turn
func surfaceHint(g *state.Game) {
	if g.Turns == 0 || g.Turns%hintEvery != 0 {
		return
	}
	if hint, ok := g.NextHint(); ok {
		say(g, "HINT", hint)
	}
}

// ShowLastHint repeats the last hint shown, without using a turn
func ShowLastHint(g *state.Game) {
	if g.LastHint == "" {
		say(g, "NO_HINT_YET")
		return
	}
	say(g, "HINT", g.LastHint)
}
