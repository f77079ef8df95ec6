package gameplay

import (
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/state"
)

// applyEffects fires every effect bound to a freshly solved puzzle
func applyEffects(g *state.Game, p world.Puzzle) {
	for _, e := range g.Effects[p] {
		switch e := e.(type) {
		case state.SpawnKey:
			spawnKey(g, e)
		case state.RevealExit:
			revealExit(g, e)
		}
	}
}

// spawnKey places the key in its room, or in the inventory if the room is gone
func spawnKey(g *state.Game, e state.SpawnKey) {
	key := world.NewKey(e.Key, e.Value)

	if id, ok := g.World.FindRoomByName(e.Room); ok {
		g.World.MustRoom(id).AddItem(key)
		g.Logger.Debug("key spawned", "item", key.Name(), "room", g.World.Name(id))
		say(g, "KEY_REVEALED", key.Name(), g.World.Name(id))
		return
	}

	g.Player.AddItem(key)
	g.Logger.Warn("key room missing, key added to inventory", "item", key.Name(), "room", e.Room)
	say(g, "KEY_TO_INVENTORY", key.Name())
}

// revealExit opens the way to the exit and queues a hint about it.
// Only the first reveal has any effect.
func revealExit(g *state.Game, e state.RevealExit) {
	if g.ExitRevealed {
		return
	}
	g.ExitRevealed = true
	if err := g.World.Connect(e.From, e.To); err != nil {
		g.Logger.Error("reveal exit", "error", err)
		return
	}
	if e.Hint != "" {
		g.AddHint(e.Hint)
	}
	g.Logger.Debug("exit revealed", "from", g.World.Name(e.From), "room", g.World.Name(e.To))
	say(g, "NEW_PATH")
}
