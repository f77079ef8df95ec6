// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"fmt"
	"strings"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/state"
)

// CanEnter checks whether the player may enter a room, using up a key if needed.
// A regular room's key is removed from the inventory and the room stays
// unlocked. The exit's key is checked on every entry and never used up.
func CanEnter(g *state.Game, r *world.Room) error {
	if !r.Locked() {
		return nil
	}

	key := g.Player.FindKey(r)
	if key == nil {
		return &LockedRoomError{Room: r.Name(), Key: r.RequiredKey()}
	}

	if r.IsExit() {
		say(g, "EXIT_KEY_SHOWN", key.Name(), r.Name())
		return nil
	}

	g.Player.RemoveItem(key)
	r.Unlock()
	say(g, "KEY_USED", key.Name(), r.Name())
	g.Logger.Debug("room unlocked", "room", r.Name(), "key", key.Name())
	return nil
}

// Move moves the player to a connected room or a room inside the current one.
// It returns true if the player moved.
func Move(g *state.Game, target string) (bool, error) {
	cur := g.CurrentRoom()

	id, ok := g.World.FindConnection(cur.ID(), target)
	if !ok {
		id, ok = g.World.FindChild(cur.ID(), target)
	}
	if !ok {
		say(g, "ROOM_NOT_FOUND", target)
		say(g, "AVAILABLE_ROOMS")
		for _, name := range g.World.Names(cur.Connections()) {
			logMessage(g, "- ROOM{%s} %s", name, i18n.T("TAG_CONNECTED"))
		}
		for _, name := range g.World.Names(cur.Children()) {
			logMessage(g, "- ROOM{%s} %s", name, i18n.T("TAG_SUBROOM"))
		}
		return false, nil
	}

	dest := g.World.Room(id)
	if err := CanEnter(g, dest); err != nil {
		return false, err
	}

	g.Player.MoveTo(id)
	g.Logger.Debug("player moved", "from", cur.Name(), "room", dest.Name())
	say(g, "MOVED_TO", dest.Name())

	if dest.IsDeadEnd() {
		say(g, "DEAD_END")
	}
	return true, nil
}

// Back returns the player to the room they came from.
// It returns true if the player moved.
func Back(g *state.Game) bool {
	id, ok := g.Player.Back()
	if !ok {
		say(g, "CANNOT_GO_BACK")
		return false
	}
	g.Logger.Debug("player moved back", "room", g.World.Name(id))
	say(g, "MOVED_BACK", g.World.Name(id))
	return true
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(fmt.Sprintf(msg, a...))
}

// say adds a catalog message to the game's message log.
// Multi-line entries are split so each line is its own message.
func say(g *state.Game, key string, a ...any) {
	for _, line := range strings.Split(i18n.T(key, a...), "\n") {
		g.AddMessage(line)
	}
}
