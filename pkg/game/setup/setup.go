// Package setup builds the escape room: rooms, items, puzzles and what solving them does.
package setup

import (
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/state"
)

// Room and item names the rest of the level refers to
const (
	StartRoom = "Entrance"
	ExitRoom  = "Exit Room"
	GoalRoom  = "5B"
	ExitKey   = "Exit_Key"
)

// BuildWorld creates a new game with the fixed escape room level:
// the map, its items and puzzles, the effects of solving them, the escape
// conditions and the onboarding hints.
func BuildWorld() (*state.Game, error) {
	b := newBuilder()

	buildRooms(b)
	placeItems(b)
	puzzles := placePuzzles(b)
	nestRooms(b)
	if b.err != nil {
		return nil, b.err
	}

	g := state.NewGame(b.w, b.id(StartRoom))
	g.World.SetRoot(b.id(StartRoom))
	g.Goal = b.id(GoalRoom)
	g.RequiredItems = []string{ExitKey}

	bindEffects(g, b, puzzles)
	if b.err != nil {
		return nil, b.err
	}

	for _, key := range []string{"HINT_EXPLORE_SUBROOMS", "HINT_KEYS_CONSUMED", "HINT_SOLVE_5B"} {
		g.AddHint(i18n.T(key))
	}
	return g, nil
}

// buildRooms creates the rooms, their locks and the doors between them
func buildRooms(b *builder) {
	b.room(StartRoom, i18n.T("DESC_ENTRANCE"))
	b.room("Hallway", i18n.T("DESC_HALLWAY"))
	b.room("Room 1", i18n.T("DESC_ROOM1"))
	b.room("Room 2", i18n.T("DESC_ROOM2"))
	b.room("Room 3", i18n.T("DESC_ROOM3"))
	b.room("Room 4", i18n.T("DESC_ROOM4"))
	b.room("Room 5", i18n.T("DESC_ROOM5"))
	b.exitRoom(ExitRoom, i18n.T("DESC_EXIT"), ExitKey)

	for _, name := range []string{"1A", "1B", "2A", "3A", "4A", "4B", "5A", GoalRoom} {
		b.room(name, "")
	}

	b.lock("Room 3", "key_room3")
	b.lock("Room 4", "key_room4")
	b.lock("Room 5", "key_room5")

	b.connect(StartRoom, "Hallway")
	b.connect("Hallway", "Room 1", "Room 2")
	b.connect("Room 1", "Room 3")
	b.connect("1A", "1B")
	b.connect("Room 2", "Room 4", "Room 5")
	b.connect("Room 4", "Room 5")
	b.connect("4A", "4B")
	b.connect("5A", GoalRoom)
}

// nestRooms places the subrooms. It runs after items and puzzles so that a
// room lists its own things before its subrooms.
func nestRooms(b *builder) {
	b.contain("Room 1", "1A", "1B")
	b.contain("Room 2", "2A")
	b.contain("Room 3", "3A")
	b.contain("Room 4", "4A")
	b.contain("Room 5", "5A")
}

func placeItems(b *builder) {
	b.item(StartRoom, world.NewItem("Old Book", 5, world.ItemClue))
	b.item("Room 1", world.NewItem("Wrench", 4, world.ItemTool))
	b.item("Room 2", world.NewItem("Flashlight", 6, world.ItemTool))
	b.item("Room 2", world.NewItem("Magnifying Glass", 3, world.ItemTool))
	b.item("Room 3", world.NewItem("Room3 Gem", 12, world.ItemClue))
	b.item("2A", world.NewItem("Note", 1, world.ItemClue))
	b.item("3A", world.NewItem("Small Coin", 2, world.ItemClue))
	b.item("4A", world.NewItem("Silver Screw", 2, world.ItemTool))
	b.item("5A", world.NewItem("Silver Coin", 3, world.ItemClue))
}
