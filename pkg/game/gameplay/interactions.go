// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"strings"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/devtools"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/state"
)

// Look describes the current room: its contents and where it leads
func Look(g *state.Game) {
	r := g.CurrentRoom()

	say(g, "LOOK_HEADER", r.Name())
	if r.IsExit() {
		say(g, "LOOK_EXIT")
	}
	if r.Locked() {
		say(g, "LOOK_REQUIRES_KEY", r.RequiredKey())
	}
	if r.Description != "" {
		logMessage(g, "%s", r.Description)
	}

	say(g, "LOOK_CONTENTS")
	contents := r.Contents()
	if len(contents) == 0 {
		say(g, "LOOK_NOTHING")
	}
	for _, c := range contents {
		switch c.Kind {
		case world.ContentItem:
			logMessage(g, "  %s", describeItem(c.Item))
		case world.ContentPuzzle:
			logMessage(g, "  %s", describePuzzle(c.Puzzle))
		case world.ContentRoom:
			say(g, "LOOK_SUBROOM", g.World.Name(c.Room))
		}
	}

	say(g, "LOOK_CONNECTIONS")
	conns := r.Connections()
	if len(conns) == 0 {
		say(g, "LOOK_NOTHING")
	}
	for _, name := range g.World.Names(conns) {
		logMessage(g, "- ROOM{%s}", name)
	}
}

func describeItem(it *world.Item) string {
	return i18n.T("ITEM_INSPECT", it.Name(), it.Kind(), it.Value())
}

func describePuzzle(p world.Puzzle) string {
	solved := i18n.T("NO")
	if p.IsSolved() {
		solved = i18n.T("YES")
	}
	return i18n.T("PUZZLE_INSPECT", p.Name(), p.Difficulty(), solved)
}

// Pickup moves an item from the current room (or a room inside it) to the inventory
func Pickup(g *state.Game, name string) bool {
	cur := g.Player.Current

	item := g.World.FindItem(cur, name)
	if item == nil {
		say(g, "ITEM_NOT_FOUND", name)
		return false
	}

	g.World.RemoveItem(cur, item)
	g.Player.AddItem(item)
	g.Logger.Debug("item picked up", "room", g.CurrentRoomName(), "item", item.Name())
	say(g, "PICKED_UP", item.Name())

	if !g.World.HasAnyItemRecursive(cur) {
		say(g, "ROOM_EMPTY")
	}
	return true
}

// ShowInventory lists the inventory in pickup order, by value, or alphabetically
func ShowInventory(g *state.Game, order string) error {
	var items []*world.Item
	switch strings.ToLower(order) {
	case "":
		items = g.Player.Inventory()
	case "value":
		items = g.Player.InventoryByValue()
	case "alpha", "alphabet":
		items = g.Player.InventoryByName()
	default:
		return usageError("inventory [value|alpha]")
	}

	if len(items) == 0 {
		say(g, "INVENTORY_EMPTY")
		return nil
	}
	say(g, "INVENTORY_HEADER")
	for _, it := range items {
		logMessage(g, "- %s", i18n.T("INVENTORY_LINE", it.Name(), it.Kind(), it.Value()))
	}
	return nil
}

// ShowMap prints the whole map as a tree
func ShowMap(g *state.Game) {
	say(g, "MAP_HEADER")
	for _, line := range devtools.MapTree(g.World) {
		logMessage(g, "%s", line)
	}
}

// ShowHelp lists the available commands
func ShowHelp(g *state.Game) {
	say(g, "HELP")
}
