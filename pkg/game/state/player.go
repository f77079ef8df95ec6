package state

import (
	"cmp"
	"slices"
	"strings"

	"github.com/zyedidia/generic/stack"

	"escaperoom/pkg/engine/world"
)

// Player tracks where the player is, where they came from and what they carry
type Player struct {
	Current world.RoomID

	history   *stack.Stack[world.RoomID]
	inventory []*world.Item
}

// NewPlayer creates a player standing in the given room
func NewPlayer(start world.RoomID) *Player {
	return &Player{
		Current: start,
		history: stack.New[world.RoomID](),
	}
}

// MoveTo records the current room in the history and moves to the target
func (p *Player) MoveTo(target world.RoomID) {
	p.history.Push(p.Current)
	p.Current = target
}

// Back returns to the last room left by a forward move.
// It returns false when there is nowhere to go back to.
func (p *Player) Back() (world.RoomID, bool) {
	if p.history.Size() == 0 {
		return world.NoRoom, false
	}
	p.Current = p.history.Pop()
	return p.Current, true
}

// HistorySize returns the number of rooms that can be backtracked
func (p *Player) HistorySize() int {
	return p.history.Size()
}

// AddItem appends an item to the inventory
func (p *Player) AddItem(item *world.Item) {
	p.inventory = append(p.inventory, item)
}

// RemoveItem removes an item by identity
func (p *Player) RemoveItem(item *world.Item) bool {
	for i, it := range p.inventory {
		if it == item {
			p.inventory = slices.Delete(p.inventory, i, i+1)
			return true
		}
	}
	return false
}

// FindItem returns the first held item with the given name
func (p *Player) FindItem(name string) *world.Item {
	for _, it := range p.inventory {
		if world.SameName(it.Name(), name) {
			return it
		}
	}
	return nil
}

// FindKey returns the first held key that opens the room
func (p *Player) FindKey(r *world.Room) *world.Item {
	for _, it := range p.inventory {
		if r.KeyMatches(it) {
			return it
		}
	}
	return nil
}

// HasItem reports whether an item with the given name is held
func (p *Player) HasItem(name string) bool {
	return p.FindItem(name) != nil
}

// Inventory returns the held items in pickup order
func (p *Player) Inventory() []*world.Item {
	return slices.Clone(p.inventory)
}

// InventoryByValue returns the held items ordered by value, then name
func (p *Player) InventoryByValue() []*world.Item {
	items := slices.Clone(p.inventory)
	slices.SortStableFunc(items, (*world.Item).Compare)
	return items
}

// InventoryByName returns the held items in alphabetical order, ignoring case
func (p *Player) InventoryByName() []*world.Item {
	items := slices.Clone(p.inventory)
	slices.SortStableFunc(items, func(a, b *world.Item) int {
		return cmp.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	})
	return items
}
