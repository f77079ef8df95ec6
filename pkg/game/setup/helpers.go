// Package setup builds the escape room: rooms, items, puzzles and what solving them does.
package setup

import (
	"fmt"

	"escaperoom/pkg/engine/world"
)

// builder wraps a world with name-based construction.
// The first error is kept and later graph edits are skipped.
type builder struct {
	w   *world.World
	ids map[string]world.RoomID
	err error
}

func newBuilder() *builder {
	return &builder{
		w:   world.NewWorld(),
		ids: make(map[string]world.RoomID),
	}
}

func (b *builder) room(name, description string) world.RoomID {
	id := b.w.AddRoom(name, description)
	b.ids[name] = id
	return id
}

func (b *builder) exitRoom(name, description, key string) world.RoomID {
	id := b.w.AddExitRoom(name, description, key)
	b.ids[name] = id
	return id
}

func (b *builder) id(name string) world.RoomID {
	id, ok := b.ids[name]
	if !ok {
		if b.err == nil {
			b.err = fmt.Errorf("room %q: %w", name, world.ErrUnknownRoom)
		}
		return world.NoRoom
	}
	return id
}

func (b *builder) get(name string) *world.Room {
	return b.w.Room(b.id(name))
}

func (b *builder) contain(parent string, children ...string) {
	for _, child := range children {
		if b.err != nil {
			return
		}
		b.err = b.w.Contain(b.id(parent), b.id(child))
	}
}

func (b *builder) connect(from string, to ...string) {
	for _, t := range to {
		if b.err != nil {
			return
		}
		b.err = b.w.Connect(b.id(from), b.id(t))
	}
}

func (b *builder) lock(name, key string) {
	if r := b.get(name); r != nil {
		r.Lock(key)
	}
}

func (b *builder) item(room string, item *world.Item) {
	if r := b.get(room); r != nil {
		r.AddItem(item)
	}
}

func (b *builder) puzzle(room string, p world.Puzzle) {
	if r := b.get(room); r != nil {
		r.AddPuzzle(p)
	}
}
