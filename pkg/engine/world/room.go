package world

import "slices"

// RoomID addresses a room inside a World
type RoomID int

// NoRoom is the zero reference: no room
const NoRoom RoomID = -1

// ContentKind identifies what a Content slot holds
type ContentKind int

const (
	ContentItem ContentKind = iota
	ContentPuzzle
	ContentRoom
)

// Content is one entry in a room's ordered contents.
// Exactly one of Item, Puzzle or Room is set, according to Kind.
type Content struct {
	Kind   ContentKind
	Item   *Item
	Puzzle Puzzle
	Room   RoomID
}

// Room is a node in the world graph.
// Contents own their entries (items, puzzles, child rooms); connections do not.
type Room struct {
	id          RoomID
	name        string
	Description string

	contents    []Content
	connections []RoomID
	parent      RoomID

	exit        bool
	requiredKey string
}

// ID returns the room's id within its world
func (r *Room) ID() RoomID {
	return r.id
}

// Name returns the room's name
func (r *Room) Name() string {
	return r.name
}

// IsExit returns true if this is the exit room
func (r *Room) IsExit() bool {
	return r.exit
}

// Parent returns the containing room, or NoRoom for a root
func (r *Room) Parent() RoomID {
	return r.parent
}

// Contents returns a copy of the ordered contents
func (r *Room) Contents() []Content {
	return slices.Clone(r.contents)
}

// Connections returns a copy of the outgoing connections, in insertion order
func (r *Room) Connections() []RoomID {
	return slices.Clone(r.connections)
}

// Items returns the items held directly by this room
func (r *Room) Items() []*Item {
	var items []*Item
	for _, c := range r.contents {
		if c.Kind == ContentItem {
			items = append(items, c.Item)
		}
	}
	return items
}

// Puzzles returns the puzzles held directly by this room
func (r *Room) Puzzles() []Puzzle {
	var puzzles []Puzzle
	for _, c := range r.contents {
		if c.Kind == ContentPuzzle {
			puzzles = append(puzzles, c.Puzzle)
		}
	}
	return puzzles
}

// Children returns the child rooms held directly by this room
func (r *Room) Children() []RoomID {
	var children []RoomID
	for _, c := range r.contents {
		if c.Kind == ContentRoom {
			children = append(children, c.Room)
		}
	}
	return children
}

// AddItem appends an item to the room's contents
func (r *Room) AddItem(item *Item) {
	r.contents = append(r.contents, Content{Kind: ContentItem, Item: item, Room: NoRoom})
}

// AddPuzzle appends a puzzle to the room's contents
func (r *Room) AddPuzzle(p Puzzle) {
	r.contents = append(r.contents, Content{Kind: ContentPuzzle, Puzzle: p, Room: NoRoom})
}

// removeItem removes the item with the same identity from the direct contents
func (r *Room) removeItem(item *Item) bool {
	for i, c := range r.contents {
		if c.Kind == ContentItem && c.Item == item {
			r.contents = slices.Delete(r.contents, i, i+1)
			return true
		}
	}
	return false
}

// IsDeadEnd returns true if the room offers no way forward
func (r *Room) IsDeadEnd() bool {
	return len(r.connections) == 0 && len(r.Children()) == 0
}

// hasConnection reports whether to is already an outgoing connection
func (r *Room) hasConnection(to RoomID) bool {
	return slices.Contains(r.connections, to)
}
