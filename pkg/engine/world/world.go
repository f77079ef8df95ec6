package world

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRoom is returned when a RoomID does not belong to the world
	ErrUnknownRoom = errors.New("unknown room")

	// ErrDuplicateParent is returned when a room is placed in a second parent
	ErrDuplicateParent = errors.New("room already has a parent")

	// ErrContainmentCycle is returned when a room would contain one of its ancestors
	ErrContainmentCycle = errors.New("room cannot contain its own ancestor")
)

// World is the arena that owns every room.
// Containment forms a forest; connections form an arbitrary directed graph.
type World struct {
	rooms []*Room
	root  RoomID
	exit  RoomID
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{root: NoRoom, exit: NoRoom}
}

// AddRoom creates a new parentless room and returns its id
func (w *World) AddRoom(name, description string) RoomID {
	id := RoomID(len(w.rooms))
	w.rooms = append(w.rooms, &Room{
		id:          id,
		name:        name,
		Description: description,
		parent:      NoRoom,
	})
	return id
}

// AddExitRoom creates the exit room, locked behind the named key
func (w *World) AddExitRoom(name, description, key string) RoomID {
	id := w.AddRoom(name, description)
	r := w.rooms[id]
	r.exit = true
	r.requiredKey = key
	w.exit = id
	return id
}

// Room returns the room for id, or nil if it does not exist
func (w *World) Room(id RoomID) *Room {
	if id < 0 || int(id) >= len(w.rooms) {
		return nil
	}
	return w.rooms[id]
}

// MustRoom returns the room for id and panics if it does not exist
func (w *World) MustRoom(id RoomID) *Room {
	r := w.Room(id)
	if r == nil {
		panic(fmt.Sprintf("world: room %d does not exist", id))
	}
	return r
}

// Rooms returns every room in creation order
func (w *World) Rooms() []*Room {
	out := make([]*Room, len(w.rooms))
	copy(out, w.rooms)
	return out
}

// Len returns the number of rooms
func (w *World) Len() int {
	return len(w.rooms)
}

// SetRoot sets the room the full map is drawn from
func (w *World) SetRoot(id RoomID) {
	w.root = id
}

// Root returns the map root, or NoRoom
func (w *World) Root() RoomID {
	return w.root
}

// Exit returns the exit room, or NoRoom
func (w *World) Exit() RoomID {
	return w.exit
}

// Roots returns every room without a parent, in creation order
func (w *World) Roots() []RoomID {
	var roots []RoomID
	for _, r := range w.rooms {
		if r.parent == NoRoom {
			roots = append(roots, r.id)
		}
	}
	return roots
}

// Contain places child inside parent.
// A room can only have one parent and cannot contain one of its ancestors.
func (w *World) Contain(parent, child RoomID) error {
	p, c := w.Room(parent), w.Room(child)
	if p == nil {
		return fmt.Errorf("contain parent %d: %w", parent, ErrUnknownRoom)
	}
	if c == nil {
		return fmt.Errorf("contain child %d: %w", child, ErrUnknownRoom)
	}
	if c.parent != NoRoom {
		return fmt.Errorf("contain %s in %s: %w", c.name, p.name, ErrDuplicateParent)
	}
	for a := parent; a != NoRoom; a = w.rooms[a].parent {
		if a == child {
			return fmt.Errorf("contain %s in %s: %w", c.name, p.name, ErrContainmentCycle)
		}
	}

	c.parent = parent
	p.contents = append(p.contents, Content{Kind: ContentRoom, Room: child})
	return nil
}

// Connect adds a one-way connection from -> to.
// Adding an existing connection again is a no-op.
func (w *World) Connect(from, to RoomID) error {
	f := w.Room(from)
	if f == nil {
		return fmt.Errorf("connect from %d: %w", from, ErrUnknownRoom)
	}
	if w.Room(to) == nil {
		return fmt.Errorf("connect to %d: %w", to, ErrUnknownRoom)
	}
	if f.hasConnection(to) {
		return nil
	}
	f.connections = append(f.connections, to)
	return nil
}

// FindRoomByName returns the first room (in creation order) whose name matches
func (w *World) FindRoomByName(name string) (RoomID, bool) {
	for _, r := range w.rooms {
		if MatchRoomName(r.name, name) {
			return r.id, true
		}
	}
	return NoRoom, false
}

// Name returns the name of the room with the given id, or "" if unknown
func (w *World) Name(id RoomID) string {
	if r := w.Room(id); r != nil {
		return r.name
	}
	return ""
}

// Names maps a list of ids to room names
func (w *World) Names(ids []RoomID) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, w.Name(id))
	}
	return names
}
