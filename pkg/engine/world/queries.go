package world

import "github.com/zyedidia/generic/mapset"

// FindItem searches a room for an item by name.
// Direct contents are checked first, then child rooms in insertion order,
// depth first. Connections are never followed.
func (w *World) FindItem(id RoomID, name string) *Item {
	r := w.Room(id)
	if r == nil {
		return nil
	}
	for _, c := range r.contents {
		if c.Kind == ContentItem && SameName(c.Item.Name(), name) {
			return c.Item
		}
	}
	for _, c := range r.contents {
		if c.Kind == ContentRoom {
			if item := w.FindItem(c.Room, name); item != nil {
				return item
			}
		}
	}
	return nil
}

// FindPuzzle searches a room for a puzzle by name, with the same scope as FindItem
func (w *World) FindPuzzle(id RoomID, name string) Puzzle {
	r := w.Room(id)
	if r == nil {
		return nil
	}
	for _, c := range r.contents {
		if c.Kind == ContentPuzzle && SameName(c.Puzzle.Name(), name) {
			return c.Puzzle
		}
	}
	for _, c := range r.contents {
		if c.Kind == ContentRoom {
			if p := w.FindPuzzle(c.Room, name); p != nil {
				return p
			}
		}
	}
	return nil
}

// FindChild returns the direct child room of id whose name matches
func (w *World) FindChild(id RoomID, name string) (RoomID, bool) {
	r := w.Room(id)
	if r == nil {
		return NoRoom, false
	}
	for _, child := range r.Children() {
		if MatchRoomName(w.rooms[child].name, name) {
			return child, true
		}
	}
	return NoRoom, false
}

// FindConnection returns the connected room of id whose name matches
func (w *World) FindConnection(id RoomID, name string) (RoomID, bool) {
	r := w.Room(id)
	if r == nil {
		return NoRoom, false
	}
	for _, to := range r.connections {
		if MatchRoomName(w.rooms[to].name, name) {
			return to, true
		}
	}
	return NoRoom, false
}

// RemoveItem removes the given item (by identity) from the room or its descendants
func (w *World) RemoveItem(id RoomID, item *Item) bool {
	r := w.Room(id)
	if r == nil {
		return false
	}
	if r.removeItem(item) {
		return true
	}
	for _, child := range r.Children() {
		if w.RemoveItem(child, item) {
			return true
		}
	}
	return false
}

// HasAnyItemRecursive reports whether the room or any descendant holds an item
func (w *World) HasAnyItemRecursive(id RoomID) bool {
	r := w.Room(id)
	if r == nil {
		return false
	}
	for _, c := range r.contents {
		switch c.Kind {
		case ContentItem:
			return true
		case ContentRoom:
			if w.HasAnyItemRecursive(c.Room) {
				return true
			}
		}
	}
	return false
}

// ContainsItemRecursive reports whether an item with the given name is reachable
// from the room through contents, descendants or connections.
// Every room is visited at most once, so cycles of connections terminate.
func (w *World) ContainsItemRecursive(id RoomID, name string) bool {
	visited := mapset.New[RoomID]()
	return w.containsItem(id, name, visited)
}

func (w *World) containsItem(id RoomID, name string, visited mapset.Set[RoomID]) bool {
	r := w.Room(id)
	if r == nil || visited.Has(id) {
		return false
	}
	visited.Put(id)

	for _, c := range r.contents {
		switch c.Kind {
		case ContentItem:
			if SameName(c.Item.Name(), name) {
				return true
			}
		case ContentRoom:
			if w.containsItem(c.Room, name, visited) {
				return true
			}
		}
	}
	for _, to := range r.connections {
		if w.containsItem(to, name, visited) {
			return true
		}
	}
	return false
}

// MaxDepthRecursive returns the length of the longest chain of rooms reachable
// through children and connections, counting the starting room.
// A room is never revisited along the same chain.
func (w *World) MaxDepthRecursive(id RoomID) int {
	onPath := mapset.New[RoomID]()
	return w.maxDepth(id, onPath)
}

func (w *World) maxDepth(id RoomID, onPath mapset.Set[RoomID]) int {
	r := w.Room(id)
	if r == nil || onPath.Has(id) {
		return 0
	}
	onPath.Put(id)
	defer onPath.Remove(id)

	best := 0
	for _, child := range r.Children() {
		best = max(best, w.maxDepth(child, onPath))
	}
	for _, to := range r.connections {
		best = max(best, w.maxDepth(to, onPath))
	}
	return best + 1
}

// WalkFunc is called for every room reached by Walk.
// via is the room it was reached from (NoRoom for the start), and
// contained is true when it was reached through containment.
type WalkFunc func(r *Room, depth int, via RoomID, contained bool)

// Walk visits every room reachable from id, depth first.
// Children are visited before connections and every room is visited once.
func (w *World) Walk(id RoomID, fn WalkFunc) {
	visited := mapset.New[RoomID]()
	w.walk(id, 0, NoRoom, false, visited, fn)
}

func (w *World) walk(id RoomID, depth int, via RoomID, contained bool, visited mapset.Set[RoomID], fn WalkFunc) {
	r := w.Room(id)
	if r == nil || visited.Has(id) {
		return
	}
	visited.Put(id)
	fn(r, depth, via, contained)

	for _, child := range r.Children() {
		w.walk(child, depth+1, id, true, visited, fn)
	}
	for _, to := range r.connections {
		w.walk(to, depth+1, id, false, visited, fn)
	}
}
