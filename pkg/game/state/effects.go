package state

import "escaperoom/pkg/engine/world"

// Effect is a world change bound to a puzzle, fired once when it is solved.
// The set of effects is closed: SpawnKey and RevealExit.
type Effect interface {
	effect()
}

// SpawnKey places a new key in a room, or in the inventory if the room is gone
type SpawnKey struct {
	Key   string
	Value int
	Room  string
}

// RevealExit opens a connection towards the exit and queues a hint
type RevealExit struct {
	From world.RoomID
	To   world.RoomID
	Hint string
}

func (SpawnKey) effect()   {}
func (RevealExit) effect() {}
