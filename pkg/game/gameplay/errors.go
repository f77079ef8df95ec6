package gameplay

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCommand is returned for an unknown verb or a missing argument
	ErrInvalidCommand = errors.New("invalid command")

	// ErrLockedRoom is matched by every LockedRoomError
	ErrLockedRoom = errors.New("room is locked")
)

// LockedRoomError is returned when the player lacks the key for a room
type LockedRoomError struct {
	Room string
	Key  string
}

func (e *LockedRoomError) Error() string {
	return fmt.Sprintf("%s is locked, required key: %s", e.Room, e.Key)
}

// Is makes errors.Is(err, ErrLockedRoom) match
func (e *LockedRoomError) Is(target error) bool {
	return target == ErrLockedRoom
}

func usageError(usage string) error {
	return fmt.Errorf("%w, usage: %s", ErrInvalidCommand, usage)
}
