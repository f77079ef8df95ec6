package world

import (
	"strings"

	"golang.org/x/text/cases"
)

// Entity is anything that lives in the world graph: rooms, items and puzzles.
// The name is the identity used by every lookup.
type Entity interface {
	Name() string
}

// fold returns the case-folded form of s.
// A Caser is stateful so a new one is created per call.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// SameName reports whether two entity names are equal ignoring case
func SameName(a, b string) bool {
	return fold(a) == fold(b)
}

// MatchRoomName compares a room name with player input.
// It accepts an exact case-insensitive match, or a match once all whitespace
// is removed ("room1" matches "Room 1").
func MatchRoomName(roomName, input string) bool {
	if SameName(roomName, input) {
		return true
	}
	return fold(strings.Join(strings.Fields(roomName), "")) == fold(strings.Join(strings.Fields(input), ""))
}
