package setup

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/gameplay"
	"escaperoom/pkg/game/state"
)

type scriptedPrompter struct {
	replies []string
}

func (s *scriptedPrompter) Prompt(_ *state.Game, _ string) (string, error) {
	if len(s.replies) == 0 {
		return "", io.EOF
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

func mustID(t *testing.T, g *state.Game, name string) world.RoomID {
	t.Helper()
	id, ok := g.World.FindRoomByName(name)
	require.True(t, ok, "room %q", name)
	return id
}

func TestBuildWorld_Shape(t *testing.T) {
	g, err := BuildWorld()
	require.NoError(t, err)
	w := g.World

	assert.Equal(t, 16, w.Len())
	assert.Equal(t, mustID(t, g, StartRoom), g.Player.Current)
	assert.Equal(t, mustID(t, g, StartRoom), w.Root())
	assert.Equal(t, mustID(t, g, ExitRoom), w.Exit())
	assert.Equal(t, mustID(t, g, GoalRoom), g.Goal)
	assert.Equal(t, []string{ExitKey}, g.RequiredItems)
	assert.Equal(t, 3, g.PendingHints())

	room1 := w.MustRoom(mustID(t, g, "Room 1"))
	assert.Equal(t, []string{"1A", "1B"}, w.Names(room1.Children()))
	assert.Equal(t, []string{"Room 3"}, w.Names(room1.Connections()))

	for _, name := range []string{"4B", GoalRoom} {
		assert.Equal(t, world.NoRoom, w.MustRoom(mustID(t, g, name)).Parent(), "%s is reached only by a connection", name)
	}

	for name, key := range map[string]string{"Room 3": "key_room3", "Room 4": "key_room4", "Room 5": "key_room5", ExitRoom: ExitKey} {
		assert.Equal(t, key, w.MustRoom(mustID(t, g, name)).RequiredKey())
	}

	assert.Len(t, w.MustRoom(mustID(t, g, GoalRoom)).Puzzles(), 3)
	assert.False(t, w.ContainsItemRecursive(mustID(t, g, StartRoom), ExitKey), "the exit key only appears once the code lock is solved")
}

func TestBuildWorld_ExitHiddenUntilGoalSolved(t *testing.T) {
	g, err := BuildWorld()
	require.NoError(t, err)

	for _, r := range g.World.Rooms() {
		assert.NotContains(t, r.Connections(), g.World.Exit(), "%s leads to the exit", r.Name())
	}
}

func TestBuildWorld_FullEscape(t *testing.T) {
	g, err := BuildWorld()
	require.NoError(t, err)

	ask := &scriptedPrompter{replies: []string{
		"yes", "Map",
		"yes", "Keyboard",
		"yes", "Echo",
		"yes", "7777",
		"yes", "Candle",
	}}

	script := []string{
		"move hallway",
		"move room1",
		"move 1a",
		"solve 1A Riddle",
		"pickup key_room3",
		"move 1b",
		"solve 1B Riddle",
		"pickup key_room4",
		"back",
		"back",
		"move Room 3",
		"solve Room3 Riddle",
		"pickup key_room5",
		"back",
		"back",
		"move Room 2",
		"move Room 4",
		"move 4a",
		"move 4b",
		"solve 4B Code Lock",
		"pickup Exit_Key",
		"back",
		"back",
		"move Room 5",
		"move 5a",
		"move 5b",
		"solve 5B Puzzle 1",
		"back",
		"back",
		"move Exit Room",
	}

	for _, line := range script {
		require.False(t, g.Over, "game ended before %q", line)
		_, err := gameplay.Step(g, ask, line)
		require.NoError(t, err, line)
	}

	assert.True(t, g.Won)
	assert.True(t, g.Over)
	assert.True(t, g.ExitRevealed)
	assert.Equal(t, 21, g.Turns)
	assert.True(t, g.Player.HasItem(ExitKey))
	for _, key := range []string{"key_room3", "key_room4", "key_room5"} {
		assert.False(t, g.Player.HasItem(key), "%s should be used up", key)
	}
	assert.Empty(t, ask.replies)
}

func TestBuildWorld_ExitNeedsKey(t *testing.T) {
	g, err := BuildWorld()
	require.NoError(t, err)

	room5 := mustID(t, g, "Room 5")
	exit := g.World.Exit()
	require.NoError(t, g.World.Connect(room5, exit))
	g.Player.MoveTo(room5)

	_, err = gameplay.Step(g, &scriptedPrompter{}, "move exit room")
	assert.ErrorIs(t, err, gameplay.ErrLockedRoom)
	assert.Equal(t, room5, g.Player.Current)
}
