package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"escaperoom/pkg/engine/world"
)

func TestPlayer_BackWithoutHistory(t *testing.T) {
	p := NewPlayer(world.RoomID(0))
	id, ok := p.Back()
	assert.False(t, ok)
	assert.Equal(t, world.NoRoom, id)
	assert.Equal(t, world.RoomID(0), p.Current)
}

func TestPlayer_MoveAndBack(t *testing.T) {
	p := NewPlayer(world.RoomID(0))
	p.MoveTo(1)
	p.MoveTo(2)
	require.Equal(t, 2, p.HistorySize())

	id, ok := p.Back()
	require.True(t, ok)
	assert.Equal(t, world.RoomID(1), id)
	assert.Equal(t, world.RoomID(1), p.Current)

	id, ok = p.Back()
	require.True(t, ok)
	assert.Equal(t, world.RoomID(0), id)
	assert.Zero(t, p.HistorySize())
}

// Any sequence of moves followed by as many backs returns to the start
func TestPlayer_BacktrackSymmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := world.RoomID(rapid.IntRange(0, 20).Draw(t, "start"))
		moves := rapid.SliceOf(rapid.IntRange(0, 20)).Draw(t, "moves")

		p := NewPlayer(start)
		visited := []world.RoomID{start}
		for _, m := range moves {
			p.MoveTo(world.RoomID(m))
			visited = append(visited, world.RoomID(m))
		}

		for i := len(moves) - 1; i >= 0; i-- {
			id, ok := p.Back()
			if !ok {
				t.Fatalf("back %d failed", i)
			}
			if id != visited[i] {
				t.Fatalf("back %d: got room %d, want %d", i, id, visited[i])
			}
		}
		if _, ok := p.Back(); ok {
			t.Fatalf("history should be empty")
		}
		if p.Current != start {
			t.Fatalf("ended in %d, want %d", p.Current, start)
		}
	})
}

func TestPlayer_Inventory(t *testing.T) {
	p := NewPlayer(0)
	gem := world.NewItem("Room3 Gem", 12, world.ItemClue)
	book := world.NewItem("Old Book", 5, world.ItemClue)
	coin := world.NewItem("small Coin", 2, world.ItemClue)
	key := world.NewKey("key_room3", 1)
	for _, it := range []*world.Item{gem, book, coin, key} {
		p.AddItem(it)
	}

	assert.Equal(t, []*world.Item{gem, book, coin, key}, p.Inventory())
	assert.Equal(t, []*world.Item{key, coin, book, gem}, p.InventoryByValue())
	assert.Equal(t, []*world.Item{key, book, gem, coin}, p.InventoryByName())
	assert.Equal(t, []*world.Item{gem, book, coin, key}, p.Inventory(), "sorted views leave the inventory alone")

	assert.True(t, p.HasItem("OLD BOOK"))
	assert.Same(t, key, p.FindItem("Key_Room3"))

	require.True(t, p.RemoveItem(book))
	assert.False(t, p.RemoveItem(book))
	assert.False(t, p.HasItem("Old Book"))
}

func TestPlayer_FindKey(t *testing.T) {
	w := world.NewWorld()
	id := w.AddRoom("Room 3", "")
	r := w.MustRoom(id)
	r.Lock("key_room3")

	p := NewPlayer(0)
	p.AddItem(world.NewItem("key_room3", 1, world.ItemClue))
	assert.Nil(t, p.FindKey(r), "a clue with a key's name does not open doors")

	key := world.NewKey("key_room3", 1)
	p.AddItem(key)
	assert.Same(t, key, p.FindKey(r))
}

func TestGame_Hints(t *testing.T) {
	g := NewGame(world.NewWorld(), world.NoRoom)
	_, ok := g.NextHint()
	assert.False(t, ok)

	g.AddHint("first")
	g.AddHint("second")
	assert.Equal(t, 2, g.PendingHints())

	hint, ok := g.NextHint()
	require.True(t, ok)
	assert.Equal(t, "first", hint)
	assert.Equal(t, "first", g.LastHint)
	assert.Equal(t, 1, g.PendingHints())
}

func TestGame_Messages(t *testing.T) {
	g := NewGame(world.NewWorld(), world.NoRoom)
	g.AddMessage("one")
	g.AddMessage("two")

	assert.Equal(t, []string{"one", "two"}, g.DrainMessages())
	assert.Empty(t, g.DrainMessages())
}

func TestGame_RequiredItemStatus(t *testing.T) {
	w := world.NewWorld()
	start := w.AddRoom("Entrance", "")
	exit := w.AddExitRoom("Exit Room", "", "Exit_Key")

	g := NewGame(w, start)
	g.RequiredItems = []string{"Exit_Key", "Old Book"}
	g.Player.AddItem(world.NewItem("Old Book", 5, world.ItemClue))

	assert.Equal(t, []RequiredItem{
		{Name: "Exit_Key", Held: false},
		{Name: "Old Book", Held: true},
	}, g.RequiredItemStatus())

	assert.False(t, g.AtExit())
	g.Player.MoveTo(exit)
	assert.True(t, g.AtExit())
	assert.Equal(t, "Exit Room", g.CurrentRoomName())
}

func TestGame_BindEffect(t *testing.T) {
	g := NewGame(world.NewWorld(), world.NoRoom)
	var p world.Puzzle = &fakePuzzle{name: "p"}
	g.BindEffect(p, SpawnKey{Key: "k", Value: 1, Room: "A"})
	g.BindEffect(p, RevealExit{From: 0, To: 1})

	require.Len(t, g.Effects[p], 2)
	assert.IsType(t, SpawnKey{}, g.Effects[p][0])
	assert.IsType(t, RevealExit{}, g.Effects[p][1])
}

type fakePuzzle struct{ name string }

func (p *fakePuzzle) Name() string { return p.name }
func (p *fakePuzzle) Kind() world.PuzzleKind { return world.PuzzleRiddle }
func (p *fakePuzzle) Difficulty() int { return 1 }
func (p *fakePuzzle) IsSolved() bool { return false }
func (p *fakePuzzle) Prompt() string { return "" }
func (p *fakePuzzle) Solution() string { return "" }
func (p *fakePuzzle) AttemptSolve(string) (bool, error) { return false, nil }
