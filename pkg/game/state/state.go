package state

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/queue"

	"escaperoom/pkg/engine/world"
)

// Game represents the state of one escape room session
type Game struct {
	SessionID uuid.UUID
	Logger    *slog.Logger

	World  *world.World
	Player *Player

	// Goal is the room whose puzzles gate the win
	Goal world.RoomID

	// RequiredItems must all be held to escape
	RequiredItems []string

	// Effects maps a puzzle to what happens when it is solved
	Effects map[world.Puzzle][]Effect

	ExitRevealed bool

	Turns int

	Hints    *queue.Queue[string]
	LastHint string

	Messages []string

	Over bool
	Won  bool
}

// NewGame creates a new game around a world, with the player at start
func NewGame(w *world.World, start world.RoomID) *Game {
	return &Game{
		SessionID: uuid.New(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		World:     w,
		Player:    NewPlayer(start),
		Goal:      world.NoRoom,
		Effects:   make(map[world.Puzzle][]Effect),
		Hints:     queue.New[string](),
		Messages:  make([]string, 0),
	}
}

// SetLogger attaches a logger tagged with the session id
func (g *Game) SetLogger(l *slog.Logger) {
	g.Logger = l.With(slog.String("session", g.SessionID.String()))
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)
}

// DrainMessages returns the pending messages and clears the log
func (g *Game) DrainMessages() []string {
	msgs := g.Messages
	g.Messages = make([]string, 0)
	return msgs
}

// AddHint queues a hint to be shown later
func (g *Game) AddHint(hint string) {
	g.Hints.Enqueue(hint)
}

// NextHint dequeues the oldest pending hint
func (g *Game) NextHint() (string, bool) {
	if g.Hints.Empty() {
		return "", false
	}
	g.LastHint = g.Hints.Dequeue()
	return g.LastHint, true
}

// PendingHints returns the number of queued hints
func (g *Game) PendingHints() int {
	n := 0
	g.Hints.Each(func(string) { n++ })
	return n
}

// BindEffect attaches an effect to a puzzle
func (g *Game) BindEffect(p world.Puzzle, e Effect) {
	g.Effects[p] = append(g.Effects[p], e)
}

// CurrentRoom returns the room the player is in
func (g *Game) CurrentRoom() *world.Room {
	return g.World.Room(g.Player.Current)
}

// CurrentRoomName returns the name of the room the player is in
func (g *Game) CurrentRoomName() string {
	return g.World.Name(g.Player.Current)
}

// AtExit reports whether the player stands in the exit room
func (g *Game) AtExit() bool {
	r := g.CurrentRoom()
	return r != nil && r.IsExit()
}

// InventorySnapshot returns the held items in pickup order
func (g *Game) InventorySnapshot() []*world.Item {
	return g.Player.Inventory()
}

// RequiredItem is one line of the escape checklist
type RequiredItem struct {
	Name string
	Held bool
}

// RequiredItemStatus reports, in order, which required items are held
func (g *Game) RequiredItemStatus() []RequiredItem {
	status := make([]RequiredItem, 0, len(g.RequiredItems))
	for _, name := range g.RequiredItems {
		status = append(status, RequiredItem{Name: name, Held: g.Player.HasItem(name)})
	}
	return status
}
