// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// MapTree renders the whole world as an indented tree.
// It is drawn from the world's root; without a root every parentless room is
// drawn as its own tree and connections are listed instead of followed.
func MapTree(w *world.World) []string {
	var lines []string

	if w.Root() == world.NoRoom {
		for _, id := range w.Roots() {
			lines = appendRoomTree(lines, w, id, 0)
		}
		return lines
	}

	w.Walk(w.Root(), func(r *world.Room, depth int, _ world.RoomID, _ bool) {
		indent := strings.Repeat("  ", depth)
		lines = append(lines, indent+"└─ "+roomLabel(r))
		for _, c := range r.Contents() {
			switch c.Kind {
			case world.ContentItem:
				lines = append(lines, indent+"   - "+c.Item.Name())
			case world.ContentPuzzle:
				lines = append(lines, indent+"   - "+c.Puzzle.Name())
			}
		}
	})
	return lines
}

// appendRoomTree draws a room, its child rooms, and the names of its connections
func appendRoomTree(lines []string, w *world.World, id world.RoomID, depth int) []string {
	r := w.Room(id)
	indent := strings.Repeat("  ", depth)
	lines = append(lines, indent+"└─ "+roomLabel(r))

	for _, child := range r.Children() {
		lines = appendRoomTree(lines, w, child, depth+1)
	}

	if conns := r.Connections(); len(conns) > 0 {
		lines = append(lines, indent+"   Connected:")
		for _, name := range w.Names(conns) {
			lines = append(lines, indent+"     - "+name)
		}
	}
	return lines
}

func roomLabel(r *world.Room) string {
	if r.IsExit() {
		return r.Name() + " [EXIT]"
	}
	return r.Name()
}

// WriteMapDump writes the session metadata, the map tree and per-room details
func WriteMapDump(out io.Writer, g *state.Game) error {
	w := g.World
	if w == nil {
		return fmt.Errorf("no world")
	}

	var b strings.Builder

	fmt.Fprintln(&b, "=== MAP DUMP ===")
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "--- Metadata ---")
	fmt.Fprintf(&b, "session: %s\n", g.SessionID)
	fmt.Fprintf(&b, "turns: %d\n", g.Turns)
	fmt.Fprintf(&b, "current_room: %q\n", g.CurrentRoomName())
	fmt.Fprintf(&b, "rooms: %d\n", w.Len())
	fmt.Fprintf(&b, "exit_revealed: %v\n", g.ExitRevealed)
	fmt.Fprintf(&b, "required_items: %q\n", g.RequiredItems)
	if w.Root() != world.NoRoom {
		fmt.Fprintf(&b, "max_depth: %d\n", w.MaxDepthRecursive(w.Root()))
	}
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Map ---")
	for _, line := range MapTree(w) {
		fmt.Fprintln(&b, line)
	}
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Rooms ---")
	for _, r := range w.Rooms() {
		fmt.Fprintf(&b, "  name: %q parent: %q exit: %v required_key: %q connections: %q\n",
			r.Name(), w.Name(r.Parent()), r.IsExit(), r.RequiredKey(), w.Names(r.Connections()))
		for _, it := range r.Items() {
			fmt.Fprintf(&b, "    item: %q kind: %s value: %d\n", it.Name(), it.Kind(), it.Value())
		}
		for _, p := range r.Puzzles() {
			fmt.Fprintf(&b, "    puzzle: %q kind: %s difficulty: %d solved: %v\n", p.Name(), p.Kind(), p.Difficulty(), p.IsSolved())
		}
	}
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Inventory ---")
	for _, it := range g.InventorySnapshot() {
		fmt.Fprintf(&b, "  item: %q kind: %s value: %d\n", it.Name(), it.Kind(), it.Value())
	}

	_, err := io.WriteString(out, b.String())
	return err
}

// DumpMapToFile writes the map dump to path, or to map.txt when path is empty.
// It returns the absolute path written.
func DumpMapToFile(g *state.Game, path string) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, g); err != nil {
		return "", fmt.Errorf("write map dump: %w", err)
	}
	return absPath, nil
}
