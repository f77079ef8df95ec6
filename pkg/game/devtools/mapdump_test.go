package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/state"
)

func smallWorld(t *testing.T) (*world.World, world.RoomID) {
	t.Helper()
	w := world.NewWorld()
	hall := w.AddRoom("Hallway", "")
	study := w.AddRoom("Study", "")
	nook := w.AddRoom("Nook", "")
	exit := w.AddExitRoom("Exit Room", "", "Exit_Key")
	require.NoError(t, w.Contain(study, nook))
	require.NoError(t, w.Connect(hall, study))
	require.NoError(t, w.Connect(study, exit))
	require.NoError(t, w.Connect(exit, hall))
	w.MustRoom(nook).AddItem(world.NewItem("Note", 1, world.ItemClue))
	return w, hall
}

func TestMapTree_FromRoot(t *testing.T) {
	w, hall := smallWorld(t)
	w.SetRoot(hall)

	assert.Equal(t, []string{
		"└─ Hallway",
		"  └─ Study",
		"    └─ Nook",
		"       - Note",
		"    └─ Exit Room [EXIT]",
	}, MapTree(w))
}

func TestMapTree_WithoutRoot(t *testing.T) {
	w, _ := smallWorld(t)

	assert.Equal(t, []string{
		"└─ Hallway",
		"   Connected:",
		"     - Study",
		"└─ Study",
		"  └─ Nook",
		"   Connected:",
		"     - Exit Room",
		"└─ Exit Room [EXIT]",
		"   Connected:",
		"     - Hallway",
	}, MapTree(w))
}

func TestDumpMapToFile(t *testing.T) {
	w, hall := smallWorld(t)
	w.SetRoot(hall)
	g := state.NewGame(w, hall)
	g.Player.AddItem(world.NewKey("Exit_Key", 50))

	path := filepath.Join(t.TempDir(), "dump.txt")
	written, err := DumpMapToFile(g, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, "--- Metadata ---")
	assert.Contains(t, s, "max_depth: 3")
	assert.Contains(t, s, `item: "Note" kind: Clue value: 1`)
	assert.Contains(t, s, `item: "Exit_Key" kind: Key value: 50`)
}

func TestWriteMapDump_NoWorld(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteMapDump(&buf, &state.Game{}))
}
