package menu

import (
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// PuzzleMenuItem is one puzzle in a room with several
type PuzzleMenuItem struct {
	Puzzle world.Puzzle
}

// GetLabel returns the puzzle name and difficulty
func (m *PuzzleMenuItem) GetLabel() string {
	return i18n.T("PUZZLE_MENU_ITEM", m.Puzzle.Name(), m.Puzzle.Difficulty())
}

// IsSelectable returns true: solved puzzles can be picked and are reported as solved
func (m *PuzzleMenuItem) IsSelectable() bool {
	return true
}

// PuzzleMenuHandler remembers which puzzle was picked
type PuzzleMenuHandler struct {
	Chosen world.Puzzle
}

// GetTitle returns the menu title.
func (h *PuzzleMenuHandler) GetTitle() string {
	return i18n.T("PUZZLE_MENU_TITLE")
}

// GetInstructions returns the menu question.
func (h *PuzzleMenuHandler) GetInstructions() string {
	return i18n.T("PUZZLE_MENU_PROMPT")
}

// OnActivate records the chosen puzzle.
func (h *PuzzleMenuHandler) OnActivate(item MenuItem, _ int) {
	h.Chosen = item.(*PuzzleMenuItem).Puzzle
}

// PickPuzzle lets the player choose one of the puzzles by number.
// It returns nil when the selection is invalid.
func PickPuzzle(g *state.Game, ask renderer.Prompter, puzzles []world.Puzzle) (world.Puzzle, error) {
	items := make([]MenuItem, 0, len(puzzles))
	for _, p := range puzzles {
		items = append(items, &PuzzleMenuItem{Puzzle: p})
	}

	handler := &PuzzleMenuHandler{}
	if _, err := RunMenu(g, ask, items, handler); err != nil {
		return nil, err
	}
	return handler.Chosen, nil
}
