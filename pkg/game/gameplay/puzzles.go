package gameplay

import (
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/i18n"
	gamemenu "escaperoom/pkg/game/menu"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// Solve finds a puzzle by name and runs the solve dialogue.
// The name may also be a room holding several puzzles (one inside the
// current room, or the current room itself), in which case the player picks
// one from a list.
func Solve(g *state.Game, ask renderer.Prompter, name string) error {
	cur := g.Player.Current

	if p := g.World.FindPuzzle(cur, name); p != nil {
		return attemptPuzzle(g, ask, p)
	}

	if id, ok := puzzleRoom(g, name); ok {
		if puzzles := g.World.Room(id).Puzzles(); len(puzzles) > 1 {
			return solveFromList(g, ask, puzzles)
		}
	}

	say(g, "PUZZLE_NOT_FOUND", name)
	return nil
}

// puzzleRoom resolves a room name given to solve: a room inside the current
// one, or the current room itself
func puzzleRoom(g *state.Game, name string) (world.RoomID, bool) {
	cur := g.CurrentRoom()
	if id, ok := g.World.FindChild(cur.ID(), name); ok {
		return id, true
	}
	if world.MatchRoomName(cur.Name(), name) {
		return cur.ID(), true
	}
	return world.NoRoom, false
}

// solveFromList asks whether to sort the puzzles, then lets the player pick one
func solveFromList(g *state.Game, ask renderer.Prompter, puzzles []world.Puzzle) error {
	sortFirst, err := gamemenu.Confirm(g, ask, i18n.T("PROMPT_SORT_PUZZLES"))
	if err != nil {
		return err
	}
	if sortFirst {
		entities.SortByDifficulty(puzzles)
	}

	chosen, err := gamemenu.PickPuzzle(g, ask, puzzles)
	if err != nil {
		return err
	}
	if chosen == nil {
		say(g, "INVALID_SELECTION")
		return nil
	}
	return attemptPuzzle(g, ask, chosen)
}

// attemptPuzzle shows the puzzle, and only if the player opts in, its full
// prompt and an answer request. Effects fire on the first successful solve.
func attemptPuzzle(g *state.Game, ask renderer.Prompter, p world.Puzzle) error {
	if p.IsSolved() {
		say(g, "PUZZLE_ALREADY_SOLVED")
		return nil
	}

	logMessage(g, "%s", describePuzzle(p))

	solveNow, err := gamemenu.Confirm(g, ask, i18n.T("PROMPT_SOLVE_NOW"))
	if err != nil {
		return err
	}
	if !solveNow {
		say(g, "PUZZLE_DECLINED")
		return nil
	}

	switch p.Kind() {
	case world.PuzzleCode:
		say(g, "CODE_PROMPT", p.Prompt())
	default:
		say(g, "RIDDLE_PROMPT", p.Prompt())
	}

	answer, err := ask.Prompt(g, i18n.T("PROMPT_ANSWER"))
	if err != nil {
		return err
	}

	ok, err := p.AttemptSolve(answer)
	if err != nil {
		return err
	}
	if !ok {
		g.Logger.Debug("wrong answer", "puzzle", p.Name())
		say(g, "WRONG_ANSWER")
		return nil
	}

	g.Logger.Info("puzzle solved", "puzzle", p.Name(), "turns", g.Turns)
	say(g, "PUZZLE_SOLVED")
	applyEffects(g, p)
	return nil
}
