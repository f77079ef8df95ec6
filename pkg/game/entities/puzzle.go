package entities

import (
	"strings"

	"escaperoom/pkg/engine/world"
)

// puzzle holds the state shared by every puzzle variant
type puzzle struct {
	name       string
	difficulty int
	solved     bool
}

func (p *puzzle) Name() string    { return p.name }
func (p *puzzle) Difficulty() int { return p.difficulty }
func (p *puzzle) IsSolved() bool  { return p.solved }

// RiddlePuzzle is answered with a word or phrase, compared ignoring case
type RiddlePuzzle struct {
	puzzle
	Riddle string
	answer string
}

// NewRiddlePuzzle creates a new riddle
func NewRiddlePuzzle(name string, difficulty int, riddle, answer string) *RiddlePuzzle {
	return &RiddlePuzzle{
		puzzle: puzzle{name: name, difficulty: difficulty},
		Riddle: riddle,
		answer: answer,
	}
}

// Kind returns PuzzleRiddle
func (p *RiddlePuzzle) Kind() world.PuzzleKind {
	return world.PuzzleRiddle
}

// Prompt returns the riddle text
func (p *RiddlePuzzle) Prompt() string {
	return p.Riddle
}

// Solution returns the expected answer
func (p *RiddlePuzzle) Solution() string {
	return p.answer
}

// AttemptSolve checks the answer against the riddle's solution
func (p *RiddlePuzzle) AttemptSolve(answer string) (bool, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false, world.ErrInvalidPuzzleAnswer
	}
	if !world.SameName(answer, p.answer) {
		return false, nil
	}
	p.solved = true
	return true, nil
}

// CodePuzzle is a lock opened by typing an exact code
type CodePuzzle struct {
	puzzle
	Description string
	code        string
}

// NewCodePuzzle creates a new code lock
func NewCodePuzzle(name string, difficulty int, description, code string) *CodePuzzle {
	return &CodePuzzle{
		puzzle:      puzzle{name: name, difficulty: difficulty},
		Description: description,
		code:        code,
	}
}

// Kind returns PuzzleCode
func (p *CodePuzzle) Kind() world.PuzzleKind {
	return world.PuzzleCode
}

// Prompt returns the description of the lock
func (p *CodePuzzle) Prompt() string {
	return p.Description
}

// Solution returns the code
func (p *CodePuzzle) Solution() string {
	return p.code
}

// AttemptSolve checks the code. Only surrounding whitespace is ignored.
func (p *CodePuzzle) AttemptSolve(code string) (bool, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return false, world.ErrInvalidPuzzleAnswer
	}
	if code != p.code {
		return false, nil
	}
	p.solved = true
	return true, nil
}

// ComparePuzzles orders puzzles by ascending difficulty
func ComparePuzzles(a, b world.Puzzle) int {
	return a.Difficulty() - b.Difficulty()
}

// SortByDifficulty sorts puzzles in place, easiest first.
// It is a selection sort: puzzles of equal difficulty may change order.
func SortByDifficulty(puzzles []world.Puzzle) {
	for i := 0; i < len(puzzles)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(puzzles); j++ {
			if ComparePuzzles(puzzles[j], puzzles[minIdx]) < 0 {
				minIdx = j
			}
		}
		puzzles[i], puzzles[minIdx] = puzzles[minIdx], puzzles[i]
	}
}
