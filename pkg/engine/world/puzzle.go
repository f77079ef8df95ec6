package world

import "errors"

// ErrInvalidPuzzleAnswer is returned when a blank answer is submitted
var ErrInvalidPuzzleAnswer = errors.New("answer cannot be empty")

// PuzzleKind is the closed set of puzzle variants
type PuzzleKind int

const (
	PuzzleRiddle PuzzleKind = iota // Prompt + answer, compared ignoring case
	PuzzleCode                     // Exact code, compared after trimming
)

// String returns the display name of the kind
func (k PuzzleKind) String() string {
	switch k {
	case PuzzleRiddle:
		return "Riddle"
	case PuzzleCode:
		return "Code"
	default:
		return "Unknown"
	}
}

// Puzzle is the contract rooms hold and the engine solves.
// Variants live in the game layer.
type Puzzle interface {
	Entity

	// Kind returns the variant of this puzzle.
	Kind() PuzzleKind

	// Difficulty is used to order puzzles, lower first.
	Difficulty() int

	// IsSolved reports whether the puzzle has been solved.
	IsSolved() bool

	// AttemptSolve checks an answer. A blank answer returns ErrInvalidPuzzleAnswer.
	// On a match the puzzle becomes solved and true is returned; a wrong
	// answer leaves the puzzle untouched.
	AttemptSolve(answer string) (bool, error)

	// Prompt is the full challenge text. Only shown once the player opts in.
	Prompt() string

	// Solution is the expected answer.
	Solution() string
}
