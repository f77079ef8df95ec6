package gameplay

import (
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/state"
)

// WinStatus is the outcome of evaluating the escape conditions
type WinStatus struct {
	AtExit     bool
	Missing    []string
	GoalSolved bool
}

// Won reports whether every condition holds
func (s WinStatus) Won() bool {
	return s.AtExit && len(s.Missing) == 0 && s.GoalSolved
}

// EvaluateWin checks the escape conditions without changing anything.
// The player must be in the exit, hold every required item, and have solved
// at least one puzzle in the goal room. With no goal room set the last
// condition holds.
func EvaluateWin(g *state.Game) WinStatus {
	s := WinStatus{AtExit: g.AtExit()}

	for _, req := range g.RequiredItemStatus() {
		if !req.Held {
			s.Missing = append(s.Missing, req.Name)
		}
	}

	goal := g.World.Room(g.Goal)
	if g.Goal == world.NoRoom || goal == nil {
		s.GoalSolved = true
	} else {
		for _, p := range goal.Puzzles() {
			if p.IsSolved() {
				s.GoalSolved = true
				break
			}
		}
	}
	return s
}

// CheckWin reports progress when the player is at the exit and ends the game
// once every condition holds. It returns true on victory.
func CheckWin(g *state.Game) bool {
	s := EvaluateWin(g)
	if !s.AtExit {
		return false
	}

	if s.Won() {
		g.Won = true
		g.Over = true
		g.Logger.Info("player escaped", "turns", g.Turns)
		say(g, "WIN", g.Turns)
		return true
	}

	say(g, "AT_EXIT_NOT_DONE")
	for _, name := range s.Missing {
		say(g, "MISSING_ITEM", name)
	}
	if !s.GoalSolved {
		say(g, "GOAL_UNSOLVED", g.World.Name(g.Goal))
	}
	return false
}
