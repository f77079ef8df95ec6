package setup

import (
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/state"
)

// levelPuzzles holds the puzzles whose solving changes the world
type levelPuzzles struct {
	riddle1A   *entities.RiddlePuzzle
	riddle1B   *entities.RiddlePuzzle
	riddle3    *entities.RiddlePuzzle
	codeLock4B *entities.CodePuzzle
	goal       []*entities.RiddlePuzzle
}

func placePuzzles(b *builder) levelPuzzles {
	p := levelPuzzles{
		riddle1A: entities.NewRiddlePuzzle("1A Riddle", 2,
			"I have cities, but no houses. I have mountains, but no trees. What am I?", "Map"),
		riddle1B: entities.NewRiddlePuzzle("1B Riddle", 3,
			"What has keys but no locks, space but no room, and you can enter but not go inside?", "Keyboard"),
		riddle3: entities.NewRiddlePuzzle("Room3 Riddle", 3,
			"I speak without a mouth and hear without ears. I have nobody, but I come alive with wind. What am I?", "Echo"),
		codeLock4B: entities.NewCodePuzzle("4B Code Lock", 4, i18n.T("CODE_LOCK_4B"), "7777"),
		goal: []*entities.RiddlePuzzle{
			entities.NewRiddlePuzzle("5B Puzzle 1", 2, "I'm tall when I'm young, and I'm short when I'm old. What am I?", "Candle"),
			entities.NewRiddlePuzzle("5B Puzzle 2", 3, "What has hands but can not clap?", "Clock"),
			entities.NewRiddlePuzzle("5B Puzzle 3", 5, "What disappears as soon as you say its name?", "Silence"),
		},
	}

	b.puzzle("1A", p.riddle1A)
	b.puzzle("1B", p.riddle1B)
	b.puzzle("Room 3", p.riddle3)
	b.puzzle("4B", p.codeLock4B)
	for _, riddle := range p.goal {
		b.puzzle(GoalRoom, riddle)
	}
	return p
}

// bindEffects wires what each puzzle does when solved
func bindEffects(g *state.Game, b *builder, p levelPuzzles) {
	g.BindEffect(p.riddle1A, state.SpawnKey{Key: "key_room3", Value: 1, Room: "1A"})
	g.BindEffect(p.riddle1B, state.SpawnKey{Key: "key_room4", Value: 1, Room: "1B"})
	g.BindEffect(p.riddle3, state.SpawnKey{Key: "key_room5", Value: 1, Room: "Room 3"})
	g.BindEffect(p.codeLock4B, state.SpawnKey{Key: ExitKey, Value: 50, Room: "4B"})

	reveal := state.RevealExit{
		From: b.id("Room 5"),
		To:   b.id(ExitRoom),
		Hint: i18n.T("HINT_EXIT_OPENED"),
	}
	for _, riddle := range p.goal {
		g.BindEffect(riddle, reveal)
	}
}
