package menu

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/state"
)

type replyPrompter struct {
	replies []string
	labels  []string
}

func (p *replyPrompter) Prompt(_ *state.Game, label string) (string, error) {
	p.labels = append(p.labels, label)
	if len(p.replies) == 0 {
		return "", io.EOF
	}
	r := p.replies[0]
	p.replies = p.replies[1:]
	return r, nil
}

func newGame() *state.Game {
	return state.NewGame(world.NewWorld(), world.NoRoom)
}

func TestConfirm(t *testing.T) {
	for reply, want := range map[string]bool{
		"yes":   true,
		" Y ":   true,
		"YES":   true,
		"no":    false,
		"maybe": false,
		"":      false,
	} {
		got, err := Confirm(newGame(), &replyPrompter{replies: []string{reply}}, "Sure?")
		require.NoError(t, err)
		assert.Equal(t, want, got, "reply %q", reply)
	}
}

func TestConfirm_AppendsChoices(t *testing.T) {
	ask := &replyPrompter{replies: []string{"y"}}
	_, err := Confirm(newGame(), ask, "Sure?")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sure? (yes/no)"}, ask.labels)
}

func TestConfirm_EndOfInput(t *testing.T) {
	_, err := Confirm(newGame(), &replyPrompter{}, "Sure?")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPickPuzzle(t *testing.T) {
	first := entities.NewRiddlePuzzle("5B Puzzle 1", 2, "?", "Candle")
	second := entities.NewRiddlePuzzle("5B Puzzle 2", 3, "?", "Clock")
	puzzles := []world.Puzzle{first, second}

	g := newGame()
	chosen, err := PickPuzzle(g, &replyPrompter{replies: []string{" 2 "}}, puzzles)
	require.NoError(t, err)
	assert.Equal(t, world.Puzzle(second), chosen)

	msgs := g.DrainMessages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "1) PUZZLE{5B Puzzle 1} (Difficulty: 2)", msgs[1])

	for _, reply := range []string{"0", "3", "-1", "one"} {
		chosen, err := PickPuzzle(g, &replyPrompter{replies: []string{reply}}, puzzles)
		require.NoError(t, err)
		assert.Nil(t, chosen, "reply %q", reply)
	}
}
