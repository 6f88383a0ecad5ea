package entities

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeQuestions(t *testing.T, n int) []*Question {
	t.Helper()

	questions := make([]*Question, 0, n)
	for i := 0; i < n; i++ {
		q, err := NewQuestion(fmt.Sprintf("question %d", i+1), []string{"right", "wrong"}, "right")
		require.NoError(t, err)
		questions = append(questions, q)
	}
	return questions
}

func makePlayers(names ...string) []*Player {
	players := make([]*Player, 0, len(names))
	for _, name := range names {
		players = append(players, NewPlayer(name))
	}
	return players
}

func startedGame(t *testing.T, questions int, names ...string) *Game {
	t.Helper()

	game, err := NewGame(makeQuestions(t, questions), makePlayers(names...))
	require.NoError(t, err)
	game.Start(rand.New(rand.NewSource(1)), false)
	return game
}

func TestNewGame_Validation(t *testing.T) {
	_, err := NewGame(nil, makePlayers("Alice"))
	assert.ErrorIs(t, err, ErrNoQuestions)

	_, err = NewGame(makeQuestions(t, 1), nil)
	assert.ErrorIs(t, err, ErrNoPlayers)
}

func TestNewGame_StartsInSetup(t *testing.T) {
	game, err := NewGame(makeQuestions(t, 1), makePlayers("Alice"))
	require.NoError(t, err)

	assert.Equal(t, StatusSetup, game.Status())
	assert.NotEmpty(t, game.ID)
}

func TestGame_CorrectAnswerAdvancesQuestionAndRotation(t *testing.T) {
	game := startedGame(t, 2, "Alice", "Bob")

	first := game.CurrentQuestion()
	game.RecordAnswer(true)

	assert.Equal(t, 1, game.Players[0].Score)
	assert.Equal(t, "Bob", game.CurrentPlayer().Name)
	assert.NotSame(t, first, game.CurrentQuestion())
	assert.Equal(t, StatusInProgress, game.Status())
}

func TestGame_IncorrectAnswerRotatesOnSameQuestion(t *testing.T) {
	game := startedGame(t, 2, "Alice", "Bob")

	question := game.CurrentQuestion()
	game.RecordAnswer(false)

	assert.Equal(t, 0, game.Players[0].Score)
	assert.Equal(t, "Bob", game.CurrentPlayer().Name)
	assert.Same(t, question, game.CurrentQuestion())

	// Rotation wraps back to the first player, still on the same question.
	game.RecordAnswer(false)
	assert.Equal(t, "Alice", game.CurrentPlayer().Name)
	assert.Same(t, question, game.CurrentQuestion())
}

func TestGame_FinishesWhenAllQuestionsAnswered(t *testing.T) {
	game := startedGame(t, 3, "Alice", "Bob")

	for i := 0; !game.Finished(); i++ {
		require.Less(t, i, 3, "game must finish after 3 correct answers")
		game.RecordAnswer(true)
	}

	assert.Equal(t, StatusFinished, game.Status())
	assert.Equal(t, 3, game.Turns())

	total := 0
	for _, p := range game.Players {
		total += p.Score
	}
	assert.Equal(t, 3, total, "score total must equal the question count")
}

func TestGame_RecordAnswerAfterFinishIsNoop(t *testing.T) {
	game := startedGame(t, 1, "Alice")
	game.RecordAnswer(true)
	require.True(t, game.Finished())

	game.RecordAnswer(true)
	assert.Equal(t, 1, game.Players[0].Score)
	assert.Equal(t, 1, game.Turns())
}

func TestGame_Winner_TieGoesToFirstInPlayerOrder(t *testing.T) {
	game := startedGame(t, 2, "Alice", "Bob")

	// Alice answers the first question, Bob the second: 1 point each.
	game.RecordAnswer(true)
	game.RecordAnswer(true)
	require.True(t, game.Finished())

	assert.Equal(t, "Alice", game.Winner().Name)
}

func TestGame_Winner_HighestScore(t *testing.T) {
	game := startedGame(t, 2, "Alice", "Bob")

	// Alice misses both her turns; Bob answers both questions.
	game.RecordAnswer(false) // Alice
	game.RecordAnswer(true)  // Bob
	game.RecordAnswer(false) // Alice
	game.RecordAnswer(true)  // Bob
	require.True(t, game.Finished())

	assert.Equal(t, "Bob", game.Winner().Name)
	assert.Equal(t, 2, game.Winner().Score)
}

func TestGame_Start_ShuffleKeepsMembership(t *testing.T) {
	questions := makeQuestions(t, 10)
	game, err := NewGame(questions, makePlayers("Alice"))
	require.NoError(t, err)

	game.Start(rand.New(rand.NewSource(42)), true)

	assert.Equal(t, StatusInProgress, game.Status())
	assert.ElementsMatch(t, questions, game.Questions)
}
