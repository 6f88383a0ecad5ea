package entities

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"
)

// GameStatus tracks where a game is in its lifecycle.
type GameStatus string

const (
	// StatusSetup is the state between construction and the first turn.
	StatusSetup GameStatus = "setup"
	// StatusInProgress is active while questions remain unanswered.
	StatusInProgress GameStatus = "in_progress"
	// StatusFinished means every question has been answered correctly once.
	StatusFinished GameStatus = "finished"
)

var (
	// ErrNoQuestions is returned when a game is built without questions.
	ErrNoQuestions = errors.New("game needs at least one question")
	// ErrNoPlayers is returned when a game is built without players.
	ErrNoPlayers = errors.New("game needs at least one player")
)

// Game owns the questions and players of one trivia round and drives the
// turn/scoring state machine. The question at the current index is re-asked,
// rotating through players, until somebody answers it correctly. A game is
// not safe for concurrent use; one game belongs to one goroutine.
type Game struct {
	ID        string
	Questions []*Question
	Players   []*Player

	status          GameStatus
	currentQuestion int
	currentPlayer   int
	turns           int
}

// NewGame creates a game in the setup state. Question and player sets are
// fixed for the lifetime of the game.
func NewGame(questions []*Question, players []*Player) (*Game, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	return &Game{
		ID:        uuid.NewString(),
		Questions: questions,
		Players:   players,
		status:    StatusSetup,
	}, nil
}

// Start moves the game in progress. When shuffle is set, the question order
// is permuted once, before the first turn; membership never changes.
func (g *Game) Start(rng *rand.Rand, shuffle bool) {
	if g.status != StatusSetup {
		return
	}

	if shuffle {
		rng.Shuffle(len(g.Questions), func(i, j int) {
			g.Questions[i], g.Questions[j] = g.Questions[j], g.Questions[i]
		})
	}
	g.status = StatusInProgress
}

// Status reports the current lifecycle state.
func (g *Game) Status() GameStatus {
	return g.status
}

// Finished reports whether all questions have been answered.
func (g *Game) Finished() bool {
	return g.status == StatusFinished
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.currentPlayer]
}

// CurrentQuestion returns the question being asked this turn.
func (g *Game) CurrentQuestion() *Question {
	return g.Questions[g.currentQuestion]
}

// Turns returns how many answered turns the game has seen so far.
// Turns repeated because of invalid input are not counted.
func (g *Game) Turns() int {
	return g.turns
}

// RecordAnswer applies one answered turn. A correct answer scores a point
// for the current player and advances to the next question; either way the
// turn passes to the next player in rotation. The game finishes once the
// question index reaches the end of the question list.
func (g *Game) RecordAnswer(correct bool) {
	if g.status != StatusInProgress {
		return
	}

	g.turns++
	if correct {
		g.Players[g.currentPlayer].IncreaseScore()
		g.currentQuestion++
	}
	g.currentPlayer = (g.currentPlayer + 1) % len(g.Players)

	if g.currentQuestion == len(g.Questions) {
		g.status = StatusFinished
	}
}

// Winner returns the player with the highest score. On equal top scores the
// first player in the original player order wins.
func (g *Game) Winner() *Player {
	winner := g.Players[0]
	for _, p := range g.Players[1:] {
		if p.Score > winner.Score {
			winner = p
		}
	}
	return winner
}
