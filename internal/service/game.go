package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"trivia-cli/internal/domain/entities"
)

// Presenter is how the engine talks to whoever is playing. The engine owns
// parsing and validation of the raw selection; the presenter only moves text.
type Presenter interface {
	ShowQuestion(playerName, prompt string, options []string)
	ReadSelection() (string, error)
	ShowCorrect()
	ShowIncorrect()
	ShowInvalidInput()
	ShowResults(players []*entities.Player, winner *entities.Player)
}

// Options control shuffle behavior for a game run.
type Options struct {
	ShuffleQuestions bool
	ShuffleOptions   bool
}

// GameService runs the turn loop of a trivia game: it presents the current
// question to the current player, reads and validates the selection, and
// feeds the outcome back into the game state.
type GameService struct {
	presenter Presenter
	logger    *zap.Logger
	rng       *rand.Rand
	opts      Options
}

// NewGameService creates a new GameService. The rng drives both the one-time
// question shuffle and the per-turn option shuffle, so a seeded rng makes a
// whole game reproducible.
func NewGameService(presenter Presenter, logger *zap.Logger, rng *rand.Rand, opts Options) *GameService {
	return &GameService{
		presenter: presenter,
		logger:    logger,
		rng:       rng,
		opts:      opts,
	}
}

// Run plays a game to completion and shows the final results. It blocks on
// the presenter for every selection; the only early exits are a read failure
// or a canceled context.
func (s *GameService) Run(ctx context.Context, game *entities.Game) error {
	game.Start(s.rng, s.opts.ShuffleQuestions)
	s.logger.Info("game started",
		zap.String("game_id", game.ID),
		zap.Int("questions", len(game.Questions)),
		zap.Int("players", len(game.Players)),
	)

	for !game.Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.playTurn(game); err != nil {
			return err
		}
	}

	winner := game.Winner()
	s.presenter.ShowResults(game.Players, winner)
	s.logger.Info("game finished",
		zap.String("game_id", game.ID),
		zap.Int("turns", game.Turns()),
		zap.String("winner", winner.Name),
	)

	return nil
}

// playTurn runs one presentation of the current question. Invalid input
// leaves the game state untouched, so the same player gets the same question
// again on the next iteration.
func (s *GameService) playTurn(game *entities.Game) error {
	player := game.CurrentPlayer()
	question := game.CurrentQuestion()

	options := question.Options
	if s.opts.ShuffleOptions {
		options = question.ShuffledOptions(s.rng)
	}

	s.presenter.ShowQuestion(player.Name, question.Prompt, options)

	raw, err := s.presenter.ReadSelection()
	if err != nil {
		return fmt.Errorf("read selection: %w", err)
	}

	selection, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || selection < 1 || selection > len(options) {
		s.presenter.ShowInvalidInput()
		return nil
	}

	correct := options[selection-1] == question.Answer
	if correct {
		s.presenter.ShowCorrect()
	} else {
		s.presenter.ShowIncorrect()
	}
	game.RecordAnswer(correct)

	return nil
}
