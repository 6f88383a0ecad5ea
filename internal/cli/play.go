package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trivia-cli/internal/config"
	"trivia-cli/internal/delivery/terminal"
	"trivia-cli/internal/domain/entities"
	"trivia-cli/internal/logger"
	"trivia-cli/internal/repository"
	"trivia-cli/internal/service"
)

// defaultPlayers is used when the player count argument is omitted.
const defaultPlayers = 2

// NewPlayCmd builds the CLI subcommand that runs one trivia game.
func NewPlayCmd() *cobra.Command {
	var (
		names string
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "play [questions.json] [players]",
		Short: "Play a trivia game with N players",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, playersArg := "", ""
			if len(args) > 0 {
				path = args[0]
			}
			if len(args) > 1 {
				playersArg = args[1]
			}
			return runGame(cmd.Context(), path, playersArg, names, seed, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&names, "names", "", "comma-separated player names (generated names fill the rest)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed shuffle seed for reproducible games")
	return cmd
}

func runGame(ctx context.Context, path, playersArg, names string, seed int64, in io.Reader, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if path == "" {
		path = cfg.Game.QuestionsPath
	}

	numPlayers := defaultPlayers
	if playersArg != "" {
		numPlayers, err = strconv.Atoi(playersArg)
		if err != nil || numPlayers < 1 {
			return fmt.Errorf("number of players must be a positive integer, got %q", playersArg)
		}
	}

	repo := repository.NewQuestionRepository(log)
	questions, err := repo.LoadFromFile(path)
	if err != nil {
		log.Warn("could not load questions", zap.String("path", path), zap.Error(err))
	}
	if len(questions) == 0 {
		fmt.Fprintln(out, "No valid questions found in the file.")
		return nil
	}

	players := buildPlayers(numPlayers, names, cfg.Game.PlayerPrefix)

	game, err := entities.NewGame(questions, players)
	if err != nil {
		return err
	}

	if seed == 0 {
		seed = cfg.Game.Seed
	}

	svc := service.NewGameService(
		terminal.NewPresenter(in, out),
		log,
		newRNG(seed),
		service.Options{
			ShuffleQuestions: cfg.Game.ShuffleQuestions,
			ShuffleOptions:   cfg.Game.ShuffleOptions,
		},
	)
	return svc.Run(ctx, game)
}

// buildPlayers creates count players. Explicit names fill the first slots;
// the rest get generated "<prefix> N" names.
func buildPlayers(count int, names, prefix string) []*entities.Player {
	explicit := make([]string, 0, count)
	if names != "" {
		for _, name := range strings.Split(names, ",") {
			if name = strings.TrimSpace(name); name != "" {
				explicit = append(explicit, name)
			}
		}
	}

	players := make([]*entities.Player, 0, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("%s %d", prefix, i+1)
		if i < len(explicit) {
			name = explicit[i]
		}
		players = append(players, entities.NewPlayer(name))
	}
	return players
}

// newRNG seeds a game-local RNG. A zero seed falls back to the clock.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
