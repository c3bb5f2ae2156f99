package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/terminal"
)

var (
	flagComputer   string
	flagDifficulty string
	flagPrefsPath  string
	flagSeed       uint64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Play a game of Reversi. Moves are typed as a column letter followed by a
row digit, for example e3.

The computer settings are read from the preference file. Flags override them
and are saved for the next game.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagComputer, "computer", "", "Color played by the computer: black, white or none")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Computer strength: easy, medium or hard")
	playCmd.Flags().StringVar(&flagPrefsPath, "prefs", "~/.reversi/preferences.yaml", "Path to the preference file")
	playCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	config.SetLogLevel()

	store, err := repository.NewFilePreferenceRepository(flagPrefsPath)
	if err != nil {
		return err
	}

	prefs, err := store.Load()
	if err != nil {
		return err
	}

	changed := false

	if cmd.Flags().Changed("computer") {
		opponent, err := othello.ParseOpponent(flagComputer)
		if err != nil {
			return err
		}
		prefs.Opponent = opponent.String()
		changed = true
	}

	if cmd.Flags().Changed("difficulty") {
		difficulty, err := othello.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		prefs.Difficulty = int(difficulty)
		changed = true
	}

	if changed {
		if err = store.Save(prefs); err != nil {
			return err
		}
		slog.Debug("Saved preferences", "path", store.Path())
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	selector, err := othello.NewSelector(othello.DefaultMediumDepth, othello.DefaultHardDepth, seed)
	if err != nil {
		return err
	}

	session := othello.NewSession()
	session.Configure(prefs.GameOpponent(), prefs.GameDifficulty())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "reversi > ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "Computer: %s, difficulty: %s. Type 'help' for commands.\n",
		session.Opponent(), session.Difficulty())

	renderer := terminal.NewRenderer(prefs.Theme, os.Stdout)
	game := terminal.NewGame(session, selector, renderer, rl.Stdout())

	return game.Run(rl)
}
