// doodle is a Doodle Jump style climber for the terminal.
//
// Usage:
//
//	doodle play [mode]   - Play a mode (doodle, doodle_endless)
//	doodle menu          - Pick a mode and difficulty interactively
//	doodle list          - List available modes
//	doodle sim           - Run headless autopilot sessions
//	doodle config <cmd>  - Inspect the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible worlds
//	--config <path>       - Load a custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--gui                 - Play in a desktop window instead of the terminal
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagGUI        bool
	flagMute       bool
	flagWatch      bool
)

// Shared by subcommands after PersistentPreRunE.
var (
	logger  *log.Logger
	store   *storage.Store
	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doodle",
	Short: "Doodle Jump - bounce up through the ghosts in your terminal",
	Long: `Doodle Jump is a vertical climber. Steer left and right, land on
platforms to bounce higher and avoid the patrolling ghosts.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker
  list     - Show available modes
  sim      - Run autopilot sessions without a screen
  config   - Dump, validate or locate the configuration

Examples:
  doodle play
  doodle play doodle_endless --difficulty hard
  doodle play --gui
  doodle menu --watch --config ./my-doodle.yaml
  doodle sim --runs 20 --seed 42`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (interactive modes log nowhere otherwise)")
	pf.BoolVar(&flagGUI, "gui", false, "Open a desktop window instead of the terminal")
	pf.BoolVar(&flagMute, "mute", false, "Start with sound off")
	pf.BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// interactive reports whether a command owns the terminal screen, in which
// case logs must not go to stderr.
func interactive(cmd *cobra.Command) bool {
	return cmd == playCmd || cmd == menuCmd
}

// setup builds the logger and the score store and hands them to the game
// package before any game is created.
func setup(cmd *cobra.Command, _ []string) error {
	var w io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	} else if interactive(cmd) && !flagGUI {
		w = io.Discard
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "doodle",
		Level:           level,
	})

	store, err = storage.OpenMemory()
	if err != nil {
		logger.Warn("high scores disabled", "err", err)
		store = nil
	}

	doodle.SetLogger(logger)
	doodle.SetConfigPath(flagConfig)
	doodle.SetDifficultyPreset(flagDifficulty)
	if store != nil {
		doodle.SetHighScores(store)
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if store != nil {
		store.Close()
	}
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}
