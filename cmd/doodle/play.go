package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-doodle/internal/audio"
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/platform/gui"
	"github.com/vovakirdan/tui-doodle/internal/platform/tui"
	"github.com/vovakirdan/tui-doodle/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. The mode defaults to "doodle", which is won at the goal
score; "doodle_endless" has no goal.

Controls:
  Left/A, Right/D  - Steer (terminals release after a short pause in key repeat)
  Down/S/Space     - Stop steering
  P                - Pause
  R                - Restart
  M                - Mute
  Esc              - Back to menu
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Ghosts start slow and speed up with score
  normal - Ghosts start at 30% difficulty
  hard   - Ghosts start at 70% difficulty
  fixed  - No progression, stays at the config's initial level

Examples:
  doodle play
  doodle play doodle_endless
  doodle play --difficulty hard --seed 7
  doodle play --gui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := doodle.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'doodle list' to see available modes", gameID)
	}

	_, err := playMode(gameID, terminalConfig())
	return err
}

// terminalConfig sizes the runtime to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playMode runs one mode in the selected frontend. It returns true when
// the player asked to go back to the menu.
func playMode(gameID string, rc core.RuntimeConfig) (bool, error) {
	endless := gameID == doodle.EndlessGameID
	cfg, warnings, err := doodle.LoadConfig(endless)
	if err != nil {
		return false, err
	}
	for _, w := range warnings {
		logger.Warn("config adjusted", "detail", w)
	}

	player := audio.NewPlayer(cfg.Audio, logger.WithPrefix("audio"))
	if err := player.Init(); err != nil {
		logger.Warn("sound unavailable", "err", err)
	}
	player.SetMuted(flagMute)
	defer player.Close()

	if flagGUI {
		opts := gui.Options{
			Config:   cfg,
			Endless:  endless,
			Seed:     rc.Seed,
			TickRate: rc.TickRate,
			Audio:    player,
			Logger:   logger.WithPrefix(gameID),
		}
		if store != nil {
			opts.HighScores = store
		}
		return false, gui.Run(opts)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return false, err
	}

	opts := tui.Options{
		Audio:        player,
		Logger:       logger,
		ReleaseAfter: time.Duration(cfg.Input.ReleaseAfterMs) * time.Millisecond,
	}
	if flagWatch {
		if w := startWatcher(); w != nil {
			defer w.Close()
			opts.Watcher = w
		}
	}
	return tui.Run(game, rc, opts)
}

// startWatcher watches the file the config is loaded from, if any.
func startWatcher() *config.Watcher {
	path := config.ResolvePath(flagConfig)
	if path == "" {
		logger.Warn("no config file to watch, using built-in defaults")
		return nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		logger.Warn("config watch disabled", "err", err)
		return nil
	}
	logger.Info("watching config", "path", path)
	return w
}
