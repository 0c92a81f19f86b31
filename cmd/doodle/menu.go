package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change difficulty and
Enter to play. Tab shows the scores of this session. After a run you return
to the menu.

Examples:
  doodle menu
  doodle menu --fps 30
  doodle menu --watch`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := terminalConfig()
	difficulty := flagDifficulty

	for {
		result, err := tui.RunMenu(cfg, difficulty)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if result.GameID == "" {
			return nil
		}

		difficulty = result.Difficulty
		doodle.SetDifficultyPreset(difficulty)
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := playMode(result.GameID, cfg)
		if err != nil {
			logger.Error("run failed", "mode", result.GameID, "err", err)
			return err
		}
		if !back && !flagGUI {
			return nil
		}
	}
}
