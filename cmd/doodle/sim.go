package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/loop"
)

var (
	flagSimRuns     int
	flagSimRate     int
	flagSimMaxTicks uint64
	flagSimEndless  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run autopilot sessions without a screen",
	Long: `Plays sessions with a simple autopilot and logs how each one ended.
Useful for checking that a config is winnable and for reproducing a seed.

Examples:
  doodle sim
  doodle sim --runs 50 --rate 2000
  doodle sim --seed 42 --difficulty hard --log-level debug`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 10, "Number of sessions to play")
	simCmd.Flags().IntVar(&flagSimRate, "rate", 1000, "Simulation ticks per second")
	simCmd.Flags().Uint64Var(&flagSimMaxTicks, "max-ticks", 60*60*10, "Abandon a session after this many ticks")
	simCmd.Flags().BoolVar(&flagSimEndless, "endless", false, "Simulate the endless mode")
}

func runSim(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, warnings, err := doodle.LoadConfig(flagSimEndless)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn("config adjusted", "detail", w)
	}

	gameID := doodle.GameID
	if flagSimEndless {
		gameID = doodle.EndlessGameID
	}
	opts := []doodle.Option{
		doodle.WithLogger(logger.WithPrefix("sim")),
		doodle.WithGameID(gameID),
	}
	if store != nil {
		opts = append(opts, doodle.WithHighScores(store))
	}

	vp := doodle.Viewport{W: cfg.Viewport.Width, H: cfg.Viewport.Height}
	if vp.W <= 0 || vp.H <= 0 {
		vp = doodle.Viewport{W: 800, H: 600}
	}
	session := doodle.NewSession(cfg, vp, opts...)

	var won, lost, abandoned int
	for run := 0; run < flagSimRuns; run++ {
		seed := flagSeed + int64(run)
		session.Restart(seed)

		res, err := simulate(ctx, session)
		if err != nil {
			return err
		}
		switch res.Status {
		case doodle.StatusWon:
			won++
		case doodle.StatusLost:
			lost++
		default:
			abandoned++
		}
		logger.Info("session finished",
			"run", run+1,
			"seed", seed,
			"status", res.Status,
			"score", res.Score,
			"ticks", res.Ticks)
	}

	fmt.Printf("%d sessions: %d won, %d lost, %d abandoned, best %d\n",
		flagSimRuns, won, lost, abandoned, session.HighScore())
	if store != nil {
		if stats, err := store.GameStats(gameID); err == nil && stats.GamesCount > 0 {
			fmt.Printf("average score %.1f\n", stats.AvgScore)
		}
	}
	return nil
}

// simulate drives one started session with the autopilot until it ends,
// runs out of ticks or ctx is cancelled.
func simulate(ctx context.Context, s *doodle.Session) (doodle.Result, error) {
	runner := loop.NewRunner(flagSimRate, func(ticks int) bool {
		for i := 0; i < ticks; i++ {
			s.SetHorizontalIntent(doodle.Autopilot(s.Snapshot()))
			s.Tick()
			if s.Status().Terminal() || s.Result().Ticks >= flagSimMaxTicks {
				return false
			}
		}
		return true
	})
	if err := runner.Start(ctx); err != nil {
		return doodle.Result{}, err
	}
	<-runner.Done()

	if err := ctx.Err(); err != nil {
		return s.Result(), err
	}
	return s.Result(), nil
}
