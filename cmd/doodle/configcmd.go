package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the effective configuration",
	Long: `The config is read from --config, then ~/.doodle/configs/doodle.yaml,
then ./configs/doodle.yaml, then the built-in defaults.`,
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective config as YAML, after presets and fixes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := doodle.LoadConfig(false)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report values that would be adjusted at load time",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, warnings, err := doodle.LoadConfig(false)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(warnings) == 0 {
			fmt.Fprintln(out, "config OK")
			return nil
		}
		for _, w := range warnings {
			fmt.Fprintln(out, w)
		}
		return fmt.Errorf("%d value(s) adjusted", len(warnings))
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file that would be loaded",
	Run: func(cmd *cobra.Command, _ []string) {
		path := config.ResolvePath(flagConfig)
		if path == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "(built-in defaults)")
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to the user config path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := config.UserConfigPath()
		if path == "" {
			return fmt.Errorf("home directory unavailable")
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configDumpCmd, configValidateCmd, configPathCmd, configInitCmd)
}
