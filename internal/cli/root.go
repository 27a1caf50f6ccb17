package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"life-lab/internal/app"
)

var (
	logLevel   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life on a torus, with live population metrics",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log verbosity (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file")
}

// resolveConfig overlays the YAML file (when given) under any flags the user
// set explicitly: defaults < file < flags.
func resolveConfig(cmd *cobra.Command, cfg *app.Config) error {
	if configPath == "" {
		return nil
	}
	base := app.NewConfig()
	if err := base.LoadFile(configPath); err != nil {
		return err
	}
	fs := cmd.Flags()
	if !fs.Changed("width") {
		cfg.Width = base.Width
	}
	if !fs.Changed("height") {
		cfg.Height = base.Height
	}
	if !fs.Changed("density") {
		cfg.Density = base.Density
	}
	if !fs.Changed("scale") {
		cfg.Scale = base.Scale
	}
	if !fs.Changed("speed") {
		cfg.Speed = base.Speed
	}
	if !fs.Changed("seed") {
		cfg.Seed = base.Seed
	}
	if !fs.Changed("panel-width") {
		cfg.PanelWidth = base.PanelWidth
	}
	return nil
}
