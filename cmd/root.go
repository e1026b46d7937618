package cmd

import (
	"fmt"
	"os"

	"github.com/RustyNova016/charchart/internal/config"
	"github.com/RustyNova016/charchart/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.1.0"

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool
	log        *zap.Logger
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "charchart",
		Short: "Draw horizontal bar charts in the terminal",
		Long: `charchart renders labeled values as horizontal bars.

Examples:
  charchart render visits.toml           # Chart a TOML dataset
  charchart render sales.csv --width 40  # Chart a CSV file at a fixed width
  cat data.csv | charchart render -      # Read CSV from stdin
  charchart datasets save visits v.toml  # Save a dataset under a name
  charchart render visits                # Chart a saved dataset`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(a.verbose)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config.toml (default: platform config dir)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	root.AddCommand(
		newRenderCmd(a),
		newThemesCmd(),
		newConfigCmd(a),
		newDatasetsCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "charchart v%s\n", version)
			},
		},
	)
	return root
}

// Execute runs the CLI and exits with status 1 on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) resolveConfigPath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	return config.GetConfigPath()
}

// loadConfig loads the config from disk. A missing file yields defaults; a
// broken one is an error rather than being silently ignored.
func (a *app) loadConfig() (*config.Config, error) {
	path, err := a.resolveConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("loaded config", zap.String("path", path), zap.String("theme", cfg.Theme))
	return cfg, nil
}

// saveConfig writes the config to disk, creating directories as needed.
func (a *app) saveConfig(cfg *config.Config) error {
	path, err := a.resolveConfigPath()
	if err != nil {
		return err
	}
	if a.configPath == "" {
		if err := config.EnsureDirs(); err != nil {
			return fmt.Errorf("create config directories: %w", err)
		}
	}
	if err := config.SaveConfig(cfg, path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	a.log.Debug("saved config", zap.String("path", path))
	return nil
}
