package cmd

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/RustyNova016/charchart/internal/palette"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Show config file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := a.resolveConfigPath()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := a.loadConfig()
				if err != nil {
					return err
				}
				return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
			},
		},
		&cobra.Command{
			Use:   "theme NAME",
			Short: "Set default theme",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := args[0]
				if palette.GetThemeByName(name) == nil {
					return fmt.Errorf("unknown theme %q (run 'charchart themes' to list them)", name)
				}
				cfg, err := a.loadConfig()
				if err != nil {
					return err
				}
				cfg.Theme = name
				if err := a.saveConfig(cfg); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Default theme set to %q.\n", name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "width N",
			Short: "Set default bar width (0 fits the terminal)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("width must be a number: %w", err)
				}
				cfg, err := a.loadConfig()
				if err != nil {
					return err
				}
				cfg.Width = n
				if err := a.saveConfig(cfg); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Default width set to %d.\n", n)
				return nil
			},
		},
		&cobra.Command{
			Use:   "color MODE",
			Short: "Set color mode: auto, always or never",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := a.loadConfig()
				if err != nil {
					return err
				}
				cfg.Color = args[0]
				if err := a.saveConfig(cfg); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Color mode set to %q.\n", args[0])
				return nil
			},
		},
	)
	return cmd
}
