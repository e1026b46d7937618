package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/RustyNova016/charchart/internal/config"
	"github.com/RustyNova016/charchart/internal/dataset"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDatasetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List saved datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.GetDatasetsDir()
			if err != nil {
				return err
			}
			names, err := dataset.ListDatasets(dir)
			if err != nil {
				if os.IsNotExist(err) {
					return nil
				}
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "save NAME FILE",
		Short: "Import a TOML or CSV file as a named dataset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src := args[0], args[1]
			if name == "" || strings.HasPrefix(name, ".") || filepath.Base(name) != name {
				return fmt.Errorf("invalid dataset name %q", name)
			}
			ds, err := dataset.LoadDataset(src)
			if err != nil {
				return err
			}
			if err := config.EnsureDirs(); err != nil {
				return fmt.Errorf("create config directories: %w", err)
			}
			dir, err := config.GetDatasetsDir()
			if err != nil {
				return err
			}
			dst := filepath.Join(dir, name+".toml")
			if err := dataset.SaveDataset(ds, dst); err != nil {
				return fmt.Errorf("save dataset: %w", err)
			}
			a.log.Debug("saved dataset", zap.String("path", dst), zap.Int("points", len(ds.Points)))
			fmt.Fprintf(cmd.OutOrStdout(), "Dataset %q saved.\n", name)
			return nil
		},
	})
	return cmd
}
