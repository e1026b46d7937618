package cmd

import (
	"fmt"

	"github.com/RustyNova016/charchart/bargraph"
	"github.com/RustyNova016/charchart/internal/palette"
	"github.com/spf13/cobra"
)

func newThemesCmd() *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			styler := bargraph.PlainStyler
			if preview {
				styler = bargraph.TrueColorStyler()
			}
			for _, slug := range palette.ListThemes() {
				theme := palette.Themes[slug]
				if !preview {
					fmt.Fprintln(out, slug)
					continue
				}
				bar, value, err := theme.Colors()
				if err != nil {
					return fmt.Errorf("theme %q: %w", slug, err)
				}
				fmt.Fprintf(out, "%-16s %s%s\n", slug,
					styler.Style("████████", bar),
					styler.Style(" - ("+theme.Name+")", value))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "Show a sample bar in each theme's colors")
	return cmd
}
