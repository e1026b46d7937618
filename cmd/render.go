package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/RustyNova016/charchart/bargraph"
	"github.com/RustyNova016/charchart/internal/config"
	"github.com/RustyNova016/charchart/internal/dataset"
	"github.com/RustyNova016/charchart/internal/humanize"
	"github.com/RustyNova016/charchart/internal/palette"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// fallbackColumns is the terminal width assumed when output is not a TTY.
const fallbackColumns = 80

type renderOptions struct {
	width    int
	space    int
	noGroup  bool
	theme    string
	char     string
	color    string
	humanize bool
	format   string
}

func newRenderCmd(a *app) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [FILE|NAME|-]",
		Short: "Render a dataset as a bar chart",
		Long: `Render a dataset as a horizontal bar chart.

The argument is a TOML or CSV file, the name of a saved dataset, or "-" to
read CSV from stdin. Flags override the values in config.toml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			applyRenderFlags(cmd, cfg, opts)
			if err := cfg.Validate(); err != nil {
				return err
			}

			format, err := dataset.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			ds, err := a.readDataset(cmd, args[0], format)
			if err != nil {
				return err
			}
			if opts.humanize {
				humanizeDisplays(ds)
			}
			points, err := ds.DataPoints()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			g, err := a.buildGraph(cfg, points, out)
			if err != nil {
				return err
			}
			chart, err := g.Render(points)
			if err != nil {
				return err
			}
			if ds.Title != "" {
				fmt.Fprintln(out, ds.Title)
			}
			_, err = io.WriteString(out, chart)
			return err
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.width, "width", "w", 0, "Width of the longest bar (default: fit the terminal)")
	f.IntVar(&opts.space, "space", 1, "Blank lines between groups")
	f.BoolVar(&opts.noGroup, "no-group", false, "Do not group consecutive bars with the same label")
	f.StringVarP(&opts.theme, "theme", "t", "", "Color theme (see 'charchart themes')")
	f.StringVar(&opts.char, "char", "", "Bar fill character")
	f.StringVar(&opts.color, "color", "", "Color output: auto, always, never")
	f.BoolVar(&opts.humanize, "humanize", false, "Show large values with SI suffixes (1.5K, 2.0M)")
	f.StringVar(&opts.format, "format", "", "Input format: toml or csv (default: from extension)")
	return cmd
}

// applyRenderFlags overlays explicitly set flags on top of the config.
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config, opts renderOptions) {
	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Width = opts.width
	}
	if f.Changed("space") {
		cfg.SpaceBetween = opts.space
	}
	if f.Changed("no-group") {
		cfg.GroupSameLabel = !opts.noGroup
	}
	if f.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if f.Changed("char") {
		cfg.BarCharacter = opts.char
	}
	if f.Changed("color") {
		cfg.Color = opts.color
	}
}

func (a *app) readDataset(cmd *cobra.Command, arg string, format dataset.Format) (*dataset.Dataset, error) {
	if arg == "-" {
		if format == "" {
			format = dataset.FormatCSV
		}
		a.log.Debug("reading dataset from stdin", zap.String("format", string(format)))
		return dataset.Read(cmd.InOrStdin(), format)
	}

	dir, err := config.GetDatasetsDir()
	if err != nil {
		a.log.Debug("no datasets directory, resolving as a path only", zap.Error(err))
		dir = ""
	}
	path, err := dataset.Resolve(arg, dir)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = dataset.DetectFormat(path)
	}
	a.log.Debug("reading dataset", zap.String("path", path), zap.String("format", string(format)))

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := dataset.Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// buildGraph turns the effective config into a Graph sized for out.
func (a *app) buildGraph(cfg *config.Config, points []bargraph.DataPoint, out io.Writer) (*bargraph.Graph, error) {
	barColor, valueColor, err := themeColors(cfg)
	if err != nil {
		return nil, err
	}

	fd, isTerm := terminalFd(out)

	width := cfg.Width
	if width == 0 {
		columns := fallbackColumns
		if isTerm {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				columns = w
			}
		}
		width = bargraph.FitWidth(columns, points)
	}

	var styler bargraph.Styler
	switch cfg.Color {
	case config.ColorAlways:
		styler = bargraph.TrueColorStyler()
	case config.ColorNever:
		styler = bargraph.PlainStyler
	default:
		if isTerm {
			styler = bargraph.NewLipglossStyler(lipgloss.NewRenderer(out))
		} else {
			styler = bargraph.PlainStyler
		}
	}

	a.log.Debug("building graph",
		zap.Int("points", len(points)),
		zap.Int("width", width),
		zap.String("color", cfg.Color),
		zap.Bool("terminal", isTerm),
	)

	return bargraph.New(width,
		bargraph.WithSpaceBetween(cfg.SpaceBetween),
		bargraph.WithGroupSameLabel(cfg.GroupSameLabel),
		bargraph.WithDefaultBarColor(barColor),
		bargraph.WithDefaultValueColor(valueColor),
		bargraph.WithDefaultBarCharacter(cfg.BarRune()),
		bargraph.WithStyler(styler),
	)
}

// themeColors resolves the default colors: explicit config colors win over
// the theme's.
func themeColors(cfg *config.Config) (bar, value bargraph.Color, err error) {
	theme := palette.GetThemeByName(cfg.Theme)
	if theme == nil {
		return bar, value, fmt.Errorf("unknown theme %q (run 'charchart themes' to list them)", cfg.Theme)
	}
	if bar, value, err = theme.Colors(); err != nil {
		return
	}
	if cfg.BarColor != "" {
		if bar, err = bargraph.ParseHex(cfg.BarColor); err != nil {
			return bar, value, fmt.Errorf("bar_color: %w", err)
		}
	}
	if cfg.ValueColor != "" {
		if value, err = bargraph.ParseHex(cfg.ValueColor); err != nil {
			return bar, value, fmt.Errorf("value_color: %w", err)
		}
	}
	return bar, value, nil
}

func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// humanizeDisplays gives every point without a display override an
// SI-suffixed display of its value.
func humanizeDisplays(ds *dataset.Dataset) {
	for i := range ds.Points {
		if ds.Points[i].Display == "" {
			ds.Points[i].Display = humanize.FormatSI(ds.Points[i].Value.Decimal)
		}
	}
}
