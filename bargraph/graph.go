// Package bargraph renders horizontal bar charts for the terminal.
//
// Values are exact decimals so that bar lengths are reproducible: a bar is
// round(value * width / max) columns long, rounding half away from zero.
package bargraph

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/shopspring/decimal"
)

// MaxBarLength is the longest bar, in columns, a Graph will draw. No terminal
// is this wide, so a longer bar always means the data or width is wrong.
const MaxBarLength = math.MaxUint16

const (
	separator           = "│"
	DefaultBarCharacter = '█'
	DefaultSpaceBetween = 1
)

var (
	// ErrBarLength is returned by Render when a value scales to a bar that is
	// negative or longer than MaxBarLength.
	ErrBarLength = errors.New("bar length out of range")
	// ErrInvalidConfig is returned by New for unusable settings.
	ErrInvalidConfig = errors.New("invalid graph config")
)

var maxBarLength = decimal.NewFromInt(MaxBarLength)

// Graph holds chart-wide settings. It is immutable after New and safe for
// concurrent use.
type Graph struct {
	width          int
	spaceBetween   int
	groupSameLabel bool
	barColor       Color
	valueColor     Color
	barChar        rune
	styler         Styler
}

// Option configures a Graph.
type Option func(*Graph)

// WithSpaceBetween sets the number of blank lines between two groups.
func WithSpaceBetween(n int) Option {
	return func(g *Graph) { g.spaceBetween = n }
}

// WithGroupSameLabel controls whether consecutive points sharing a label are
// drawn as one group.
func WithGroupSameLabel(group bool) Option {
	return func(g *Graph) { g.groupSameLabel = group }
}

// WithDefaultBarColor sets the bar color for points without their own.
func WithDefaultBarColor(c Color) Option {
	return func(g *Graph) { g.barColor = c }
}

// WithDefaultValueColor sets the value text color for points without their own.
func WithDefaultValueColor(c Color) Option {
	return func(g *Graph) { g.valueColor = c }
}

// WithDefaultBarCharacter sets the fill character for points without their own.
func WithDefaultBarCharacter(r rune) Option {
	return func(g *Graph) { g.barChar = r }
}

// WithStyler replaces the true-color styler, e.g. with PlainStyler.
func WithStyler(s Styler) Option {
	return func(g *Graph) { g.styler = s }
}

// New returns a Graph whose largest value spans width columns.
func New(width int, opts ...Option) (*Graph, error) {
	g := &Graph{
		width:          width,
		spaceBetween:   DefaultSpaceBetween,
		groupSameLabel: true,
		barColor:       DefaultBarColor,
		valueColor:     DefaultValueColor,
		barChar:        DefaultBarCharacter,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.styler == nil {
		g.styler = TrueColorStyler()
	}

	switch {
	case width <= 0 || width > MaxBarLength:
		return nil, fmt.Errorf("%w: width %d not in 1..%d", ErrInvalidConfig, width, MaxBarLength)
	case g.spaceBetween < 0:
		return nil, fmt.Errorf("%w: negative space between groups", ErrInvalidConfig)
	case g.barChar == 0:
		return nil, fmt.Errorf("%w: empty bar character", ErrInvalidConfig)
	}
	return g, nil
}

// MaxValue returns the largest value in data, or zero when data is empty.
func MaxValue(data []DataPoint) decimal.Decimal {
	if len(data) == 0 {
		return decimal.Zero
	}
	maxY := data[0].value
	for _, p := range data[1:] {
		if p.value.GreaterThan(maxY) {
			maxY = p.value
		}
	}
	return maxY
}

// LabelWidth returns the width of the label column: the widest label in data,
// in terminal cells.
func LabelWidth(data []DataPoint) int {
	w := 0
	for _, p := range data {
		w = max(w, ansi.StringWidth(p.label))
	}
	return w
}

// BarLength returns how many columns p's bar takes when maxY spans the full
// width. A zero maxY gives zero-length bars.
func (g *Graph) BarLength(p DataPoint, maxY decimal.Decimal) (int, error) {
	if maxY.IsZero() {
		return 0, nil
	}
	cols := p.value.Mul(decimal.NewFromInt(int64(g.width))).DivRound(maxY, 0)
	if cols.IsNegative() || cols.GreaterThan(maxBarLength) {
		return 0, fmt.Errorf("%w: %q (%s) scales to %s columns", ErrBarLength, p.label, p.value, cols)
	}
	return int(cols.IntPart()), nil
}

// Render draws data as one line per point, in order. Consecutive points with
// the same label share a group when grouping is enabled; groups are separated
// by blank label lines. Empty data renders as an empty string.
func (g *Graph) Render(data []DataPoint) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	labelWidth := LabelWidth(data)
	maxY := MaxValue(data)

	var b strings.Builder
	for i, p := range data {
		grouped := i > 0 && g.groupSameLabel && p.label == data[i-1].label

		if i > 0 && !grouped {
			for j := 0; j < g.spaceBetween; j++ {
				b.WriteString(padLabel("", labelWidth))
				b.WriteString(separator)
				b.WriteByte('\n')
			}
		}

		bar, err := g.bar(p, maxY)
		if err != nil {
			return "", err
		}

		label := p.label
		if grouped {
			label = ""
		}
		b.WriteString(padLabel(label, labelWidth))
		b.WriteString(separator)
		b.WriteString(bar)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// MustRender is like Render but panics if a bar cannot be drawn.
func (g *Graph) MustRender(data []DataPoint) string {
	out, err := g.Render(data)
	if err != nil {
		panic(err)
	}
	return out
}

// bar returns the styled fill and value text for one point.
func (g *Graph) bar(p DataPoint, maxY decimal.Decimal) (string, error) {
	n, err := g.BarLength(p, maxY)
	if err != nil {
		return "", err
	}

	fill := g.barChar
	if r, ok := p.BarCharacter(); ok {
		fill = r
	}
	barColor := g.barColor
	if c, ok := p.BarColor(); ok {
		barColor = c
	}
	valueColor := g.valueColor
	if c, ok := p.ValueColor(); ok {
		valueColor = c
	}

	return g.styler.Style(strings.Repeat(string(fill), n), barColor) +
		g.styler.Style(valueSuffix(p), valueColor), nil
}

func valueSuffix(p DataPoint) string {
	return " - (" + p.DisplayValue() + ")"
}

func padLabel(label string, width int) string {
	if pad := width - ansi.StringWidth(label); pad > 0 {
		return label + strings.Repeat(" ", pad)
	}
	return label
}

// FitWidth returns the largest graph width at which every line of data fits
// within columns terminal cells. It never returns less than 1.
func FitWidth(columns int, data []DataPoint) int {
	suffix := 0
	for _, p := range data {
		suffix = max(suffix, ansi.StringWidth(valueSuffix(p)))
	}
	w := columns - LabelWidth(data) - ansi.StringWidth(separator) - suffix
	return min(max(w, 1), MaxBarLength)
}
