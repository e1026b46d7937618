package dataset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/RustyNova016/charchart/bargraph"
	"github.com/shopspring/decimal"
)

var (
	ErrNoPoints     = errors.New("dataset has no points")
	ErrMissingValue = errors.New("point has no value")
	ErrBarCharacter = errors.New("bar_character must be a single character")
)

// Dataset is a chart's data as stored in a TOML file.
type Dataset struct {
	Title  string  `toml:"title,omitempty"`
	Points []Point `toml:"points"`
}

// Point is one bar. Colors are "#rrggbb" strings; empty fields fall back to
// the chart defaults.
type Point struct {
	Label        string `toml:"label"`
	Value        *Value `toml:"value"`
	Display      string `toml:"display,omitempty"`
	BarColor     string `toml:"bar_color,omitempty"`
	ValueColor   string `toml:"value_color,omitempty"`
	BarCharacter string `toml:"bar_character,omitempty"`
}

// Value is an exact decimal that decodes from a TOML integer, float or
// string. Strings keep full precision; floats go through their shortest
// decimal representation.
type Value struct {
	decimal.Decimal
}

// NewValue wraps d for use in a Point.
func NewValue(d decimal.Decimal) *Value {
	return &Value{Decimal: d}
}

// UnmarshalTOML implements toml.Unmarshaler.
func (v *Value) UnmarshalTOML(data any) error {
	switch x := data.(type) {
	case int64:
		v.Decimal = decimal.NewFromInt(x)
	case float64:
		v.Decimal = decimal.NewFromFloat(x)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return fmt.Errorf("value %q: %w", x, err)
		}
		v.Decimal = d
	default:
		return fmt.Errorf("value must be a number or a decimal string, got %T", data)
	}
	return nil
}

// Validate reports datasets with no points or points without a value.
func (ds *Dataset) Validate() error {
	if len(ds.Points) == 0 {
		return ErrNoPoints
	}
	for i, p := range ds.Points {
		if p.Value == nil {
			return fmt.Errorf("point %d (%q): %w", i+1, p.Label, ErrMissingValue)
		}
	}
	return nil
}

// DataPoints converts the dataset into graph points, in file order.
func (ds *Dataset) DataPoints() ([]bargraph.DataPoint, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	out := make([]bargraph.DataPoint, 0, len(ds.Points))
	for i, p := range ds.Points {
		dp, err := p.dataPoint()
		if err != nil {
			return nil, fmt.Errorf("point %d (%q): %w", i+1, p.Label, err)
		}
		out = append(out, dp)
	}
	return out, nil
}

func (p Point) dataPoint() (bargraph.DataPoint, error) {
	var opts []bargraph.PointOption
	if p.Display != "" {
		opts = append(opts, bargraph.WithDisplay(p.Display))
	}
	if p.BarColor != "" {
		c, err := bargraph.ParseHex(p.BarColor)
		if err != nil {
			return bargraph.DataPoint{}, fmt.Errorf("bar_color: %w", err)
		}
		opts = append(opts, bargraph.WithBarColor(c))
	}
	if p.ValueColor != "" {
		c, err := bargraph.ParseHex(p.ValueColor)
		if err != nil {
			return bargraph.DataPoint{}, fmt.Errorf("value_color: %w", err)
		}
		opts = append(opts, bargraph.WithValueColor(c))
	}
	if p.BarCharacter != "" {
		if utf8.RuneCountInString(p.BarCharacter) != 1 {
			return bargraph.DataPoint{}, fmt.Errorf("%w, got %q", ErrBarCharacter, p.BarCharacter)
		}
		r, _ := utf8.DecodeRuneInString(p.BarCharacter)
		opts = append(opts, bargraph.WithBarCharacter(r))
	}
	return bargraph.NewDataPoint(p.Label, p.Value.Decimal, opts...), nil
}
