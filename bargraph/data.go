package bargraph

import "github.com/shopspring/decimal"

// DataPoint is a single bar of a graph. It is immutable once built; optional
// fields that are unset fall back to the Graph defaults at render time.
type DataPoint struct {
	label string
	value decimal.Decimal

	display    *string
	barColor   *Color
	valueColor *Color
	barChar    *rune
}

// PointOption sets an optional field of a DataPoint.
type PointOption func(*DataPoint)

// WithDisplay prints s instead of the decimal value, e.g. a formatted duration.
func WithDisplay(s string) PointOption {
	return func(p *DataPoint) { p.display = &s }
}

// WithBarColor overrides the graph's bar color for this point.
func WithBarColor(c Color) PointOption {
	return func(p *DataPoint) { p.barColor = &c }
}

// WithValueColor overrides the graph's value color for this point.
func WithValueColor(c Color) PointOption {
	return func(p *DataPoint) { p.valueColor = &c }
}

// WithBarCharacter overrides the graph's fill character for this point.
func WithBarCharacter(r rune) PointOption {
	return func(p *DataPoint) { p.barChar = &r }
}

// NewDataPoint builds a DataPoint from its required label and value.
func NewDataPoint(label string, value decimal.Decimal, opts ...PointOption) DataPoint {
	p := DataPoint{label: label, value: value}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Label returns the point's label.
func (p DataPoint) Label() string { return p.label }

// Value returns the point's value.
func (p DataPoint) Value() decimal.Decimal { return p.value }

// ValueDisplay returns the display override, if any.
func (p DataPoint) ValueDisplay() (string, bool) {
	if p.display == nil {
		return "", false
	}
	return *p.display, true
}

// BarColor returns the bar color override, if any.
func (p DataPoint) BarColor() (Color, bool) {
	if p.barColor == nil {
		return Color{}, false
	}
	return *p.barColor, true
}

// ValueColor returns the value color override, if any.
func (p DataPoint) ValueColor() (Color, bool) {
	if p.valueColor == nil {
		return Color{}, false
	}
	return *p.valueColor, true
}

// BarCharacter returns the fill character override, if any.
func (p DataPoint) BarCharacter() (rune, bool) {
	if p.barChar == nil {
		return 0, false
	}
	return *p.barChar, true
}

// DisplayValue returns the text printed after the bar: the display override
// when set, otherwise the canonical decimal string of the value.
func (p DataPoint) DisplayValue() string {
	if p.display != nil {
		return *p.display
	}
	return p.value.String()
}
