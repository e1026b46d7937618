package humanize

import "github.com/shopspring/decimal"

var units = []struct {
	suffix string
	scale  decimal.Decimal
}{
	{"T", decimal.New(1, 12)},
	{"G", decimal.New(1, 9)},
	{"M", decimal.New(1, 6)},
	{"K", decimal.New(1, 3)},
}

var thousand = decimal.NewFromInt(1000)

// FormatSI shortens large values with an SI suffix and one decimal place,
// e.g. 1500 -> "1.5K". Values below a thousand are returned as is. A value
// that rounds up to a thousand of one unit is shown in the next unit, so
// 999950 is "1.0M" rather than "1000.0K".
func FormatSI(d decimal.Decimal) string {
	if d.IsZero() {
		return "0"
	}
	abs := d.Abs()
	for i, u := range units {
		if abs.LessThan(u.scale) {
			continue
		}
		q := d.DivRound(u.scale, 1)
		if i > 0 && q.Abs().GreaterThanOrEqual(thousand) {
			u = units[i-1]
			q = d.DivRound(u.scale, 1)
		}
		return q.StringFixed(1) + u.suffix
	}
	return d.String()
}
