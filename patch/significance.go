package patch

import (
	"math"

	"github.com/signadot/csvdiff/debug"
)

// FilterSignificance drops field deltas between numbers which agree to
// significance decimal places, truncating rather than rounding. Deltas
// where either side is not numeric or not finite (inf, nan, or beyond the
// float64 range) are always kept, and changes left with no fields are
// dropped. p is not modified.
//
// Truncation means values straddling a boundary differ even when close
// (0.999 and 1.001 at 2 places), and negative values truncate toward
// negative infinity.
func FilterSignificance(p *Patch, significance int) *Patch {
	res := p.Clone()
	scale := math.Pow10(significance)
	changed := make([]Change, 0, len(res.Changed))
	for _, c := range res.Changed {
		for col, d := range c.Fields {
			if significant(d, scale) {
				continue
			}
			if debug.Filter() {
				debug.Logf("dropping %s change at %s: %v -> %v\n", col, c.Key, d.From, d.To)
			}
			delete(c.Fields, col)
		}
		if len(c.Fields) != 0 {
			changed = append(changed, c)
		}
	}
	res.Changed = changed
	return res
}

func significant(d FieldDelta, scale float64) bool {
	from, ok := d.From.ParseFloat()
	if !ok {
		return true
	}
	to, ok := d.To.ParseFloat()
	if !ok {
		return true
	}
	if !finite(from) || !finite(to) {
		return true
	}
	f, t := math.Floor(from*scale), math.Floor(to*scale)
	if !finite(f) || !finite(t) {
		return from != to
	}
	return f != t
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
