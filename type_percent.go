package tradex

import "fmt"

// Percent is a profit-and-loss ratio already scaled to percentage points
// (3.75 renders as "3.75%"). It comes out of a float division, so equality
// is tolerance based.
type Percent float64

// Equal compares two percentages up to a hundredth of a point.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String formats the percentage the way the stocks view displays it, with
// two decimals.
func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}
