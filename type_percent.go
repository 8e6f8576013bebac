package networth

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a ratio for display purposes, where 1 means 100%.
type Percent float64

// P converts an exact decimal ratio to a display Percent.
func P(ratio decimal.Decimal) Percent {
	return Percent(ratio.InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p)*100)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p)*100)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
