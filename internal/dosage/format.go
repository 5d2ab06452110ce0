package dosage

import (
	"fmt"
	"strconv"
)

// FormatAmount renders a basic or weight-based amount with three decimals,
// e.g. "3.000 tablet(s)".
func FormatAmount(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', 3, 64) + " " + unit
}

// FormatDripRate renders a drip rate rounded to whole drops.
func FormatDripRate(v float64) string {
	return fmt.Sprintf("%d gtts/min", RoundDrops(v))
}

// FormatPumpRate renders an infusion pump rate to one decimal place.
func FormatPumpRate(v float64) string {
	return strconv.FormatFloat(RoundTo(v, 1), 'f', 1, 64) + " mL/hr"
}
