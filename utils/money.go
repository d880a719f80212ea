package utils

import "math"

// Round2 rounds a monetary amount to two decimal places. All money is
// rounded at the point of computation, not at display time.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
