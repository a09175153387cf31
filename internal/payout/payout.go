// Package payout derives the amount owed for a shift. It is deliberately
// free of I/O: hours are already capped by the attendance tracker, so the
// same inputs always produce the same amount.
package payout

import "math"

// Compute returns hoursWorked * payRate rounded to cents.
func Compute(hoursWorked, payRate float64) float64 {
	return round2(hoursWorked * payRate)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
