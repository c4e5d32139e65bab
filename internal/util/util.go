package util

import (
	"math"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Round rounds f to 2 decimals.
func Round(f float64) float64 {
	return math.Round(f*100) / 100
}
