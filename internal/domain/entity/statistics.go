package entity

import (
	"encoding/json"
	"math"
)

// Number is a float64 that encodes non-finite values as JSON null.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// Statistics contains the values derived from a SavingsData document.
// TotalSaved + Remaining == Target always holds; Remaining is negative when the goal was overshot.
type Statistics struct {
	TotalSaved float64
	Target     float64
	GoalName   string
	Percentage float64
	Remaining  float64
}

// PercentageFinite reports whether the percentage is a real number.
// A zero target yields +Inf or NaN.
func (s Statistics) PercentageFinite() bool {
	return !math.IsNaN(s.Percentage) && !math.IsInf(s.Percentage, 0)
}
