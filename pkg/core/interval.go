package core

import "math"

// Interval is a closed range of real values. Min <= Max is assumed, not
// enforced. Used to bound valid ray parameters and to clamp color channels.
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// EmptyInterval contains no values.
var EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// UniverseInterval contains all values.
var UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// Size returns the extent of the interval
func (iv Interval) Size() float64 {
	return iv.Max - iv.Min
}

// Contains reports whether x lies within the interval, bounds included
func (iv Interval) Contains(x float64) bool {
	return iv.Min <= x && x <= iv.Max
}

// Surrounds reports whether x lies within the interval, bounds excluded.
// Ray-parameter validity uses this so a hit exactly at the near or far
// plane is rejected.
func (iv Interval) Surrounds(x float64) bool {
	return iv.Min < x && x < iv.Max
}

// Clamp saturates x to [Min, Max]
func (iv Interval) Clamp(x float64) float64 {
	if x < iv.Min {
		return iv.Min
	}
	if x > iv.Max {
		return iv.Max
	}
	return x
}
