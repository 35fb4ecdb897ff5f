package crosscheck

import "math"

// Default product-policy thresholds. They are policy, not regulation, so
// they live in Options and can be overridden through configuration.
const (
	DefaultAbsoluteTolerance       = 1.00
	DefaultRelativeTolerance       = 0.001
	DefaultHeadcountSwingThreshold = 0.20
)

// Tolerance is the combined absolute+relative threshold under which two
// numerically different figures are treated as reconciled.
type Tolerance struct {
	Absolute float64
	Relative float64
}

// DefaultTolerance returns the product default of ±1.00 absolute, 0.1% relative.
func DefaultTolerance() Tolerance {
	return Tolerance{Absolute: DefaultAbsoluteTolerance, Relative: DefaultRelativeTolerance}
}

// Within reports whether expected and actual agree under the tolerance.
// The absolute threshold is checked first; the relative threshold only
// applies when expected is nonzero — a zero baseline has no relative
// fallback, so any actual beyond the absolute threshold fails.
//
// This is the only numeric-equality logic in the engine; no rule
// reimplements it.
func (t Tolerance) Within(expected, actual float64) bool {
	diff := math.Abs(expected - actual)
	if diff <= t.Absolute {
		return true
	}
	if expected == 0 {
		return false
	}
	return diff/math.Abs(expected) <= t.Relative
}

// Options carries the configurable thresholds every rule evaluation uses.
type Options struct {
	Tolerance Tolerance
	// HeadcountSwingThreshold is the relative headcount change between two
	// consecutive withholding filings above which the stability rule flags
	// a finding. 0.20 means ±20%.
	HeadcountSwingThreshold float64
}

// DefaultOptions returns the product defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:               DefaultTolerance(),
		HeadcountSwingThreshold: DefaultHeadcountSwingThreshold,
	}
}
