package galton

import rngcore "galton/pkg/core"

const (
	minThreshold  = 5
	maxThreshold  = 95
	decisionRange = 100
)

// Threshold converts a bias in [0,10] to the percentage of rightward
// deflections, clamped to [5,95] so neither direction is ever certain.
func Threshold(bias float64) int {
	t := int(bias * 10)
	if t < minThreshold {
		return minThreshold
	}
	if t > maxThreshold {
		return maxThreshold
	}
	return t
}

// Decide consumes one draw from src and reports whether the particle is
// deflected to the right.
func Decide(src rngcore.Source, bias float64) bool {
	return src.IntN(decisionRange) < Threshold(bias)
}
