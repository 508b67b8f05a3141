package galton

import "galton/internal/core"

const (
	MinBallsPerDrop = 1
	MaxBallsPerDrop = 5
	MinBias         = 0
	MaxBias         = 10
	BiasStep        = 1
)

// Control is the user-adjustable state read by the step.
type Control struct {
	BallsPerDrop int
	Bias         float64
}

// NewControl returns a control state with values clamped to their ranges.
func NewControl(ballsPerDrop int, bias float64) Control {
	c := Control{BallsPerDrop: ballsPerDrop, Bias: bias}
	if c.BallsPerDrop < MinBallsPerDrop {
		c.BallsPerDrop = MinBallsPerDrop
	}
	if c.BallsPerDrop > MaxBallsPerDrop {
		c.BallsPerDrop = MaxBallsPerDrop
	}
	if c.Bias < MinBias {
		c.Bias = MinBias
	}
	if c.Bias > MaxBias {
		c.Bias = MaxBias
	}
	return c
}

// Apply handles one input event. Both controls wrap around at their upper
// bound. It reports whether the event was recognised.
func (c *Control) Apply(in core.Input) bool {
	switch in {
	case core.InputIncrementBallsPerDrop:
		c.BallsPerDrop++
		if c.BallsPerDrop > MaxBallsPerDrop {
			c.BallsPerDrop = MinBallsPerDrop
		}
	case core.InputIncrementBias:
		c.Bias += BiasStep
		if c.Bias > MaxBias {
			c.Bias = MinBias
		}
	default:
		return false
	}
	return true
}
