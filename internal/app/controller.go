package app

import (
	"time"

	"galton/internal/core"
)

// Action is a frontend-independent user command.
type Action uint8

const (
	ActionNone Action = iota
	ActionBallsPerDrop
	ActionBias
	ActionPause
	ActionStep
	ActionReset
	ActionReseed
	ActionQuit
)

// ActionForRune maps a keyboard character to an action.
func ActionForRune(r rune) Action {
	switch r {
	case 'a', 'A':
		return ActionBallsPerDrop
	case 'b', 'B':
		return ActionBias
	case ' ':
		return ActionPause
	case 'n', 'N':
		return ActionStep
	case 'r', 'R':
		return ActionReset
	case 's', 'S':
		return ActionReseed
	case 'q', 'Q':
		return ActionQuit
	default:
		return ActionNone
	}
}

// Controller drives a sim from user actions and a wall clock. Button inputs
// are debounced and queued, then applied right before the next tick so a tick
// always sees one consistent set of controls. Simulated time only advances
// while ticks run, so pausing freezes particle release.
type Controller struct {
	sim   core.Sim
	wall  core.Clock
	steps *core.FixedStep

	simClock  core.ManualClock
	tickDelay time.Duration

	buttons *core.Debouncer
	pending []core.Input

	paused   bool
	tickOnce bool
	quit     bool

	seed   int64
	Seeder func() int64
}

// NewController wires sim to wall, ticking once per tickDelay of wall time.
func NewController(sim core.Sim, wall core.Clock, tickDelay time.Duration, seed int64) *Controller {
	if tickDelay <= 0 {
		tickDelay = core.DefaultTickDelay
	}
	tps := int(time.Second / tickDelay)
	return &Controller{
		sim:       sim,
		wall:      wall,
		steps:     core.NewFixedStep(wall, tps),
		tickDelay: tickDelay,
		buttons:   core.NewDebouncer(core.DefaultDebounce),
		seed:      seed,
		Seeder:    func() int64 { return time.Now().UnixNano() },
	}
}

// Sim returns the driven simulation.
func (c *Controller) Sim() core.Sim { return c.sim }

// Press handles one action and reports whether it was accepted.
func (c *Controller) Press(a Action) bool {
	if (a == ActionBallsPerDrop || a == ActionBias) && !c.buttons.Allow(c.wall.Now()) {
		return false
	}
	switch a {
	case ActionBallsPerDrop:
		c.pending = append(c.pending, core.InputIncrementBallsPerDrop)
	case ActionBias:
		c.pending = append(c.pending, core.InputIncrementBias)
	case ActionPause:
		c.paused = !c.paused
	case ActionStep:
		c.tickOnce = true
	case ActionReset:
		c.Reset(c.seed)
	case ActionReseed:
		c.Reset(c.Seeder())
	case ActionQuit:
		c.quit = true
	default:
		return false
	}
	return true
}

// Input queues a raw sim input, bypassing the debouncer.
func (c *Controller) Input(in core.Input) {
	c.pending = append(c.pending, in)
}

// Reset restarts the sim with seed and rewinds simulated time.
func (c *Controller) Reset(seed int64) {
	c.seed = seed
	c.sim.Reset(seed)
	c.simClock.Set(0)
	c.pending = c.pending[:0]
	c.tickOnce = false
}

// Update applies queued inputs and advances the sim by at most one tick. It
// returns the number of ticks run.
func (c *Controller) Update() int {
	for _, in := range c.pending {
		c.sim.ApplyInput(in)
	}
	c.pending = c.pending[:0]

	due := c.steps.ShouldStep()
	if c.tickOnce {
		c.tickOnce = false
	} else if c.paused || !due {
		return 0
	}
	c.sim.Tick(c.simClock.Advance(c.tickDelay))
	return 1
}

// Paused reports whether ticking is suspended.
func (c *Controller) Paused() bool { return c.paused }

// Quit reports whether the user asked to leave.
func (c *Controller) Quit() bool { return c.quit }

// Seed returns the seed of the last reset.
func (c *Controller) Seed() int64 { return c.seed }

// SimTime returns the simulated time fed to the last tick.
func (c *Controller) SimTime() time.Duration { return c.simClock.Now() }
