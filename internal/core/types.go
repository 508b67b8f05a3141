package core

import (
	"sort"
	"time"
)

// Size describes the dimensions of a simulation frame.
type Size struct {
	W int
	H int
}

// Input enumerates the discrete events a frontend may deliver to a sim.
type Input uint8

const (
	// InputIncrementBallsPerDrop raises the release batch size, wrapping at the top.
	InputIncrementBallsPerDrop Input = iota + 1
	// InputIncrementBias raises the deflection bias, wrapping at the top.
	InputIncrementBias
)

// String returns a short name for logs.
func (i Input) String() string {
	switch i {
	case InputIncrementBallsPerDrop:
		return "balls_per_drop"
	case InputIncrementBias:
		return "bias"
	default:
		return "unknown"
	}
}

// Sim defines the contract a frontend drives once per tick.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Tick(now time.Duration)
	ApplyInput(in Input)
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists the registered names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
