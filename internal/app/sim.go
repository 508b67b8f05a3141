package app

import (
	"fmt"
	"strings"

	"galton/internal/core"
)

type validator interface {
	Validate() error
}

// NewSim builds and resets the sim named by cfg with its board overrides.
func NewSim(cfg *Config) (core.Sim, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}
	overrides, err := cfg.BoardOverrides()
	if err != nil {
		return nil, fmt.Errorf("board overrides: %w", err)
	}
	sim := factory(overrides)
	if v, ok := sim.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	sim.Reset(cfg.Seed)
	return sim, nil
}
