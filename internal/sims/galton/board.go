package galton

import (
	"time"

	"galton/internal/core"
	rngcore "galton/pkg/core"
)

// Board owns the whole simulation state: pins, particles, histogram and
// controls. It is not safe for concurrent use.
type Board struct {
	cfg  Config
	geo  Geometry
	size core.Size

	pool    *Pool
	hist    *Histogram
	control Control

	rng *rngcore.RNG
	src rngcore.Source

	total     int
	landed    int
	lastSpawn time.Duration

	frame *core.ByteGrid
}

// New constructs a default board resized to w x h.
func New(w, h int) *Board {
	cfg := DefaultConfig()
	if w > 0 {
		cfg.Width = w
	}
	if h > 0 {
		cfg.Height = h
	}
	return NewWithConfig(cfg)
}

// NewWithConfig constructs a board from cfg. Invalid dimensions fall back to
// the defaults; callers that need to reject a config call Validate first.
func NewWithConfig(cfg Config) *Board {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if cfg.Name == "" {
		cfg.Name = DefaultConfig().Name
	}
	b := &Board{
		cfg:   cfg,
		geo:   BuildGeometry(cfg),
		size:  core.Size{W: cfg.Width, H: cfg.Height},
		pool:  NewPool(cfg.Params.MaxParticles),
		hist:  NewHistogram(cfg.Params.NumBins, cfg.Params.MaxHistogramHeight),
		rng:   rngcore.NewRNG(cfg.Seed),
		frame: core.NewByteGrid(cfg.Width, cfg.Height),
	}
	b.src = b.rng
	b.Reset(cfg.Seed)
	return b
}

// NewWithSource constructs a board whose chute jitter and deflection draws
// come from src instead of the seeded generator.
func NewWithSource(cfg Config, src rngcore.Source) *Board {
	b := NewWithConfig(cfg)
	if src != nil {
		b.src = src
	}
	return b
}

// Name returns the registry name of the board preset.
func (b *Board) Name() string { return b.cfg.Name }

// Size returns the frame dimensions.
func (b *Board) Size() core.Size { return b.size }

// Config returns the configuration the board was built from.
func (b *Board) Config() Config { return b.cfg }

// Validate reports whether the board was built from a usable config.
func (b *Board) Validate() error { return b.cfg.Validate() }

// Geometry returns a copy of the static layout.
func (b *Board) Geometry() Geometry { return b.geo.clone() }

// Control returns the current control values.
func (b *Board) Control() Control { return b.control }

// TotalSpawned returns the number of particles released since the last reset.
func (b *Board) TotalSpawned() int { return b.total }

// Landed returns the number of particles that reached the histogram.
func (b *Board) Landed() int { return b.landed }

// ActiveCount returns the number of particles in flight.
func (b *Board) ActiveCount() int { return b.pool.ActiveCount() }

// Bins returns a copy of the displayed histogram heights.
func (b *Board) Bins() []int { return b.hist.Counts() }

// Reset clears particles, histogram and counters and restores the configured
// control values. A zero seed reuses the configured seed.
func (b *Board) Reset(seed int64) {
	if seed == 0 {
		seed = b.cfg.Seed
	}
	b.rng.Reseed(seed)
	b.pool.Clear()
	b.hist.Reset()
	b.control = NewControl(b.cfg.BallsPerDrop, b.cfg.Bias)
	b.total = 0
	b.landed = 0
	b.lastSpawn = 0
	b.rasterize()
}

// ApplyInput adjusts the control state. Unknown inputs are ignored.
func (b *Board) ApplyInput(in core.Input) {
	b.control.Apply(in)
}

// Cells returns the rasterized frame as palette indices.
func (b *Board) Cells() []uint8 { return b.frame.Cells() }

func init() {
	for _, name := range []string{"galton", "galton-hd"} {
		base, _ := Preset(name)
		core.Register(name, func(cfg map[string]string) core.Sim {
			return NewWithConfig(Apply(base, cfg))
		})
	}
}
