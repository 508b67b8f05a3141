package galton

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ErrInvalidConfig marks a configuration the board cannot be built from.
var ErrInvalidConfig = errors.New("invalid galton config")

// Params holds the physical and layout tunables of the board.
type Params struct {
	Gravity       float64
	Restitution   float64
	DeflectFactor float64

	PinRows     int
	PinDiameter int
	PinSpacingH int
	PinSpacingV int
	PinTop      int

	BallDiameter int
	SpawnY       int

	NumBins            int
	BinWidth           int
	ChuteWidth         int
	WallOffset         int
	BaseMargin         int
	MaxHistogramHeight int
	NormalizeEvery     int

	MaxParticles       int
	ParticlesPerSecond int
}

// Config controls the board dimensions, starting controls and tunables.
type Config struct {
	Name   string
	Width  int
	Height int

	Seed int64

	BallsPerDrop int
	Bias         float64

	Params Params
}

// DefaultConfig returns the classic 128x64 board.
func DefaultConfig() Config {
	return Config{
		Name:         "galton",
		Width:        128,
		Height:       64,
		Seed:         1,
		BallsPerDrop: 1,
		Bias:         5,
		Params: Params{
			Gravity:            0.2,
			Restitution:        0.3,
			DeflectFactor:      0.06,
			PinRows:            5,
			PinDiameter:        3,
			PinSpacingH:        9,
			PinSpacingV:        7,
			PinTop:             15,
			BallDiameter:       1,
			SpawnY:             5,
			NumBins:            6,
			BinWidth:           9,
			ChuteWidth:         0,
			WallOffset:         0,
			BaseMargin:         2,
			MaxHistogramHeight: 13,
			NormalizeEvery:     10,
			MaxParticles:       15,
			ParticlesPerSecond: 1,
		},
	}
}

// HDConfig returns a larger board with more rows and an odd bin count.
func HDConfig() Config {
	c := DefaultConfig()
	c.Name = "galton-hd"
	c.Width = 256
	c.Height = 160
	c.Params.PinRows = 12
	c.Params.PinDiameter = 5
	c.Params.PinSpacingH = 16
	c.Params.PinSpacingV = 10
	c.Params.PinTop = 24
	c.Params.BallDiameter = 3
	c.Params.SpawnY = 8
	c.Params.NumBins = 13
	c.Params.BinWidth = 16
	c.Params.ChuteWidth = 8
	c.Params.BaseMargin = 3
	c.Params.MaxHistogramHeight = 40
	c.Params.MaxParticles = 60
	c.Params.ParticlesPerSecond = 4
	return c
}

// Preset returns the named built-in configuration.
func Preset(name string) (Config, bool) {
	switch name {
	case "galton":
		return DefaultConfig(), true
	case "galton-hd":
		return HDConfig(), true
	}
	return Config{}, false
}

// ReleaseInterval is the minimum time between spawn batches.
func (c Config) ReleaseInterval() time.Duration {
	pps := c.Params.ParticlesPerSecond
	if pps <= 0 {
		pps = 1
	}
	return time.Second / time.Duration(pps)
}

// BallRadius returns half the ball diameter.
func (c Config) BallRadius() float64 { return float64(c.Params.BallDiameter) / 2 }

// CollisionDistance is the centre distance below which a ball touches a pin.
func (c Config) CollisionDistance() float64 {
	return float64(c.Params.PinDiameter+c.Params.BallDiameter) / 2
}

// DeflectSpeed is the horizontal speed a pin imparts.
func (c Config) DeflectSpeed() float64 {
	return float64(c.Params.PinSpacingH) * c.Params.DeflectFactor
}

// Validate checks the setup-time preconditions of the board.
func (c Config) Validate() error {
	p := c.Params
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case p.NumBins <= 0:
		return fmt.Errorf("%w: bins must be positive, got %d", ErrInvalidConfig, p.NumBins)
	case p.BinWidth <= 0:
		return fmt.Errorf("%w: bin width must be positive, got %d", ErrInvalidConfig, p.BinWidth)
	case p.NumBins*p.BinWidth+2*p.WallOffset > c.Width:
		return fmt.Errorf("%w: %d bins of width %d do not fit a board %d wide", ErrInvalidConfig, p.NumBins, p.BinWidth, c.Width)
	case p.MaxParticles <= 0:
		return fmt.Errorf("%w: particle capacity must be positive, got %d", ErrInvalidConfig, p.MaxParticles)
	case p.ParticlesPerSecond <= 0:
		return fmt.Errorf("%w: release rate must be positive, got %d", ErrInvalidConfig, p.ParticlesPerSecond)
	case p.MaxHistogramHeight <= 0:
		return fmt.Errorf("%w: histogram height must be positive, got %d", ErrInvalidConfig, p.MaxHistogramHeight)
	case p.NormalizeEvery <= 0:
		return fmt.Errorf("%w: normalize batch must be positive, got %d", ErrInvalidConfig, p.NormalizeEvery)
	case !finite(p.Gravity) || p.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidConfig, p.Gravity)
	case !finite(p.DeflectFactor) || !finite(p.Restitution):
		return fmt.Errorf("%w: deflect factor and restitution must be finite", ErrInvalidConfig)
	case p.PinRows < 0 || p.PinDiameter < 0 || p.BallDiameter < 0 || p.ChuteWidth < 0:
		return fmt.Errorf("%w: negative pin, ball or chute size", ErrInvalidConfig)
	case p.SpawnY >= c.Height-p.BaseMargin:
		return fmt.Errorf("%w: spawn row %d is below the histogram base", ErrInvalidConfig, p.SpawnY)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FromMap populates the config from a string map (flag-style key/value pairs),
// starting from DefaultConfig.
func FromMap(cfg map[string]string) Config {
	return Apply(DefaultConfig(), cfg)
}

// Apply overlays string key/value pairs on base. Unknown keys and values that
// fail to parse or fall outside their range are ignored.
func Apply(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	setInt(cfg, "w", 1, &c.Width)
	setInt(cfg, "h", 1, &c.Height)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["balls_per_drop"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinBallsPerDrop && parsed <= MaxBallsPerDrop {
			c.BallsPerDrop = parsed
		}
	}
	if v, ok := cfg["bias"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= MinBias && parsed <= MaxBias {
			c.Bias = parsed
		}
	}

	p := &c.Params
	setFloat(cfg, "gravity", &p.Gravity)
	if v, ok := cfg["restitution"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			p.Restitution = parsed
		}
	}
	setFloat(cfg, "deflect_factor", &p.DeflectFactor)
	setInt(cfg, "pin_rows", 0, &p.PinRows)
	setInt(cfg, "pin_diameter", 0, &p.PinDiameter)
	setInt(cfg, "pin_spacing_h", 1, &p.PinSpacingH)
	setInt(cfg, "pin_spacing_v", 1, &p.PinSpacingV)
	setInt(cfg, "pin_top", 0, &p.PinTop)
	setInt(cfg, "ball_diameter", 0, &p.BallDiameter)
	setInt(cfg, "spawn_y", 0, &p.SpawnY)
	setInt(cfg, "bins", 1, &p.NumBins)
	setInt(cfg, "bin_width", 1, &p.BinWidth)
	setInt(cfg, "chute_width", 0, &p.ChuteWidth)
	setInt(cfg, "wall_offset", 0, &p.WallOffset)
	setInt(cfg, "base_margin", 0, &p.BaseMargin)
	setInt(cfg, "max_histogram_height", 1, &p.MaxHistogramHeight)
	setInt(cfg, "normalize_every", 1, &p.NormalizeEvery)
	setInt(cfg, "max_particles", 1, &p.MaxParticles)
	setInt(cfg, "particles_per_second", 1, &p.ParticlesPerSecond)
	return c
}

func setInt(cfg map[string]string, key string, min int, dst *int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
		*dst = parsed
	}
}

func setFloat(cfg map[string]string, key string, dst *float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil {
		*dst = parsed
	}
}
