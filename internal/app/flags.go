package app

import (
	"flag"
	"time"

	"galton/internal/core"
)

// Config represents the command-line parameters for the frontends. Values are
// layered: defaults, then .env and environment variables, then flags.
type Config struct {
	Sim        string        `env:"GALTON_SIM"`
	Scale      int           `env:"GALTON_SCALE"`
	TickDelay  time.Duration `env:"GALTON_TICK_DELAY"`
	Seed       int64         `env:"GALTON_SEED"`
	HUDWidth   int           `env:"GALTON_HUD_WIDTH"`
	ConfigFile string        `env:"GALTON_CONFIG"`
	Sound      bool          `env:"GALTON_SOUND"`
	Paused     bool          `env:"GALTON_PAUSED"`

	Sets KVList
}

// NewConfig returns a Config populated with sensible defaults. A zero seed
// means the board's configured seed.
func NewConfig() *Config {
	return &Config{
		Sim:       "galton",
		Scale:     6,
		TickDelay: core.DefaultTickDelay,
		HUDWidth:  220,
		Sound:     true,
	}
}

// Bind attaches the configuration to the provided FlagSet. Current field
// values become the flag defaults, so call it after LoadEnv.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "board preset to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.DurationVar(&c.TickDelay, "tick", c.TickDelay, "simulated time per tick")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board reset (0 uses the board seed)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the control panel in pixels (0 hides it)")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML file with board overrides")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "click on every landing")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.Var(&c.Sets, "set", "board override in key=value form (repeatable)")
}
