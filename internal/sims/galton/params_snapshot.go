package galton

import (
	"fmt"
	"strconv"

	"galton/internal/core"
)

func (b *Board) Parameters() core.ParameterSnapshot {
	p := b.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("w", "Width", b.cfg.Width),
				intParam("h", "Height", b.cfg.Height),
				int64Param("seed", "Seed", b.cfg.Seed),
			},
		},
		{
			Name: "Controls",
			Params: []core.Parameter{
				intParam("balls_per_drop", "Balls per drop", b.control.BallsPerDrop),
				floatParam("bias", "Bias", b.control.Bias),
			},
			Summary: fmt.Sprintf("right %d%%", Threshold(b.control.Bias)),
		},
		{
			Name: "Counters",
			Params: []core.Parameter{
				intParam("total", "Total spawned", b.total),
				intParam("landed", "Landed", b.landed),
				intParam("active", "Active", b.pool.ActiveCount()),
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				floatParam("gravity", "Gravity", p.Gravity),
				floatParam("restitution", "Restitution", p.Restitution),
				floatParam("deflect_factor", "Deflect factor", p.DeflectFactor),
				intParam("ball_diameter", "Ball diameter", p.BallDiameter),
				intParam("max_particles", "Max particles", p.MaxParticles),
				intParam("particles_per_second", "Particles per second", p.ParticlesPerSecond),
			},
		},
		{
			Name: "Layout",
			Params: []core.Parameter{
				intParam("pin_rows", "Pin rows", p.PinRows),
				intParam("pin_diameter", "Pin diameter", p.PinDiameter),
				intParam("pin_spacing_h", "Pin spacing H", p.PinSpacingH),
				intParam("pin_spacing_v", "Pin spacing V", p.PinSpacingV),
				intParam("bins", "Bins", p.NumBins),
				intParam("bin_width", "Bin width", p.BinWidth),
				intParam("chute_width", "Chute width", p.ChuteWidth),
				intParam("wall_offset", "Wall offset", p.WallOffset),
				intParam("max_histogram_height", "Max histogram height", p.MaxHistogramHeight),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the inputs a frontend may offer.
func (b *Board) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "balls_per_drop", Label: "Balls per drop", Type: core.ParamTypeInt, Input: core.InputIncrementBallsPerDrop, Shortcut: "A"},
		{Key: "bias", Label: "Bias", Type: core.ParamTypeFloat, Input: core.InputIncrementBias, Shortcut: "B"},
	}
}

// StatusLine renders the compact on-screen status text.
func (b *Board) StatusLine() string {
	return fmt.Sprintf("A:%d T:%d B:%.0f", b.control.BallsPerDrop, b.total, b.control.Bias)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
