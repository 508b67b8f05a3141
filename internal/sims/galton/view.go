package galton

import "galton/internal/core"

// ParticleView is a copy of one active particle.
type ParticleView struct {
	Slot   int
	X, Y   float64
	VX, VY float64
}

// View is a read-only snapshot of the board for renderers.
type View struct {
	Geometry Geometry

	Particles []ParticleView
	Bins      []int

	BallsPerDrop int
	Bias         float64

	TotalSpawned int
	Landed       int
	Active       int
}

// View copies the current state. Mutating the result never affects the board.
func (b *Board) View() View {
	v := View{
		Geometry:     b.geo.clone(),
		Bins:         b.hist.Counts(),
		BallsPerDrop: b.control.BallsPerDrop,
		Bias:         b.control.Bias,
		TotalSpawned: b.total,
		Landed:       b.landed,
	}
	for i, p := range b.pool.slots {
		if !p.Active {
			continue
		}
		v.Particles = append(v.Particles, ParticleView{Slot: i, X: p.X, Y: p.Y, VX: p.VX, VY: p.VY})
	}
	v.Active = len(v.Particles)
	return v
}

// Bodies exposes active particles for debug overlays.
func (b *Board) Bodies() []core.Body {
	out := make([]core.Body, 0, b.pool.Cap())
	for _, p := range b.pool.slots {
		if p.Active {
			out = append(out, core.Body{X: p.X, Y: p.Y, VX: p.VX, VY: p.VY})
		}
	}
	return out
}
