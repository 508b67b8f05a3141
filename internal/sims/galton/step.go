package galton

import (
	"math"
	"time"
)

// Tick advances the board by one step at the given monotonic time. A batch of
// particles is released when more than the release interval has passed since
// the previous batch; every active particle is then integrated, reflected off
// the walls, deflected by at most one pin and retired once it reaches the
// histogram base.
func (b *Board) Tick(now time.Duration) {
	if now-b.lastSpawn > b.cfg.ReleaseInterval() {
		b.releaseBatch()
		b.lastSpawn = now
	}

	for i := range b.pool.slots {
		p := &b.pool.slots[i]
		if !p.Active {
			continue
		}
		b.integrate(p)
		b.bounceWalls(p)
		b.deflectPins(p)
		b.land(i, p)
	}
	b.rasterize()
}

func (b *Board) releaseBatch() {
	for i := 0; i < b.control.BallsPerDrop; i++ {
		if _, ok := b.pool.Spawn(Particle{X: b.spawnX(), Y: float64(b.cfg.Params.SpawnY)}); !ok {
			return
		}
		b.total++
	}
}

func (b *Board) spawnX() float64 {
	cw := b.cfg.Params.ChuteWidth
	x := b.cfg.Width / 2
	if cw > 0 {
		x += b.src.IntN(cw) - cw/2
	}
	if x < b.geo.ChuteLeft {
		x = b.geo.ChuteLeft
	}
	if x > b.geo.ChuteRight {
		x = b.geo.ChuteRight
	}
	return float64(x)
}

func (b *Board) integrate(p *Particle) {
	p.VY += b.cfg.Params.Gravity
	p.X += p.VX
	p.Y += p.VY
}

func (b *Board) bounceWalls(p *Particle) {
	r := b.cfg.BallRadius()
	left := float64(b.geo.WallLeft) + r
	right := float64(b.geo.WallRight) - r
	switch {
	case p.X <= left:
		p.X = left
		p.VX = -p.VX * b.cfg.Params.Restitution
	case p.X >= right:
		p.X = right
		p.VX = -p.VX * b.cfg.Params.Restitution
	}
}

// deflectPins handles the first pin in table order that the particle touches.
func (b *Board) deflectPins(p *Particle) {
	reach := b.cfg.CollisionDistance()
	for _, pin := range b.geo.Pins {
		dx := p.X - float64(pin.X)
		dy := p.Y - float64(pin.Y)
		if math.Sqrt(dx*dx+dy*dy) >= reach {
			continue
		}
		speed := b.cfg.DeflectSpeed()
		if Decide(b.src, b.control.Bias) {
			p.VX = speed
		} else {
			p.VX = -speed
		}
		p.VY = -p.VY * b.cfg.Params.Restitution
		return
	}
}

func (b *Board) land(slot int, p *Particle) {
	if p.Y < float64(b.geo.HistogramBaseY)-b.cfg.BallRadius() {
		return
	}
	bin := b.hist.Add(b.geo.BinFor(p.X))
	b.pool.Retire(slot, bin)
	b.landed++
	if every := b.cfg.Params.NormalizeEvery; every > 0 && b.total%every == 0 {
		b.hist.Normalize()
	}
}
