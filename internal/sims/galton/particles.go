package galton

// Particle is one falling ball. Bin is -1 while the particle is in flight.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Active bool
	Bin    int
}

// Pool is a fixed-capacity arena of particle slots.
type Pool struct {
	slots []Particle
}

// NewPool allocates capacity inactive slots.
func NewPool(capacity int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool{slots: make([]Particle, capacity)}
	p.Clear()
	return p
}

// Cap returns the number of slots.
func (p *Pool) Cap() int { return len(p.slots) }

// Spawn activates the first free slot with the given state. It reports false
// and leaves the pool untouched when every slot is in use.
func (p *Pool) Spawn(init Particle) (int, bool) {
	for i := range p.slots {
		if p.slots[i].Active {
			continue
		}
		init.Active = true
		init.Bin = -1
		p.slots[i] = init
		return i, true
	}
	return -1, false
}

// Retire deactivates slot and records the bin it landed in.
func (p *Pool) Retire(slot, bin int) {
	if slot < 0 || slot >= len(p.slots) {
		return
	}
	p.slots[slot].Active = false
	p.slots[slot].Bin = bin
}

// At returns a copy of the particle in slot.
func (p *Pool) At(slot int) Particle {
	if slot < 0 || slot >= len(p.slots) {
		return Particle{Bin: -1}
	}
	return p.slots[slot]
}

// ActiveCount returns the number of particles in flight.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Clear deactivates every slot.
func (p *Pool) Clear() {
	for i := range p.slots {
		p.slots[i] = Particle{Bin: -1}
	}
}
