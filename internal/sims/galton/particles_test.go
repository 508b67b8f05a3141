package galton

import (
	"slices"
	"testing"
)

func TestPoolSpawnFirstFree(t *testing.T) {
	p := NewPool(3)
	for want := 0; want < 3; want++ {
		slot, ok := p.Spawn(Particle{X: float64(want)})
		if !ok || slot != want {
			t.Fatalf("spawn %d: slot %d ok %v", want, slot, ok)
		}
	}
	p.Retire(1, 4)
	if got := p.At(1); got.Active || got.Bin != 4 {
		t.Fatalf("retired slot = %+v", got)
	}
	slot, ok := p.Spawn(Particle{X: 9})
	if !ok || slot != 1 {
		t.Fatalf("expected reuse of slot 1, got %d %v", slot, ok)
	}
	if got := p.At(1); !got.Active || got.Bin != -1 || got.X != 9 {
		t.Fatalf("respawned slot = %+v", got)
	}
}

func TestPoolFullSpawnChangesNothing(t *testing.T) {
	p := NewPool(2)
	p.Spawn(Particle{X: 1, Y: 2, VX: 3, VY: 4})
	p.Spawn(Particle{X: 5, Y: 6, VX: 7, VY: 8})
	before := slices.Clone(p.slots)

	if slot, ok := p.Spawn(Particle{X: 100}); ok || slot != -1 {
		t.Fatalf("spawn into full pool returned %d %v", slot, ok)
	}
	if !slices.Equal(before, p.slots) {
		t.Fatalf("full pool mutated: %+v", p.slots)
	}
	if p.ActiveCount() != 2 {
		t.Fatalf("active = %d", p.ActiveCount())
	}
}

func TestPoolClear(t *testing.T) {
	p := NewPool(2)
	p.Spawn(Particle{})
	p.Clear()
	if p.ActiveCount() != 0 || p.At(0).Bin != -1 {
		t.Fatalf("clear left %+v", p.slots)
	}
}
