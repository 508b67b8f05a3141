package galton

import (
	"testing"

	"galton/internal/core"
)

func TestParametersTrackControls(t *testing.T) {
	b := NewWithConfig(DefaultConfig())
	b.ApplyInput(core.InputIncrementBallsPerDrop)
	b.ApplyInput(core.InputIncrementBias)

	snap := b.Parameters()
	balls, ok := snap.Lookup("balls_per_drop")
	if !ok || balls.Value != "2" {
		t.Fatalf("balls_per_drop = %+v", balls)
	}
	bias, ok := snap.Lookup("bias")
	if !ok || bias.Value != "6" {
		t.Fatalf("bias = %+v", bias)
	}
	if _, ok := snap.Lookup("gravity"); !ok {
		t.Fatal("physics parameters missing")
	}
}

func TestParameterControlsDeliverInputs(t *testing.T) {
	b := NewWithConfig(DefaultConfig())
	for _, ctrl := range b.ParameterControls() {
		before := b.Parameters()
		b.ApplyInput(ctrl.Input)
		prev, _ := before.Lookup(ctrl.Key)
		next, _ := b.Parameters().Lookup(ctrl.Key)
		if prev.Value == next.Value {
			t.Fatalf("control %s did not change its parameter", ctrl.Key)
		}
	}
}
