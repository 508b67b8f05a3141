package core

import (
	"testing"
	"time"
)

func TestDebouncerWindow(t *testing.T) {
	d := NewDebouncer(DefaultDebounce)
	steps := []struct {
		at   time.Duration
		want bool
	}{
		{0, true},
		{50 * time.Millisecond, false},
		{199 * time.Millisecond, false},
		{200 * time.Millisecond, true},
		{350 * time.Millisecond, false},
		{401 * time.Millisecond, true},
	}
	for _, s := range steps {
		if got := d.Allow(s.at); got != s.want {
			t.Fatalf("Allow(%v) = %v, want %v", s.at, got, s.want)
		}
	}
}

func TestDebouncerZeroWindowAcceptsAll(t *testing.T) {
	d := NewDebouncer(-time.Second)
	for i := 0; i < 3; i++ {
		if !d.Allow(0) {
			t.Fatalf("event %d rejected with zero window", i)
		}
	}
}
