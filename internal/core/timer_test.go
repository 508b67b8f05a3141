package core

import (
	"testing"
	"time"
)

func TestFixedStepFollowsClock(t *testing.T) {
	clock := &ManualClock{}
	fs := NewFixedStep(clock, 20)
	if fs.Step() != 50*time.Millisecond {
		t.Fatalf("step = %v, want 50ms", fs.Step())
	}
	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock.Advance(20 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not step after 20ms of a 50ms step")
	}
	clock.Advance(40 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should step once 60ms have accumulated")
	}
	if fs.ShouldStep() {
		t.Fatal("remaining 10ms must not trigger another step")
	}
}

func TestFixedStepDefaultsInvalidTPS(t *testing.T) {
	fs := NewFixedStep(&ManualClock{}, 0)
	if want := time.Second / 60; fs.Step() != want {
		t.Fatalf("step = %v, want %v", fs.Step(), want)
	}
}

func TestManualClockIgnoresNegativeAdvance(t *testing.T) {
	var c ManualClock
	c.Advance(time.Second)
	c.Advance(-time.Hour)
	if c.Now() != time.Second {
		t.Fatalf("now = %v, want 1s", c.Now())
	}
	c.Set(5 * time.Second)
	if c.Now() != 5*time.Second {
		t.Fatalf("now = %v after Set, want 5s", c.Now())
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Now()
	b := c.Now()
	if b < a {
		t.Fatalf("clock went backwards: %v then %v", a, b)
	}
}
