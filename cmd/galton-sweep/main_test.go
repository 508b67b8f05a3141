package main

import "testing"

func TestParseBiases(t *testing.T) {
	got, err := parseBiases("0, 5,10,")
	if err != nil {
		t.Fatalf("parseBiases: %v", err)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 5 || got[2] != 10 {
		t.Fatalf("biases = %v", got)
	}
	if _, err := parseBiases("11"); err == nil {
		t.Fatal("out-of-range bias accepted")
	}
	if _, err := parseBiases("x"); err == nil {
		t.Fatal("non-numeric bias accepted")
	}
	if _, err := parseBiases(""); err == nil {
		t.Fatal("empty list accepted")
	}
}

func TestSparkline(t *testing.T) {
	if got := sparkline([]int{0, 13, 6}, 13); got != " █▃" {
		t.Fatalf("sparkline = %q", got)
	}
}
