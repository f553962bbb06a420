package core

import "testing"

func TestSeededRandomRanges(t *testing.T) {
	r := NewRandom(7)

	for i := 0; i < 1000; i++ {
		f := r.Uniform(1.6, 3.0)
		if f < 1.6 || f >= 3.0 {
			t.Fatalf("Uniform(1.6, 3.0) = %f, out of range", f)
		}
		n := r.IntRange(20, 80)
		if n < 20 || n > 80 {
			t.Fatalf("IntRange(20, 80) = %d, out of range", n)
		}
	}
}

func TestSeededRandomDeterminism(t *testing.T) {
	a := NewRandom(42)
	b := NewRandom(42)

	for i := 0; i < 100; i++ {
		if a.IntRange(0, 500) != b.IntRange(0, 500) {
			t.Fatal("same seed should produce the same sequence")
		}
	}
}

func TestSeededRandomDegenerateRange(t *testing.T) {
	r := NewRandom(1)
	if got := r.IntRange(5, 5); got != 5 {
		t.Errorf("IntRange(5, 5) = %d, expected 5", got)
	}
	if got := r.IntRange(9, 3); got != 9 {
		t.Errorf("IntRange(9, 3) = %d, expected 9", got)
	}
}
