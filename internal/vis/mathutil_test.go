package vis

import "testing"

func TestRandDeterministic(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)
	for i := 0; i < 100; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatal("same seed produced different streams")
		}
	}
}

func TestRandRangeF(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := r.RangeF(-2, 3)
		if v < -2 || v >= 3 {
			t.Fatalf("RangeF out of bounds: %v", v)
		}
	}
	assertNear(t, "degenerate range", r.RangeF(5, 5), 5)
}

func TestApproach(t *testing.T) {
	assertNear(t, "up", approach(0, 1, 0.3), 0.3)
	assertNear(t, "up clamp", approach(0.9, 1, 0.3), 1)
	assertNear(t, "down", approach(1, 0, 0.4), 0.6)
	assertNear(t, "down clamp", approach(0.1, 0, 0.4), 0)
	assertNear(t, "at target", approach(0.5, 0.5, 0.1), 0.5)
}

func TestClampF(t *testing.T) {
	assertNear(t, "below", clampF(-1, 0, 1), 0)
	assertNear(t, "above", clampF(2, 0, 1), 1)
	assertNear(t, "inside", clampF(0.4, 0, 1), 0.4)
}
