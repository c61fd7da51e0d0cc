package vis

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// quietAnimator returns an animator with the twinkle silenced so smoothing
// behaviour can be observed in isolation.
func quietAnimator(count int) *Animator {
	a := NewAnimator(count, NewRand(1))
	a.TwinkleAmp = 0
	return a
}

func storeDistance(st *ParticleStore) float64 {
	sum := 0.0
	for i := range st.Pos {
		d := float64(st.Pos[i] - st.Target[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

func TestSmoothingConvergesMonotonically(t *testing.T) {
	rng := NewRand(3)
	st := NewParticleStore(50, ShapeTree, Palette.Bases[0], rng)
	st.Retarget(GeneratePoints(ShapeSphere, 50, rng))
	a := quietAnimator(50)

	g := GestureState{} // closed hand: no spread, no jitter
	prev := storeDistance(st)
	if prev == 0 {
		t.Fatal("expected initial distance to new target")
	}
	for step := 0; step < 300; step++ {
		a.Step(st, g, 1.0/60)
		d := storeDistance(st)
		if d > 1e-3 && d >= prev {
			t.Fatalf("step %d: distance %v did not decrease from %v", step, d, prev)
		}
		prev = d
	}
	if prev > 1e-2 {
		t.Errorf("did not converge: final distance %v", prev)
	}
}

func TestSmoothingNeverOvershoots(t *testing.T) {
	st := NewParticleStore(1, ShapeTree, Palette.Bases[0], NewRand(4))
	st.Pos[0], st.Pos[1], st.Pos[2] = 0, 0, 0
	st.Target[0], st.Target[1], st.Target[2] = 1, 0, 0
	a := quietAnimator(1)

	// Even an absurd frame time clamps the lerp step at the target.
	a.Step(st, GestureState{}, 10)
	if st.Pos[0] > 1+1e-6 {
		t.Errorf("overshot target: %v", st.Pos[0])
	}
}

func TestSpreadDisplacesOutward(t *testing.T) {
	st := NewParticleStore(200, ShapeSphere, Palette.Bases[0], NewRand(6))
	a := quietAnimator(200)

	// Converge fully with an open hand, then compare against the shell.
	g := GestureState{Openness: 1, HandDetected: true, RotationX: 0.5}
	for i := 0; i < 400; i++ {
		a.Step(st, g, 1.0/60)
	}
	grew := 0
	for i := 0; i < st.N; i++ {
		x := float64(st.Pos[i*3])
		y := float64(st.Pos[i*3+1])
		z := float64(st.Pos[i*3+2])
		if math.Sqrt(x*x+y*y+z*z) > SphereShellMax {
			grew++
		}
	}
	if grew < st.N*9/10 {
		t.Errorf("only %d/%d particles pushed outside the shell at full spread", grew, st.N)
	}
}

func TestRotationSign(t *testing.T) {
	st := NewParticleStore(1, ShapeTree, Palette.Bases[0], NewRand(5))
	dt := 1.0 / 60

	a := quietAnimator(1)
	a.Step(st, GestureState{HandDetected: true, RotationX: 0.8}, dt)
	if a.Rotation() <= 0 {
		t.Errorf("hand right of centre: rotation delta %v, want positive", a.Rotation())
	}

	a = quietAnimator(1)
	a.Step(st, GestureState{HandDetected: true, RotationX: 0.2}, dt)
	if a.Rotation() >= 0 {
		t.Errorf("hand left of centre: rotation delta %v, want negative", a.Rotation())
	}

	a = quietAnimator(1)
	a.Step(st, GestureState{HandDetected: false, RotationX: 0.9}, dt)
	assertNear(t, "idle rotation", a.Rotation(), IdleRotationSpeed*dt)
}

func TestRotationCentredHandIsStill(t *testing.T) {
	st := NewParticleStore(1, ShapeTree, Palette.Bases[0], NewRand(5))
	a := quietAnimator(1)
	a.Step(st, GestureState{HandDetected: true, RotationX: 0.5}, 1.0/60)
	assertNear(t, "centred rotation", a.Rotation(), 0)
}

func TestTwinkleDoesNotAccumulate(t *testing.T) {
	st := NewParticleStore(20, ShapeSphere, Palette.Bases[0], NewRand(8))
	a := NewAnimator(20, NewRand(8))

	// Let the cloud settle, then verify heights stay within the twinkle
	// amplitude of the target: the offset rides on top of the smoothed
	// position instead of compounding through the filter.
	g := GestureState{}
	for i := 0; i < 1000; i++ {
		a.Step(st, g, 1.0/60)
	}
	for i := 0; i < st.N; i++ {
		dy := math.Abs(float64(st.Pos[i*3+1] - st.Target[i*3+1]))
		if dy > TwinkleAmplitude*1.5 {
			t.Fatalf("particle %d height drifted %v from target", i, dy)
		}
	}
}

func TestStepIgnoresNonPositiveDeltaTime(t *testing.T) {
	st := NewParticleStore(3, ShapeTree, Palette.Bases[0], NewRand(2))
	a := NewAnimator(3, NewRand(2))
	before := append([]float32(nil), st.Pos...)
	a.Step(st, GestureState{Openness: 1}, 0)
	a.Step(st, GestureState{Openness: 1}, -0.5)
	for i := range before {
		if st.Pos[i] != before[i] {
			t.Fatal("position changed on non-positive deltaTime")
		}
	}
	assertNear(t, "rotation", a.Rotation(), 0)
}

func TestOpennessClampedDefensively(t *testing.T) {
	st := NewParticleStore(10, ShapeSphere, Palette.Bases[0], NewRand(9))
	a := quietAnimator(10)
	// Slightly out-of-range openness from floating error must behave like 1.
	a.Step(st, GestureState{Openness: 1.0001}, 1.0/60)
}
