package vis

import "math"

// Animator integrates particle positions toward their targets each frame
// and accumulates the scene rotation. Pure arithmetic over the store's
// fixed-size streams: no allocation, no error paths.
type Animator struct {
	SpreadGain    float64
	SmoothingGain float64
	TwinkleAmp    float64
	TwinkleSpeed  float64
	RotationGain  float64
	IdleRotation  float64

	rotation    float64
	elapsed     float64
	prevElapsed float64
	rng         *Rand
	phase       []float64 // per-particle twinkle phase, fixed at init
}

// NewAnimator builds an animator for count particles with the default
// gains. The rng drives the per-axis spread jitter.
func NewAnimator(count int, rng *Rand) *Animator {
	a := &Animator{
		SpreadGain:    SpreadGain,
		SmoothingGain: SmoothingGain,
		TwinkleAmp:    TwinkleAmplitude,
		TwinkleSpeed:  TwinkleSpeed,
		RotationGain:  RotationGain,
		IdleRotation:  IdleRotationSpeed,
		rng:           rng,
		phase:         make([]float64, count),
	}
	// Deterministic desynchronized phases so neighbouring particles never
	// twinkle in lockstep.
	for i := range a.phase {
		a.phase[i] = float64(splitmix64(uint64(i))>>11) / float64(uint64(1)<<53) * 2 * math.Pi
	}
	return a
}

// Rotation returns the accumulated scene orientation in radians.
func (a *Animator) Rotation() float64 {
	return a.rotation
}

// Step advances every particle by one frame.
//
// Each particle's adjusted target is its base shape point pushed outward in
// proportion to its own coordinates when the hand opens, so the explosion
// scales with the shape's extent, plus jitter for stochastic texture. The
// position then low-passes toward that target with a deltaTime-scaled step,
// and a sinusoidal twinkle rides on top of the smoothed height without
// feeding back into it.
func (a *Animator) Step(st *ParticleStore, g GestureState, dt float64) {
	if dt <= 0 {
		return
	}
	a.prevElapsed = a.elapsed
	a.elapsed += dt

	spread := clampF(g.Openness, 0, 1) * a.SpreadGain
	jitter := spread * SpreadJitter
	step := a.SmoothingGain * dt
	if step > 1 {
		step = 1
	}

	for i := 0; i < st.N; i++ {
		tx := float64(st.Target[i*3])
		ty := float64(st.Target[i*3+1])
		tz := float64(st.Target[i*3+2])
		if spread > SpreadEpsilon {
			tx += tx*spread + a.rng.RangeF(-jitter, jitter)
			ty += ty*spread + a.rng.RangeF(-jitter, jitter)
			tz += tz*spread + a.rng.RangeF(-jitter, jitter)
		}

		px := float64(st.Pos[i*3])
		py := float64(st.Pos[i*3+1])
		pz := float64(st.Pos[i*3+2])

		// Remove last frame's twinkle before smoothing so the cosmetic
		// offset never enters the filter state.
		py -= a.TwinkleAmp * math.Sin(a.prevElapsed*a.TwinkleSpeed+a.phase[i])

		px += (tx - px) * step
		py += (ty - py) * step
		pz += (tz - pz) * step

		py += a.TwinkleAmp * math.Sin(a.elapsed*a.TwinkleSpeed+a.phase[i])

		st.Pos[i*3] = float32(px)
		st.Pos[i*3+1] = float32(py)
		st.Pos[i*3+2] = float32(pz)
	}

	if g.HandDetected {
		a.rotation += (clampF(g.RotationX, 0, 1) - 0.5) * 2 * a.RotationGain * dt
	} else {
		a.rotation += a.IdleRotation * dt
	}
}
