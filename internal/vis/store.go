package vis

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Particle size distribution: mostly small dust with a band of larger
// accent particles. Sizes are gl point sizes and never change after init.
const (
	dustSizeMin   = 1.2
	dustSizeMax   = 2.2
	accentSizeMin = 3.0
	accentSizeMax = 5.0
	accentChance  = 0.15

	// Accent mix: most particles sit close to the base colour, a minority
	// is pulled strongly toward the gold accent.
	goldHeavyChance = 0.18
)

// ParticleStore owns the per-particle attribute streams. All streams are
// allocated once; index i refers to the same particle for the whole
// session, only attribute values change.
type ParticleStore struct {
	N      int
	Pos    []float32 // 3N, mutated every frame by the animator
	Target []float32 // 3N, replaced wholesale on shape change
	Col    []float32 // 3N, channels in [0,1]
	Size   []float32 // N, immutable after init

	mix []float32 // per-particle gold mix weight, drawn once

	fadeFrom []float32
	fadeTo   []float32
	fade     *gween.Tween
}

// NewParticleStore allocates and populates all attribute streams for count
// particles on the given starting shape.
func NewParticleStore(count int, shape Shape, base RGBf, rng *Rand) *ParticleStore {
	st := &ParticleStore{
		N:        count,
		Pos:      GeneratePoints(shape, count, rng),
		Target:   make([]float32, 3*count),
		Col:      make([]float32, 3*count),
		Size:     make([]float32, count),
		mix:      make([]float32, count),
		fadeFrom: make([]float32, 3*count),
		fadeTo:   make([]float32, 3*count),
	}
	copy(st.Target, st.Pos)

	for i := 0; i < count; i++ {
		if rng.Float64() < goldHeavyChance {
			st.mix[i] = float32(rng.RangeF(0.65, 1.0))
		} else {
			st.mix[i] = float32(rng.RangeF(0, 0.25))
		}
		if rng.Float64() < accentChance {
			st.Size[i] = float32(rng.RangeF(accentSizeMin, accentSizeMax))
		} else {
			st.Size[i] = float32(rng.RangeF(dustSizeMin, dustSizeMax))
		}
	}
	st.writeColors(st.Col, base)
	return st
}

// Retarget replaces the target stream wholesale. Positions are untouched;
// particles converge on the next animate steps.
func (st *ParticleStore) Retarget(points []float32) {
	if len(points) != len(st.Target) {
		panic(fmt.Sprintf("retarget: got %d floats, want %d", len(points), len(st.Target)))
	}
	copy(st.Target, points)
}

// Retint recolours the stream toward a new base colour, crossfading from
// the current colours so a palette change never pops.
func (st *ParticleStore) Retint(base RGBf) {
	copy(st.fadeFrom, st.Col)
	st.writeColors(st.fadeTo, base)
	st.fade = gween.New(0, 1, RetintFadeSeconds, ease.InOutQuad)
}

// StepFade advances an in-flight retint crossfade. Free once the fade has
// finished.
func (st *ParticleStore) StepFade(dt float64) {
	if st.fade == nil {
		return
	}
	t, done := st.fade.Update(float32(dt))
	for i := range st.Col {
		st.Col[i] = lerp32(st.fadeFrom[i], st.fadeTo[i], t)
	}
	if done {
		copy(st.Col, st.fadeTo)
		st.fade = nil
	}
}

// writeColors fills dst from the per-particle gold mix weights.
func (st *ParticleStore) writeColors(dst []float32, base RGBf) {
	for i := 0; i < st.N; i++ {
		c := lerpRGBf(base, Palette.Gold, st.mix[i])
		dst[i*3] = c.R
		dst[i*3+1] = c.G
		dst[i*3+2] = c.B
	}
}
