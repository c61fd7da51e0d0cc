package vis

import (
	"math"
	"sync/atomic"
)

// Landmark is one tracked hand keypoint in normalized image coordinates.
type Landmark struct {
	X, Y float64
}

// Landmark indices per the standard 21-point hand topology.
const (
	LandmarkWrist         = 0
	LandmarkThumbTip      = 4
	LandmarkIndexTip      = 8
	LandmarkMiddleKnuckle = 9
	LandmarkMiddleTip     = 12
	LandmarkRingTip       = 16
	LandmarkPinkyTip      = 20
)

var fingertipIndices = [5]int{
	LandmarkThumbTip, LandmarkIndexTip, LandmarkMiddleTip, LandmarkRingTip, LandmarkPinkyTip,
}

// GestureState is the per-frame snapshot derived from hand landmarks.
type GestureState struct {
	Openness      float64 // 0 fist .. 1 open
	IsOpen        bool
	RotationX     float64 // hand horizontal position, 0.5 = centre
	PinchDistance float64
	IsPinching    bool
	HandDetected  bool
}

// NeutralGesture is the state before any hand has ever been seen.
func NeutralGesture() GestureState {
	return GestureState{RotationX: 0.5}
}

// Interpreter derives gesture state from raw landmarks, one call per
// available video frame. It keeps the previous state so a lost hand fades
// out instead of snapping.
type Interpreter struct {
	prev GestureState
}

func NewInterpreter() *Interpreter {
	return &Interpreter{prev: NeutralGesture()}
}

// Interpret maps a landmark frame to a gesture state. A nil or short slice
// counts as "no hand": all fields keep their last value except HandDetected,
// and openness decays by a fixed step so the spread effect fades smoothly.
func (it *Interpreter) Interpret(landmarks []Landmark) GestureState {
	if len(landmarks) < LandmarkCount {
		g := it.prev
		g.HandDetected = false
		g.Openness = math.Max(0, g.Openness-OpennessDecay)
		g.IsOpen = g.Openness > OpenThreshold
		it.prev = g
		return g
	}

	wrist := landmarks[LandmarkWrist]
	sum := 0.0
	for _, fi := range fingertipIndices {
		sum += dist2D(wrist, landmarks[fi])
	}
	avg := sum / float64(len(fingertipIndices))

	g := GestureState{
		Openness: clampF((avg-FistDistance)/(OpenDistance-FistDistance), 0, 1),
		// Camera view is mirrored; invert so moving the hand right
		// rotates the scene right.
		RotationX:     1 - landmarks[LandmarkMiddleKnuckle].X,
		PinchDistance: dist2D(landmarks[LandmarkThumbTip], landmarks[LandmarkIndexTip]),
		HandDetected:  true,
	}
	g.IsOpen = g.Openness > OpenThreshold
	g.IsPinching = g.PinchDistance < PinchThreshold
	it.prev = g
	return g
}

func dist2D(a, b Landmark) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// GestureCell is the shared snapshot between the gesture-sampling loop and
// the animator: single writer, any number of readers, no partial reads.
type GestureCell struct {
	p atomic.Pointer[GestureState]
}

func NewGestureCell() *GestureCell {
	c := &GestureCell{}
	n := NeutralGesture()
	c.p.Store(&n)
	return c
}

func (c *GestureCell) Store(g GestureState) {
	c.p.Store(&g)
}

func (c *GestureCell) Load() GestureState {
	return *c.p.Load()
}
