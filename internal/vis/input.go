package vis

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevKeys map[glfw.Key]bool

	simOpen float64
	lms     [LandmarkCount]Landmark
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

var shapeKeys = [...]struct {
	key   glfw.Key
	shape Shape
}{
	{glfw.Key1, ShapeTree},
	{glfw.Key2, ShapeHeart},
	{glfw.Key3, ShapeSphere},
	{glfw.Key4, ShapeStar},
	{glfw.Key5, ShapeFlower},
}

// ShapeHotkey returns the shape selected this frame, if any.
func (in *Input) ShapeHotkey(window *glfw.Window) (Shape, bool) {
	for _, sk := range shapeKeys {
		if in.JustPressed(window, sk.key) {
			return sk.shape, true
		}
	}
	return ShapeTree, false
}

// SimulatedLandmarks synthesizes a 21-point hand frame from mouse state so
// the visualization works without a detector sidecar: the cursor places
// the hand, holding the left button opens it, the right button pinches.
// Returns nil (no hand) while the cursor is outside the window.
//
// Producing landmarks rather than a ready gesture state keeps the mouse on
// the same Interpreter path as the real detector.
func (in *Input) SimulatedLandmarks(window *glfw.Window, dt float64) []Landmark {
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return nil
	}
	cx, cy := window.GetCursorPos()
	nx := cx / float64(winW)
	ny := cy / float64(winH)
	if nx < 0 || nx > 1 || ny < 0 || ny > 1 {
		in.simOpen = approach(in.simOpen, 0, SimCloseRate*dt)
		return nil
	}

	if window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press {
		in.simOpen = approach(in.simOpen, 1, SimOpenRate*dt)
	} else {
		in.simOpen = approach(in.simOpen, 0, SimCloseRate*dt)
	}

	wrist := Landmark{X: nx, Y: ny + 0.12}
	for i := range in.lms {
		in.lms[i] = wrist
	}
	// The interpreter un-mirrors the knuckle x; pre-mirror here so cursor
	// right means rotate right.
	in.lms[LandmarkMiddleKnuckle] = Landmark{X: 1 - nx, Y: ny}

	// Fan the fingertips above the wrist at the openness-scaled reach.
	reach := FistDistance + in.simOpen*(OpenDistance-FistDistance)
	for fi, li := range fingertipIndices {
		ang := -math.Pi/2 + (float64(fi)-2)*0.35
		in.lms[li] = Landmark{
			X: wrist.X + math.Cos(ang)*reach,
			Y: wrist.Y + math.Sin(ang)*reach,
		}
	}

	// Right button: bring thumb and index tips together.
	if window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		mid := Landmark{X: wrist.X, Y: wrist.Y - reach}
		in.lms[LandmarkThumbTip] = Landmark{X: mid.X - 0.015, Y: mid.Y}
		in.lms[LandmarkIndexTip] = Landmark{X: mid.X + 0.015, Y: mid.Y}
	}

	return in.lms[:]
}
