package vis

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// trackerStaleAfter is how long the main loop waits for detector frames
// before falling back to the mouse-driven hand.
const trackerStaleAfter = 500 * time.Millisecond

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// Initialize audio system.
	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	} else {
		go func() {
			time.Sleep(100 * time.Millisecond) // let audio context initialize
			StartDrone()
		}()
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("NEBULA_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state: additive blending, no depth — every particle is a light.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.ClearColor(0.012, 0.012, 0.030, 1.0)

	// Particle systems.
	shapeRng := NewRand(seed)
	colorIdx := 0
	store := NewParticleStore(DefaultParticleCount, ShapeTree, Palette.Bases[colorIdx], shapeRng)
	animator := NewAnimator(store.N, NewRand(seed^0xBEAD))

	rend, err := NewRenderer(store)
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	// UI boundary: discrete shape/colour events feed the store.
	bus := NewEventBus()
	bus.Subscribe(EventShapeSelected, func(e Event) {
		store.Retarget(GeneratePoints(e.Shape, store.N, shapeRng))
		PlayShapeChime(e.Shape)
	})
	bus.Subscribe(EventColorSelected, func(e Event) {
		store.Retint(Palette.Bases[e.ColorIndex])
	})
	bus.Subscribe(EventHandAppeared, func(Event) { PlaySound(SoundHandSwell) })
	bus.Subscribe(EventPinch, func(Event) { PlaySound(SoundPinch) })

	// Gesture sampling: the tracker goroutine owns the cell while detector
	// frames arrive; otherwise the mouse-driven hand writes it.
	cell := NewGestureCell()
	tracker := NewTracker(TrackerAddr)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := tracker.Run(ctx, cell); err != nil {
			fmt.Fprintf(os.Stderr, "tracker disabled (mouse input only): %v\n", err)
		}
	}()

	input := NewInput()
	simInterp := NewInterpreter()
	cam := Camera{Distance: CameraDefaultDist}

	prevDetected := false
	prevPinching := false

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if shape, ok := input.ShapeHotkey(window); ok {
			bus.Emit(Event{Type: EventShapeSelected, Shape: shape})
		}
		if input.JustPressed(window, glfw.KeyC) {
			colorIdx = (colorIdx + 1) % len(Palette.Bases)
			bus.Emit(Event{Type: EventColorSelected, ColorIndex: colorIdx})
		}
		UpdateCameraZoom(&cam, window, dt)

		if !tracker.Active(time.Now(), trackerStaleAfter) {
			cell.Store(simInterp.Interpret(input.SimulatedLandmarks(window, dt)))
		}
		g := cell.Load()

		// Gesture edge transitions.
		if g.HandDetected && !prevDetected {
			bus.Emit(Event{Type: EventHandAppeared})
		}
		if !g.HandDetected && prevDetected {
			bus.Emit(Event{Type: EventHandLost})
		}
		if g.IsPinching && !prevPinching {
			colorIdx = (colorIdx + 1) % len(Palette.Bases)
			bus.Emit(Event{Type: EventColorSelected, ColorIndex: colorIdx})
			bus.Emit(Event{Type: EventPinch})
		}
		prevDetected = g.HandDetected
		prevPinching = g.IsPinching

		SetDroneOpenness(g.Openness)

		animator.Step(store, g, dt)
		store.StepFade(dt)

		rend.Draw(store, animator.Rotation(), cam, fbW, fbH)
		window.SwapBuffers()
	}
}
