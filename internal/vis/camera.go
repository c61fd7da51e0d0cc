package vis

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Camera orbits the origin at a fixed height; only its distance is
// user-controlled. Orientation comes from the animator's rotation value.
type Camera struct {
	Distance float64
}

func (c *Camera) Clamp() {
	if c.Distance < CameraMinDist {
		c.Distance = CameraMinDist
	}
	if c.Distance > CameraMaxDist {
		c.Distance = CameraMaxDist
	}
}

// UpdateCameraZoom handles E/R dolly in/out.
func UpdateCameraZoom(cam *Camera, window *glfw.Window, dt float64) {
	zoomRate := 1.4
	if window.GetKey(glfw.KeyE) == glfw.Press {
		cam.Distance *= math.Exp(-zoomRate * dt)
	}
	if window.GetKey(glfw.KeyR) == glfw.Press {
		cam.Distance *= math.Exp(zoomRate * dt)
	}
	cam.Clamp()
}
