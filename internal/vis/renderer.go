package vis

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the particle cloud as glowing point sprites. Position and
// colour streams come straight from the store each frame; sizes are
// uploaded once at startup since they never change.
type Renderer struct {
	prog uint32
	vao  uint32

	vboPos  uint32
	vboCol  uint32
	vboSize uint32

	uProj       int32
	uView       int32
	uRotation   int32
	uPointScale int32

	n int
}

func NewRenderer(st *ParticleStore) (*Renderer, error) {
	prog, err := linkProgram(pointVertSrc, pointFragSrc)
	if err != nil {
		return nil, fmt.Errorf("point program: %w", err)
	}

	r := &Renderer{prog: prog, n: st.N}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// aPos (vec3): streamed every frame.
	gl.GenBuffers(1, &r.vboPos)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboPos)
	gl.BufferData(gl.ARRAY_BUFFER, len(st.Pos)*4, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, glOffset(0))

	// aColor (vec3): streamed every frame (retint crossfade mutates it).
	gl.GenBuffers(1, &r.vboCol)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboCol)
	gl.BufferData(gl.ARRAY_BUFFER, len(st.Col)*4, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, glOffset(0))

	// aSize (float): immutable for the session.
	gl.GenBuffers(1, &r.vboSize)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboSize)
	gl.BufferData(gl.ARRAY_BUFFER, len(st.Size)*4, gl.Ptr(st.Size), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 1, gl.FLOAT, false, 4, glOffset(0))

	gl.UseProgram(prog)
	r.uProj = gl.GetUniformLocation(prog, gl.Str("uProj\x00"))
	r.uView = gl.GetUniformLocation(prog, gl.Str("uView\x00"))
	r.uRotation = gl.GetUniformLocation(prog, gl.Str("uRotation\x00"))
	r.uPointScale = gl.GetUniformLocation(prog, gl.Str("uPointScale\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.vboPos, r.vboCol, r.vboSize} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// Draw uploads the current attribute streams and renders one frame.
func (r *Renderer) Draw(st *ParticleStore, rotation float64, cam Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)

	aspect := float32(fbW) / float32(fbH)
	proj := mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 200)
	view := mgl32.LookAtV(
		mgl32.Vec3{0, 1.5, float32(cam.Distance)},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.Uniform1f(r.uRotation, float32(rotation))
	gl.Uniform1f(r.uPointScale, float32(fbH)/55.0)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboPos)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(st.Pos)*4, gl.Ptr(st.Pos))
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboCol)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(st.Col)*4, gl.Ptr(st.Col))

	gl.DrawArrays(gl.POINTS, 0, int32(r.n))
	gl.BindVertexArray(0)
}
