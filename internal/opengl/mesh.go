package opengl

import (
	"GopherBloom/internal/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var meshVertexShader = `#version 410 core
layout(location = 0) in vec3 inPosition;

uniform mat4 viewProjection;
uniform mat4 model;

void main() {
    gl_Position = viewProjection * model * vec4(inPosition, 1.0);
}
` + "\x00"

// Attachment 1 only exists while the bloom mask is bound next to the scene color.
var meshFragmentShader = `#version 410 core
layout(location = 0) out vec4 FragColor;
layout(location = 1) out vec4 BloomMask;

uniform vec4 _Color;
uniform vec4 _Emission;

void main() {
    FragColor = _Color + vec4(_Emission.rgb, 0.0);
    BloomMask = _Emission;
}
` + "\x00"

// Mesh is a GPU triangle list with a flat color and an emission color.
type Mesh struct {
	Label    string
	Vertices []float32 // xyz triplets
	Position mgl32.Vec3
	Scale    float32
	Color    mgl32.Vec4
	Emission mgl32.Vec4
	Queue    int
	LayerID  uint8
	Tags     []renderer.ShaderTagID

	vao, vbo uint32
}

// NewCubeMesh returns a unit cube centered on position.
func NewCubeMesh(label string, position mgl32.Vec3, scale float32) *Mesh {
	return NewMesh(label, cubeVertices, position, scale)
}

// NewMesh wraps a triangle list that fits the unit box around the origin.
func NewMesh(label string, vertices []float32, position mgl32.Vec3, scale float32) *Mesh {
	return &Mesh{
		Label:    label,
		Vertices: vertices,
		Position: position,
		Scale:    scale,
		Color:    mgl32.Vec4{0.6, 0.6, 0.6, 1},
		Queue:    2000,
		Tags:     []renderer.ShaderTagID{"Forward"},
	}
}

func (m *Mesh) Name() string                       { return m.Label }
func (m *Mesh) Layer() uint8                       { return m.LayerID }
func (m *Mesh) RenderQueue() int                   { return m.Queue }
func (m *Mesh) ShaderTags() []renderer.ShaderTagID { return m.Tags }
func (m *Mesh) WorldPosition() mgl32.Vec3          { return m.Position }

func (m *Mesh) BoundingSphere() (mgl32.Vec3, float32) {
	// half diagonal of a unit cube
	return m.Position, m.Scale * 0.8660254
}

func (m *Mesh) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z()).
		Mul4(mgl32.Scale3D(m.Scale, m.Scale, m.Scale))
}

func (m *Mesh) upload() {
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

func (m *Mesh) draw(u *UniformCache) {
	if m.vao == 0 {
		m.upload()
	}
	u.SetMat4("model", m.ModelMatrix())
	u.SetVec4("_Color", m.Color)
	u.SetVec4("_Emission", m.Emission)

	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(m.Vertices)/3))
	gl.BindVertexArray(0)
}

// Delete frees the GPU buffers. The mesh re-uploads on its next draw.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		m.vao, m.vbo = 0, 0
	}
}

var cubeVertices = []float32{
	// back
	-0.5, -0.5, -0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, -0.5, -0.5, -0.5, 0.5, -0.5,
	// front
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5, -0.5, 0.5,
	// left
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5, -0.5, -0.5,
	-0.5, -0.5, -0.5, -0.5, -0.5, 0.5, -0.5, 0.5, 0.5,
	// right
	0.5, 0.5, 0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, 0.5, 0.5, 0.5, -0.5, 0.5,
	// bottom
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	// top
	-0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5, 0.5, 0.5,
}
