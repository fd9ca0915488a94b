// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	// HOT DATA - Accessed every frame for view/projection and culling
	Position   mgl32.Vec3 // Camera position in world space
	Front      mgl32.Vec3 // Forward direction vector
	Up         mgl32.Vec3 // Up direction vector
	Right      mgl32.Vec3 // Right direction vector
	Projection mgl32.Mat4 // Projection matrix
	Pitch      float32    // Pitch angle (vertical rotation)
	Yaw        float32    // Yaw angle (horizontal rotation)

	// COLD DATA - Configuration and input handling
	WorldUp     mgl32.Vec3
	Speed       float32
	Sensitivity float32
	Fov         float32
	Near        float32
	Far         float32
	AspectRatio float32
	InvertMouse bool

	Name string
}

type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

type Frustum struct {
	Planes [6]Plane
}

func NewDefaultCamera(width, height int32) *Camera {
	if height < 1 {
		height = 1
	}
	camera := Camera{
		Position:    mgl32.Vec3{0, 0, 10},
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Pitch:       0.0,
		Yaw:         -90.0,
		Speed:       10,
		Sensitivity: 0.1,
		Fov:         45.0,
		Near:        0.1,
		Far:         1000.0,
		AspectRatio: float32(width) / float32(height),
		InvertMouse: true,
	}
	camera.updateCameraVectors()
	camera.UpdateProjection()
	return &camera
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

// Move translates the camera along its local axes.
func (c *Camera) Move(forward, right float32) {
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Position = c.Position.Add(c.Front.Mul(forward)).Add(c.Right.Mul(right))
}

func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.Sensitivity
	yoffset *= c.Sensitivity

	c.Yaw += xoffset
	if c.InvertMouse {
		c.Pitch -= yoffset
	} else {
		c.Pitch += yoffset
	}
	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -89.0, 89.0)
	}
	c.updateCameraVectors()
}

func (c *Camera) updateCameraVectors() {
	yawRad := float64(mgl32.DegToRad(c.Yaw))
	pitchRad := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}

	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

func (c *Camera) CalculateFrustum() Frustum {
	var frustum Frustum
	vp := c.GetViewProjection()

	// Left, right, bottom, top, near, far
	frustum.Planes[0] = Plane{Normal: mgl32.Vec3{vp[3] + vp[0], vp[7] + vp[4], vp[11] + vp[8]}, Distance: vp[15] + vp[12]}
	frustum.Planes[1] = Plane{Normal: mgl32.Vec3{vp[3] - vp[0], vp[7] - vp[4], vp[11] - vp[8]}, Distance: vp[15] - vp[12]}
	frustum.Planes[2] = Plane{Normal: mgl32.Vec3{vp[3] + vp[1], vp[7] + vp[5], vp[11] + vp[9]}, Distance: vp[15] + vp[13]}
	frustum.Planes[3] = Plane{Normal: mgl32.Vec3{vp[3] - vp[1], vp[7] - vp[5], vp[11] - vp[9]}, Distance: vp[15] - vp[13]}
	frustum.Planes[4] = Plane{Normal: mgl32.Vec3{vp[3] + vp[2], vp[7] + vp[6], vp[11] + vp[10]}, Distance: vp[15] + vp[14]}
	frustum.Planes[5] = Plane{Normal: mgl32.Vec3{vp[3] - vp[2], vp[7] - vp[6], vp[11] - vp[10]}, Distance: vp[15] - vp[14]}

	for i := 0; i < 6; i++ {
		length := frustum.Planes[i].Normal.Len()
		frustum.Planes[i].Normal = frustum.Planes[i].Normal.Mul(1.0 / length)
		frustum.Planes[i].Distance /= length
	}

	return frustum
}

func (p *Plane) DistanceToPoint(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

func (f *Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}

// Cull keeps the renderables whose bounding sphere touches the view frustum.
func (c *Camera) Cull(renderables []Renderable) CullingResults {
	frustum := c.CalculateFrustum()
	visible := make([]Renderable, 0, len(renderables))
	for _, r := range renderables {
		if r == nil {
			continue
		}
		center, radius := r.BoundingSphere()
		if frustum.IntersectsSphere(center, radius) {
			visible = append(visible, r)
		}
	}
	return CullingResults{Visible: visible}
}

// CameraData is what a render pass knows about the camera it runs for.
type CameraData struct {
	Camera      *Camera
	Target      TextureDescriptor
	ColorTarget RenderTarget
	DepthTarget RenderTarget
	// IsPreview marks editor preview cameras; layer filters are ignored for them.
	IsPreview bool
	Enabled   bool
}

// Position returns the camera position, or the origin when no camera is attached.
func (d CameraData) Position() mgl32.Vec3 {
	if d.Camera == nil {
		return mgl32.Vec3{}
	}
	return d.Camera.Position
}
