package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}
	if math.Abs(float64(cam.AspectRatio)-800.0/600.0) > 1e-5 {
		t.Errorf("Expected aspect 4:3, got %f", cam.AspectRatio)
	}
	if cam.Speed <= 0 || cam.Sensitivity <= 0 {
		t.Error("Camera speed and sensitivity should be positive")
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	proj := cam.GetProjectionMatrix()
	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraUpdateVectors(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Yaw = 30
	cam.Pitch = 10
	cam.updateCameraVectors()

	if math.Abs(float64(cam.Front.Len())-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", cam.Front.Len())
	}
	if math.Abs(float64(cam.Front.Dot(cam.Right))) > 1e-4 {
		t.Error("Front and Right should be orthogonal")
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	frustum := cam.CalculateFrustum()

	ahead := cam.Position.Add(cam.Front.Mul(10))
	if !frustum.IntersectsSphere(ahead, 1) {
		t.Error("Sphere straight ahead should be visible")
	}
	behind := cam.Position.Sub(cam.Front.Mul(10))
	if frustum.IntersectsSphere(behind, 1) {
		t.Error("Sphere behind the camera should be culled")
	}
	if frustum.IntersectsSphere(mgl32.Vec3{0, 0, 5000}, 1) {
		t.Error("Sphere beyond the far plane should be culled")
	}
}
