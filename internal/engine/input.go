package engine

import (
	"GopherBloom/internal/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type mouseState struct {
	lastX, lastY float64
	first        bool
}

// keyDirection maps pressed WASD keys to forward and right movement in -1..1.
func keyDirection(pressed func(glfw.Key) bool) (forward, right float32) {
	if pressed(glfw.KeyW) {
		forward++
	}
	if pressed(glfw.KeyS) {
		forward--
	}
	if pressed(glfw.KeyD) {
		right++
	}
	if pressed(glfw.KeyA) {
		right--
	}
	return forward, right
}

func processKeyboard(window *glfw.Window, camera *renderer.Camera, deltaTime float32) {
	pressed := func(k glfw.Key) bool { return window.GetKey(k) == glfw.Press }

	velocity := camera.Speed * deltaTime
	// Shift runs
	if pressed(glfw.KeyLeftShift) || pressed(glfw.KeyRightShift) {
		velocity *= 2.5
	}

	forward, right := keyDirection(pressed)
	if forward != 0 || right != 0 {
		camera.Move(forward*velocity, right*velocity)
	}
}

// mouseCallback looks around while the right button is held.
func (gopher *Gopher) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	if !gopher.EnableCameraInput || w.GetAttrib(glfw.Focused) != glfw.True || w.GetMouseButton(glfw.MouseButtonRight) != glfw.Press {
		gopher.mouse.first = true
		return
	}
	if gopher.mouse.first {
		gopher.mouse.lastX, gopher.mouse.lastY = xpos, ypos
		gopher.mouse.first = false
		return
	}

	xoffset := xpos - gopher.mouse.lastX
	yoffset := gopher.mouse.lastY - ypos // y grows downwards
	gopher.mouse.lastX, gopher.mouse.lastY = xpos, ypos

	gopher.Camera.ProcessMouseMovement(float32(xoffset), float32(yoffset), true)
}
