package engine

import (
	"GopherBloom/internal/bloom"
	"GopherBloom/internal/logger"
	"GopherBloom/internal/opengl"
	"GopherBloom/internal/renderer"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// statsInterval is how many frames pass between pool stat dumps.
const statsInterval = 600

// Gopher hosts a window and runs the render pipeline every frame.
type Gopher struct {
	Width  int32
	Height int32
	Title  string
	Camera *renderer.Camera
	Scene  []renderer.Renderable

	// Disable when another consumer owns keyboard and mouse.
	EnableCameraInput bool

	forward  *ForwardFeature
	bloom    *bloom.Feature
	window   *glfw.Window
	device   *opengl.Device
	pipeline *renderer.Pipeline

	sceneColor renderer.Texture
	sceneDepth renderer.Texture

	onUpdate     func(deltaTime float64)
	mouse        mouseState
	frameTrackId int
}

func NewGopher(width, height int32, settings bloom.Settings) *Gopher {
	logger.Log.Info("GopherBloom initializing...")
	return &Gopher{
		Width:             width,
		Height:            height,
		Title:             "GopherBloom",
		Camera:            renderer.NewDefaultCamera(width, height),
		EnableCameraInput: true,
		mouse:             mouseState{first: true},
		forward:           NewForwardFeature(mgl32.Vec4{0.02, 0.02, 0.04, 1}),
		bloom:             bloom.NewFeature(settings, bloom.NewMaterial()),
	}
}

// Bloom returns the bloom feature so settings can be changed while running.
func (gopher *Gopher) Bloom() *bloom.Feature {
	return gopher.bloom
}

// SetClearColor sets the background color of the scene pass.
func (gopher *Gopher) SetClearColor(c mgl32.Vec4) {
	gopher.forward.ClearColor = c
}

// SetOnUpdateCallback sets a callback invoked every frame before rendering
func (gopher *Gopher) SetOnUpdateCallback(callback func(deltaTime float64)) {
	gopher.onUpdate = callback
}

// Render opens the window and blocks until it is closed.
func (gopher *Gopher) Render(x, y int) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(gopher.Width), int(gopher.Height), gopher.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	gopher.window = window
	window.MakeContextCurrent()
	window.SetPos(x, y)
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init OpenGL: %w", err)
	}

	device, err := opengl.NewDevice()
	if err != nil {
		return err
	}
	gopher.device = device
	defer device.Close()

	gopher.pipeline = renderer.NewPipeline(renderer.NewContext(device))
	gopher.pipeline.AddFeature(gopher.forward)
	gopher.pipeline.AddFeature(gopher.bloom)

	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	window.SetCursorPosCallback(gopher.mouseCallback)

	return gopher.RenderLoop()
}

func (gopher *Gopher) RenderLoop() error {
	lastTime := glfw.GetTime()
	defer gopher.releaseSceneTargets()

	for !gopher.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		fbWidth, fbHeight := gopher.window.GetFramebufferSize()
		if err := gopher.ensureSceneTargets(int32(fbWidth), int32(fbHeight)); err != nil {
			return err
		}

		if gopher.EnableCameraInput {
			processKeyboard(gopher.window, gopher.Camera, float32(deltaTime))
		}
		if gopher.onUpdate != nil {
			gopher.onUpdate(deltaTime)
		}

		gopher.device.SetViewProjection(gopher.Camera.GetViewProjection())
		if err := gopher.pipeline.RenderFrame(gopher.cameraData(), gopher.Scene); err != nil {
			logger.Log.Error("Frame failed", zap.Uint64("frame", gopher.pipeline.FrameIndex()), zap.Error(err))
		}
		if err := gopher.device.Present(gopher.sceneColor, int32(fbWidth), int32(fbHeight)); err != nil {
			logger.Log.Error("Present failed", zap.Error(err))
		}

		gopher.frameTrackId++
		if gopher.frameTrackId >= statsInterval {
			gopher.pipeline.Context().Pool().LogStats()
			gopher.frameTrackId = 0
		}

		gopher.window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func (gopher *Gopher) cameraData() renderer.CameraData {
	return renderer.CameraData{
		Camera:      gopher.Camera,
		Target:      gopher.sceneColor.Descriptor(),
		ColorTarget: renderer.TextureTarget(gopher.sceneColor),
		DepthTarget: renderer.TextureTarget(gopher.sceneDepth),
		Enabled:     true,
	}
}

// ensureSceneTargets (re)creates the offscreen color and depth targets at the framebuffer size.
func (gopher *Gopher) ensureSceneTargets(width, height int32) error {
	if width < 1 || height < 1 {
		width, height = 1, 1
	}
	if gopher.sceneColor != nil {
		d := gopher.sceneColor.Descriptor()
		if d.Width == width && d.Height == height {
			return nil
		}
	}
	gopher.releaseSceneTargets()

	color, err := gopher.device.CreateTexture("SceneColor", renderer.TextureDescriptor{
		Width: width, Height: height, Format: renderer.FormatRGBA16F, MSAASamples: 1,
	}, renderer.FilterBilinear)
	if err != nil {
		return err
	}
	depth, err := gopher.device.CreateTexture("SceneDepth", renderer.TextureDescriptor{
		Width: width, Height: height, Format: renderer.FormatDepth24, DepthBufferBits: 24, MSAASamples: 1,
	}, renderer.FilterPoint)
	if err != nil {
		gopher.device.DestroyTexture(color)
		return err
	}
	gopher.sceneColor, gopher.sceneDepth = color, depth

	gopher.Width, gopher.Height = width, height
	gopher.Camera.SetAspectRatio(float32(width) / float32(height))
	logger.Log.Info("Scene targets resized", zap.Int32("width", width), zap.Int32("height", height))
	return nil
}

func (gopher *Gopher) releaseSceneTargets() {
	if gopher.sceneColor != nil {
		gopher.device.DestroyTexture(gopher.sceneColor)
		gopher.sceneColor = nil
	}
	if gopher.sceneDepth != nil {
		gopher.device.DestroyTexture(gopher.sceneDepth)
		gopher.sceneDepth = nil
	}
}

// GetWindow returns the GLFW window
func (gopher *Gopher) GetWindow() *glfw.Window {
	return gopher.window
}
