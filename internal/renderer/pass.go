package renderer

import "fmt"

// PassEvent is the point in the frame where a pass is injected.
type PassEvent int

const (
	BeforeRendering PassEvent = iota * 100
	BeforeRenderingOpaques
	AfterRenderingOpaques
	BeforeRenderingTransparents
	AfterRenderingTransparents
	BeforeRenderingPostProcessing
	AfterRendering
)

func (e PassEvent) String() string {
	switch e {
	case BeforeRendering:
		return "BeforeRendering"
	case BeforeRenderingOpaques:
		return "BeforeRenderingOpaques"
	case AfterRenderingOpaques:
		return "AfterRenderingOpaques"
	case BeforeRenderingTransparents:
		return "BeforeRenderingTransparents"
	case AfterRenderingTransparents:
		return "AfterRenderingTransparents"
	case BeforeRenderingPostProcessing:
		return "BeforeRenderingPostProcessing"
	case AfterRendering:
		return "AfterRendering"
	default:
		return fmt.Sprintf("PassEvent(%d)", int(e))
	}
}

// RenderingData is the per-frame, per-camera state handed to every pass.
type RenderingData struct {
	Camera     CameraData
	Cull       CullingResults
	FrameIndex uint64
}

// RenderPass is a unit of work scheduled by the Pipeline.
//
// Setup records into a command buffer that is executed right before Execute.
// Execute queues its own work on the context. Cleanup runs after every pass of
// the frame has executed and is where frame-scoped targets owned by the pass are released.
type RenderPass interface {
	Name() string
	Event() PassEvent
	Setup(cmd *CommandBuffer, data *RenderingData)
	Execute(ctx *Context, data *RenderingData)
	Cleanup(cmd *CommandBuffer)
}

// Feature owns one or more passes and decides each frame whether to enqueue them.
type Feature interface {
	Name() string
	Create()
	Enabled() bool
	AddRenderPasses(p *Pipeline, data *RenderingData)
}
