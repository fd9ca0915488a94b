package engine

import (
	"GopherBloom/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// ForwardTag marks geometry drawn by the scene pass.
const ForwardTag renderer.ShaderTagID = "Forward"

// forwardPass clears the scene targets and draws all forward geometry.
type forwardPass struct {
	clearColor mgl32.Vec4
}

func (p *forwardPass) Name() string              { return "Forward" }
func (p *forwardPass) Event() renderer.PassEvent { return renderer.BeforeRenderingOpaques }

func (p *forwardPass) Setup(cmd *renderer.CommandBuffer, data *renderer.RenderingData) {
	cmd.SetRenderTargets([]renderer.RenderTarget{data.Camera.ColorTarget}, data.Camera.DepthTarget)
	cmd.ClearRenderTarget(true, true, p.clearColor)
}

func (p *forwardPass) Execute(ctx *renderer.Context, data *renderer.RenderingData) {
	ctx.DrawRenderers(data.Cull,
		renderer.DrawingSettings{
			ShaderTags:     []renderer.ShaderTagID{ForwardTag},
			Sorting:        renderer.SortCommonOpaque,
			CameraPosition: data.Camera.Position(),
		},
		renderer.NewFilteringSettings(renderer.QueueAll, renderer.LayerEverything))
}

func (p *forwardPass) Cleanup(cmd *renderer.CommandBuffer) {}

// ForwardFeature schedules the scene pass. It is the first thing every frame draws.
type ForwardFeature struct {
	ClearColor mgl32.Vec4
	pass       forwardPass
}

func NewForwardFeature(clearColor mgl32.Vec4) *ForwardFeature {
	return &ForwardFeature{ClearColor: clearColor}
}

func (f *ForwardFeature) Name() string  { return "Forward" }
func (f *ForwardFeature) Create()       {}
func (f *ForwardFeature) Enabled() bool { return true }

func (f *ForwardFeature) AddRenderPasses(p *renderer.Pipeline, data *renderer.RenderingData) {
	f.pass.clearColor = f.ClearColor
	p.EnqueuePass(&f.pass)
}
