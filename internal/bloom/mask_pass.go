package bloom

import (
	"GopherBloom/internal/logger"
	"GopherBloom/internal/renderer"

	"go.uber.org/zap"
)

const maskProfilingName = "SingleBloomPreBlit"

// MaskPass draws bloom contributors into the mask next to the scene color.
type MaskPass struct {
	settings Settings
	frame    *FrameData
	acquired bool
}

func NewMaskPass(frame *FrameData) *MaskPass {
	return &MaskPass{settings: DefaultSettings(), frame: frame}
}

func (p *MaskPass) Name() string { return maskProfilingName }

func (p *MaskPass) Event() renderer.PassEvent { return renderer.AfterRenderingOpaques }

// Configure sets the settings used for the next frame.
func (p *MaskPass) Configure(s Settings) {
	p.settings = s
}

// Setup acquires the mask, clears it to black and binds it as the second color output.
func (p *MaskPass) Setup(cmd *renderer.CommandBuffer, data *renderer.RenderingData) {
	p.frame.reset()

	desc := data.Camera.Target
	desc.DepthBufferBits = 0
	desc.MipCount = 0
	if !desc.Valid() {
		logger.Log.Warn("Bloom mask skipped, camera target has no area",
			zap.Stringer("descriptor", desc))
		return
	}
	if data.Camera.ColorTarget.IsNone() {
		logger.Log.Warn("Bloom mask skipped, camera has no color target")
		return
	}

	mask := renderer.TemporaryTarget(MaskTextureName)
	cmd.GetTemporaryRT(MaskTextureName, desc, renderer.FilterBilinear)
	p.acquired = true

	// Cleared explicitly, some backends keep stale contents in pooled targets.
	cmd.SetRenderTarget(mask)
	cmd.ClearRenderTarget(false, true, renderer.ColorBlack)
	cmd.SetRenderTargets([]renderer.RenderTarget{data.Camera.ColorTarget, mask}, data.Camera.DepthTarget)

	p.frame.begin(mask, data.FrameIndex)
}

// Execute draws every renderable tagged for bloom into the bound targets.
func (p *MaskPass) Execute(ctx *renderer.Context, data *renderer.RenderingData) {
	if !p.acquired {
		return
	}

	layers := p.settings.LayerFilter
	if data.Camera.IsPreview {
		layers = renderer.LayerEverything
	}

	drawing := renderer.DrawingSettings{
		ShaderTags:     []renderer.ShaderTagID{ShaderTag},
		Sorting:        p.settings.Sorting(),
		CameraPosition: data.Camera.Position(),
	}
	filtering := renderer.NewFilteringSettings(p.settings.QueueRange(), layers)

	cmd := renderer.GetCommandBuffer(maskProfilingName)
	defer renderer.ReleaseCommandBuffer(cmd)

	cmd.BeginSample(maskProfilingName)
	ctx.ExecuteCommandBuffer(cmd)
	cmd.Clear()

	ctx.DrawRenderers(data.Cull, drawing, filtering)

	cmd.EndSample(maskProfilingName)
	ctx.ExecuteCommandBuffer(cmd)

	p.frame.markProduced(data.FrameIndex)
}

func (p *MaskPass) Cleanup(cmd *renderer.CommandBuffer) {
	if !p.acquired {
		return
	}
	cmd.ReleaseTemporaryRT(MaskTextureName)
	p.acquired = false
	p.frame.reset()
}
