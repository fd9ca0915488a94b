package bloom

import (
	"GopherBloom/internal/logger"
	"GopherBloom/internal/renderer"

	"go.uber.org/zap"
)

const compositorBufferName = "SingleBloom"

// Compositor builds the bloom pyramid from the mask and adds it onto the scene color.
type Compositor struct {
	settings Settings
	material *renderer.Material
	frame    *FrameData
}

func NewCompositor(material *renderer.Material, frame *FrameData) *Compositor {
	return &Compositor{settings: DefaultSettings(), material: material, frame: frame}
}

func (c *Compositor) Name() string { return compositorBufferName }

func (c *Compositor) Event() renderer.PassEvent { return renderer.AfterRenderingTransparents }

func (c *Compositor) Configure(s Settings) {
	c.settings = s
}

func (c *Compositor) Setup(cmd *renderer.CommandBuffer, data *renderer.RenderingData) {}

func (c *Compositor) Execute(ctx *renderer.Context, data *renderer.RenderingData) {
	if c.material == nil {
		logger.Log.Warn("Bloom compositor skipped, no material")
		return
	}
	if !c.frame.Ready(data.FrameIndex) {
		logger.Log.Warn("Bloom compositor skipped, mask not drawn this frame",
			zap.Uint64("frame", data.FrameIndex))
		return
	}
	if data.Camera.ColorTarget.IsNone() {
		logger.Log.Warn("Bloom compositor skipped, camera has no color target")
		return
	}

	cmd := renderer.GetCommandBuffer(compositorBufferName)
	defer renderer.ReleaseCommandBuffer(cmd)

	c.Record(cmd, c.frame.Mask(), data.Camera.ColorTarget, data.Camera.Target)
	ctx.ExecuteCommandBuffer(cmd)
}

func (c *Compositor) Cleanup(cmd *renderer.CommandBuffer) {}

// Record writes the whole pyramid into cmd: requests, blits and releases.
// Every requested level is released before Record returns, whatever branch is taken.
func (c *Compositor) Record(cmd *renderer.CommandBuffer, mask, scene renderer.RenderTarget, base renderer.TextureDescriptor) {
	pyramid := NewPyramid(base, c.settings.StepCount)

	var release renderer.Unwind
	defer release.Unwind()

	for _, level := range pyramid.Levels() {
		name := level.Name
		cmd.GetTemporaryRT(name, level.Descriptor, renderer.FilterBilinear)
		release.Add(func() { cmd.ReleaseTemporaryRT(name) })
	}

	logger.Log.Debug("Bloom pyramid recorded",
		zap.Int("steps", pyramid.Steps()),
		zap.Stringer("base", base),
		zap.Float32("threshold", c.settings.LuminanceThreshold))

	cmd.SetGlobalFloat(GlobalLuminanceThreshold, c.settings.LuminanceThreshold)
	for _, step := range pyramid.Schedule(mask, scene) {
		if !step.PrevMip.IsNone() {
			cmd.SetGlobalTexture(GlobalPrevMip, step.PrevMip)
		}
		cmd.Blit(step.Source, step.Dest, c.material, step.Pass)
	}
}
