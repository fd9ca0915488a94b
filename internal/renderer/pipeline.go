package renderer

import (
	"GopherBloom/internal/logger"
	"sort"

	"go.uber.org/zap"
)

type featureWrapper struct {
	Feature Feature
	created bool
}

// Pipeline schedules the passes of its features once per camera per frame.
type Pipeline struct {
	ctx      *Context
	features []featureWrapper
	queue    []RenderPass
	frame    uint64
}

func NewPipeline(ctx *Context) *Pipeline {
	return &Pipeline{ctx: ctx}
}

func (p *Pipeline) Context() *Context { return p.ctx }

func (p *Pipeline) AddFeature(feature Feature) {
	p.features = append(p.features, featureWrapper{Feature: feature})
}

func (p *Pipeline) RemoveFeature(feature Feature) {
	for i := range p.features {
		if p.features[i].Feature == feature {
			p.features = append(p.features[:i], p.features[i+1:]...)
			return
		}
	}
}

// Clear removes all features from the pipeline
func (p *Pipeline) Clear() {
	p.features = p.features[:0]
}

// EnqueuePass adds pass to the current frame. Only valid from AddRenderPasses.
func (p *Pipeline) EnqueuePass(pass RenderPass) {
	p.queue = append(p.queue, pass)
}

// FrameIndex is the number of frames rendered so far.
func (p *Pipeline) FrameIndex() uint64 {
	return p.frame
}

// RenderFrame runs every enabled feature for one camera. A disabled camera renders
// nothing and touches no resources.
func (p *Pipeline) RenderFrame(camera CameraData, visible []Renderable) error {
	if !camera.Enabled {
		logger.Log.Debug("Camera disabled, skipping frame", zap.Uint64("frame", p.frame))
		return nil
	}

	cull := CullingResults{Visible: visible}
	if camera.Camera != nil {
		cull = camera.Camera.Cull(visible)
	}

	data := &RenderingData{
		Camera:     camera,
		Cull:       cull,
		FrameIndex: p.frame,
	}

	p.queue = p.queue[:0]
	for i := range p.features {
		w := &p.features[i]
		if !w.created {
			w.Feature.Create()
			w.created = true
			logger.Log.Info("Render feature created", zap.String("feature", w.Feature.Name()))
		}
		if !w.Feature.Enabled() {
			continue
		}
		w.Feature.AddRenderPasses(p, data)
	}

	sort.SliceStable(p.queue, func(i, j int) bool {
		return p.queue[i].Event() < p.queue[j].Event()
	})

	cmd := GetCommandBuffer("Pipeline")
	defer ReleaseCommandBuffer(cmd)

	for _, pass := range p.queue {
		cmd.Clear()
		pass.Setup(cmd, data)
		p.ctx.ExecuteCommandBuffer(cmd)
		pass.Execute(p.ctx, data)
	}

	cmd.Clear()
	for _, pass := range p.queue {
		pass.Cleanup(cmd)
	}
	p.ctx.ExecuteCommandBuffer(cmd)

	err := p.ctx.Submit()
	if leaked := p.ctx.EndFrame(); len(leaked) > 0 {
		logger.Log.Warn("Frame leaked temporary targets",
			zap.Uint64("frame", p.frame),
			zap.Strings("names", leaked))
	}

	p.queue = p.queue[:0]
	p.frame++
	return err
}
