package bloom

import (
	"GopherBloom/internal/logger"
	"GopherBloom/internal/renderer"
	"sync"

	"go.uber.org/zap"
)

// Feature schedules the mask pass and the compositor for every camera.
type Feature struct {
	mu       sync.RWMutex
	settings Settings

	frame      *FrameData
	mask       *MaskPass
	compositor *Compositor
}

// NewFeature clamps settings and wires both passes to one shared FrameData.
func NewFeature(settings Settings, material *renderer.Material) *Feature {
	frame := &FrameData{}
	return &Feature{
		settings:   settings.Clamp(),
		frame:      frame,
		mask:       NewMaskPass(frame),
		compositor: NewCompositor(material, frame),
	}
}

func (f *Feature) Name() string { return "SingleBloom" }

func (f *Feature) Create() {
	s := f.Settings()
	logger.Log.Info("Bloom feature ready",
		zap.Int("steps", s.StepCount),
		zap.Float32("threshold", s.LuminanceThreshold),
		zap.Bool("opaqueMask", s.IsOpaqueMask))
}

func (f *Feature) Enabled() bool {
	return f.Settings().Enabled
}

func (f *Feature) Settings() Settings {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.settings
}

// SetSettings replaces the settings. They take effect on the next frame.
func (f *Feature) SetSettings(s Settings) {
	s = s.Clamp()
	f.mu.Lock()
	f.settings = s
	f.mu.Unlock()
}

func (f *Feature) FrameData() *FrameData {
	return f.frame
}

func (f *Feature) AddRenderPasses(p *renderer.Pipeline, data *renderer.RenderingData) {
	s := f.Settings()
	f.mask.Configure(s)
	f.compositor.Configure(s)
	p.EnqueuePass(f.mask)
	p.EnqueuePass(f.compositor)
}
