package bloom

import (
	"GopherBloom/internal/renderer"
	"fmt"
)

// Level is one tier of the bloom pyramid.
type Level struct {
	Index      int
	Name       string
	Descriptor renderer.TextureDescriptor
}

func (l Level) Target() renderer.RenderTarget {
	return renderer.TemporaryTarget(l.Name)
}

// Pyramid is the per-frame plan of downsample and upsample levels.
//
// Down[i] is (w >> (i+1), h >> (i+1)) clamped to 1x1. Up[j] has the size of
// Down[N-2-j], so the upsample chain walks back towards full resolution.
type Pyramid struct {
	Down []Level
	Up   []Level
}

func downName(i int) string { return fmt.Sprintf("BloomDown%d", i) }
func upName(i int) string   { return fmt.Sprintf("BloomUp%d", i) }

// NewPyramid plans n downsample levels and n-1 upsample levels for base.
// n below 1 is treated as 1.
func NewPyramid(base renderer.TextureDescriptor, n int) Pyramid {
	if n < MinStepCount {
		n = MinStepCount
	}
	base = base.StripForPostProcess()

	p := Pyramid{
		Down: make([]Level, n),
		Up:   make([]Level, n-1),
	}
	for i := 0; i < n; i++ {
		p.Down[i] = Level{Index: i, Name: downName(i), Descriptor: base.Scaled(i + 1)}
	}
	for j := 0; j < n-1; j++ {
		p.Up[j] = Level{Index: j, Name: upName(j), Descriptor: p.Down[n-2-j].Descriptor}
	}
	return p
}

func (p Pyramid) Steps() int {
	return len(p.Down)
}

// Levels returns every level in request order: downsample chain then upsample chain.
func (p Pyramid) Levels() []Level {
	out := make([]Level, 0, len(p.Down)+len(p.Up))
	out = append(out, p.Down...)
	return append(out, p.Up...)
}

// PrevMip is the coarser input combined into Up[i].
func (p Pyramid) PrevMip(i int) Level {
	if i == 0 {
		return p.Down[len(p.Down)-1]
	}
	return p.Up[i-1]
}

// UpSource is the finer downsample level Up[i] is built from.
func (p Pyramid) UpSource(i int) Level {
	return p.Down[len(p.Down)-2-i]
}

// Result is the level composited onto the scene. With a single step there is no
// upsample chain and the thresholded level is used directly.
func (p Pyramid) Result() Level {
	if len(p.Up) == 0 {
		return p.Down[0]
	}
	return p.Up[len(p.Up)-1]
}

// Layout plans the pyramid for a width x height target.
func Layout(width, height int32, n int) Pyramid {
	return NewPyramid(renderer.TextureDescriptor{
		Width:       width,
		Height:      height,
		Format:      renderer.FormatRGBA16F,
		MSAASamples: 1,
	}, n)
}

// Step is one blit of the pyramid schedule. PrevMip is None for every pass
// except the upsample chain.
type Step struct {
	Pass    int
	Source  renderer.RenderTarget
	Dest    renderer.RenderTarget
	PrevMip renderer.RenderTarget
}

func (s Step) String() string {
	if s.PrevMip.IsNone() {
		return fmt.Sprintf("%s -> %s #%d", s.Source, s.Dest, s.Pass)
	}
	return fmt.Sprintf("%s + %s -> %s #%d", s.Source, s.PrevMip, s.Dest, s.Pass)
}

// Schedule returns the blits that read mask and composite onto scene, in order.
func (p Pyramid) Schedule(mask, scene renderer.RenderTarget) []Step {
	n := len(p.Down)
	steps := make([]Step, 0, 2*n)

	steps = append(steps, Step{
		Pass:   PassThresholdDownsample,
		Source: mask,
		Dest:   p.Down[0].Target(),
	})
	for i := 1; i < n; i++ {
		steps = append(steps, Step{
			Pass:   PassDownsample,
			Source: p.Down[i-1].Target(),
			Dest:   p.Down[i].Target(),
		})
	}

	if n == 1 {
		return append(steps, Step{
			Pass:   PassComposite,
			Source: p.Down[0].Target(),
			Dest:   scene,
		})
	}

	for i := range p.Up {
		steps = append(steps, Step{
			Pass:    PassUpsample,
			Source:  p.UpSource(i).Target(),
			Dest:    p.Up[i].Target(),
			PrevMip: p.PrevMip(i).Target(),
		})
	}
	return append(steps, Step{
		Pass:   PassComposite,
		Source: p.Result().Target(),
		Dest:   scene,
	})
}
