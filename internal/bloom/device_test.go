package bloom

import (
	"GopherBloom/internal/renderer"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type recTexture struct {
	label string
	desc  renderer.TextureDescriptor
}

func (t *recTexture) Label() string                          { return t.label }
func (t *recTexture) Descriptor() renderer.TextureDescriptor { return t.desc }

// recDevice records the calls a Context replays on it.
type recDevice struct {
	calls   []string
	created []renderer.TextureDescriptor
	drawn   [][]string
}

func (d *recDevice) CreateTexture(label string, desc renderer.TextureDescriptor, filter renderer.FilterMode) (renderer.Texture, error) {
	d.created = append(d.created, desc)
	return &recTexture{label: label, desc: desc}, nil
}

func (d *recDevice) DestroyTexture(tex renderer.Texture) {}

func (d *recDevice) SetRenderTargets(colors []renderer.Texture, depth renderer.Texture) error {
	s := "targets"
	for _, c := range colors {
		s += " " + c.Label()
	}
	d.calls = append(d.calls, s)
	return nil
}

func (d *recDevice) ClearRenderTarget(clearDepth, clearColor bool, color mgl32.Vec4) error {
	d.calls = append(d.calls, fmt.Sprintf("clear %v", color))
	return nil
}

func (d *recDevice) SetGlobalFloat(name string, value float32) {
	d.calls = append(d.calls, fmt.Sprintf("float %s=%g", name, value))
}

func (d *recDevice) SetGlobalTexture(name string, tex renderer.Texture) {
	d.calls = append(d.calls, fmt.Sprintf("texture %s=%s", name, tex.Label()))
}

func (d *recDevice) Blit(src, dst renderer.Texture, mat *renderer.Material, pass int) error {
	d.calls = append(d.calls, fmt.Sprintf("blit %s->%s #%d", src.Label(), dst.Label(), pass))
	return nil
}

func (d *recDevice) DrawRenderers(list []renderer.Renderable) error {
	names := make([]string, 0, len(list))
	for _, r := range list {
		names = append(names, r.Name())
	}
	d.drawn = append(d.drawn, names)
	d.calls = append(d.calls, fmt.Sprintf("draw %v", names))
	return nil
}

type testRenderable struct {
	name  string
	layer uint8
	queue int
	tags  []renderer.ShaderTagID
	pos   mgl32.Vec3
}

func (r *testRenderable) Name() string                       { return r.name }
func (r *testRenderable) Layer() uint8                       { return r.layer }
func (r *testRenderable) RenderQueue() int                   { return r.queue }
func (r *testRenderable) ShaderTags() []renderer.ShaderTagID { return r.tags }
func (r *testRenderable) WorldPosition() mgl32.Vec3          { return r.pos }
func (r *testRenderable) BoundingSphere() (mgl32.Vec3, float32) {
	return r.pos, 1
}

func bloomRenderable(name string, layer uint8, queue int, z float32) *testRenderable {
	return &testRenderable{
		name:  name,
		layer: layer,
		queue: queue,
		tags:  []renderer.ShaderTagID{ShaderTag},
		pos:   mgl32.Vec3{0, 0, z},
	}
}

var sceneTexture = &recTexture{label: "scene", desc: renderer.TextureDescriptor{Width: 64, Height: 32}}
var depthTexture = &recTexture{label: "depth", desc: renderer.TextureDescriptor{Width: 64, Height: 32, Format: renderer.FormatDepth24}}

func testCamera(w, h int32) renderer.CameraData {
	return renderer.CameraData{
		Target: renderer.TextureDescriptor{
			Width:           w,
			Height:          h,
			Format:          renderer.FormatRGBA16F,
			DepthBufferBits: 24,
			MSAASamples:     1,
		},
		ColorTarget: renderer.TextureTarget(sceneTexture),
		DepthTarget: renderer.TextureTarget(depthTexture),
		Enabled:     true,
	}
}
