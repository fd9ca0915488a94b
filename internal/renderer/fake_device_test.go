package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeTexture struct {
	label string
	desc  TextureDescriptor
}

func (t *fakeTexture) Label() string                 { return t.label }
func (t *fakeTexture) Descriptor() TextureDescriptor { return t.desc }

// fakeDevice records every call it receives.
type fakeDevice struct {
	calls     []string
	created   int
	destroyed int
	live      map[*fakeTexture]bool
	failBlit  bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{live: make(map[*fakeTexture]bool)}
}

func (d *fakeDevice) CreateTexture(label string, desc TextureDescriptor, filter FilterMode) (Texture, error) {
	d.created++
	t := &fakeTexture{label: label, desc: desc}
	d.live[t] = true
	d.calls = append(d.calls, "create "+label)
	return t, nil
}

func (d *fakeDevice) DestroyTexture(tex Texture) {
	d.destroyed++
	delete(d.live, tex.(*fakeTexture))
	d.calls = append(d.calls, "destroy "+tex.Label())
}

func (d *fakeDevice) SetRenderTargets(colors []Texture, depth Texture) error {
	s := "targets"
	for _, c := range colors {
		s += " " + c.Label()
	}
	if depth != nil {
		s += " depth=" + depth.Label()
	}
	d.calls = append(d.calls, s)
	return nil
}

func (d *fakeDevice) ClearRenderTarget(clearDepth, clearColor bool, color mgl32.Vec4) error {
	d.calls = append(d.calls, fmt.Sprintf("clear %v %v", clearDepth, clearColor))
	return nil
}

func (d *fakeDevice) SetGlobalFloat(name string, value float32) {
	d.calls = append(d.calls, fmt.Sprintf("float %s=%g", name, value))
}

func (d *fakeDevice) SetGlobalTexture(name string, tex Texture) {
	d.calls = append(d.calls, fmt.Sprintf("texture %s=%s", name, tex.Label()))
}

func (d *fakeDevice) Blit(src, dst Texture, mat *Material, pass int) error {
	if d.failBlit {
		return fmt.Errorf("blit failed")
	}
	d.calls = append(d.calls, fmt.Sprintf("blit %s->%s #%d", src.Label(), dst.Label(), pass))
	return nil
}

func (d *fakeDevice) DrawRenderers(renderables []Renderable) error {
	s := "draw"
	for _, r := range renderables {
		s += " " + r.Name()
	}
	d.calls = append(d.calls, s)
	return nil
}

type fakeRenderable struct {
	name  string
	layer uint8
	queue int
	tags  []ShaderTagID
	pos   mgl32.Vec3
}

func (r *fakeRenderable) Name() string              { return r.name }
func (r *fakeRenderable) Layer() uint8              { return r.layer }
func (r *fakeRenderable) RenderQueue() int          { return r.queue }
func (r *fakeRenderable) ShaderTags() []ShaderTagID { return r.tags }
func (r *fakeRenderable) WorldPosition() mgl32.Vec3 { return r.pos }
func (r *fakeRenderable) BoundingSphere() (mgl32.Vec3, float32) {
	return r.pos, 1
}
