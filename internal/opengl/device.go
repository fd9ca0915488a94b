package opengl

import (
	"GopherBloom/internal/logger"
	"GopherBloom/internal/renderer"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const maxColorAttachments = 4

type fboKey struct {
	colors [maxColorAttachments]uint32
	depth  uint32
}

type programKey struct {
	material *renderer.Material
	pass     int
}

// Device executes renderer commands with OpenGL 4.1 framebuffer objects.
// All calls must happen on the thread that owns the GL context.
type Device struct {
	live     map[*Texture]struct{}
	fbos     map[fboKey]uint32
	programs map[programKey]*Program
	bound    []*Texture

	floats   map[string]float32
	textures map[string]*Texture

	emptyVAO       uint32
	meshProgram    *Program
	viewProjection mgl32.Mat4
}

// NewDevice creates a device on the current GL context. gl.Init must have been called.
func NewDevice() (*Device, error) {
	d := &Device{
		live:           make(map[*Texture]struct{}),
		fbos:           make(map[fboKey]uint32),
		programs:       make(map[programKey]*Program),
		floats:         make(map[string]float32),
		textures:       make(map[string]*Texture),
		viewProjection: mgl32.Ident4(),
	}
	gl.GenVertexArrays(1, &d.emptyVAO)

	p, err := NewProgram(meshVertexShader, meshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	d.meshProgram = p

	logger.Log.Info("OpenGL device initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))
	return d, nil
}

// SetViewProjection sets the camera matrix used by DrawRenderers.
func (d *Device) SetViewProjection(m mgl32.Mat4) {
	d.viewProjection = m
}

func (d *Device) CreateTexture(label string, desc renderer.TextureDescriptor, filter renderer.FilterMode) (renderer.Texture, error) {
	if !desc.Valid() {
		return nil, fmt.Errorf("create %q: %w", label, renderer.ErrZeroSizeTexture)
	}
	t := newTexture(label, desc, filter)
	d.live[t] = struct{}{}
	logger.Log.Debug("GL texture created",
		zap.String("label", label),
		zap.Uint32("id", t.ID),
		zap.Stringer("descriptor", desc))
	return t, nil
}

func (d *Device) DestroyTexture(tex renderer.Texture) {
	t, ok := tex.(*Texture)
	if !ok {
		return
	}
	if _, live := d.live[t]; !live {
		return
	}
	for key, fbo := range d.fbos {
		if key.depth == t.ID || containsID(key.colors, t.ID) {
			gl.DeleteFramebuffers(1, &fbo)
			delete(d.fbos, key)
		}
	}
	delete(d.live, t)
	t.delete()
}

func containsID(ids [maxColorAttachments]uint32, id uint32) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (d *Device) texture(tex renderer.Texture) (*Texture, error) {
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		return nil, fmt.Errorf("%v: %w", tex, ErrForeignTexture)
	}
	return t, nil
}

// framebuffer returns a complete FBO for the attachments, creating it on first use.
func (d *Device) framebuffer(colors []*Texture, depth *Texture) (uint32, error) {
	if len(colors) > maxColorAttachments {
		return 0, ErrTooManyColorAttachment
	}
	var key fboKey
	for i, c := range colors {
		key.colors[i] = c.ID
	}
	if depth != nil {
		key.depth = depth.ID
	}
	if fbo, ok := d.fbos[key]; ok {
		gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
		return fbo, nil
	}

	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)

	buffers := make([]uint32, len(colors))
	for i, c := range colors {
		attachment := uint32(gl.COLOR_ATTACHMENT0 + i)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, gl.TEXTURE_2D, c.ID, 0)
		buffers[i] = attachment
	}
	if depth != nil {
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, depth.ID, 0)
	}
	gl.DrawBuffers(int32(len(buffers)), &buffers[0])

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.DeleteFramebuffers(1, &fbo)
		return 0, fmt.Errorf("status 0x%x: %w", status, ErrIncompleteFramebuffer)
	}
	d.fbos[key] = fbo
	return fbo, nil
}

func (d *Device) SetRenderTargets(colors []renderer.Texture, depth renderer.Texture) error {
	if len(colors) == 0 {
		return renderer.ErrNoColorTarget
	}
	bound := make([]*Texture, 0, len(colors))
	for _, c := range colors {
		t, err := d.texture(c)
		if err != nil {
			return err
		}
		bound = append(bound, t)
	}
	var depthTex *Texture
	if depth != nil {
		t, err := d.texture(depth)
		if err != nil {
			return err
		}
		depthTex = t
	}
	if _, err := d.framebuffer(bound, depthTex); err != nil {
		return err
	}
	gl.Viewport(0, 0, bound[0].desc.Width, bound[0].desc.Height)
	d.bound = bound
	return nil
}

func (d *Device) ClearRenderTarget(clearDepth, clearColor bool, color mgl32.Vec4) error {
	if len(d.bound) == 0 {
		return renderer.ErrNoColorTarget
	}
	var mask uint32
	if clearColor {
		gl.ClearColor(color[0], color[1], color[2], color[3])
		mask |= gl.COLOR_BUFFER_BIT
	}
	if clearDepth {
		gl.DepthMask(true)
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if mask != 0 {
		gl.Clear(mask)
	}
	return nil
}

func (d *Device) SetGlobalFloat(name string, value float32) {
	d.floats[name] = value
}

func (d *Device) SetGlobalTexture(name string, tex renderer.Texture) {
	t, err := d.texture(tex)
	if err != nil {
		logger.Log.Warn("Ignoring global texture", zap.String("name", name), zap.Error(err))
		return
	}
	d.textures[name] = t
}

func (d *Device) program(mat *renderer.Material, pass int) (*Program, renderer.ShaderPass, error) {
	p, err := mat.Pass(pass)
	if err != nil {
		return nil, p, err
	}
	key := programKey{material: mat, pass: pass}
	if prog, ok := d.programs[key]; ok {
		return prog, p, nil
	}
	prog, err := NewProgram(p.VertexSource, p.FragmentSource)
	if err != nil {
		return nil, p, fmt.Errorf("%s/%s: %w", mat.Name, p.Name, err)
	}
	d.programs[key] = prog
	logger.Log.Info("Material pass compiled",
		zap.String("material", mat.Name),
		zap.String("pass", p.Name))
	return prog, p, nil
}

// Blit draws a full-screen triangle into dst with src bound as _MainTex.
func (d *Device) Blit(src, dst renderer.Texture, mat *renderer.Material, pass int) error {
	s, err := d.texture(src)
	if err != nil {
		return err
	}
	t, err := d.texture(dst)
	if err != nil {
		return err
	}
	prog, p, err := d.program(mat, pass)
	if err != nil {
		return err
	}
	if err := d.SetRenderTargets([]renderer.Texture{t}, nil); err != nil {
		return err
	}

	gl.Disable(gl.DEPTH_TEST)
	if p.Blend == renderer.BlendAdditive {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.Disable(gl.BLEND)
	}

	prog.Use()
	u := prog.Uniforms

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.ID)
	u.SetInt("_MainTex", 0)
	w, h := float32(s.desc.Width), float32(s.desc.Height)
	u.SetVec4("_MainTex_TexelSize", mgl32.Vec4{1 / w, 1 / h, w, h})

	unit := int32(1)
	for name, tex := range d.textures {
		if !u.Has(name) {
			continue
		}
		gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
		gl.BindTexture(gl.TEXTURE_2D, tex.ID)
		u.SetInt(name, unit)
		unit++
	}
	for name, v := range d.floats {
		u.SetFloat(name, v)
	}

	gl.BindVertexArray(d.emptyVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	return nil
}

// DrawRenderers draws every Mesh into the bound targets. Other renderables are skipped.
func (d *Device) DrawRenderers(list []renderer.Renderable) error {
	if len(d.bound) == 0 {
		return renderer.ErrNoColorTarget
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Disable(gl.BLEND)

	d.meshProgram.Use()
	d.meshProgram.Uniforms.SetMat4("viewProjection", d.viewProjection)
	for _, r := range list {
		mesh, ok := r.(*Mesh)
		if !ok {
			logger.Log.Debug("Renderable has no GL mesh", zap.String("name", r.Name()))
			continue
		}
		mesh.draw(d.meshProgram.Uniforms)
	}
	gl.Disable(gl.DEPTH_TEST)
	return nil
}

// Present copies tex to the default framebuffer.
func (d *Device) Present(tex renderer.Texture, width, height int32) error {
	t, err := d.texture(tex)
	if err != nil {
		return err
	}
	fbo, err := d.framebuffer([]*Texture{t}, nil)
	if err != nil {
		return err
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(0, 0, t.desc.Width, t.desc.Height, 0, 0, width, height, gl.COLOR_BUFFER_BIT, gl.LINEAR)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	d.bound = nil
	return nil
}

// Close releases every GL object the device created.
func (d *Device) Close() {
	for key, fbo := range d.fbos {
		gl.DeleteFramebuffers(1, &fbo)
		delete(d.fbos, key)
	}
	for key, p := range d.programs {
		p.Delete()
		delete(d.programs, key)
	}
	for t := range d.live {
		t.delete()
		delete(d.live, t)
	}
	if d.meshProgram != nil {
		d.meshProgram.Delete()
	}
	gl.DeleteVertexArrays(1, &d.emptyVAO)
	logger.Log.Info("OpenGL device closed")
}
