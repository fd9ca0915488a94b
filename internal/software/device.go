package software

import (
	"GopherBloom/internal/logger"
	"GopherBloom/internal/renderer"
	"fmt"
	"image"
	"runtime"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
)

// Stats counts the work a Device has done.
type Stats struct {
	TexturesCreated   int
	TexturesDestroyed int
	LiveTextures      int
	Blits             int
	Clears            int
	Draws             int
	LiveBytes         uint64
}

// Device executes renderer commands on CPU images.
// Kernels split large images over a worker pool; the Device itself is not safe for concurrent use.
type Device struct {
	live    map[*Texture]struct{}
	colors  []*Texture
	depth   *Texture
	globals *Globals
	stats   Stats
}

// NewDevice creates a device whose kernels run on up to GOMAXPROCS workers.
func NewDevice() *Device {
	return NewDeviceWithWorkers(runtime.GOMAXPROCS(0))
}

// NewDeviceWithWorkers creates a device with a fixed worker count. One worker keeps
// every kernel on the calling goroutine.
func NewDeviceWithWorkers(workers int) *Device {
	d := &Device{
		live:    make(map[*Texture]struct{}),
		globals: newGlobals(),
	}
	if workers > 1 {
		d.globals.workers = pond.NewPool(workers)
	}
	return d
}

func (d *Device) CreateTexture(label string, desc renderer.TextureDescriptor, filter renderer.FilterMode) (renderer.Texture, error) {
	if !desc.Valid() {
		return nil, fmt.Errorf("create %q: %w", label, renderer.ErrZeroSizeTexture)
	}
	t := newTexture(label, desc, filter)
	d.live[t] = struct{}{}
	d.stats.TexturesCreated++

	logger.Log.Debug("Software texture created",
		zap.String("label", label),
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
	delete(d.live, t)
	t.img = nil
	d.stats.TexturesDestroyed++
}

func (d *Device) texture(tex renderer.Texture) (*Texture, error) {
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		return nil, fmt.Errorf("%v: %w", tex, ErrForeignTexture)
	}
	return t, nil
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
		if len(bound) > 0 && (t.desc.Width != bound[0].desc.Width || t.desc.Height != bound[0].desc.Height) {
			return fmt.Errorf("%s is %dx%d, %s is %dx%d: %w",
				t.label, t.desc.Width, t.desc.Height,
				bound[0].label, bound[0].desc.Width, bound[0].desc.Height, ErrSizeMismatch)
		}
		bound = append(bound, t)
	}

	d.depth = nil
	if depth != nil {
		t, err := d.texture(depth)
		if err != nil {
			return err
		}
		d.depth = t
	}
	d.colors = bound
	return nil
}

// ClearRenderTarget clears every bound color attachment. Depth has no storage here.
func (d *Device) ClearRenderTarget(clearDepth, clearColor bool, color mgl32.Vec4) error {
	if len(d.colors) == 0 {
		return renderer.ErrNoColorTarget
	}
	if !clearColor {
		return nil
	}
	c := ColorFromVec(color)
	for _, t := range d.colors {
		t.Fill(c)
	}
	d.stats.Clears++
	return nil
}

func (d *Device) SetGlobalFloat(name string, value float32) {
	d.globals.floats[name] = value
}

func (d *Device) SetGlobalTexture(name string, tex renderer.Texture) {
	t, err := d.texture(tex)
	if err != nil {
		logger.Log.Warn("Ignoring global texture", zap.String("name", name), zap.Error(err))
		return
	}
	d.globals.textures[name] = t
}

// Blit runs the kernel registered for the material pass and blends its output into dst.
func (d *Device) Blit(src, dst renderer.Texture, mat *renderer.Material, pass int) error {
	s, err := d.texture(src)
	if err != nil {
		return err
	}
	t, err := d.texture(dst)
	if err != nil {
		return err
	}
	p, err := mat.Pass(pass)
	if err != nil {
		return err
	}
	kernel, ok := lookupKernel(p.Name)
	if !ok {
		return fmt.Errorf("%s: %w", p.Name, ErrUnknownKernel)
	}
	if s.img == nil || t.img == nil {
		return fmt.Errorf("blit %s -> %s: %w", s.label, t.label, renderer.ErrNoColorTarget)
	}

	out := image.NewRGBA64(t.img.Bounds())
	if err := kernel(out, s.img, d.globals); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}

	switch p.Blend {
	case renderer.BlendAdditive:
		addInto(d.globals.workers, t.img, out)
	default:
		xdraw.Draw(t.img, t.img.Bounds(), out, image.Point{}, xdraw.Src)
	}

	// Blits leave the destination bound, like a full-screen draw would.
	d.colors = []*Texture{t}
	d.stats.Blits++
	return nil
}

// DrawRenderers rasterizes every Drawable into the bound color attachments.
// Renderables that cannot be drawn on the CPU are skipped.
func (d *Device) DrawRenderers(list []renderer.Renderable) error {
	if len(d.colors) == 0 {
		return renderer.ErrNoColorTarget
	}
	for _, r := range list {
		drawable, ok := r.(Drawable)
		if !ok {
			logger.Log.Debug("Renderable has no software rasterizer", zap.String("name", r.Name()))
			continue
		}
		for i, t := range d.colors {
			drawable.Rasterize(i, t.img)
		}
		d.stats.Draws++
	}
	return nil
}

func (d *Device) GetStats() Stats {
	stats := d.stats
	stats.LiveTextures = len(d.live)
	stats.LiveBytes = 0
	for t := range d.live {
		stats.LiveBytes += t.desc.SizeBytes()
	}
	return stats
}

// Close drops every texture the device still holds.
func (d *Device) Close() {
	for t := range d.live {
		t.img = nil
		delete(d.live, t)
	}
	d.colors = nil
	d.depth = nil
	if d.globals.workers != nil {
		d.globals.workers.StopAndWait()
		d.globals.workers = nil
	}
}
