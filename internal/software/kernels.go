package software

import (
	"GopherBloom/internal/bloom"
	"GopherBloom/internal/renderer"
	"image"
	"sort"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

// Kernel writes one full-screen pass into out, which has the destination size.
// out starts zeroed; blending into the destination is done by the device.
type Kernel func(out, src *image.RGBA64, globals *Globals) error

var (
	kernelMu       sync.RWMutex
	kernelRegistry = make(map[string]Kernel)
)

// RegisterKernel makes a kernel available for material passes named name.
func RegisterKernel(name string, kernel Kernel) {
	kernelMu.Lock()
	defer kernelMu.Unlock()
	kernelRegistry[name] = kernel
}

// AvailableKernels returns the registered kernel names, sorted.
func AvailableKernels() []string {
	kernelMu.RLock()
	defer kernelMu.RUnlock()

	names := make([]string, 0, len(kernelRegistry))
	for name := range kernelRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupKernel(name string) (Kernel, bool) {
	kernelMu.RLock()
	defer kernelMu.RUnlock()
	k, ok := kernelRegistry[name]
	return k, ok
}

func init() {
	RegisterKernel(bloom.KernelDownsample, downsampleKernel)
	RegisterKernel(bloom.KernelThresholdDownsample, thresholdDownsampleKernel)
	RegisterKernel(bloom.KernelUpsample, upsampleKernel)
	RegisterKernel(bloom.KernelComposite, compositeKernel)
	RegisterKernel("Copy", compositeKernel)
}

// resample fits src into dst, copying when the sizes already match.
func resample(dst, src *image.RGBA64) {
	if dst.Bounds().Size() == src.Bounds().Size() {
		xdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, xdraw.Src)
		return
	}
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}

func downsampleKernel(out, src *image.RGBA64, globals *Globals) error {
	resample(out, src)
	return nil
}

func thresholdDownsampleKernel(out, src *image.RGBA64, globals *Globals) error {
	resample(out, src)

	threshold := globals.Float(bloom.GlobalLuminanceThreshold)
	forEachBand(globals.workers, out, func(_ int, pix []uint8) {
		for i := 0; i < len(pix); i += 8 {
			p := pix[i : i+8]
			c := rgbAt(p)
			l := renderer.Luminance(c)
			contribution := l - threshold
			if contribution <= 0 {
				putRGB(p, mgl32.Vec3{})
				continue
			}
			if l > 1e-5 {
				contribution /= l
			}
			putRGB(p, c.Mul(contribution))
		}
	})
	return nil
}

func upsampleKernel(out, src *image.RGBA64, globals *Globals) error {
	resample(out, src)

	prev, ok := globals.Texture(bloom.GlobalPrevMip)
	if !ok || prev.Image() == nil {
		return nil
	}
	coarse := image.NewRGBA64(out.Bounds())
	resample(coarse, prev.Image())
	addInto(globals.workers, out, coarse)
	return nil
}

func compositeKernel(out, src *image.RGBA64, globals *Globals) error {
	resample(out, src)
	return nil
}

// addInto adds the color of src to dst, saturating. Alpha is left unchanged.
// Both images must have the same bounds.
func addInto(workers pond.Pool, dst, src *image.RGBA64) {
	forEachBand(workers, dst, func(offset int, pix []uint8) {
		for i := 0; i < len(pix); i += 8 {
			s := src.Pix[offset+i : offset+i+8]
			putRGB(pix[i:i+8], rgbAt(pix[i:i+8]).Add(rgbAt(s)))
		}
	})
}
