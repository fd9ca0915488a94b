package software

import (
	"GopherBloom/internal/renderer"
	"image"
	"image/color"
)

// Texture is a CPU image. Color formats are stored as 16-bit unorm RGBA, so values
// above 1.0 saturate. Depth formats carry no pixels.
type Texture struct {
	label  string
	desc   renderer.TextureDescriptor
	filter renderer.FilterMode
	img    *image.RGBA64
}

func newTexture(label string, desc renderer.TextureDescriptor, filter renderer.FilterMode) *Texture {
	t := &Texture{label: label, desc: desc, filter: filter}
	if desc.Format != renderer.FormatDepth24 {
		t.img = image.NewRGBA64(image.Rect(0, 0, int(desc.Width), int(desc.Height)))
	}
	return t
}

// NewTexture creates a host-owned texture, used for scene color targets.
func NewTexture(label string, width, height int32) *Texture {
	return newTexture(label, renderer.TextureDescriptor{
		Width:       width,
		Height:      height,
		Format:      renderer.FormatRGBA16F,
		MSAASamples: 1,
	}, renderer.FilterBilinear)
}

func (t *Texture) Label() string                          { return t.label }
func (t *Texture) Descriptor() renderer.TextureDescriptor { return t.desc }
func (t *Texture) Filter() renderer.FilterMode            { return t.filter }

// Image returns the pixel storage, or nil for depth textures.
func (t *Texture) Image() *image.RGBA64 {
	return t.img
}

// Fill sets every pixel to c.
func (t *Texture) Fill(c color.RGBA64) {
	if t.img == nil {
		return
	}
	for i := 0; i < len(t.img.Pix); i += 8 {
		putRGBA64(t.img.Pix[i:i+8], c)
	}
}

// MaxLuminance returns the brightest pixel luminance in 0..1.
func (t *Texture) MaxLuminance() float32 {
	if t.img == nil {
		return 0
	}
	var brightest float32
	for i := 0; i < len(t.img.Pix); i += 8 {
		if l := renderer.Luminance(rgbAt(t.img.Pix[i : i+8])); l > brightest {
			brightest = l
		}
	}
	return brightest
}

func putRGBA64(p []uint8, c color.RGBA64) {
	p[0], p[1] = uint8(c.R>>8), uint8(c.R)
	p[2], p[3] = uint8(c.G>>8), uint8(c.G)
	p[4], p[5] = uint8(c.B>>8), uint8(c.B)
	p[6], p[7] = uint8(c.A>>8), uint8(c.A)
}
