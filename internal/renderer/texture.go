package renderer

import "fmt"

// TextureFormat is the pixel format of a render texture.
type TextureFormat int

const (
	FormatRGBA8 TextureFormat = iota
	FormatRGBA16F
	FormatDepth24
)

func (f TextureFormat) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	case FormatRGBA16F:
		return "RGBA16F"
	case FormatDepth24:
		return "Depth24"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// BytesPerPixel returns the storage size of one texel.
func (f TextureFormat) BytesPerPixel() int {
	switch f {
	case FormatRGBA16F:
		return 8
	default:
		return 4
	}
}

// FilterMode controls how a texture is sampled.
type FilterMode int

const (
	FilterPoint FilterMode = iota
	FilterBilinear
)

func (m FilterMode) String() string {
	if m == FilterBilinear {
		return "Bilinear"
	}
	return "Point"
}

// TextureDescriptor describes a render texture allocation.
type TextureDescriptor struct {
	Width           int32         `json:"width"`
	Height          int32         `json:"height"`
	Format          TextureFormat `json:"format"`
	MipCount        int32         `json:"mipCount"`
	DepthBufferBits int32         `json:"depthBufferBits"`
	MSAASamples     int32         `json:"msaaSamples"`
}

// Valid reports whether the descriptor can be allocated.
func (d TextureDescriptor) Valid() bool {
	return d.Width >= 1 && d.Height >= 1
}

// SizeBytes is the approximate memory footprint of the color storage.
func (d TextureDescriptor) SizeBytes() uint64 {
	samples := d.MSAASamples
	if samples < 1 {
		samples = 1
	}
	return uint64(d.Width) * uint64(d.Height) * uint64(d.Format.BytesPerPixel()) * uint64(samples)
}

// StripForPostProcess drops mips, depth and multisampling.
func (d TextureDescriptor) StripForPostProcess() TextureDescriptor {
	d.MipCount = 0
	d.DepthBufferBits = 0
	d.MSAASamples = 1
	return d
}

// Scaled returns a copy at (w >> shift, h >> shift), never smaller than 1x1.
func (d TextureDescriptor) Scaled(shift int) TextureDescriptor {
	d.Width = ShiftDimension(d.Width, shift)
	d.Height = ShiftDimension(d.Height, shift)
	return d
}

func (d TextureDescriptor) String() string {
	return fmt.Sprintf("%dx%d %s mips=%d depth=%d msaa=%d",
		d.Width, d.Height, d.Format, d.MipCount, d.DepthBufferBits, d.MSAASamples)
}

// ShiftDimension halves v shift times and clamps the result to 1.
func ShiftDimension(v int32, shift int) int32 {
	if shift < 0 {
		shift = 0
	}
	if shift > 31 {
		return 1
	}
	v >>= uint(shift)
	if v < 1 {
		return 1
	}
	return v
}

// Texture is a backend-owned GPU (or CPU) image.
type Texture interface {
	Label() string
	Descriptor() TextureDescriptor
}
