package opengl

import (
	"GopherBloom/internal/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is a GL texture object usable as a render target.
type Texture struct {
	ID     uint32
	label  string
	desc   renderer.TextureDescriptor
	filter renderer.FilterMode
}

func (t *Texture) Label() string                          { return t.label }
func (t *Texture) Descriptor() renderer.TextureDescriptor { return t.desc }

func (t *Texture) isDepth() bool {
	return t.desc.Format == renderer.FormatDepth24
}

// formatFor maps a texture format to internal format, pixel format and component type.
func formatFor(f renderer.TextureFormat) (int32, uint32, uint32) {
	switch f {
	case renderer.FormatRGBA16F:
		return gl.RGBA16F, gl.RGBA, gl.HALF_FLOAT
	case renderer.FormatDepth24:
		return gl.DEPTH_COMPONENT24, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT
	default:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE
	}
}

func filterFor(m renderer.FilterMode) int32 {
	if m == renderer.FilterBilinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func newTexture(label string, desc renderer.TextureDescriptor, filter renderer.FilterMode) *Texture {
	t := &Texture{label: label, desc: desc, filter: filter}

	internal, format, kind := formatFor(desc.Format)
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, desc.Width, desc.Height, 0, format, kind, nil)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterFor(filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterFor(filter))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

func (t *Texture) delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
