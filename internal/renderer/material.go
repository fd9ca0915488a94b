package renderer

import "fmt"

// BlendMode is how a pass output is combined with the destination.
type BlendMode int

const (
	BlendReplace BlendMode = iota
	BlendAdditive
)

// ShaderPass is one program of a material. Backends that compile shaders use the
// sources; backends with built-in kernels look the pass up by name.
type ShaderPass struct {
	Name           string
	VertexSource   string
	FragmentSource string
	Blend          BlendMode
}

// Material is a named bundle of shader passes.
type Material struct {
	Name   string
	Passes []ShaderPass
}

func (m *Material) PassCount() int {
	if m == nil {
		return 0
	}
	return len(m.Passes)
}

// Pass returns pass i of the material.
func (m *Material) Pass(i int) (ShaderPass, error) {
	if m == nil {
		return ShaderPass{}, ErrNilMaterial
	}
	if i < 0 || i >= len(m.Passes) {
		return ShaderPass{}, fmt.Errorf("%s pass %d of %d: %w", m.Name, i, len(m.Passes), ErrPassIndex)
	}
	return m.Passes[i], nil
}
