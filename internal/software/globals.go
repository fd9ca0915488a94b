package software

import "github.com/alitto/pond/v2"

// Globals are the shader globals visible to every kernel, plus the worker pool
// kernels may split their pixel loops over.
type Globals struct {
	floats   map[string]float32
	textures map[string]*Texture
	workers  pond.Pool
}

func newGlobals() *Globals {
	return &Globals{
		floats:   make(map[string]float32),
		textures: make(map[string]*Texture),
	}
}

func (g *Globals) Float(name string) float32 {
	return g.floats[name]
}

func (g *Globals) Texture(name string) (*Texture, bool) {
	t, ok := g.textures[name]
	return t, ok
}
