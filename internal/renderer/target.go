package renderer

// RenderTarget identifies either a named frame-scoped temporary or a concrete texture.
type RenderTarget struct {
	name    string
	texture Texture
}

// TemporaryTarget refers to the temporary texture acquired under name.
func TemporaryTarget(name string) RenderTarget {
	return RenderTarget{name: name}
}

// TextureTarget refers to a texture owned by the host.
func TextureTarget(tex Texture) RenderTarget {
	return RenderTarget{texture: tex}
}

// None is the empty target, used for "no depth attachment".
var None = RenderTarget{}

func (t RenderTarget) IsTemporary() bool { return t.name != "" }

func (t RenderTarget) IsNone() bool { return t.name == "" && t.texture == nil }

func (t RenderTarget) Name() string { return t.name }

func (t RenderTarget) Texture() Texture { return t.texture }

func (t RenderTarget) String() string {
	switch {
	case t.name != "":
		return t.name
	case t.texture != nil:
		return t.texture.Label()
	default:
		return "<none>"
	}
}
