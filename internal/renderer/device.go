package renderer

import "github.com/go-gl/mathgl/mgl32"

// Device executes resolved commands. Implementations live in the software and opengl packages.
type Device interface {
	CreateTexture(label string, desc TextureDescriptor, filter FilterMode) (Texture, error)
	DestroyTexture(tex Texture)

	SetRenderTargets(colors []Texture, depth Texture) error
	ClearRenderTarget(clearDepth, clearColor bool, color mgl32.Vec4) error

	SetGlobalFloat(name string, value float32)
	SetGlobalTexture(name string, tex Texture)

	// Blit renders src into dst with one pass of mat and leaves dst bound.
	Blit(src, dst Texture, mat *Material, pass int) error

	// DrawRenderers draws already filtered and sorted renderables into the bound targets.
	DrawRenderers(renderables []Renderable) error
}
