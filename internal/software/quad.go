package software

import (
	"GopherBloom/internal/renderer"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

// Drawable is a renderable the software device can rasterize. attachment is the
// index of the bound color target being written.
type Drawable interface {
	renderer.Renderable
	Rasterize(attachment int, dst *image.RGBA64)
}

// Quad is a screen-aligned rectangle. Rect is in normalized viewport coordinates
// (0..1, origin top left). Attachment 0 receives Color, every other attachment Emission.
type Quad struct {
	Label    string
	Rect     [4]float32 // minX, minY, maxX, maxY
	Color    mgl32.Vec4
	Emission mgl32.Vec4
	Depth    float32
	Queue    int
	LayerID  uint8
	Tags     []renderer.ShaderTagID
}

func (q *Quad) Name() string                       { return q.Label }
func (q *Quad) Layer() uint8                       { return q.LayerID }
func (q *Quad) RenderQueue() int                   { return q.Queue }
func (q *Quad) ShaderTags() []renderer.ShaderTagID { return q.Tags }

func (q *Quad) WorldPosition() mgl32.Vec3 {
	return mgl32.Vec3{(q.Rect[0] + q.Rect[2]) / 2, (q.Rect[1] + q.Rect[3]) / 2, -q.Depth}
}

func (q *Quad) BoundingSphere() (mgl32.Vec3, float32) {
	half := mgl32.Vec2{q.Rect[2] - q.Rect[0], q.Rect[3] - q.Rect[1]}.Mul(0.5)
	return q.WorldPosition(), half.Len()
}

// Bounds is the pixel rectangle the quad covers in an image of size.
func (q *Quad) Bounds(size image.Point) image.Rectangle {
	r := image.Rect(
		int(q.Rect[0]*float32(size.X)),
		int(q.Rect[1]*float32(size.Y)),
		int(q.Rect[2]*float32(size.X)+0.5),
		int(q.Rect[3]*float32(size.Y)+0.5),
	)
	return r.Intersect(image.Rectangle{Max: size})
}

func (q *Quad) Rasterize(attachment int, dst *image.RGBA64) {
	if dst == nil {
		return
	}
	c := q.Color
	if attachment > 0 {
		c = q.Emission
	}
	r := q.Bounds(dst.Bounds().Size())
	if r.Empty() {
		return
	}
	xdraw.Draw(dst, r, image.NewUniform(ColorFromVec(c)), image.Point{}, xdraw.Src)
}
