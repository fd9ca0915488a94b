package renderer

import "github.com/go-gl/mathgl/mgl32"

// LuminanceWeights are the Rec. 709 luma coefficients.
var LuminanceWeights = mgl32.Vec3{0.2126, 0.7152, 0.0722}

// Luminance returns the relative luminance of a linear RGB color.
func Luminance(c mgl32.Vec3) float32 {
	return c.Dot(LuminanceWeights)
}

var (
	ColorBlack = mgl32.Vec4{0, 0, 0, 1}
	ColorClear = mgl32.Vec4{0, 0, 0, 0}
)
