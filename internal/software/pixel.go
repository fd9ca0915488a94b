package software

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

const unorm16 = 65535.0

func channel(p []uint8) float32 {
	return float32(uint16(p[0])<<8|uint16(p[1])) / unorm16
}

func rgbAt(p []uint8) mgl32.Vec3 {
	return mgl32.Vec3{channel(p[0:2]), channel(p[2:4]), channel(p[4:6])}
}

func toUnorm(v float32) uint16 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 1:
		return 0xffff
	}
	return uint16(v*unorm16 + 0.5)
}

func putRGB(p []uint8, c mgl32.Vec3) {
	r, g, b := toUnorm(c[0]), toUnorm(c[1]), toUnorm(c[2])
	p[0], p[1] = uint8(r>>8), uint8(r)
	p[2], p[3] = uint8(g>>8), uint8(g)
	p[4], p[5] = uint8(b>>8), uint8(b)
}

// ColorFromVec converts a linear 0..1 color to 16-bit unorm.
func ColorFromVec(c mgl32.Vec4) color.RGBA64 {
	return color.RGBA64{R: toUnorm(c[0]), G: toUnorm(c[1]), B: toUnorm(c[2]), A: toUnorm(c[3])}
}
