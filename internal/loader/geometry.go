package loader

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrEmptyGeometry = errors.New("loader: geometry has no triangles")

// Geometry is an unindexed triangle list, three xyz triplets per triangle.
type Geometry struct {
	Name      string
	Positions []float32
}

func (g *Geometry) Triangles() int {
	return len(g.Positions) / 9
}

// Bounds returns the axis aligned box around every vertex.
func (g *Geometry) Bounds() (lo, hi mgl32.Vec3) {
	if len(g.Positions) < 3 {
		return
	}
	lo = mgl32.Vec3{g.Positions[0], g.Positions[1], g.Positions[2]}
	hi = lo
	for i := 3; i+2 < len(g.Positions); i += 3 {
		for a := 0; a < 3; a++ {
			v := g.Positions[i+a]
			if v < lo[a] {
				lo[a] = v
			}
			if v > hi[a] {
				hi[a] = v
			}
		}
	}
	return
}

// Fit centers the geometry on the origin and scales its longest side to 1, so
// it fits the same unit box as the built-in cube.
func (g *Geometry) Fit() error {
	if g.Triangles() == 0 {
		return ErrEmptyGeometry
	}
	lo, hi := g.Bounds()
	center := lo.Add(hi).Mul(0.5)
	size := hi.Sub(lo)
	longest := size[0]
	if size[1] > longest {
		longest = size[1]
	}
	if size[2] > longest {
		longest = size[2]
	}
	scale := float32(1)
	if longest > 0 {
		scale = 1 / longest
	}
	for i := 0; i+2 < len(g.Positions); i += 3 {
		for a := 0; a < 3; a++ {
			g.Positions[i+a] = (g.Positions[i+a] - center[a]) * scale
		}
	}
	return nil
}

// expand turns an indexed vertex list into a triangle list.
func expand(name string, vertices []mgl32.Vec3, indices []int32) *Geometry {
	g := &Geometry{Name: name, Positions: make([]float32, 0, len(indices)*3)}
	for _, idx := range indices {
		v := vertices[idx]
		g.Positions = append(g.Positions, v[0], v[1], v[2])
	}
	return g
}
