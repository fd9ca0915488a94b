package loader

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

func Cube() *Geometry {
	const h = 0.5
	vertices := []mgl32.Vec3{
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
		{-h, -h, -h}, {-h, h, -h}, {h, h, -h}, {h, -h, -h},
	}
	indices := []int32{
		0, 1, 2, 2, 3, 0, // front
		4, 5, 6, 6, 7, 4, // back
		4, 0, 3, 3, 5, 4, // left
		7, 6, 2, 2, 1, 7, // right
		5, 3, 2, 2, 6, 5, // top
		4, 7, 1, 1, 0, 4, // bottom
	}
	return expand("Cube", vertices, indices)
}

// Sphere builds a UV sphere of diameter 1. segments below 3 are raised to 3.
func Sphere(segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	const radius = 0.5
	var vertices []mgl32.Vec3
	for i := 0; i <= segments; i++ {
		lat := float64(i) * math.Pi / float64(segments)
		for j := 0; j <= segments; j++ {
			lon := float64(j) * 2 * math.Pi / float64(segments)
			vertices = append(vertices, mgl32.Vec3{
				radius * float32(math.Sin(lat)*math.Cos(lon)),
				radius * float32(math.Cos(lat)),
				radius * float32(math.Sin(lat)*math.Sin(lon)),
			})
		}
	}

	var indices []int32
	for i := 0; i < segments; i++ {
		for j := 0; j < segments; j++ {
			first := int32(i*(segments+1) + j)
			second := first + int32(segments+1)
			indices = append(indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}
	return expand("Sphere", vertices, indices)
}

func Tetrahedron() *Geometry {
	const size = 1
	h := float32(size * 0.816496)
	vertices := []mgl32.Vec3{
		{0, h / 2, 0},
		{-size / 2.0, -h / 2, size / 2.0},
		{size / 2.0, -h / 2, size / 2.0},
		{0, -h / 2, -size},
	}
	indices := []int32{
		0, 1, 2,
		0, 2, 3,
		0, 3, 1,
		1, 3, 2,
	}
	return expand("Tetrahedron", vertices, indices)
}

// Shape resolves a built-in shape name or an .obj path. The result is fitted
// to the unit box.
func Shape(name string) (*Geometry, error) {
	var g *Geometry
	switch strings.ToLower(name) {
	case "", "cube":
		g = Cube()
	case "sphere":
		g = Sphere(16)
	case "tetrahedron", "tetra":
		g = Tetrahedron()
	default:
		if !strings.EqualFold(filepath.Ext(name), ".obj") {
			return nil, fmt.Errorf("loader: unknown shape %q", name)
		}
		var err error
		if g, err = LoadOBJ(name); err != nil {
			return nil, err
		}
	}
	if err := g.Fit(); err != nil {
		return nil, fmt.Errorf("%s: %w", g.Name, err)
	}
	return g, nil
}
