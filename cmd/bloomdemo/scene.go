package main

import (
	"GopherBloom/internal/bloom"
	"GopherBloom/internal/engine"
	"GopherBloom/internal/loader"
	"GopherBloom/internal/opengl"
	"GopherBloom/internal/renderer"
	"GopherBloom/internal/software"
	"fmt"

	perlin "github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// sceneParams controls the generated scene.
type sceneParams struct {
	Grid        int
	Seed        int64
	Glow        float64 // noise value above which a cell emits light
	Transparent bool
	// Emitter replaces the cube geometry of glowing cells when set.
	Emitter *loader.Geometry
}

type cell struct {
	x, y  int
	noise float64
}

// cells samples perlin noise once per grid cell, returning values in 0..1.
func (p sceneParams) cells() []cell {
	noise := perlin.NewPerlin(2, 2, 3, p.Seed)
	out := make([]cell, 0, p.Grid*p.Grid)
	for y := 0; y < p.Grid; y++ {
		for x := 0; x < p.Grid; x++ {
			n := noise.Noise2D(float64(x)/float64(p.Grid)*4, float64(y)/float64(p.Grid)*4)
			out = append(out, cell{x: x, y: y, noise: (n + 1) / 2})
		}
	}
	return out
}

func (p sceneParams) queue() int {
	if p.Transparent {
		return 3000
	}
	return 2000
}

// emissionColor tints hot cells from orange to blue-white.
func emissionColor(n float64) mgl32.Vec4 {
	t := float32(n)
	warm := mgl32.Vec3{1, 0.55, 0.2}
	cold := mgl32.Vec3{0.7, 0.85, 1}
	c := warm.Mul(1 - t).Add(cold.Mul(t))
	return c.Vec4(1)
}

// softwareScene lays the grid out as screen-space quads.
func softwareScene(p sceneParams) []renderer.Renderable {
	if p.Grid < 1 {
		p.Grid = 1
	}
	size := 1 / float32(p.Grid)
	pad := size * 0.15

	list := make([]renderer.Renderable, 0, p.Grid*p.Grid)
	for _, c := range p.cells() {
		minX := float32(c.x)*size + pad
		minY := float32(c.y)*size + pad
		shade := float32(c.noise) * 0.3
		q := &software.Quad{
			Label: fmt.Sprintf("quad_%d_%d", c.x, c.y),
			Rect:  [4]float32{minX, minY, minX + size - 2*pad, minY + size - 2*pad},
			Color: mgl32.Vec4{shade, shade, shade * 1.2, 1},
			Queue: p.queue(),
			Tags:  []renderer.ShaderTagID{engine.ForwardTag},
		}
		if c.noise > p.Glow {
			q.Emission = emissionColor(c.noise)
			q.Color = q.Emission
			q.Tags = append(q.Tags, bloom.ShaderTag)
		}
		list = append(list, q)
	}
	return list
}

// glowingMesh remembers the emission a mesh was generated with.
type glowingMesh struct {
	mesh *opengl.Mesh
	base mgl32.Vec4
}

// meshScene builds a cube field whose heights follow the noise. The emissive
// cubes are returned separately so they can be animated.
func meshScene(p sceneParams) ([]renderer.Renderable, []glowingMesh) {
	if p.Grid < 1 {
		p.Grid = 1
	}
	half := float32(p.Grid) / 2

	list := make([]renderer.Renderable, 0, p.Grid*p.Grid)
	var glowing []glowingMesh
	for _, c := range p.cells() {
		pos := mgl32.Vec3{float32(c.x) - half, float32(c.noise)*3 - 4, -float32(c.y) - 2}
		glow := c.noise > p.Glow

		m := opengl.NewCubeMesh(fmt.Sprintf("cube_%d_%d", c.x, c.y), pos, 0.8)
		if glow && p.Emitter != nil {
			m = opengl.NewMesh(fmt.Sprintf("%s_%d_%d", p.Emitter.Name, c.x, c.y), p.Emitter.Positions, pos, 0.8)
		}
		m.Queue = p.queue()
		m.Tags = []renderer.ShaderTagID{engine.ForwardTag}
		if glow {
			m.Emission = emissionColor(c.noise)
			m.Tags = append(m.Tags, bloom.ShaderTag)
			glowing = append(glowing, glowingMesh{mesh: m, base: m.Emission})
		}
		list = append(list, m)
	}
	return list, glowing
}
