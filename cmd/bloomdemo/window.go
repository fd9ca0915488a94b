package main

import (
	"GopherBloom/internal/bloom"
	"GopherBloom/internal/engine"
	"GopherBloom/internal/loader"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/urfave/cli"
)

func windowFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 1280,
			Usage: "window width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 720,
			Usage: "window height",
		},
		cli.IntFlag{
			Name:  "grid",
			Value: 24,
			Usage: "number of cubes per row",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 1,
			Usage: "noise seed",
		},
		cli.Float64Flag{
			Name:  "glow",
			Value: 0.65,
			Usage: "noise value above which cubes emit light",
		},
		cli.StringFlag{
			Name:  "model, m",
			Value: "cube",
			Usage: "emitter shape: cube, sphere, tetra or the path of an .obj file",
		},
	}
}

// pulse scales emission between 0.75 and 2.25 so bright cubes cross a threshold of 1.
func pulse(elapsed float64) float32 {
	return float32(1.5 + 0.75*math.Sin(elapsed*2))
}

func openWindow(ctx *cli.Context) error {
	setupLogging(ctx)

	settings, err := loadSettings(ctx, bloom.DefaultSettings())
	if err != nil {
		return err
	}

	gopher := engine.NewGopher(int32(ctx.Int("width")), int32(ctx.Int("height")), settings)
	gopher.Title = "GopherBloom demo"
	gopher.Camera.Position = mgl32.Vec3{0, 4, 12}

	emitter, err := loader.Shape(ctx.String("model"))
	if err != nil {
		return err
	}

	scene, glowing := meshScene(sceneParams{
		Grid:        ctx.Int("grid"),
		Seed:        ctx.Int64("seed"),
		Glow:        ctx.Float64("glow"),
		Transparent: !settings.IsOpaqueMask,
		Emitter:     emitter,
	})
	gopher.Scene = scene

	var elapsed float64
	gopher.SetOnUpdateCallback(func(deltaTime float64) {
		elapsed += deltaTime
		k := pulse(elapsed)
		for _, g := range glowing {
			g.mesh.Emission = g.base.Vec3().Mul(k).Vec4(1)
		}
	})

	return gopher.Render(100, 100)
}
