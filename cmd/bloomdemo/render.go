package main

import (
	"GopherBloom/internal/bloom"
	"GopherBloom/internal/engine"
	"GopherBloom/internal/logger"
	"GopherBloom/internal/renderer"
	"GopherBloom/internal/software"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func renderFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 512,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 512,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "grid",
			Value: 12,
			Usage: "number of quads per row",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 1,
			Usage: "noise seed",
		},
		cli.Float64Flag{
			Name:  "glow",
			Value: 0.6,
			Usage: "noise value above which quads emit light",
		},
		cli.IntFlag{
			Name:  "frames",
			Value: 1,
			Usage: "number of frames to render; the last one is written",
		},
		cli.StringFlag{
			Name:  "out, o",
			Value: "frame.png",
			Usage: "image filename for the rendered frame",
		},
		cli.StringFlag{
			Name:  "before",
			Usage: "also write the frame rendered without bloom",
		},
	}
}

// The software device stores unorm colors, so the CPU default keeps the threshold below white.
const softwareThreshold = 0.5

func renderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	defaults := bloom.DefaultSettings()
	defaults.LuminanceThreshold = softwareThreshold
	settings, err := loadSettings(ctx, defaults)
	if err != nil {
		return err
	}

	width, height := int32(ctx.Int("width")), int32(ctx.Int("height"))
	if width < 1 || height < 1 {
		return fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	scene := softwareScene(sceneParams{
		Grid:        ctx.Int("grid"),
		Seed:        ctx.Int64("seed"),
		Glow:        ctx.Float64("glow"),
		Transparent: !settings.IsOpaqueMask,
	})

	if path := ctx.String("before"); path != "" {
		off := settings
		off.Enabled = false
		if _, _, err := renderSoftware(off, width, height, scene, 1, path); err != nil {
			return err
		}
	}

	stats, pool, err := renderSoftware(settings, width, height, scene, ctx.Int("frames"), ctx.String("out"))
	if err != nil {
		return err
	}
	displayStats(stats, pool)
	return nil
}

func renderSoftware(settings bloom.Settings, width, height int32, scene []renderer.Renderable, frames int, out string) (software.Stats, renderer.PoolStats, error) {
	device := software.NewDevice()
	defer device.Close()

	pipeline := renderer.NewPipeline(renderer.NewContext(device))
	pipeline.AddFeature(engine.NewForwardFeature(mgl32.Vec4{0.015, 0.015, 0.03, 1}))
	pipeline.AddFeature(bloom.NewFeature(settings, bloom.NewMaterial()))

	target := software.NewTexture("SceneColor", width, height)
	camera := renderer.CameraData{
		Target:      target.Descriptor(),
		ColorTarget: renderer.TextureTarget(target),
		Enabled:     true,
	}

	if frames < 1 {
		frames = 1
	}
	start := time.Now()
	for i := 0; i < frames; i++ {
		if err := pipeline.RenderFrame(camera, scene); err != nil {
			return software.Stats{}, renderer.PoolStats{}, fmt.Errorf("frame %d: %w", i, err)
		}
	}
	logger.Log.Info("Frames rendered",
		zap.Int("frames", frames),
		zap.Duration("elapsed", time.Since(start)))

	if err := software.SavePNG(out, target); err != nil {
		return software.Stats{}, renderer.PoolStats{}, err
	}
	logger.Log.Info("Frame written", zap.String("path", out))
	return device.GetStats(), pipeline.Context().Pool().GetStats(), nil
}
