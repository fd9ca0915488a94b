package main

import (
	"GopherBloom/internal/bloom"
	"GopherBloom/internal/logger"
	"errors"
	"fmt"

	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func bloomFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "settings, s",
			Usage: "load bloom settings from a JSON file",
		},
		cli.IntFlag{
			Name:  "steps",
			Usage: "pyramid depth (1..14)",
		},
		cli.Float64Flag{
			Name:  "threshold",
			Value: -1,
			Usage: "luminance threshold (0..1)",
		},
		cli.BoolFlag{
			Name:  "transparent",
			Usage: "feed the mask from the transparent render queue",
		},
		cli.BoolFlag{
			Name:  "no-bloom",
			Usage: "disable the bloom feature",
		},
	}
}

func preset(name string) (bloom.Settings, error) {
	switch name {
	case "", "default":
		return bloom.DefaultSettings(), nil
	case "high":
		return bloom.HighQualitySettings(), nil
	case "performance":
		return bloom.PerformanceSettings(), nil
	default:
		return bloom.Settings{}, fmt.Errorf("unknown preset %q", name)
	}
}

// loadSettings starts from the settings file or the defaults and applies flag overrides.
func loadSettings(ctx *cli.Context, defaults bloom.Settings) (bloom.Settings, error) {
	s := defaults
	if path := ctx.String("settings"); path != "" {
		loaded, err := bloom.LoadSettings(path)
		if err != nil {
			return s, err
		}
		s = loaded
	}

	if ctx.IsSet("steps") {
		s.StepCount = ctx.Int("steps")
	}
	if t := ctx.Float64("threshold"); t >= 0 {
		s.LuminanceThreshold = float32(t)
	}
	if ctx.Bool("transparent") {
		s.IsOpaqueMask = false
	}
	if ctx.Bool("no-bloom") {
		s.Enabled = false
	}

	s = s.Clamp()
	logger.Log.Info("Bloom settings",
		zap.Bool("enabled", s.Enabled),
		zap.Int("steps", s.StepCount),
		zap.Float32("threshold", s.LuminanceThreshold),
		zap.Bool("opaqueMask", s.IsOpaqueMask))
	return s, nil
}

func writeSettings(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing settings file argument")
	}
	s, err := preset(ctx.String("preset"))
	if err != nil {
		return err
	}
	return bloom.SaveSettings(ctx.Args().First(), s)
}
