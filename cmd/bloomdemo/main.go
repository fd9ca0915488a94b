package main

import (
	"GopherBloom/internal/logger"
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "bloomdemo"
	app.Usage = "render scenes through the bloom pyramid"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a generated scene on the CPU and write it as PNG",
			Description: `
Generate a field of quads from perlin noise, draw the bright ones into the
bloom mask and run the full pyramid on the software device.

The composited frame is written to --out. Use --mask-out to also dump the
scene before bloom for comparison.`,
			Flags:  append(bloomFlags(), renderFlags()...),
			Action: renderFrame,
		},
		{
			Name:   "window",
			Usage:  "open an OpenGL window showing the scene with bloom",
			Flags:  append(bloomFlags(), windowFlags()...),
			Action: openWindow,
		},
		{
			Name:      "settings",
			Usage:     "write a bloom settings preset as JSON",
			ArgsUsage: "settings.json",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "preset",
					Value: "default",
					Usage: "one of default, high, performance",
				},
			},
			Action: writeSettings,
		},
	}

	err := app.Run(os.Args)
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
