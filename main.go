package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/rciliberto/ray-tracer/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = "ray-tracer"
	app.Usage = "render scenes using path tracing"
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
			Usage: "render a still frame",
			Description: `
Render the demo scene (optionally extended with a wavefront obj mesh) into
a PNG or PPM image using stochastic path tracing.`,
			Flags:  cmd.RenderFlags(),
			Action: cmd.RenderFrame,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
