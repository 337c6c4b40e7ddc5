// Package cmd implements the command-line actions for the renderer.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/rciliberto/ray-tracer/log"
	"github.com/rciliberto/ray-tracer/pkg/core"
	"github.com/rciliberto/ray-tracer/pkg/loaders"
	"github.com/rciliberto/ray-tracer/pkg/material"
	"github.com/rciliberto/ray-tracer/pkg/renderer"
	"github.com/rciliberto/ray-tracer/pkg/scene"
)

var logger = log.New("cmd")

// Demo scene camera pose
var (
	demoLookFrom = core.NewVec3(3, 1.5, 2)
	demoLookAt   = core.NewVec3(0, 0, -1)
	demoVUp      = core.NewVec3(0, 1, 0)
)

// RenderFlags lists every configuration knob the render command accepts
func RenderFlags() []cli.Flag {
	defaults := renderer.DefaultOptions()

	return []cli.Flag{
		cli.IntFlag{Name: "width", Value: defaults.Width, Usage: "image width in pixels"},
		cli.Float64Flag{Name: "aspect", Value: defaults.AspectRatio, Usage: "aspect ratio (width/height)"},
		cli.Float64Flag{Name: "fov", Value: defaults.VerticalFov, Usage: "vertical field of view in degrees"},
		cli.Float64Flag{Name: "aperture", Value: defaults.Aperture, Usage: "lens aperture for depth of field"},
		cli.Float64Flag{Name: "focus-dist", Value: 0, Usage: "focus distance (0 = distance to look-at point)"},
		cli.IntFlag{Name: "samples", Value: defaults.SamplesPerPixel, Usage: "samples per pixel"},
		cli.IntFlag{Name: "depth", Value: defaults.MaxDepth, Usage: "maximum ray bounce depth"},
		cli.StringFlag{Name: "obj", Usage: "wavefront obj mesh to add to the scene"},
		cli.StringFlag{Name: "out, o", Value: "render.png", Usage: "output image (.png or .ppm)"},
		cli.Float64Flag{Name: "gamma", Value: 2.0, Usage: "gamma correction applied before encoding"},
		cli.BoolFlag{Name: "no-accel", Usage: "disable mesh bounding-volume tests"},
		cli.BoolFlag{Name: "no-mesh-accel", Usage: "disable per-mesh octree acceleration"},
		cli.BoolFlag{Name: "single-thread", Usage: "render sequentially without the worker pool"},
		cli.IntFlag{Name: "workers", Value: 0, Usage: "worker count (0 = number of CPUs)"},
	}
}

// RenderFrame renders a still frame to an image file
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := optionsFromContext(ctx)
	if opts.FocusDistance <= 0 {
		opts.FocusDistance = demoLookFrom.Subtract(demoLookAt).Length()
	}

	// Validate the output format before spending time rendering
	out := ctx.String("out")
	encode, err := encoderFor(out)
	if err != nil {
		return err
	}

	sc := scene.Default()
	if objPath := ctx.String("obj"); objPath != "" {
		mesh, err := loaders.LoadOBJ(objPath, material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7)), opts.MeshOptions())
		if err != nil {
			return err
		}
		sc.Add(mesh)
		logger.Infof("added mesh %s (%d triangles)", objPath, mesh.TriangleCount())
	}

	camera := renderer.NewCamera(demoLookFrom, demoLookAt, demoVUp, opts)

	logger.Infof("rendering %dx%d, %d samples per pixel", opts.Width, opts.Height(), opts.SamplesPerPixel)
	r := renderer.NewRenderer(sc, camera, opts)
	raster, stats := r.Render()

	raster.GammaCorrect(ctx.Float64("gamma"))

	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := encode(file, raster); err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}

	logger.Infof("wrote %s", out)
	displayRenderStats(stats)

	return nil
}

// optionsFromContext builds the render configuration from the CLI flags
func optionsFromContext(ctx *cli.Context) renderer.Options {
	return renderer.Options{
		Width:            ctx.Int("width"),
		AspectRatio:      ctx.Float64("aspect"),
		VerticalFov:      ctx.Float64("fov"),
		Aperture:         ctx.Float64("aperture"),
		FocusDistance:    ctx.Float64("focus-dist"),
		SamplesPerPixel:  ctx.Int("samples"),
		MaxDepth:         ctx.Int("depth"),
		Accelerate:       !ctx.Bool("no-accel"),
		AccelerateMeshes: !ctx.Bool("no-mesh-accel"),
		SingleThread:     ctx.Bool("single-thread"),
		Workers:          ctx.Int("workers"),
	}
}

// encoderFor maps an output path to a raster encoder by extension
func encoderFor(path string) (func(*os.File, *renderer.Raster) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return func(f *os.File, r *renderer.Raster) error { return loaders.WritePNG(f, r) }, nil
	case ".ppm":
		return func(f *os.File, r *renderer.Raster) error { return loaders.WritePPM(f, r) }, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}
