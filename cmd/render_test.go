package cmd

import (
	"flag"
	"testing"

	"github.com/urfave/cli"
)

func renderContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("render", flag.ContinueOnError)
	for _, f := range RenderFlags() {
		f.Apply(set)
	}
	if err := set.Parse(args); err != nil {
		t.Fatalf("Unexpected flag parse error: %v", err)
	}

	return cli.NewContext(nil, set, nil)
}

func TestEncoderFor(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expectError bool
	}{
		{"png", "render.png", false},
		{"ppm", "render.ppm", false},
		{"uppercase extension", "render.PNG", false},
		{"unsupported", "render.bmp", true},
		{"no extension", "render", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encode, err := encoderFor(tt.path)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q, but got none", tt.path)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for %q: %v", tt.path, err)
				}
				if encode == nil {
					t.Errorf("Expected an encoder for %q, got nil", tt.path)
				}
			}
		})
	}
}

func TestOptionsFromContext(t *testing.T) {
	ctx := renderContext(t,
		"--width", "200",
		"--aspect", "2.0",
		"--samples", "8",
		"--depth", "12",
		"--no-accel",
		"--single-thread",
		"--workers", "3",
	)

	opts := optionsFromContext(ctx)

	if opts.Width != 200 {
		t.Errorf("Expected width 200, got %d", opts.Width)
	}
	if opts.AspectRatio != 2.0 {
		t.Errorf("Expected aspect ratio 2.0, got %f", opts.AspectRatio)
	}
	if opts.SamplesPerPixel != 8 {
		t.Errorf("Expected 8 samples per pixel, got %d", opts.SamplesPerPixel)
	}
	if opts.MaxDepth != 12 {
		t.Errorf("Expected max depth 12, got %d", opts.MaxDepth)
	}
	if opts.Accelerate {
		t.Error("Expected --no-accel to disable bounding-volume tests")
	}
	if !opts.AccelerateMeshes {
		t.Error("Expected octree acceleration to stay enabled by default")
	}
	if !opts.SingleThread {
		t.Error("Expected --single-thread to be set")
	}
	if opts.Workers != 3 {
		t.Errorf("Expected 3 workers, got %d", opts.Workers)
	}
}

func TestOptionsFromContext_Defaults(t *testing.T) {
	ctx := renderContext(t)
	opts := optionsFromContext(ctx)

	if opts.Width != 400 {
		t.Errorf("Expected default width 400, got %d", opts.Width)
	}
	if !opts.Accelerate || !opts.AccelerateMeshes {
		t.Error("Expected acceleration enabled by default")
	}
	// Zero means the command derives it from the camera pose
	if opts.FocusDistance != 0 {
		t.Errorf("Expected unset focus distance, got %f", opts.FocusDistance)
	}
}
