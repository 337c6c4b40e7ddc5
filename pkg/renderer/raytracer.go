package renderer

import (
	"math"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rciliberto/ray-tracer/log"
	"github.com/rciliberto/ray-tracer/pkg/core"
	"github.com/rciliberto/ray-tracer/pkg/scene"
)

var logger = log.New("renderer")

// Renderer produces a raster from a scene and a camera by path tracing.
// Each pixel's full sample-and-integrate computation is one independent
// task; the scene and camera are shared read-only.
type Renderer struct {
	scene  *scene.Scene
	camera *Camera
	opts   Options

	raysTraced atomic.Int64
	seed       atomic.Int64
}

// NewRenderer creates a renderer for the given scene and camera
func NewRenderer(s *scene.Scene, camera *Camera, opts Options) *Renderer {
	r := &Renderer{
		scene:  s,
		camera: camera,
		opts:   opts,
	}
	r.seed.Store(time.Now().UnixNano())
	return r
}

// Render computes the full raster, in parallel across a worker pool unless
// the options request the sequential path. Both paths perform the identical
// per-pixel computation.
func (r *Renderer) Render() (*Raster, RenderStats) {
	start := time.Now()
	raster := NewRaster(r.opts.Width, r.opts.Height())

	if r.opts.SingleThread {
		r.renderSequential(raster)
	} else {
		r.renderParallel(raster)
	}

	stats := RenderStats{
		Width:           raster.Width,
		Height:          raster.Height,
		SamplesPerPixel: r.opts.SamplesPerPixel,
		TotalSamples:    int64(raster.Width) * int64(raster.Height) * int64(r.opts.SamplesPerPixel),
		RaysTraced:      r.raysTraced.Load(),
		Workers:         r.workerCount(),
		Duration:        time.Since(start),
	}

	return raster, stats
}

func (r *Renderer) workerCount() int {
	if r.opts.SingleThread {
		return 1
	}
	if r.opts.Workers > 0 {
		return r.opts.Workers
	}
	return runtime.NumCPU()
}

// renderParallel schedules one task per pixel onto a worker pool and
// blocks until all of them complete
func (r *Renderer) renderParallel(raster *Raster) {
	pool := NewWorkerPool(r.opts.Workers, raster.Width*raster.Height)

	done := make(chan struct{})
	go r.logProgress(pool, done)

	for y := 0; y < raster.Height; y++ {
		for x := 0; x < raster.Width; x++ {
			x, y := x, y
			random := rand.New(rand.NewSource(r.seed.Add(1)))
			pool.Submit(func() {
				raster.Set(x, y, r.renderPixel(x, y, raster, random))
			})
		}
	}

	pool.Wait()
	close(done)
	pool.Stop()
}

// renderSequential performs the identical per-pixel computation without
// task submission, for deterministic sequential execution and profiling
func (r *Renderer) renderSequential(raster *Raster) {
	random := rand.New(rand.NewSource(r.seed.Add(1)))

	for y := 0; y < raster.Height; y++ {
		for x := 0; x < raster.Width; x++ {
			raster.Set(x, y, r.renderPixel(x, y, raster, random))
		}
	}
}

// logProgress periodically reports pool progress until the render is done
func (r *Renderer) logProgress(pool *WorkerPool, done <-chan struct{}) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			logger.Infof("render progress: %.1f%%", 100*pool.Progress())
		}
	}
}

// renderPixel averages SamplesPerPixel independent estimates. Each sample
// jitters the pixel coordinates by a uniform sub-pixel offset before
// generating the camera ray; this is the antialiasing mechanism.
func (r *Renderer) renderPixel(x, y int, raster *Raster, random *rand.Rand) core.Vec3 {
	var color core.Vec3

	for sample := 0; sample < r.opts.SamplesPerPixel; sample++ {
		// A one-pixel dimension has no neighbor to jitter toward
		s := (float64(x) + random.Float64()) / float64(max(raster.Width-1, 1))
		t := (float64(y) + random.Float64()) / float64(max(raster.Height-1, 1))

		ray := r.camera.Ray(s, t, random)
		color = color.Add(r.RayColor(ray, random))
	}

	return color.Divide(float64(r.opts.SamplesPerPixel))
}

// RayColor traces a single ray through the scene, bounce by bounce. The
// accumulated attenuation starts at opaque white; a miss multiplies it by
// the environment color and terminates, absorption yields black, and
// exhausting the bounce limit also yields black (energy assumed fully
// absorbed).
func (r *Renderer) RayColor(ray core.Ray, random *rand.Rand) core.Vec3 {
	attenuation := core.NewVec3(1, 1, 1)

	for depth := 0; depth < r.opts.MaxDepth; depth++ {
		r.raysTraced.Add(1)

		hit, ok := r.scene.Hit(ray, 0.001, math.Inf(1))
		if !ok {
			return attenuation.MultiplyVec(r.scene.Environment.Color(ray.Direction))
		}

		scatter, scattered := hit.Material.Scatter(ray, *hit, random)
		if !scattered {
			return core.Vec3{}
		}

		attenuation = attenuation.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Vec3{}
}
