package renderer

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/ennocramer/lucifer/pkg/camera"
	"github.com/ennocramer/lucifer/pkg/core"
	"github.com/ennocramer/lucifer/pkg/integrator"
	"github.com/ennocramer/lucifer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains the frame rendering configuration
type Config struct {
	Width   int     // Image width in pixels
	Height  int     // Image height in pixels
	Samples int     // Light paths per pixel
	Depth   int     // Maximum path length
	Cutoff  float64 // Minimum path contribution worth following
	Workers int     // Parallel workers (0 = CPU count)
	Seed    int64   // Base seed for the per-tile samplers
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:   256,
		Height:  256,
		Samples: 100,
		Depth:   10,
		Cutoff:  0.005,
		Workers: 0,
		Seed:    42,
	}
}

// Factory creates the pixel renderer for one tile. Each tile gets its own
// renderer, so stateful renderers need no locking. The sampler is seeded
// per tile, which keeps frames reproducible regardless of how tiles are
// scheduled across workers.
type Factory func(sampler core.Sampler) integrator.Renderer

// PathTracerFactory creates path tracers configured from cfg.
func PathTracerFactory(cfg Config) Factory {
	return func(sampler core.Sampler) integrator.Renderer {
		return integrator.NewPathTracer(sampler, cfg.Cutoff, cfg.Depth, cfg.Samples)
	}
}

// Frame renders complete images by fanning tiles out to a pool of workers.
type Frame struct {
	scene   *scene.Scene
	camera  camera.Camera
	factory Factory
	config  Config
	logger  core.Logger
}

// NewFrame creates a frame renderer for the given scene and camera.
func NewFrame(s *scene.Scene, cam camera.Camera, factory Factory, config Config, logger core.Logger) *Frame {
	return &Frame{
		scene:   s,
		camera:  cam,
		factory: factory,
		config:  config,
		logger:  logger,
	}
}

// Render draws the full frame. It blocks until every tile is complete.
func (f *Frame) Render() *Film {
	film := NewFilm(f.config.Width, f.config.Height)
	tiles := newTileGrid(f.config.Width, f.config.Height, tileSize)

	workers := f.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	f.logger.Printf("Rendering %dx%d with %d samples per pixel, %d tiles on %d workers\n",
		f.config.Width, f.config.Height, f.config.Samples, len(tiles), workers)

	start := time.Now()
	tasks := make(chan tile, len(tiles))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				f.renderTile(t, film)
			}
		}()
	}

	for _, t := range tiles {
		tasks <- t
	}
	close(tasks)
	wg.Wait()

	f.logger.Printf("Rendered %d tiles in %v\n", len(tiles), time.Since(start))

	return film
}

// renderTile renders one tile with a fresh pixel renderer. Tiles do not
// overlap, so writing to the shared film needs no locking.
func (f *Frame) renderTile(t tile, film *Film) {
	r := f.factory(core.NewSampler(f.config.Seed + int64(t.id)))
	resolution := camera.NewResolution(f.config.Width, f.config.Height)

	for y := t.bounds.Min.Y; y < t.bounds.Max.Y; y++ {
		for x := t.bounds.Min.X; x < t.bounds.Max.X; x++ {
			film.Set(x, y, r.Render(f.scene, f.camera, resolution, camera.NewTarget(x, y)))
		}
	}
}
