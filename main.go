package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/ennocramer/lucifer/pkg/camera"
	"github.com/ennocramer/lucifer/pkg/core"
	"github.com/ennocramer/lucifer/pkg/integrator"
	"github.com/ennocramer/lucifer/pkg/renderer"
	"github.com/ennocramer/lucifer/pkg/scene"
)

// preset bundles a scene with its camera and the lamp the direct-lighting
// renderer uses in place of the scene's emissive geometry.
type preset struct {
	scene  *scene.Scene
	camera camera.Camera
	light  integrator.Light
}

func selectScene(name string) (preset, error) {
	switch name {
	case "default":
		s, cam := scene.NewDefaultScene()
		return preset{
			scene:  s,
			camera: cam,
			light:  integrator.NewLight(core.NewVec3(3, 4, 2), core.RadianceGray(20), 1.5),
		}, nil
	case "cornell":
		s, cam := scene.NewCornellScene()
		return preset{
			scene:  s,
			camera: cam,
			light:  integrator.NewLight(core.NewVec3(0, 1.99, 0), core.RadianceGray(15), 0.4),
		}, nil
	}

	return preset{}, fmt.Errorf("unknown scene %q", name)
}

func selectFactory(name string, config renderer.Config, light integrator.Light) (renderer.Factory, error) {
	switch name {
	case "path":
		return renderer.PathTracerFactory(config), nil
	case "ray":
		return func(core.Sampler) integrator.Renderer {
			return integrator.NewRayTracer(light)
		}, nil
	case "debug":
		return func(core.Sampler) integrator.Renderer {
			return integrator.NewDebugRenderer()
		}, nil
	}

	return nil, fmt.Errorf("unknown renderer %q", name)
}

func selectTonemap(name string, gamma float64) (camera.Tonemap, error) {
	switch name {
	case "linear":
		return camera.Linear(), nil
	case "gamma":
		return camera.Gamma(gamma), nil
	case "reinhard":
		return camera.Reinhard(gamma), nil
	case "filmic":
		return camera.Filmic(), nil
	}

	return camera.Tonemap{}, fmt.Errorf("unknown tonemap %q", name)
}

func main() {
	config := renderer.DefaultConfig()

	sceneName := flag.String("scene", "default", "Scene to render: 'default' or 'cornell'")
	rendererName := flag.String("renderer", "path", "Renderer: 'path', 'ray', or 'debug'")
	tonemapName := flag.String("tonemap", "gamma", "Tonemap: 'linear', 'gamma', 'reinhard', or 'filmic'")
	gamma := flag.Float64("gamma", 2.2, "Gamma for the 'gamma' and 'reinhard' tonemaps")
	exposure := flag.Float64("exposure", 1, "Exposure multiplier applied before tonemapping")
	output := flag.String("o", "lucifer.png", "Output file name")
	flag.IntVar(&config.Width, "width", config.Width, "Image width in pixels")
	flag.IntVar(&config.Height, "height", config.Height, "Image height in pixels")
	flag.IntVar(&config.Samples, "samples", config.Samples, "Light paths per pixel")
	flag.IntVar(&config.Depth, "depth", config.Depth, "Maximum path length")
	flag.Float64Var(&config.Cutoff, "cutoff", config.Cutoff, "Minimum path contribution worth following")
	flag.IntVar(&config.Workers, "workers", config.Workers, "Parallel workers (0 = CPU count)")
	flag.Int64Var(&config.Seed, "seed", config.Seed, "Base random seed")
	flag.Parse()

	logger := renderer.NewDefaultLogger()

	chosen, err := selectScene(*sceneName)
	if err != nil {
		logger.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	factory, err := selectFactory(*rendererName, config, chosen.light)
	if err != nil {
		logger.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	tonemap, err := selectTonemap(*tonemapName, *gamma)
	if err != nil {
		logger.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	frame := renderer.NewFrame(chosen.scene, chosen.camera, factory, config, logger)
	film := frame.Render()
	img := film.Image(tonemap, *exposure)

	file, err := os.Create(*output)
	if err != nil {
		logger.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		logger.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Render saved as %s\n", *output)
}
