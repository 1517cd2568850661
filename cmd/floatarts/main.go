// Command floatarts opens the free-look cube viewer.
//
// Usage:
//
//	floatarts [-config floatarts.yaml] [-variant quad|cube|lit] [-backend gl|wgpu] [-profile]
//
// Hold the left mouse button to look around, move with W/A/S/D, Space and Left Control,
// hold Left Shift to move faster and press Escape to quit.
package main

import (
	"errors"
	"flag"
	"log"
	"runtime"

	"github.com/Carmen-Shannon/floatarts/engine"
	"github.com/Carmen-Shannon/floatarts/engine/config"
)

func init() {
	// GLFW and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file merged over the variant preset")
	variant := flag.String("variant", "", "demo variant: quad, cube or lit (default from config, else lit)")
	backend := flag.String("backend", "", "renderer backend override: gl or wgpu")
	profile := flag.Bool("profile", false, "log FPS and memory statistics once per second")
	flag.Parse()

	cfg, err := config.Load(*configPath, *variant)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	if *backend != "" {
		cfg.Backend = *backend
		if err := cfg.Validate(); err != nil {
			log.Fatalf("[Main] %v", err)
		}
	}

	e, err := engine.NewEngine(cfg, engine.WithProfiling(cfg.Profiling || *profile))
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	runErr := e.Run()
	if err := errors.Join(runErr, e.Close()); err != nil {
		log.Fatalf("[Main] %v", err)
	}
}
