package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/leterax/go-meshview/internal/config"
	"github.com/leterax/go-meshview/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file (defaults are used when empty)")
	var overrides config.Overrides
	overrides.Bind(flag.CommandLine)
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}
	if err := overrides.Apply(flag.CommandLine, &cfg); err != nil {
		log.Error("invalid command line", "error", err)
		os.Exit(1)
	}

	renderer, err := render.NewRenderer(cfg, log)
	if err != nil {
		log.Error("failed to start viewer", "error", err)
		os.Exit(1)
	}
	log.Info("viewer running", "model", cfg.Model, "controls", "left drag rotate, right drag move, wheel zoom, R reset, Esc quit")

	renderer.Run()
}
