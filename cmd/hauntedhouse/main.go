package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"haunted-house/app"
	"haunted-house/config"
	"haunted-house/controls"
	"haunted-house/core"
	"haunted-house/gui"
	"haunted-house/haunted"
	"haunted-house/renderer"
	"haunted-house/scene"
	"haunted-house/window"
)

const textureWorkers = 2

func main() {
	fs := pflag.NewFlagSet("hauntedhouse", pflag.ExitOnError)
	flags := config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	flags.Apply(fs, &cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("fatal", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("building scene", "graves", cfg.Scene.GraveCount, "seed", seed)

	loader := scene.NewTextureLoader(textureWorkers)
	world := haunted.Build(haunted.Options{
		GraveCount:  cfg.Scene.GraveCount,
		Rand:        rand.New(rand.NewPCG(seed, seed)),
		DoorTexture: cfg.Scene.DoorTexture,
		Loader:      loader,
		Logger:      logger,
	})

	panel := gui.NewPanel("Lights")
	haunted.BindPanel(panel, world.Lights)

	orbit := controls.NewOrbitControls(world.Camera, controls.WithDamping(true))

	var a *app.App
	win, err := window.New(window.Config{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: true,
		VSync:     cfg.Window.VSync,
	}, window.Handlers{
		OnResize: func(width, height int, dpr float32) {
			a.Resize(width, height, dpr)
		},
		OnKey: func(key core.Key, action core.Action, mods core.ModifierKey) {
			a.HandleKey(key, action, mods)
		},
		OnMouseButton: func(button core.MouseButton, action core.Action, x, y float64) {
			if action == core.Press {
				orbit.PointerDown(button, x, y)
			} else if action == core.Release {
				orbit.PointerUp(button)
			}
		},
		OnCursorPos: orbit.PointerMove,
		OnScroll: func(_, yoff float64) {
			orbit.Wheel(yoff)
		},
	})
	if err != nil {
		loader.Close()
		return err
	}
	defer win.Destroy()

	engine, err := renderer.NewRenderEngine(cfg.Window.Width, cfg.Window.Height, win.GetFramebufferSize, logger)
	if err != nil {
		loader.Close()
		return err
	}

	a = app.New(world.Scene, world.Camera, orbit, engine, win,
		app.WithLogger(logger),
		app.WithPanel(panel),
		app.WithLoader(loader),
	)
	defer a.Close()

	if cfg.Scene.Seed != 0 {
		win.SetTitle(fmt.Sprintf("%s | seed %d", cfg.Window.Title, seed))
	}

	a.Resize(win.Width, win.Height, win.PixelRatio())
	a.Start()

	logger.Info("running", "width", win.Width, "height", win.Height, "pixelRatio", a.Viewport().PixelRatio)
	if err := win.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("shutting down", "frames", a.Frames())
	return nil
}
