package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"sandbox/core"
	"sandbox/editor"
	"sandbox/opengl"
	"sandbox/platform"
)

var skyColor = [3]float32{0.52, 0.66, 0.85}

func main() {
	configPath := flag.String("config", "sandbox.toml", "TOML configuration file")
	logLevel := flag.String("log", "", "log level override (debug, info, warn, error)")
	captureFrames := flag.Int("capture", 0, "run headless for N frames and export the last one")
	capturePath := flag.String("out", "frame.glb", "output path for -capture")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sandbox: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	logger := core.NewLogger(cfg.Log.Level, os.Stderr)
	slog.SetDefault(logger)

	if *captureFrames > 0 {
		err = runCapture(cfg, logger, *captureFrames, *capturePath)
	} else {
		err = run(cfg, logger)
	}
	if err != nil {
		logger.Error("sandbox stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg core.Config, logger *slog.Logger) error {
	window, err := platform.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	gl, err := opengl.NewRenderer(cfg.Batch.IndexCapacity, cfg.Batch.VertexCapacity, logger)
	if err != nil {
		return err
	}
	defer gl.Destroy()

	sandbox := editor.New(cfg, gl, logger)
	if err := sandbox.Initialize(); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	h := &host{Sandbox: sandbox, window: window, gl: gl}
	window.SetHandler(h)
	window.CaptureCursor(true)
	h.OnResize(window.GetFramebufferSize())

	last := window.Time()
	fpsStart, fpsFrames := last, 0
	for !window.ShouldClose() {
		window.PollEvents()
		now := window.Time()
		dt := float32(now - last)
		last = now

		gl.BeginFrame(skyColor[0], skyColor[1], skyColor[2])
		sandbox.Step(dt)
		window.SwapBuffers()

		fpsFrames++
		if now-fpsStart >= 1 {
			fps := float64(fpsFrames) / (now - fpsStart)
			window.SetTitle(fmt.Sprintf("%s | %.0f fps | %d draws", cfg.Window.Title, fps, sandbox.Batcher.Generation()))
			logger.Debug("frame stats",
				"fps", fps,
				"objects", sandbox.World.Existing(),
				"position", sandbox.Camera.Position)
			fpsStart, fpsFrames = now, 0
		}
	}
	logger.Info("window closed", "frames", sandbox.Frames())
	return nil
}
