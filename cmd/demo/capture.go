package main

import (
	"fmt"
	"log/slog"

	"sandbox/core"
	"sandbox/editor"
	sbio "sandbox/io"
)

const captureStep = 1.0 / 60

// runCapture steps the sandbox without a window, slowly turning the
// camera, and writes the final frame's world geometry to path.
func runCapture(cfg core.Config, logger *slog.Logger, frames int, path string) error {
	capture := sbio.NewCapture()
	sandbox := editor.New(cfg, capture, logger)
	if err := sandbox.Initialize(); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	for i := 0; i < frames; i++ {
		capture.Reset()
		sandbox.OnMouseMove(4, 0)
		sandbox.Step(captureStep)
	}
	if err := capture.ExportGLB(path); err != nil {
		return err
	}
	logger.Info("frame exported",
		"path", path,
		"frames", frames,
		"draws", len(capture.Draws),
		"triangles", capture.Triangles())
	return nil
}
