package main

import (
	"sandbox/editor"
	"sandbox/opengl"
	"sandbox/platform"
)

// host forwards window events to the sandbox, keeping the ones only the
// desktop shell cares about: Escape closes the window and resizes also
// move the GL viewport.
type host struct {
	*editor.Sandbox
	window *platform.Window
	gl     *opengl.Renderer
}

func (h *host) OnKey(down bool, code string) {
	if code == "Escape" {
		if down {
			h.window.SetShouldClose(true)
		}
		return
	}
	h.Sandbox.OnKey(down, code)
}

func (h *host) OnResize(width, height int) {
	h.gl.SetViewport(width, height)
	h.Sandbox.OnResize(width, height)
}
