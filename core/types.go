package core

import (
	"sandbox/math"
)

// Vertex is the packed 28-byte layout the host uploads as-is. Value is a
// flat brightness scalar, not an RGB color.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Value    float32
}

// Renderer is the host's drawing capability. Render is the core's only
// rendering side effect; the slices are only valid for the duration of the call.
type Renderer interface {
	Render(indices []uint16, vertices []Vertex, mvp math.Mat4)
	ToggleDepthTest(enabled bool)
}

// EventHandler receives host input once per occurrence.
type EventHandler interface {
	OnKey(down bool, code string)
	OnResize(width, height int)
	OnMouseMove(dx, dy float32)
	OnMouseButton(down bool, button int)
}
