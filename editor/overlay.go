package editor

import (
	"sandbox/math"
	"sandbox/scene"
)

// Overlay layout in orthographic units: the view spans [-1, 1] vertically
// and [-aspect, aspect] horizontally.
const (
	crosshairLength    = 0.04
	crosshairThickness = 0.004
	hotbarY            = -0.85
	hotbarSpacing      = 0.16
	hotbarIconSize     = 0.08

	valueSelected = 1.0
	valueHeld     = 0.55
	valueEmpty    = 0.15
)

var hotbarIconRotation = math.NewVec3(0.5, 0.6, 0)

// OverlayProjection maps overlay space for the current window aspect.
func (s *Sandbox) OverlayProjection() math.Mat4 {
	aspect := s.Camera.Aspect
	return math.Mat4Orthographic(-aspect, aspect, -1, 1, -1, 1)
}

// drawOverlay draws the crosshair and hotbar over the world with depth
// testing off.
func (s *Sandbox) drawOverlay() {
	s.Batcher.SetDepthTest(false)
	s.Batcher.SetViewProjection(s.OverlayProjection())

	for _, scale := range []math.Vec3{
		{X: crosshairLength, Y: crosshairThickness, Z: crosshairThickness},
		{X: crosshairThickness, Y: crosshairLength, Z: crosshairThickness},
	} {
		s.instance(scene.ShapeCube, math.Mat4Scale(scale), valueSelected)
	}

	slots := s.Inventory.Slots()
	first := -hotbarSpacing * float32(len(slots)-1) / 2
	for i, item := range slots {
		shape, ok := item.PlacedShape()
		if !ok {
			continue
		}
		value := float32(valueHeld)
		switch {
		case i == s.Inventory.SelectedSlot():
			value = valueSelected
		case s.Inventory.Count(item) == 0:
			value = valueEmpty
		}
		pos := math.NewVec3(first+hotbarSpacing*float32(i), hotbarY, 0)
		size := math.NewVec3(hotbarIconSize, hotbarIconSize, hotbarIconSize)
		s.instance(shape, math.Mat4TRS(pos, hotbarIconRotation, size), value)
	}
}
