package editor

import (
	"sandbox/collision"
	"sandbox/scene"
)

// Selection holds the per-frame picking results: the object under the
// crosshair and the ground-layer object nearest the player.
type Selection struct {
	Facing    collision.Hit
	HasFacing bool

	Focus    int
	HasFocus bool
}

// Update re-picks against the world from the camera's current pose.
func (s *Selection) Update(w *scene.World, cam *scene.Camera) {
	s.Facing, s.HasFacing = collision.PickFacingObject(w, cam.Ray())
	s.Focus, s.HasFocus = collision.FindFocusObject(w, cam.Position)
}

func (s *Selection) Clear() {
	*s = Selection{Facing: collision.Hit{Index: -1}, Focus: -1}
}

// IsFacing reports whether slot i is the object under the crosshair.
func (s *Selection) IsFacing(i int) bool {
	return s.HasFacing && s.Facing.Index == i
}
