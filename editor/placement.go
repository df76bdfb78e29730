package editor

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"sandbox/collision"
	"sandbox/math"
	"sandbox/scene"
)

// PlaceReach is how far ahead of the eye a free placement lands.
const PlaceReach = 2.0

var ErrOccluded = errors.New("placement target is occupied")

// PlacementTarget decides where a new object of the given shape goes.
// Against a facing object it takes the neighbouring cell on the struck
// face and inherits that object's rotation and scale. Otherwise it snaps
// a point ahead of the eye to the focus object's unit lattice in X and Z,
// or to the world lattice when nothing is in focus. Free placements land
// on the focus object's layer, one layer above it for unbreakable terrain.
func PlacementTarget(w *scene.World, cam *scene.Camera, sel Selection, shape scene.Shape) scene.Object {
	obj := scene.Object{Shape: shape, Scale: math.Vec3One}

	if sel.HasFacing {
		if o := w.At(sel.Facing.Index); o != nil {
			tb := collision.MakeTransformBox(o)
			local := tb.Transform.MulPoint(sel.Facing.Point.Sub(o.Position))
			offset := math.Mat4Rotation(o.Rotation).MulDir(dominantAxis(local).MulVec(o.Scale))
			obj.Position = o.Position.Add(offset)
			obj.Rotation = o.Rotation
			obj.Scale = o.Scale
			return obj
		}
	}

	ahead := cam.Position.Add(cam.Forward().Mul(PlaceReach))
	if sel.HasFocus {
		if f := w.At(sel.Focus); f != nil {
			rel := roundVec(ahead.Sub(f.Position))
			obj.Position = math.Vec3{X: f.Position.X + rel.X, Y: f.Position.Y, Z: f.Position.Z + rel.Z}
			if f.Unbreakable {
				obj.Position.Y++
			}
			return obj
		}
	}

	obj.Position = roundVec(ahead)
	obj.Position.Y = 0
	return obj
}

// CheckPlacement rejects a target whose centre is inside an existing
// object or whose box would swallow the player's eye or foot.
func CheckPlacement(w *scene.World, target scene.Object, eye, foot math.Vec3) error {
	blocker := -1
	w.Each(func(i int, o *scene.Object) {
		if blocker < 0 && collision.PointInTransformBox(target.Position, collision.MakeTransformBox(o)) {
			blocker = i
		}
	})
	if blocker >= 0 {
		return fmt.Errorf("place at %v inside slot %d: %w", target.Position, blocker, ErrOccluded)
	}
	tb := collision.MakeTransformBox(&target)
	if collision.PointInTransformBox(eye, tb) || collision.PointInTransformBox(foot, tb) {
		return fmt.Errorf("place at %v overlaps player: %w", target.Position, ErrOccluded)
	}
	return nil
}

// dominantAxis returns the signed unit axis of v's largest component.
// Ties favour X, then Y.
func dominantAxis(v math.Vec3) math.Vec3 {
	ax, ay, az := math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)
	switch {
	case ax >= ay && ax >= az:
		return math.Vec3{X: sign(v.X)}
	case ay >= az:
		return math.Vec3{Y: sign(v.Y)}
	default:
		return math.Vec3{Z: sign(v.Z)}
	}
}

func sign(f float32) float32 {
	if f < 0 {
		return -1
	}
	return 1
}

// roundVec rounds each component to the nearest integer, halves up.
func roundVec(v math.Vec3) math.Vec3 {
	return math.Vec3{
		X: math32.Floor(v.X + 0.5),
		Y: math32.Floor(v.Y + 0.5),
		Z: math32.Floor(v.Z + 0.5),
	}
}
