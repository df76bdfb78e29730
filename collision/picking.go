package collision

import (
	"sandbox/math"
	"sandbox/scene"
)

const (
	// FocusRadius bounds how far the focus object may be from the query point.
	FocusRadius = 4.0
	// focusLayerTop restricts focus candidates to the ground layer.
	focusLayerTop = 1.0
)

// Hit is the result of a facing-object pick.
type Hit struct {
	Index    int
	Point    math.Vec3
	Distance float32
}

// FindFocusObject returns the slot of the existing ground-layer object
// nearest to point within FocusRadius. Equal distances keep the object
// placed first.
func FindFocusObject(w *scene.World, point math.Vec3) (int, bool) {
	best := -1
	var bestDist float32 = FocusRadius
	w.Each(func(i int, o *scene.Object) {
		if o.Position.Y >= focusLayerTop {
			return
		}
		d := o.Position.Distance(point)
		if d < bestDist {
			best, bestDist = i, d
		}
	})
	return best, best >= 0
}

// PickFacingObject returns the existing object whose box the ray reaches
// first, measured from the ray origin to the sampled hit point. Only a
// strictly closer hit replaces an earlier one.
func PickFacingObject(w *scene.World, ray scene.Ray) (Hit, bool) {
	hit := Hit{Index: -1}
	w.Each(func(i int, o *scene.Object) {
		p, ok := RayVsBox(ray, MakeTransformBox(o))
		if !ok {
			return
		}
		d := p.Distance(ray.Origin)
		if hit.Index < 0 || d < hit.Distance {
			hit = Hit{Index: i, Point: p, Distance: d}
		}
	})
	return hit, hit.Index >= 0
}
