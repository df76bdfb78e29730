package collision

import (
	"sandbox/math"
	"sandbox/scene"
)

const backoffSteps = 20

// ResolveMotion moves foot by delta unless the target lands inside an
// object. The first object containing the target is backed out of in
// backoffSteps fractions of delta; later objects are not examined. The
// result always lies on the segment from foot to foot+delta.
func ResolveMotion(w *scene.World, foot, delta math.Vec3) math.Vec3 {
	target := foot.Add(delta)
	for i := 0; i < w.Count(); i++ {
		o := w.At(i)
		if !o.Exists {
			continue
		}
		tb := MakeTransformBox(o)
		if !PointInTransformBox(target, tb) {
			continue
		}
		for k := 1; k <= backoffSteps; k++ {
			t := 1 - float32(k)/backoffSteps
			target = foot.Add(delta.Mul(t))
			if !PointInTransformBox(target, tb) {
				break
			}
		}
		break
	}
	return target
}
