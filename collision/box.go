// Package collision answers containment, ray and motion queries against
// the boxes of world objects. Every query derives the boxes on demand; no
// acceleration structure is kept between frames.
package collision

import (
	"sandbox/math"
	"sandbox/scene"
)

const (
	halfExtent = 0.5

	marchStep       = 0.01
	marchIterations = 100
)

// Box is an axis-aligned box.
type Box struct {
	Min math.Vec3
	Max math.Vec3
}

func (b Box) Center() math.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// TransformBox is an object's unit box around its position together with
// the matrix that maps world offsets from that position into the object's
// unrotated, unscaled frame.
type TransformBox struct {
	Box       Box
	Transform math.Mat4
}

// MakeTransformBox builds the box for o. The object's scale must have no
// zero component; World.Place rejects such objects.
func MakeTransformBox(o *scene.Object) TransformBox {
	ext := math.NewVec3(halfExtent, halfExtent, halfExtent)
	return TransformBox{
		Box: Box{
			Min: o.Position.Sub(ext),
			Max: o.Position.Add(ext),
		},
		Transform: math.Mat4Scale(o.Scale.Recip()).Mul(math.Mat4InverseRotation(o.Rotation)),
	}
}

// PointInTransformBox reports whether point lies strictly inside tb.
func PointInTransformBox(point math.Vec3, tb TransformBox) bool {
	center := tb.Box.Center()
	lo := tb.Box.Min.Sub(center)
	hi := tb.Box.Max.Sub(center)
	local := tb.Transform.MulPoint(point.Sub(center))
	return local.X > lo.X && local.X < hi.X &&
		local.Y > lo.Y && local.Y < hi.Y &&
		local.Z > lo.Z && local.Z < hi.Z
}

// RayVsBox samples the ray at growing intervals and returns the first
// sample inside tb. Sample i lies marchStep*i*(i+1)/2 along the ray, so
// reach is about 50 units and spacing near the far end approaches one
// unit: thin geometry far away can be stepped over.
func RayVsBox(ray scene.Ray, tb TransformBox) (math.Vec3, bool) {
	var t float32
	for i := 1; i <= marchIterations; i++ {
		t += marchStep * float32(i)
		p := ray.At(t)
		if PointInTransformBox(p, tb) {
			return p, true
		}
	}
	return math.Vec3{}, false
}
