package scene

import (
	"github.com/chewxy/math32"

	"sandbox/core"
	"sandbox/math"
)

// Shape selects the template geometry an object is drawn with. The set is
// closed: adding a shape means adding its template builder below.
type Shape int

const (
	ShapeCube Shape = iota
	ShapeCylinder

	shapeCount
)

const cylinderSegments = 16

var templates = [shapeCount]*Geo{
	ShapeCube:     createCube(),
	ShapeCylinder: createCylinder(cylinderSegments),
}

// Template returns the shape's unit-space geometry. It is shared by every
// instance and must be treated as read-only.
func (s Shape) Template() *Geo {
	if !s.Valid() {
		return nil
	}
	return templates[s]
}

func (s Shape) Valid() bool {
	return s >= 0 && s < shapeCount
}

func (s Shape) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapeCylinder:
		return "cylinder"
	}
	return "unknown"
}

func newTemplate(vertices []core.Vertex, indices []uint16) *Geo {
	return &Geo{
		Indices:  indices[:len(indices):len(indices)],
		Vertices: vertices[:len(vertices):len(vertices)],
	}
}

// createCube builds a unit cube centred on the origin, four vertices per
// face so each face can carry its own flat normal. Faces wind CCW seen
// from outside.
func createCube() *Geo {
	const s = 0.5
	faces := []struct{ n, u math.Vec3 }{
		{math.Vec3Front, math.Vec3Right},
		{math.Vec3Back, math.Vec3Left},
		{math.Vec3Up, math.Vec3Right},
		{math.Vec3Down, math.Vec3Right},
		{math.Vec3Right, math.Vec3Back},
		{math.Vec3Left, math.Vec3Front},
	}

	vertices := make([]core.Vertex, 0, 24)
	indices := make([]uint16, 0, 36)
	for _, f := range faces {
		v := f.n.Cross(f.u)
		c := f.n.Mul(s)
		u := f.u.Mul(s)
		vv := v.Mul(s)
		base := uint16(len(vertices))
		for _, p := range []math.Vec3{
			c.Sub(u).Sub(vv),
			c.Add(u).Sub(vv),
			c.Add(u).Add(vv),
			c.Sub(u).Add(vv),
		} {
			vertices = append(vertices, core.Vertex{Position: p, Normal: f.n, Value: 1})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	return newTemplate(vertices, indices)
}

// createCylinder builds a radius 0.5, height 1 cylinder around the Y axis.
// Side quads do not share vertices so flat normals stay per face.
func createCylinder(segments int) *Geo {
	const radius, halfHeight = 0.5, 0.5

	ring := make([]math.Vec3, segments+1)
	for i := 0; i <= segments; i++ {
		theta := float32(i) * math.Tau / float32(segments)
		ring[i] = math.Vec3{X: math32.Cos(theta) * radius, Z: math32.Sin(theta) * radius}
	}

	var vertices []core.Vertex
	var indices []uint16
	add := func(p, n math.Vec3) uint16 {
		vertices = append(vertices, core.Vertex{Position: p, Normal: n, Value: 1})
		return uint16(len(vertices) - 1)
	}

	for i := 0; i < segments; i++ {
		a, b := ring[i], ring[i+1]
		n := a.Add(b).Normalize()
		b0 := add(math.Vec3{X: a.X, Y: -halfHeight, Z: a.Z}, n)
		t0 := add(math.Vec3{X: a.X, Y: halfHeight, Z: a.Z}, n)
		b1 := add(math.Vec3{X: b.X, Y: -halfHeight, Z: b.Z}, n)
		t1 := add(math.Vec3{X: b.X, Y: halfHeight, Z: b.Z}, n)
		indices = append(indices, b0, t0, b1, b1, t0, t1)
	}

	// caps: top winds (centre, next, current), bottom the reverse
	top := add(math.Vec3{Y: halfHeight}, math.Vec3Up)
	topRing := uint16(len(vertices))
	for _, p := range ring {
		add(math.Vec3{X: p.X, Y: halfHeight, Z: p.Z}, math.Vec3Up)
	}
	bottom := add(math.Vec3{Y: -halfHeight}, math.Vec3Down)
	bottomRing := uint16(len(vertices))
	for _, p := range ring {
		add(math.Vec3{X: p.X, Y: -halfHeight, Z: p.Z}, math.Vec3Down)
	}
	for i := uint16(0); i < uint16(segments); i++ {
		indices = append(indices, top, topRing+i+1, topRing+i)
		indices = append(indices, bottom, bottomRing+i, bottomRing+i+1)
	}

	return newTemplate(vertices, indices)
}
