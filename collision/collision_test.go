package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandbox/math"
	"sandbox/scene"
)

func cube(pos math.Vec3) scene.Object {
	return scene.Object{Shape: scene.ShapeCube, Position: pos, Scale: math.Vec3One}
}

func newWorld(t *testing.T, objs ...scene.Object) *scene.World {
	t.Helper()
	w := scene.NewWorld(64)
	for _, o := range objs {
		_, err := w.Place(o)
		require.NoError(t, err)
	}
	return w
}

func TestPointInUnitBox(t *testing.T) {
	o := cube(math.NewVec3(3, 1, -2))
	tb := MakeTransformBox(&o)

	assert.True(t, PointInTransformBox(o.Position, tb))
	assert.True(t, PointInTransformBox(o.Position.Add(math.NewVec3(0.49, -0.49, 0.49)), tb))
	for _, off := range []math.Vec3{
		{X: 0.6}, {X: -0.6}, {Y: 0.6}, {Y: -0.6}, {Z: 0.6}, {Z: -0.6},
		{X: 0.5}, {Y: -0.5},
	} {
		assert.False(t, PointInTransformBox(o.Position.Add(off), tb), "offset %v", off)
	}
}

func TestPointInScaledBox(t *testing.T) {
	o := cube(math.Vec3Zero)
	o.Scale = math.NewVec3(2, 1, 1)
	tb := MakeTransformBox(&o)

	assert.True(t, PointInTransformBox(math.NewVec3(0.9, 0, 0), tb))
	assert.False(t, PointInTransformBox(math.NewVec3(1.1, 0, 0), tb))
	assert.False(t, PointInTransformBox(math.NewVec3(0, 0.6, 0), tb))
}

func TestPointInRotatedBox(t *testing.T) {
	o := cube(math.Vec3Zero)
	o.Rotation = math.NewVec3(0, math.HalfPi/2, 0)
	tb := MakeTransformBox(&o)

	// the corner of a cube turned 45° reaches ~0.707 along X
	assert.True(t, PointInTransformBox(math.NewVec3(0.6, 0, 0), tb))
	assert.False(t, PointInTransformBox(math.NewVec3(0.45, 0, 0.45), tb))
}

func TestRayVsBoxHeadOn(t *testing.T) {
	o := cube(math.Vec3Zero)
	tb := MakeTransformBox(&o)

	p, ok := RayVsBox(scene.Ray{Origin: math.NewVec3(0, 0, -5), Direction: math.Vec3Front}, tb)
	require.True(t, ok)
	assert.True(t, PointInTransformBox(p, tb))
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 0, p.Y, 1e-6)
}

func TestRayVsBoxParallelMiss(t *testing.T) {
	o := cube(math.Vec3Zero)
	tb := MakeTransformBox(&o)

	_, ok := RayVsBox(scene.Ray{Origin: math.NewVec3(0, 1, -5), Direction: math.Vec3Front}, tb)
	assert.False(t, ok)
	_, ok = RayVsBox(scene.Ray{Origin: math.NewVec3(0.6, 0, -5), Direction: math.Vec3Front}, tb)
	assert.False(t, ok)
}

func TestRayVsBoxBeyondReach(t *testing.T) {
	o := cube(math.NewVec3(0, 0, 60))
	tb := MakeTransformBox(&o)

	_, ok := RayVsBox(scene.Ray{Direction: math.Vec3Front}, tb)
	assert.False(t, ok)
}

func TestPickFacingObjectNearestWins(t *testing.T) {
	w := newWorld(t,
		cube(math.NewVec3(0, 0, 4)),
		cube(math.NewVec3(0, 0, 2)),
		cube(math.NewVec3(3, 0, 2)),
	)
	ray := scene.Ray{Direction: math.Vec3Front}

	hit, ok := PickFacingObject(w, ray)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Index)
	assert.InDelta(t, hit.Point.Distance(ray.Origin), hit.Distance, 1e-6)

	require.NoError(t, w.Remove(1))
	hit, ok = PickFacingObject(w, ray)
	require.True(t, ok)
	assert.Equal(t, 0, hit.Index)

	require.NoError(t, w.Remove(0))
	_, ok = PickFacingObject(w, ray)
	assert.False(t, ok)
}

func TestPickFacingObjectFromPitchedCamera(t *testing.T) {
	w := newWorld(t, cube(math.NewVec3(0, 0, 1)))
	cam := scene.NewCamera(1.2, 1)
	cam.Position = math.NewVec3(0, 2, 0)
	cam.Rotation.X = 1.1071487 // atan2(2, 1): looking down at the cube centre

	hit, ok := PickFacingObject(w, cam.Ray())
	require.True(t, ok)
	assert.Equal(t, 0, hit.Index)

	w.At(0).Position.X += 10
	_, ok = PickFacingObject(w, cam.Ray())
	assert.False(t, ok)
}

func TestFindFocusObject(t *testing.T) {
	w := newWorld(t,
		cube(math.NewVec3(3, 0, 0)),
		cube(math.NewVec3(1, 0, 0)),
		cube(math.NewVec3(-1, 0, 0)),
		cube(math.NewVec3(0.5, 2, 0)),
	)

	i, ok := FindFocusObject(w, math.Vec3Zero)
	require.True(t, ok)
	assert.Equal(t, 1, i, "equal distances keep the first placed")

	// objects above the ground layer never focus
	i, ok = FindFocusObject(w, math.NewVec3(0.5, 2, 0))
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = FindFocusObject(w, math.NewVec3(20, 0, 0))
	assert.False(t, ok)
}

func TestResolveMotionFreePath(t *testing.T) {
	w := newWorld(t, cube(math.NewVec3(5, 0, 5)))
	foot := math.NewVec3(0, 0, 0)
	delta := math.NewVec3(0.5, 0, 0.25)

	assert.Equal(t, foot.Add(delta), ResolveMotion(w, foot, delta))
}

func TestResolveMotionIntoCentre(t *testing.T) {
	o := cube(math.NewVec3(0, 0, 2))
	w := newWorld(t, o)
	tb := MakeTransformBox(&o)
	foot := math.Vec3Zero
	delta := math.NewVec3(0, 0, 2)

	got := ResolveMotion(w, foot, delta)
	assert.False(t, PointInTransformBox(got, tb))
	assert.GreaterOrEqual(t, got.Z, foot.Z)
	assert.LessOrEqual(t, got.Z, foot.Z+delta.Z)
	assert.Zero(t, got.X)
	assert.Zero(t, got.Y)
}

func TestResolveMotionDiagonalStaysOnSegment(t *testing.T) {
	o := cube(math.NewVec3(1, 0, 1))
	w := newWorld(t, o)
	foot := math.NewVec3(-0.2, 0, -0.4)
	delta := math.NewVec3(1.3, 0, 1.5)

	got := ResolveMotion(w, foot, delta)
	tb := MakeTransformBox(&o)
	assert.False(t, PointInTransformBox(got, tb))
	for _, c := range [][3]float32{
		{foot.X, got.X, foot.X + delta.X},
		{foot.Z, got.Z, foot.Z + delta.Z},
	} {
		assert.GreaterOrEqual(t, c[1], c[0])
		assert.LessOrEqual(t, c[1], c[2])
	}
}

func TestResolveMotionStuckStaysPut(t *testing.T) {
	w := newWorld(t, cube(math.Vec3Zero))
	foot := math.NewVec3(0.1, 0, 0)

	assert.Equal(t, foot, ResolveMotion(w, foot, math.NewVec3(0.1, 0, 0)))
}

func TestResolveMotionOnlyFirstCollision(t *testing.T) {
	w := newWorld(t,
		cube(math.NewVec3(0, 0, 2)),
		cube(math.NewVec3(0, 0, 1.3)),
	)
	got := ResolveMotion(w, math.Vec3Zero, math.NewVec3(0, 0, 2))

	second := MakeTransformBox(w.At(1))
	assert.True(t, PointInTransformBox(got, second))
}

func TestResolveMotionIgnoresRemoved(t *testing.T) {
	w := newWorld(t, cube(math.NewVec3(0, 0, 2)))
	require.NoError(t, w.Remove(0))
	delta := math.NewVec3(0, 0, 2)

	assert.Equal(t, delta, ResolveMotion(w, math.Vec3Zero, delta))
}
