package scene

import (
	"sandbox/math"
)

const (
	NearPlane = 0.1
	FarPlane  = 1000.0

	// pitchLimit keeps the view direction off the world up axis, where the
	// look-at basis degenerates.
	pitchLimit = math.HalfPi - 0.001
)

// Camera is a first-person camera. Rotation holds pitch in X and yaw in Y;
// Z (roll) is carried but unused.
type Camera struct {
	Rotation math.Vec3
	Position math.Vec3
	FOV      float32
	Aspect   float32
}

func NewCamera(fov, aspect float32) *Camera {
	return &Camera{
		FOV:    fov,
		Aspect: aspect,
	}
}

// Resize updates the aspect ratio; a zero height is ignored.
func (c *Camera) Resize(width, height int) {
	if height > 0 {
		c.Aspect = float32(width) / float32(height)
	}
}

// Move adds rotationDelta to the rotation and moves by positionDelta
// expressed in the camera's yaw frame, so looking up or down never changes
// the height of a walk. Yaw is reduced into [0, 2π) and pitch clamped just
// short of vertical.
func (c *Camera) Move(rotationDelta, positionDelta math.Vec3) {
	c.Rotation = c.Rotation.Add(rotationDelta)
	c.Position = c.Position.Add(c.Displacement(positionDelta))
	c.Rotation.Y = math.WrapAngle(c.Rotation.Y)
	c.Rotation.X = math.Clamp(c.Rotation.X, -pitchLimit, pitchLimit)
}

// Displacement maps a camera-space delta into world space using yaw only.
func (c *Camera) Displacement(local math.Vec3) math.Vec3 {
	return math.Mat4RotationY(c.Rotation.Y).MulDir(local)
}

// Forward is the unit view direction; yaw 0 and pitch 0 face +Z.
func (c *Camera) Forward() math.Vec3 {
	return math.Mat4Rotation(math.Vec3{X: c.Rotation.X, Y: c.Rotation.Y}).MulDir(math.Vec3Front)
}

func (c *Camera) ViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Position, c.Position.Add(c.Forward()), math.Vec3Up)
}

func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Mat4Perspective(c.FOV, c.Aspect, NearPlane, FarPlane)
}

// ViewProjection returns projection after view for the current pose.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Ray is the picking ray through the centre of the view.
func (c *Camera) Ray() Ray {
	return Ray{Origin: c.Position, Direction: c.Forward()}
}

// Ray is a half-line; Direction is expected to be unit length.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
