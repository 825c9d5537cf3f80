package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera constants
const (
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0
	DefaultFOV   = 45.0

	nearPlane = 0.1
	farPlane  = 1000.0
)

// Camera is a fixed perspective camera. The widget never moves it; the
// mesh is transformed instead.
type Camera struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32
	fov   float32

	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a camera at position looking down -Z with the given
// viewport shape.
func NewCamera(position mgl32.Vec3, width, height int) *Camera {
	c := &Camera{
		position: position,
		worldUp:  mgl32.Vec3{0, 1, 0},
		yaw:      DefaultYaw,
		pitch:    DefaultPitch,
		fov:      DefaultFOV,
	}
	c.updateVectors()
	c.SetShape(width, height)
	return c
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))
	c.front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// SetShape updates the projection for a viewport of width x height pixels.
// A degenerate height keeps the aspect at 1 so the projection stays finite.
func (c *Camera) SetShape(width, height int) {
	c.width = width
	c.height = height
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, nearPlane, farPlane)
}

// Shape returns the last viewport shape passed to SetShape.
func (c *Camera) Shape() (width, height int) {
	return c.width, c.height
}

// ViewMatrix returns the world to camera transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the camera to clip transform.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the camera position.
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}
