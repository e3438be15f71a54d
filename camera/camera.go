// Package camera owns the orbit camera transform and the screen/world
// coordinate conversions built on it. The simulation core consumes the
// transform for picking; it never mutates the camera itself
package camera

import (
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/constants"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/vmath"
)

// Camera is an orbit camera: yaw/pitch rotation around the origin at a
// fixed eye distance
type Camera struct {
	Yaw      float64 // degrees around Y
	Pitch    float64 // degrees around X, clamped to ±CameraPitchLimit
	Distance float64 // eye distance from the origin

	vp vmath.Viewport
}

// New returns a camera at the startup vantage point
func New() *Camera {
	return &Camera{
		Pitch:    constants.CameraPitchDefault,
		Distance: constants.CameraDistanceDefault,
	}
}

// SetViewport updates the window rectangle used for projection
func (c *Camera) SetViewport(w, h float64) {
	c.vp = vmath.Viewport{W: w, H: h}
}

// Viewport returns the current window rectangle
func (c *Camera) Viewport() vmath.Viewport {
	return c.vp
}

// Drag rotates the view from a pointer delta in pixels, clamping pitch so
// the camera never flips over the poles
func (c *Camera) Drag(dx, dy float64) {
	c.Yaw += dx * constants.CameraDragDegreesPerPixel
	c.Pitch += dy * constants.CameraDragDegreesPerPixel
	if c.Pitch > constants.CameraPitchLimit {
		c.Pitch = constants.CameraPitchLimit
	}
	if c.Pitch < -constants.CameraPitchLimit {
		c.Pitch = -constants.CameraPitchLimit
	}
}

// Zoom moves the eye along the view axis within the configured range
func (c *Camera) Zoom(delta float64) {
	c.Distance += delta
	if c.Distance < constants.CameraDistanceMin {
		c.Distance = constants.CameraDistanceMin
	}
	if c.Distance > constants.CameraDistanceMax {
		c.Distance = constants.CameraDistanceMax
	}
}

// ModelView composes the view transform: pull back along Z, then tilt,
// then spin
func (c *Camera) ModelView() vmath.Mat4 {
	mv := vmath.M4Translate(0, 0, -c.Distance)
	mv = vmath.M4Mul(mv, vmath.M4RotateX(c.Pitch))
	mv = vmath.M4Mul(mv, vmath.M4RotateY(c.Yaw))
	return mv
}

// Projection builds the perspective transform for the current viewport,
// corrected for non-square terminal cells
func (c *Camera) Projection() vmath.Mat4 {
	aspect := 1.0
	if c.vp.H > 0 {
		aspect = c.vp.W * constants.CameraCellAspect / c.vp.H
	}
	return vmath.M4Perspective(constants.CameraFovY, aspect, constants.CameraNear, constants.CameraFar)
}

// MVP returns the combined modelview-projection transform
func (c *Camera) MVP() vmath.Mat4 {
	return vmath.M4Mul(c.Projection(), c.ModelView())
}
