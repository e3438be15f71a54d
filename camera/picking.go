package camera

import (
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/constants"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/scene"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/vmath"
)

// WorldToScreen projects a world point to screen coordinates with a
// top-left origin (matching terminal cell addressing). ok is false for
// degenerate projections
func (c *Camera) WorldToScreen(world vmath.Vec3) (x, y float64, ok bool) {
	win, ok := vmath.Project(world, c.MVP(), c.vp)
	if !ok {
		return 0, 0, false
	}
	// Window space is bottom-left origin; flip back to top-left
	return win.X, c.vp.H - win.Y, true
}

// ScreenToWorldGround resolves a screen point (top-left origin) to the
// world point where the pick ray crosses the ground plane y=0. The ray
// comes from unprojecting the point at the near and far depth planes. A
// ray (nearly) parallel to the plane resolves to the origin rather than
// failing, so picking always yields a usable point
func (c *Camera) ScreenToWorldGround(screenX, screenY float64) vmath.Vec3 {
	invMVP, ok := vmath.M4Invert(c.MVP())
	if !ok {
		return vmath.Vec3{}
	}

	flippedY := c.vp.H - screenY
	near, okN := vmath.UnProject(vmath.Vec3{X: screenX, Y: flippedY, Z: 0}, invMVP, c.vp)
	far, okF := vmath.UnProject(vmath.Vec3{X: screenX, Y: flippedY, Z: 1}, invMVP, c.vp)
	if !okN || !okF {
		return vmath.Vec3{}
	}

	dy := far.Y - near.Y
	if dy > -constants.GroundPlaneEpsilon && dy < constants.GroundPlaneEpsilon {
		return vmath.Vec3{}
	}

	t := -near.Y / dy
	return vmath.Vec3{
		X: near.X + t*(far.X-near.X),
		Z: near.Z + t*(far.Z-near.Z),
	}
}

// FindNearestMass scans for the custom mass closest to a ground-plane point
// within maxDistance (XZ distance, strict). Returns nil when nothing
// qualifies; ties go to the first mass encountered
func FindNearestMass(worldPos vmath.Vec3, masses []*scene.CustomMass, maxDistance float64) *scene.CustomMass {
	var nearest *scene.CustomMass
	minDist := maxDistance

	for _, m := range masses {
		dist := vmath.V3DistXZ(m.Position, worldPos)
		if dist < minDist {
			minDist = dist
			nearest = m
		}
	}
	return nearest
}

// FindNearestMassDefault applies the standard pick radius
func FindNearestMassDefault(worldPos vmath.Vec3, masses []*scene.CustomMass) *scene.CustomMass {
	return FindNearestMass(worldPos, masses, constants.PickMaxDistance)
}
