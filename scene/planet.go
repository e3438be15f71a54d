package scene

import (
	"math"

	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/constants"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/vmath"
)

// RGB is a normalized color triple carried by bodies for the renderer
type RGB struct {
	R, G, B float64
}

// Planet is an orbiting body driven kinematically by its phase angle.
// OrbitRadius and OrbitSpeed are mutable at runtime: the gravity solver's
// perturbation pass drifts them
type Planet struct {
	Name          string
	Radius        float64
	OrbitRadius   float64 // 0 only for the central body
	OrbitSpeed    float64 // phase change per unit simulated time
	RotationSpeed float64 // cosmetic spin, no physics effect
	Color         RGB
	Angle         float64 // phase angle, kept in [0, 2π)
}

// Position returns the planet's world position derived from its phase angle.
// The central body (orbit radius 0) stays at the origin
func (p *Planet) Position() vmath.Vec3 {
	return vmath.Vec3{
		X: p.OrbitRadius * math.Cos(p.Angle),
		Z: p.OrbitRadius * math.Sin(p.Angle),
	}
}

// Mass returns the planet's gravitational mass, recomputed from radius
func (p *Planet) Mass() float64 {
	return p.Radius * p.Radius * p.Radius
}

// IsCentral reports whether this is the stationary central body
func (p *Planet) IsCentral() bool {
	return p.OrbitRadius == 0
}

// CentralMass returns the effective attractor mass of the central body,
// deliberately 10x its radius³ so the well dominates the system
func (p *Planet) CentralMass() float64 {
	return p.Mass() * constants.SunMassFactor
}

// OrbitSnapshot captures the resettable orbital parameters of one planet
type OrbitSnapshot struct {
	Angle       float64
	OrbitRadius float64
	OrbitSpeed  float64
}

// NewPlanets builds the startup body set: the central sun followed by the
// eight orbiting planets
func NewPlanets() []*Planet {
	return []*Planet{
		{Name: "Sun", Radius: 2.0, OrbitRadius: 0.0, OrbitSpeed: 0.0, RotationSpeed: 0.1, Color: RGB{1.0, 1.0, 0.2}},
		{Name: "Mercury", Radius: 0.3, OrbitRadius: 5.0, OrbitSpeed: 2.0, RotationSpeed: 0.5, Color: RGB{0.8, 0.7, 0.6}},
		{Name: "Venus", Radius: 0.5, OrbitRadius: 7.0, OrbitSpeed: 1.5, RotationSpeed: 0.3, Color: RGB{1.0, 0.8, 0.4}},
		{Name: "Earth", Radius: 0.6, OrbitRadius: 10.0, OrbitSpeed: 1.0, RotationSpeed: 0.8, Color: RGB{0.2, 0.5, 1.0}},
		{Name: "Mars", Radius: 0.4, OrbitRadius: 13.0, OrbitSpeed: 0.8, RotationSpeed: 0.7, Color: RGB{1.0, 0.3, 0.2}},
		{Name: "Jupiter", Radius: 1.5, OrbitRadius: 18.0, OrbitSpeed: 0.5, RotationSpeed: 1.2, Color: RGB{1.0, 0.7, 0.3}},
		{Name: "Saturn", Radius: 1.2, OrbitRadius: 23.0, OrbitSpeed: 0.3, RotationSpeed: 1.0, Color: RGB{1.0, 0.9, 0.6}},
		{Name: "Uranus", Radius: 0.8, OrbitRadius: 28.0, OrbitSpeed: 0.2, RotationSpeed: 0.6, Color: RGB{0.4, 0.8, 1.0}},
		{Name: "Neptune", Radius: 0.7, OrbitRadius: 33.0, OrbitSpeed: 0.15, RotationSpeed: 0.5, Color: RGB{0.2, 0.3, 1.0}},
	}
}

// SnapshotOrbits captures each planet's resettable state. Taken once right
// after construction; Reset restores from this capture, which is the
// authoritative reset target even if the table constants ever diverge
func SnapshotOrbits(planets []*Planet) []OrbitSnapshot {
	snaps := make([]OrbitSnapshot, len(planets))
	for i, p := range planets {
		snaps[i] = OrbitSnapshot{
			Angle:       p.Angle,
			OrbitRadius: p.OrbitRadius,
			OrbitSpeed:  p.OrbitSpeed,
		}
	}
	return snaps
}

// RestoreOrbits writes captured state back onto the planets
func RestoreOrbits(planets []*Planet, snaps []OrbitSnapshot) {
	for i, p := range planets {
		if i >= len(snaps) {
			break
		}
		p.Angle = snaps[i].Angle
		p.OrbitRadius = snaps[i].OrbitRadius
		p.OrbitSpeed = snaps[i].OrbitSpeed
	}
}
