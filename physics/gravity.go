package physics

import (
	"math"

	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/constants"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/scene"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/vmath"
)

// Solver advances custom masses by pairwise Newtonian gravitation plus the
// stationary central attractor, then feeds small orbital perturbations back
// onto the planets. All motion stays in the XZ plane
type Solver struct {
	// Enabled gates the whole step; when false Step is a no-op and the
	// scene is left untouched
	Enabled bool
}

// NewSolver returns a solver with physics enabled
func NewSolver() *Solver {
	return &Solver{Enabled: true}
}

// Step integrates one time slice. dt arrives already scaled by the
// controller's time multiplier.
//
// Integration is semi-implicit Euler: velocity from the accumulated force,
// then a constant per-step damping factor (independent of dt), then
// position from the new velocity. Pairs closer than the separation floor
// contribute zero force, trading physical exactness for avoiding the 1/d²
// singularity
func (s *Solver) Step(masses []*scene.CustomMass, planets []*scene.Planet, dt float64) {
	if !s.Enabled {
		return
	}

	var central *scene.Planet
	for _, p := range planets {
		if p.IsCentral() {
			central = p
			break
		}
	}

	for i, m1 := range masses {
		var force vmath.Vec3

		// Pairwise attraction from the other custom masses
		for j, m2 := range masses {
			if i == j {
				continue
			}
			delta := vmath.V3Sub(m2.Position, m1.Position)
			dist := vmath.V3Mag(delta)
			if dist > constants.MinSeparation {
				mag := constants.GravityG * m1.Mass * m2.Mass / (dist * dist)
				force = vmath.V3Add(force, vmath.V3Scale(vmath.V3Normalize(delta), mag))
			}
		}

		// Central attractor at the origin
		if central != nil {
			delta := vmath.V3Sub(central.Position(), m1.Position)
			dist := vmath.V3Mag(delta)
			if dist > constants.MinSeparation {
				mag := constants.GravityG * m1.Mass * central.CentralMass() / (dist * dist)
				force = vmath.V3Add(force, vmath.V3Scale(vmath.V3Normalize(delta), mag))
			}
		}

		m1.Velocity = vmath.V3Add(m1.Velocity, vmath.V3Scale(force, dt/m1.Mass))
		m1.Velocity = vmath.V3Scale(m1.Velocity, constants.VelocityDamping)
		m1.Position = vmath.V3Add(m1.Position, vmath.V3Scale(m1.Velocity, dt))

		m1.RecordTrail()
	}

	s.perturbOrbits(masses, planets)
}

// perturbOrbits is the feedback pass: custom masses drift the orbital
// parameters of every non-central planet. The adjustment is multiplicative
// and compounding with no clamp, so sustained perturbation can spiral an
// orbit without bound
func (s *Solver) perturbOrbits(masses []*scene.CustomMass, planets []*scene.Planet) {
	for _, p := range planets {
		if p.IsCentral() {
			continue
		}

		pos := p.Position()
		var total vmath.Vec3

		for _, m := range masses {
			delta := vmath.V3Sub(m.Position, pos)
			distSq := vmath.V3MagSq(delta)
			if distSq > constants.MinSeparation*constants.MinSeparation {
				strength := m.Mass / distSq * constants.PerturbationStrength
				total = vmath.V3Add(total, vmath.V3Scale(vmath.V3Normalize(delta), strength))
			}
		}

		if math.Abs(total.X) > constants.PerturbationThreshold ||
			math.Abs(total.Z) > constants.PerturbationThreshold {
			p.OrbitSpeed *= 1 + total.X*constants.PerturbationSpeedGain
			p.OrbitRadius *= 1 + total.Z*constants.PerturbationRadiusGain
		}
	}
}
