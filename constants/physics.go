package constants

// Gravity Solver Tuning
const (
	// GravityG is the gravitational scaling constant (simulation units,
	// not physical)
	GravityG = 0.1

	// MinSeparation is the distance floor below which a pair contributes
	// zero force, avoiding the 1/d² singularity
	MinSeparation = 0.1

	// VelocityDamping is applied multiplicatively once per solver step,
	// independent of dt
	VelocityDamping = 0.999

	// SunMassFactor scales the central body's radius³ into its effective
	// gravitational mass
	SunMassFactor = 10.0

	// MassRadiusScale converts mass^(1/3) into a display radius
	MassRadiusScale = 0.5
)

// Orbit Perturbation Feedback
const (
	// PerturbationStrength scales each mass's m/d² contribution
	PerturbationStrength = 0.001

	// PerturbationThreshold is the minimum component magnitude that
	// triggers an orbit adjustment
	PerturbationThreshold = 0.001

	// PerturbationSpeedGain and PerturbationRadiusGain convert the summed
	// perturbation into multiplicative orbit speed/radius drift.
	// Compounding and unclamped: sustained perturbation can spiral an
	// orbit without bound
	PerturbationSpeedGain  = 0.01
	PerturbationRadiusGain = 0.001
)

// TrailCapacity is the sliding-window length of a mass's position trail
const TrailCapacity = 100
