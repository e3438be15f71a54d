package scene

import (
	"math"

	"github.com/google/uuid"

	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/constants"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/vmath"
)

// TrailPoint is one (x, z) sample of a mass's recent path
type TrailPoint struct {
	X, Z float64
}

// CustomMass is a user-spawned point body. Position and velocity stay pinned
// to the ground plane (Y = 0). Identity is a uuid so the selection
// back-reference survives deletions without dangling
type CustomMass struct {
	ID       uuid.UUID
	Position vmath.Vec3
	Velocity vmath.Vec3
	Mass     float64
	Radius   float64
	Color    RGB
	Selected bool

	// Trail is a sliding window of recent positions, oldest first,
	// capped at constants.TrailCapacity
	Trail []TrailPoint
}

// NewCustomMass spawns a body at (x, z) on the ground plane with the given
// mass. Radius derives from mass so heavier bodies draw larger
func NewCustomMass(x, z, mass float64, color RGB) *CustomMass {
	return &CustomMass{
		ID:       uuid.New(),
		Position: vmath.Vec3{X: x, Z: z},
		Mass:     mass,
		Radius:   math.Cbrt(mass) * constants.MassRadiusScale,
		Color:    color,
		Trail:    make([]TrailPoint, 0, constants.TrailCapacity),
	}
}

// RecordTrail appends the current position to the trail, evicting the oldest
// point once the window is full
func (m *CustomMass) RecordTrail() {
	m.Trail = append(m.Trail, TrailPoint{X: m.Position.X, Z: m.Position.Z})
	if len(m.Trail) > constants.TrailCapacity {
		m.Trail = m.Trail[1:]
	}
}

// MoveTo relocates the mass, zeroing its velocity and discarding its trail
func (m *CustomMass) MoveTo(x, z float64) {
	m.Position = vmath.Vec3{X: x, Z: z}
	m.Velocity = vmath.Vec3{}
	m.Trail = m.Trail[:0]
}

// SpawnPalette is the fixed color cycle for spawned masses, indexed by spawn
// order modulo its length
var SpawnPalette = []RGB{
	{0.8, 0.2, 0.8}, // purple
	{1.0, 0.5, 0.0}, // orange
	{0.0, 1.0, 0.5}, // green
	{1.0, 0.2, 0.2}, // red
	{0.5, 0.5, 1.0}, // light blue
}

// PaletteColor returns the spawn color for the nth spawned mass
func PaletteColor(spawnIndex int) RGB {
	return SpawnPalette[spawnIndex%len(SpawnPalette)]
}
