package sim

import (
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/scene"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/vmath"
)

// PlanetState is one planet's drawable state
type PlanetState struct {
	Name        string
	Position    vmath.Vec3
	Radius      float64
	OrbitRadius float64
	Color       scene.RGB
	Central     bool
}

// MassState is one custom mass's drawable state. Trail is a copy: the
// renderer can hold it across the frame without aliasing live solver state
type MassState struct {
	Position vmath.Vec3
	Radius   float64
	Color    scene.RGB
	Selected bool
	Trail    []scene.TrailPoint
}

// Snapshot is the read-only scene handed to the rendering backend. The
// renderer gets no mutation access to the live model
type Snapshot struct {
	Planets []PlanetState
	Masses  []MassState

	// Grid aliases the field's height array. The field is only rewritten
	// inside Tick, which never overlaps the render pass on the single
	// simulation goroutine
	Grid     [][]float64
	GridSize int
	Spacing  float64

	Clock          float64
	TimeScale      float64
	SpawnMass      float64
	Paused         bool
	SpawnMode      bool
	ShowTrails     bool
	PhysicsEnabled bool
	MassCount      int
}

// Snapshot captures the current scene for drawing
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Planets:        make([]PlanetState, 0, len(s.Planets)),
		Masses:         make([]MassState, 0, len(s.Masses)),
		Grid:           s.Field.Heights,
		GridSize:       s.Field.Size,
		Spacing:        s.Field.Spacing,
		Clock:          s.Clock,
		TimeScale:      s.TimeScale,
		SpawnMass:      s.SpawnMass,
		Paused:         s.Paused,
		SpawnMode:      s.SpawnMode,
		ShowTrails:     s.ShowTrails,
		PhysicsEnabled: s.Solver.Enabled,
		MassCount:      len(s.Masses),
	}

	for _, p := range s.Planets {
		snap.Planets = append(snap.Planets, PlanetState{
			Name:        p.Name,
			Position:    p.Position(),
			Radius:      p.Radius,
			OrbitRadius: p.OrbitRadius,
			Color:       p.Color,
			Central:     p.IsCentral(),
		})
	}

	for _, m := range s.Masses {
		trail := make([]scene.TrailPoint, len(m.Trail))
		copy(trail, m.Trail)
		snap.Masses = append(snap.Masses, MassState{
			Position: m.Position,
			Radius:   m.Radius,
			Color:    m.Color,
			Selected: m.Selected,
			Trail:    trail,
		})
	}

	return snap
}
