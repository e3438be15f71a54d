// Package sim is the simulation controller: single owner of all scene
// state, driving the per-frame update order (orbital kinematics, gravity
// solver, curvature field) and exposing the mutation entry points the
// input layer calls. All access happens on the simulation loop goroutine
package sim

import (
	"github.com/google/uuid"

	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/constants"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/physics"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/scene"
)

// Simulation holds the full mutable scene: the fixed planet set, the
// user-spawned masses, the curvature field, and the run configuration
type Simulation struct {
	Planets []*scene.Planet
	Masses  []*scene.CustomMass
	Solver  *physics.Solver
	Field   *physics.Field

	Clock      float64 // simulated seconds
	TimeScale  float64
	Paused     bool
	SpawnMode  bool
	ShowTrails bool
	SpawnMass  float64

	// selected is the uuid of the selected mass, uuid.Nil for none.
	// Resolved by scan on each use so deletion can never dangle
	selected uuid.UUID

	// orbitSnapshots is the reset target, captured at construction
	orbitSnapshots []scene.OrbitSnapshot

	spawnCount int
}

// New builds the startup scene: sun plus eight planets, no custom masses,
// physics enabled, trails shown
func New() *Simulation {
	planets := scene.NewPlanets()
	return &Simulation{
		Planets:        planets,
		Solver:         physics.NewSolver(),
		Field:          physics.NewField(constants.GridSize, constants.GridSpacing),
		TimeScale:      constants.TimeScaleDefault,
		ShowTrails:     true,
		SpawnMass:      constants.SpawnMassDefault,
		orbitSnapshots: scene.SnapshotOrbits(planets),
	}
}

// Tick advances the simulation by one frame of wall time. Order is fixed:
// kinematics, then the gravity solver, then the curvature field, so the
// renderer always sees a frame-consistent scene
func (s *Simulation) Tick(dt float64) {
	if s.Paused {
		return
	}

	s.Clock += dt * s.TimeScale

	for _, p := range s.Planets {
		if p.IsCentral() {
			continue
		}
		physics.Advance(p, dt, s.TimeScale)
	}

	s.Solver.Step(s.Masses, s.Planets, dt*s.TimeScale)
	s.Field.Recompute(s.Planets, s.Masses)
}

// SpawnAt creates a custom mass at a ground-plane point using the current
// spawn magnitude, cycling the palette by spawn order
func (s *Simulation) SpawnAt(x, z float64) *scene.CustomMass {
	m := scene.NewCustomMass(x, z, s.SpawnMass, scene.PaletteColor(s.spawnCount))
	s.spawnCount++
	s.Masses = append(s.Masses, m)
	return m
}

// Select marks the given mass selected, clearing any previous selection
func (s *Simulation) Select(m *scene.CustomMass) {
	if prev := s.SelectedMass(); prev != nil {
		prev.Selected = false
	}
	s.selected = m.ID
	m.Selected = true
}

// SelectedMass resolves the selection back-reference, nil when nothing is
// selected or the mass has been removed
func (s *Simulation) SelectedMass() *scene.CustomMass {
	if s.selected == uuid.Nil {
		return nil
	}
	for _, m := range s.Masses {
		if m.ID == s.selected {
			return m
		}
	}
	return nil
}

// MoveSelectedTo relocates the selected mass, zeroing its velocity and
// trail. No-op without a selection
func (s *Simulation) MoveSelectedTo(x, z float64) {
	if m := s.SelectedMass(); m != nil {
		m.MoveTo(x, z)
	}
}

// DeleteSelected removes the selected mass. No-op without a selection
func (s *Simulation) DeleteSelected() {
	m := s.SelectedMass()
	if m == nil {
		return
	}
	for i, candidate := range s.Masses {
		if candidate.ID == m.ID {
			s.Masses = append(s.Masses[:i], s.Masses[i+1:]...)
			break
		}
	}
	s.selected = uuid.Nil
}

// ClearAll removes every custom mass and the selection
func (s *Simulation) ClearAll() {
	s.Masses = s.Masses[:0]
	s.selected = uuid.Nil
}

// Reset restores every planet's captured orbital state, clears all custom
// masses and the selection, and zeroes the simulated clock
func (s *Simulation) Reset() {
	scene.RestoreOrbits(s.Planets, s.orbitSnapshots)
	s.Masses = s.Masses[:0]
	s.selected = uuid.Nil
	s.spawnCount = 0
	s.Clock = 0
}

// AdjustTimeScale nudges the simulated-time multiplier within its range
func (s *Simulation) AdjustTimeScale(delta float64) {
	s.TimeScale += delta
	if s.TimeScale < constants.TimeScaleMin {
		s.TimeScale = constants.TimeScaleMin
	}
	if s.TimeScale > constants.TimeScaleMax {
		s.TimeScale = constants.TimeScaleMax
	}
}

// SetSpawnMass sets the magnitude used for subsequent spawns
func (s *Simulation) SetSpawnMass(v float64) {
	s.SpawnMass = v
}

// TogglePause flips the paused state
func (s *Simulation) TogglePause() {
	s.Paused = !s.Paused
}

// ToggleSpawnMode flips between camera/select handling and spawn-on-click
func (s *Simulation) ToggleSpawnMode() {
	s.SpawnMode = !s.SpawnMode
}

// ToggleTrails flips trail rendering
func (s *Simulation) ToggleTrails() {
	s.ShowTrails = !s.ShowTrails
}

// TogglePhysics flips the gravity solver on or off
func (s *Simulation) TogglePhysics() {
	s.Solver.Enabled = !s.Solver.Enabled
}
