package sim

import (
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/camera"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/vmath"
)

// ClickAction is the resolved meaning of a primary click
type ClickAction uint8

const (
	ClickNone ClickAction = iota
	ClickSpawn
	ClickSelect
	ClickCameraDrag
)

// primaryClickTable resolves (spawn mode, pick hit) to an action. A single
// table rather than nested conditionals so the mode coupling stays
// auditable: spawn mode always spawns, otherwise a hit selects and a miss
// hands the drag gesture to the camera
var primaryClickTable = map[[2]bool]ClickAction{
	{true, true}:   ClickSpawn,
	{true, false}:  ClickSpawn,
	{false, true}:  ClickSelect,
	{false, false}: ClickCameraDrag,
}

// PrimaryClick resolves and applies a primary click at a ground-plane
// point. Returns the action taken; ClickCameraDrag means the scene was not
// touched and the shell should begin camera-drag tracking
func (s *Simulation) PrimaryClick(world vmath.Vec3) ClickAction {
	hit := camera.FindNearestMassDefault(world, s.Masses)

	action := primaryClickTable[[2]bool{s.SpawnMode, hit != nil}]
	switch action {
	case ClickSpawn:
		s.SpawnAt(world.X, world.Z)
	case ClickSelect:
		s.Select(hit)
	}
	return action
}

// SecondaryClick relocates the selected mass to a ground-plane point.
// Returns false as a no-op when nothing is selected
func (s *Simulation) SecondaryClick(world vmath.Vec3) bool {
	m := s.SelectedMass()
	if m == nil {
		return false
	}
	m.MoveTo(world.X, world.Z)
	return true
}
