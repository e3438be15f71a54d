package sim

import (
	"math"
	"testing"

	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/constants"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/vmath"
)

func TestSpawnScenario(t *testing.T) {
	s := New()
	m := s.SpawnAt(3.0, 4.0)

	want := math.Cbrt(5.0) * 0.5
	if math.Abs(m.Radius-want) > 1e-9 {
		t.Errorf("spawn radius: expected %v, got %v", want, m.Radius)
	}
	if m.Velocity.X != 0 || m.Velocity.Y != 0 || m.Velocity.Z != 0 {
		t.Errorf("spawn velocity: expected zero, got %v", m.Velocity)
	}

	s.Tick(0.016)
	if len(m.Trail) != 1 {
		t.Fatalf("expected one trail point after first tick, got %d", len(m.Trail))
	}
	if math.Abs(m.Trail[0].X-3.0) > 0.01 || math.Abs(m.Trail[0].Z-4.0) > 0.01 {
		t.Errorf("first trail point: expected ≈(3, 4), got (%v, %v)", m.Trail[0].X, m.Trail[0].Z)
	}
}

func TestSpawnCyclesPalette(t *testing.T) {
	s := New()
	colors := make(map[[3]float64]bool)
	for i := 0; i < 5; i++ {
		m := s.SpawnAt(float64(i*10), 0)
		colors[[3]float64{m.Color.R, m.Color.G, m.Color.B}] = true
	}
	if len(colors) != 5 {
		t.Errorf("expected 5 distinct palette colors, got %d", len(colors))
	}
	sixth := s.SpawnAt(50, 0)
	first := s.Masses[0]
	if sixth.Color != first.Color {
		t.Errorf("sixth spawn should reuse the first color: %v vs %v", sixth.Color, first.Color)
	}
}

func TestTickPausedFreezesEverything(t *testing.T) {
	s := New()
	s.SpawnAt(3, 4)
	s.TogglePause()

	earth := s.Planets[3]
	s.Tick(1.0)
	if s.Clock != 0 {
		t.Errorf("paused tick advanced clock to %v", s.Clock)
	}
	if earth.Angle != 0 {
		t.Errorf("paused tick advanced planet angle to %v", earth.Angle)
	}
	if len(s.Masses[0].Trail) != 0 {
		t.Error("paused tick ran the gravity solver")
	}
}

func TestTickAdvancesClockByScaledTime(t *testing.T) {
	s := New()
	s.AdjustTimeScale(constants.TimeScaleStep) // 1.0 → 1.5
	s.Tick(0.5)
	if math.Abs(s.Clock-0.75) > 1e-12 {
		t.Errorf("clock: expected 0.75, got %v", s.Clock)
	}
}

func TestTickSkipsCentralBody(t *testing.T) {
	s := New()
	s.Tick(0.1)
	if s.Planets[0].Angle != 0 {
		t.Errorf("sun angle must stay 0, got %v", s.Planets[0].Angle)
	}
	if s.Planets[1].Angle == 0 {
		t.Error("mercury should have advanced")
	}
}

func TestTickWithPhysicsDisabled(t *testing.T) {
	s := New()
	s.TogglePhysics()
	m := s.SpawnAt(3, 4)
	s.Tick(0.016)

	if m.Position.X != 3 || m.Position.Z != 4 || len(m.Trail) != 0 {
		t.Errorf("physics off: mass moved to %v with %d trail points", m.Position, len(m.Trail))
	}
	// Kinematics and the field still run
	if s.Planets[1].Angle == 0 {
		t.Error("kinematics should run with physics off")
	}
}

func TestSelectionLifecycle(t *testing.T) {
	s := New()
	a := s.SpawnAt(0, 0)
	b := s.SpawnAt(10, 0)

	s.Select(a)
	if !a.Selected || s.SelectedMass() != a {
		t.Fatal("expected a selected")
	}
	s.Select(b)
	if a.Selected {
		t.Error("selecting b must deselect a")
	}
	if s.SelectedMass() != b {
		t.Error("expected b selected")
	}

	s.DeleteSelected()
	if len(s.Masses) != 1 || s.Masses[0] != a {
		t.Errorf("delete should remove only b, left %d masses", len(s.Masses))
	}
	if s.SelectedMass() != nil {
		t.Error("selection must clear after delete")
	}

	// No selection: these are silent no-ops
	s.DeleteSelected()
	s.MoveSelectedTo(5, 5)
	if len(s.Masses) != 1 || a.Position.X != 0 {
		t.Error("no-selection operations must be no-ops")
	}
}

func TestMoveSelectedClearsMotion(t *testing.T) {
	s := New()
	m := s.SpawnAt(3, 4)
	s.Select(m)
	s.Tick(0.016)
	s.Tick(0.016)

	s.MoveSelectedTo(-8, 2)
	if m.Position.X != -8 || m.Position.Z != 2 {
		t.Errorf("move: expected (-8, 2), got %v", m.Position)
	}
	if m.Velocity.X != 0 || m.Velocity.Z != 0 {
		t.Errorf("move must zero velocity, got %v", m.Velocity)
	}
	if len(m.Trail) != 0 {
		t.Errorf("move must clear the trail, got %d points", len(m.Trail))
	}
}

func TestResetScenario(t *testing.T) {
	s := New()
	m := s.SpawnAt(6, 0.5)
	s.Select(m)
	s.SetSpawnMass(50)
	s.SpawnAt(5.5, -0.5)

	mercury := s.Planets[1]
	snapRadius := mercury.OrbitRadius

	for i := 0; i < 100; i++ {
		s.Tick(0.016)
	}
	if mercury.OrbitRadius == snapRadius {
		t.Fatal("expected nearby masses to perturb mercury's orbit radius")
	}

	s.Reset()
	if mercury.OrbitRadius != snapRadius {
		t.Errorf("reset must restore orbit radius exactly: %v vs %v", mercury.OrbitRadius, snapRadius)
	}
	if len(s.Masses) != 0 {
		t.Errorf("reset must clear masses, %d left", len(s.Masses))
	}
	if s.SelectedMass() != nil {
		t.Error("reset must clear selection")
	}
	if s.Clock != 0 {
		t.Errorf("reset must zero the clock, got %v", s.Clock)
	}
}

func TestTimeScaleClamped(t *testing.T) {
	s := New()
	for i := 0; i < 50; i++ {
		s.AdjustTimeScale(constants.TimeScaleStep)
	}
	if s.TimeScale != constants.TimeScaleMax {
		t.Errorf("expected clamp at %v, got %v", constants.TimeScaleMax, s.TimeScale)
	}
	for i := 0; i < 50; i++ {
		s.AdjustTimeScale(-constants.TimeScaleStep)
	}
	if s.TimeScale != constants.TimeScaleMin {
		t.Errorf("expected clamp at %v, got %v", constants.TimeScaleMin, s.TimeScale)
	}
}

func TestPrimaryClickDecisionTable(t *testing.T) {
	cases := []struct {
		name      string
		spawnMode bool
		nearMass  bool
		want      ClickAction
	}{
		{"spawn mode, near a mass", true, true, ClickSpawn},
		{"spawn mode, empty space", true, false, ClickSpawn},
		{"normal mode, near a mass", false, true, ClickSelect},
		{"normal mode, empty space", false, false, ClickCameraDrag},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			if tc.nearMass {
				s.SpawnAt(0, 0)
			}
			s.SpawnMode = tc.spawnMode

			got := s.PrimaryClick(vmath.Vec3{X: 0.5, Z: 0})
			if got != tc.want {
				t.Errorf("expected action %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSecondaryClickRequiresSelection(t *testing.T) {
	s := New()
	if s.SecondaryClick(vmath.Vec3{X: 1, Z: 1}) {
		t.Error("secondary click without selection must be a no-op")
	}

	m := s.SpawnAt(0, 0)
	s.Select(m)
	if !s.SecondaryClick(vmath.Vec3{X: 1, Z: 1}) {
		t.Error("secondary click with selection should apply")
	}
	if m.Position.X != 1 || m.Position.Z != 1 {
		t.Errorf("expected mass moved to (1, 1), got %v", m.Position)
	}
}

func TestSnapshotIsolatedFromLiveScene(t *testing.T) {
	s := New()
	m := s.SpawnAt(3, 4)
	s.Select(m)
	s.Tick(0.016)

	snap := s.Snapshot()
	if len(snap.Masses) != 1 || !snap.Masses[0].Selected {
		t.Fatal("snapshot should carry the selected mass")
	}

	// Mutating the snapshot trail must not touch the live mass
	snap.Masses[0].Trail[0].X = 999
	if m.Trail[0].X == 999 {
		t.Error("snapshot trail aliases live trail")
	}

	if snap.MassCount != 1 || snap.GridSize != constants.GridSize {
		t.Errorf("snapshot metadata wrong: count=%d grid=%d", snap.MassCount, snap.GridSize)
	}
}

func TestClearAll(t *testing.T) {
	s := New()
	s.SpawnAt(0, 0)
	s.SpawnAt(5, 5)
	s.Select(s.Masses[1])

	s.ClearAll()
	if len(s.Masses) != 0 {
		t.Errorf("clear-all left %d masses", len(s.Masses))
	}
	if s.SelectedMass() != nil {
		t.Error("clear-all must clear selection")
	}
}
