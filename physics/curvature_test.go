package physics

import (
	"math"
	"testing"

	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/constants"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/scene"
)

func TestFieldDimensions(t *testing.T) {
	f := NewField(constants.GridSize, constants.GridSpacing)
	if len(f.Heights) != constants.GridSize {
		t.Fatalf("expected %d rows, got %d", constants.GridSize, len(f.Heights))
	}
	for i, row := range f.Heights {
		if len(row) != constants.GridSize {
			t.Fatalf("row %d: expected %d samples, got %d", i, constants.GridSize, len(row))
		}
	}
}

func TestFieldSamplePositionsCenteredAtOrigin(t *testing.T) {
	f := NewField(constants.GridSize, constants.GridSpacing)
	x, z := f.SamplePos(constants.GridSize/2, constants.GridSize/2)
	if x != 0 || z != 0 {
		t.Errorf("center sample: expected (0, 0), got (%v, %v)", x, z)
	}
	x, z = f.SamplePos(0, 0)
	want := -float64(constants.GridSize/2) * constants.GridSpacing
	if x != want || z != want {
		t.Errorf("corner sample: expected (%v, %v), got (%v, %v)", want, want, x, z)
	}
}

func TestRecomputeOverwritesFully(t *testing.T) {
	f := NewField(8, 1.0)
	m := testMass(0, 0, 10)

	f.Recompute(nil, []*scene.CustomMass{m})
	first := f.Heights[0][0]

	// Recomputing with no bodies must drop all prior state
	f.Recompute(nil, nil)
	for i, row := range f.Heights {
		for j, h := range row {
			if h != 0 {
				t.Fatalf("stale height at (%d,%d): %v", i, j, h)
			}
		}
	}

	f.Recompute(nil, []*scene.CustomMass{m})
	if f.Heights[0][0] != first {
		t.Errorf("recompute not deterministic: %v vs %v", f.Heights[0][0], first)
	}
}

func TestWellDepthAndSign(t *testing.T) {
	f := NewField(8, 1.0)
	m := testMass(0, 0, 10)
	f.Recompute(nil, []*scene.CustomMass{m})

	// Wells are negative everywhere and deepest at the body
	deepest := 0.0
	for _, row := range f.Heights {
		for _, h := range row {
			if h >= 0 {
				t.Fatalf("well height must be negative, got %v", h)
			}
			if h < deepest {
				deepest = h
			}
		}
	}
	// The sample at the body sits on the distance floor:
	// -mass/0.1²·2.0 = -mass·200
	cx, cz := 4, 4 // SamplePos(4,4) == (0,0) for size 8
	if x, z := f.SamplePos(cx, cz); x != 0 || z != 0 {
		t.Fatalf("expected sample (4,4) at origin, got (%v, %v)", x, z)
	}
	want := -10.0 / (constants.CurvatureDistanceFloor * constants.CurvatureDistanceFloor) * constants.CurvatureScale
	if math.Abs(f.Heights[cx][cz]-want) > 1e-9 {
		t.Errorf("floored well depth: expected %v, got %v", want, f.Heights[cx][cz])
	}
	if f.Heights[cx][cz] != deepest {
		t.Errorf("deepest sample should be at the body: %v vs %v", f.Heights[cx][cz], deepest)
	}
}

func TestPlanetsWeighInWithRadiusSquared(t *testing.T) {
	f := NewField(8, 1.0)
	sun := &scene.Planet{Name: "Sun", Radius: 2.0}
	f.Recompute([]*scene.Planet{sun}, nil)

	// Weight is radius² (4), not mass (8)
	want := -4.0 / (constants.CurvatureDistanceFloor * constants.CurvatureDistanceFloor) * constants.CurvatureScale
	if math.Abs(f.Heights[4][4]-want) > 1e-9 {
		t.Errorf("planet well weight: expected %v (radius²), got %v", want, f.Heights[4][4])
	}
}

func TestContributionsAccumulate(t *testing.T) {
	f := NewField(8, 1.0)
	a := testMass(-2, 0, 5)
	b := testMass(2, 0, 5)

	f.Recompute(nil, []*scene.CustomMass{a, b})
	both := f.Heights[4][4]

	f.Recompute(nil, []*scene.CustomMass{a})
	single := f.Heights[4][4]

	if math.Abs(both-2*single) > 1e-9 {
		t.Errorf("two symmetric masses should double the center depth: %v vs 2·%v", both, single)
	}
}
