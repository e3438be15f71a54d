package physics

import (
	"math"

	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/constants"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/scene"
)

// Field is the curvature height grid visualizing combined gravitational
// potential: a fixed lattice of world-plane samples centered at the origin.
// Heights carry no frame-to-frame state; Recompute overwrites them fully
type Field struct {
	Size    int
	Spacing float64
	Heights [][]float64
}

// NewField allocates a square grid of size samples per axis
func NewField(size int, spacing float64) *Field {
	heights := make([][]float64, size)
	for i := range heights {
		heights[i] = make([]float64, size)
	}
	return &Field{Size: size, Spacing: spacing, Heights: heights}
}

// SamplePos returns the world-plane (x, z) of grid cell (i, j)
func (f *Field) SamplePos(i, j int) (x, z float64) {
	half := f.Size / 2
	return float64(i-half) * f.Spacing, float64(j-half) * f.Spacing
}

// Recompute zeroes the grid and accumulates every body's gravitational well.
// Planets weigh in with radius² (a flattened well that keeps the sun from
// swamping the display), custom masses with their actual mass. O(samples ×
// bodies), run once per simulation frame
func (f *Field) Recompute(planets []*scene.Planet, masses []*scene.CustomMass) {
	for i := range f.Heights {
		row := f.Heights[i]
		for j := range row {
			row[j] = 0
		}
	}

	for _, p := range planets {
		pos := p.Position()
		f.addWell(pos.X, pos.Z, p.Radius*p.Radius)
	}
	for _, m := range masses {
		f.addWell(m.Position.X, m.Position.Z, m.Mass)
	}
}

// addWell accumulates one body's -w/d² contribution over every sample,
// flooring the distance so a body sitting on a sample point stays finite
func (f *Field) addWell(x, z, weight float64) {
	for i := 0; i < f.Size; i++ {
		for j := 0; j < f.Size; j++ {
			gx, gz := f.SamplePos(i, j)
			dx := gx - x
			dz := gz - z
			dist := math.Sqrt(dx*dx + dz*dz)
			if dist < constants.CurvatureDistanceFloor {
				dist = constants.CurvatureDistanceFloor
			}
			f.Heights[i][j] += -weight / (dist * dist) * constants.CurvatureScale
		}
	}
}
