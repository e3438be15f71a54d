package physics

import (
	"math"

	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/scene"
)

// Advance moves a planet along its orbit by one step of simulated time.
// A single wrap keeps the phase angle in [0, 2π); dt is small enough that
// one subtraction suffices. The central body must not be passed here; its
// angle and orbit radius stay zero
func Advance(p *scene.Planet, dt, timeScale float64) {
	p.Angle += p.OrbitSpeed * dt * timeScale
	if p.Angle > 2*math.Pi {
		p.Angle -= 2 * math.Pi
	}
}
