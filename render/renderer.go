// Package render projects the simulation snapshot through the camera into
// a terminal cell buffer. It only ever reads snapshot data; all scene
// mutation stays with the simulation controller
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/camera"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/constants"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/sim"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/vmath"
)

const orbitSegments = 100

// Renderer draws scene snapshots to a tcell screen
type Renderer struct {
	screen tcell.Screen
	cam    *camera.Camera
	buf    *Buffer
}

// New creates a renderer bound to a screen and camera
func New(screen tcell.Screen, cam *camera.Camera) *Renderer {
	w, h := screen.Size()
	cam.SetViewport(float64(w), float64(h))
	return &Renderer{
		screen: screen,
		cam:    cam,
		buf:    NewBuffer(w, h),
	}
}

// Frame draws one snapshot. The camera viewport is refreshed from the
// screen size so picking and rendering always agree after a resize
func (r *Renderer) Frame(snap sim.Snapshot) {
	w, h := r.screen.Size()
	r.cam.SetViewport(float64(w), float64(h))
	r.buf.Reset(w, h)

	r.drawGrid(snap)
	r.drawOrbits(snap)
	if snap.ShowTrails {
		r.drawTrails(snap)
	}
	r.drawPlanets(snap)
	r.drawMasses(snap)
	r.drawHUD(snap)

	r.buf.Flush(r.screen)
}

// project maps a world point to a cell plus depth, rejecting points outside
// the depth range
func (r *Renderer) project(world vmath.Vec3) (x, y int, depth float64, ok bool) {
	win, ok := vmath.Project(world, r.cam.MVP(), r.cam.Viewport())
	if !ok || win.Z < 0 || win.Z > 1 {
		return 0, 0, 0, false
	}
	// Window space is bottom-left origin; cells address top-left
	return int(math.Floor(win.X)), int(math.Floor(r.cam.Viewport().H - win.Y)), win.Z, true
}

// plot projects a world point and writes a rune at its cell
func (r *Renderer) plot(world vmath.Vec3, ch rune, style tcell.Style) {
	x, y, depth, ok := r.project(world)
	if !ok {
		return
	}
	r.buf.Plot(x, y, depth, ch, style)
}

func (r *Renderer) drawGrid(snap sim.Snapshot) {
	half := snap.GridSize / 2
	for i := 0; i < snap.GridSize; i++ {
		for j := 0; j < snap.GridSize; j++ {
			h := snap.Grid[i][j]
			world := vmath.Vec3{
				X: float64(i-half) * snap.Spacing,
				Y: h,
				Z: float64(j-half) * snap.Spacing,
			}
			style := tcell.StyleDefault.Foreground(wellColor(h))
			r.plot(world, wellRune(h), style)
		}
	}
}

func (r *Renderer) drawOrbits(snap sim.Snapshot) {
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(128, 128, 128))
	for _, p := range snap.Planets {
		if p.Central {
			continue
		}
		for i := 0; i < orbitSegments; i++ {
			angle := 2 * math.Pi * float64(i) / orbitSegments
			r.plot(vmath.Vec3{
				X: p.OrbitRadius * math.Cos(angle),
				Z: p.OrbitRadius * math.Sin(angle),
			}, '·', style)
		}
	}
}

func (r *Renderer) drawTrails(snap sim.Snapshot) {
	for _, m := range snap.Masses {
		style := tcell.StyleDefault.Foreground(dimColor(m.Color, 0.6))
		for _, pt := range m.Trail {
			r.plot(vmath.Vec3{X: pt.X, Z: pt.Z}, '∙', style)
		}
	}
}

func (r *Renderer) drawPlanets(snap sim.Snapshot) {
	for _, p := range snap.Planets {
		if p.Central {
			// Glow halo behind the sun body
			r.drawSphere(p.Position, p.Radius*1.2, '░', tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 128)))
		}
		r.drawSphere(p.Position, p.Radius, '●', tcell.StyleDefault.Foreground(toColor(p.Color)))
	}
}

func (r *Renderer) drawMasses(snap sim.Snapshot) {
	for _, m := range snap.Masses {
		if m.Selected {
			r.drawSphere(m.Position, m.Radius*1.3, '○', tcell.StyleDefault.Foreground(tcell.ColorWhite))
		}
		r.drawSphere(m.Position, m.Radius, '●', tcell.StyleDefault.Foreground(toColor(m.Color)))
	}
}

// drawSphere fills the projected disc of a sphere. The apparent cell
// radius comes from projecting a point one world radius to the side of the
// center, which is close enough for small spheres
func (r *Renderer) drawSphere(center vmath.Vec3, radius float64, ch rune, style tcell.Style) {
	cx, cy, depth, ok := r.project(center)
	if !ok {
		return
	}

	edge, ok := vmath.Project(vmath.Vec3{X: center.X + radius, Y: center.Y, Z: center.Z},
		r.cam.MVP(), r.cam.Viewport())
	if !ok {
		return
	}
	centerWin, _ := vmath.Project(center, r.cam.MVP(), r.cam.Viewport())
	pr := math.Abs(edge.X - centerWin.X)
	if pr < 0.5 {
		pr = 0.5
	}

	prY := pr * constants.CameraCellAspect
	for dy := -int(prY); dy <= int(prY); dy++ {
		for dx := -int(pr); dx <= int(pr); dx++ {
			fx := float64(dx) / pr
			fy := 0.0
			if prY > 0 {
				fy = float64(dy) / prY
			}
			if fx*fx+fy*fy <= 1.0 {
				r.buf.Plot(cx+dx, cy+dy, depth, ch, style)
			}
		}
	}
}

func (r *Renderer) drawHUD(snap sim.Snapshot) {
	hud := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dim := tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 150, 150))

	state := "running"
	if snap.Paused {
		state = "paused"
	}
	flags := fmt.Sprintf("t=%.1fs  x%.1f  %s  masses:%d  spawn:%.0f",
		snap.Clock, snap.TimeScale, state, snap.MassCount, snap.SpawnMass)
	if snap.SpawnMode {
		flags += "  [SPAWN MODE]"
	}
	if !snap.PhysicsEnabled {
		flags += "  [physics off]"
	}
	if !snap.ShowTrails {
		flags += "  [trails off]"
	}
	r.buf.Print(0, 0, flags, hud)

	_, h := r.buf.Size()
	help := "drag:rotate  +/-:zoom  space:pause  f/s:speed  m:spawn  click:spawn/select  rclick:move  del:delete  c:clear  r:reset  t:trails  p:physics  1-5:mass  esc:quit"
	r.buf.Print(0, h-1, help, dim)
}
