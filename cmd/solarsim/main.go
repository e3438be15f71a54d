package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/audio"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/camera"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/constants"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/events"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/input"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/render"
	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/sim"
)

var (
	debugFlag = flag.Bool("debug", false, "Write logs to logs/solarsim.log")
	fpsFlag   = flag.Int("fps", 60, "Target frame rate")
)

type app struct {
	screen   tcell.Screen
	cam      *camera.Camera
	sim      *sim.Simulation
	renderer *render.Renderer
	machine  *input.Machine
	queue    *events.IntentQueue
	player   *audio.Player

	// Camera drag tracking, active between a missed primary click and its
	// release
	dragging     bool
	lastX, lastY int
}

func newApp() (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	cam := camera.New()
	a := &app{
		screen:   screen,
		cam:      cam,
		sim:      sim.New(),
		renderer: render.New(screen, cam),
		machine:  input.NewMachine(),
		queue:    events.NewIntentQueue(),
	}

	player, err := audio.NewPlayer()
	if err != nil {
		// Non-fatal, simulation runs without sound
		log.Printf("audio init failed: %v", err)
	}
	a.player = player

	return a, nil
}

// poll runs on its own goroutine: parse terminal events into intents and
// hand them to the simulation loop through the ring buffer
func (a *app) poll() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			a.queue.Push(input.Intent{Type: input.IntentQuit})
			return
		}
		if intent := a.machine.Process(ev); intent != nil {
			a.queue.Push(*intent)
		}
	}
}

// apply mutates scene or camera state for one intent. Returns false on quit
func (a *app) apply(it input.Intent) bool {
	switch it.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		a.screen.Sync()
	case input.IntentTogglePause:
		a.sim.TogglePause()
	case input.IntentSpeedUp:
		a.sim.AdjustTimeScale(constants.TimeScaleStep)
	case input.IntentSlowDown:
		a.sim.AdjustTimeScale(-constants.TimeScaleStep)
	case input.IntentZoomIn:
		a.cam.Zoom(-constants.CameraZoomStep)
	case input.IntentZoomOut:
		a.cam.Zoom(constants.CameraZoomStep)
	case input.IntentReset:
		a.sim.Reset()
		a.player.Play(audio.CueReset)
	case input.IntentClearAll:
		a.sim.ClearAll()
	case input.IntentToggleSpawnMode:
		a.sim.ToggleSpawnMode()
	case input.IntentToggleTrails:
		a.sim.ToggleTrails()
	case input.IntentTogglePhysics:
		a.sim.TogglePhysics()
	case input.IntentSetSpawnMass:
		a.sim.SetSpawnMass(it.Value)
	case input.IntentDeleteSelected:
		if a.sim.SelectedMass() != nil {
			a.player.Play(audio.CueDelete)
		}
		a.sim.DeleteSelected()
	case input.IntentPrimaryDown:
		a.primaryDown(it.X, it.Y)
	case input.IntentPrimaryUp:
		a.dragging = false
	case input.IntentSecondaryDown:
		world := a.cam.ScreenToWorldGround(float64(it.X), float64(it.Y))
		a.sim.SecondaryClick(world)
	case input.IntentPointerMove:
		a.pointerMove(it.X, it.Y)
	}
	return true
}

func (a *app) primaryDown(x, y int) {
	world := a.cam.ScreenToWorldGround(float64(x), float64(y))
	switch a.sim.PrimaryClick(world) {
	case sim.ClickSpawn:
		a.player.Play(audio.CueSpawn)
	case sim.ClickSelect:
		a.player.Play(audio.CueSelect)
	case sim.ClickCameraDrag:
		a.dragging = true
		a.lastX, a.lastY = x, y
	}
}

func (a *app) pointerMove(x, y int) {
	if !a.dragging || a.sim.SpawnMode {
		return
	}
	a.cam.Drag(float64(x-a.lastX), float64(y-a.lastY))
	a.lastX, a.lastY = x, y
}

func (a *app) run() {
	interval := constants.FrameUpdateInterval
	if *fpsFlag > 0 {
		interval = time.Second / time.Duration(*fpsFlag)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	go a.poll()

	last := time.Now()
	for range ticker.C {
		for _, it := range a.queue.Consume() {
			if !a.apply(it) {
				return
			}
		}

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		a.sim.Tick(dt)
		a.renderer.Frame(a.sim.Snapshot())
	}
}

func (a *app) cleanup() {
	a.player.Close()
	a.screen.Fini()
}

func main() {
	// Panic recovery: restore the terminal before the stack trace prints,
	// otherwise it lands on the alternate screen and vanishes
	var a *app
	defer func() {
		if r := recover(); r != nil {
			if a != nil {
				a.screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "solarsim crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	var err error
	a, err = newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	log.Printf("starting simulation loop")
	a.run()
}
