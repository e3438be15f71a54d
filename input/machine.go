package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/AtharvSChaturvedi/SolarSystem-Simulation/constants"
)

// Machine parses tcell events into semantic Intents. It carries the little
// state needed to turn tcell's level-triggered mouse reports into
// press/release edges
type Machine struct {
	prevButtons tcell.ButtonMask
}

// NewMachine creates an input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Process parses one terminal event. Returns nil when the event carries no
// semantic action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		return &Intent{Type: IntentDeleteSelected}
	case tcell.KeyRune:
		return m.processRune(ev.Rune())
	}
	return nil
}

func (m *Machine) processRune(r rune) *Intent {
	switch r {
	case ' ':
		return &Intent{Type: IntentTogglePause}
	case '+', '=':
		return &Intent{Type: IntentZoomIn}
	case '-', '_':
		return &Intent{Type: IntentZoomOut}
	case 'f', 'F':
		return &Intent{Type: IntentSpeedUp}
	case 's', 'S':
		return &Intent{Type: IntentSlowDown}
	case 'r', 'R':
		return &Intent{Type: IntentReset}
	case 'c', 'C':
		return &Intent{Type: IntentClearAll}
	case 'm', 'M':
		return &Intent{Type: IntentToggleSpawnMode}
	case 't', 'T':
		return &Intent{Type: IntentToggleTrails}
	case 'p', 'P':
		return &Intent{Type: IntentTogglePhysics}
	case '1', '2', '3', '4', '5':
		idx := int(r - '1')
		return &Intent{Type: IntentSetSpawnMass, Value: constants.SpawnMassPresets[idx]}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons &^ m.prevButtons
	released := m.prevButtons &^ buttons
	m.prevButtons = buttons

	switch {
	case pressed&tcell.Button1 != 0:
		return &Intent{Type: IntentPrimaryDown, X: x, Y: y}
	case pressed&tcell.Button2 != 0:
		return &Intent{Type: IntentSecondaryDown, X: x, Y: y}
	case released&tcell.Button1 != 0:
		return &Intent{Type: IntentPrimaryUp, X: x, Y: y}
	default:
		return &Intent{Type: IntentPointerMove, X: x, Y: y}
	}
}
