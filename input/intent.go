package input

// IntentType discriminates semantic actions delivered to the simulation
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // ESC, Ctrl+C
	IntentResize // Terminal resize event

	// Simulation control
	IntentTogglePause // Space
	IntentSpeedUp     // f
	IntentSlowDown    // s
	IntentReset       // r

	// Custom mass management
	IntentToggleSpawnMode // m
	IntentClearAll        // c
	IntentDeleteSelected  // Delete / Backspace
	IntentSetSpawnMass    // 1-5, Value carries the preset magnitude

	// Display toggles
	IntentToggleTrails  // t
	IntentTogglePhysics // p

	// Camera
	IntentZoomIn  // + / =
	IntentZoomOut // - / _

	// Pointer
	IntentPrimaryDown   // left button press at (X, Y)
	IntentPrimaryUp     // left button release
	IntentSecondaryDown // right button press at (X, Y)
	IntentPointerMove   // motion at (X, Y), any button state
)

// Intent is a parsed semantic action. Pure data with no engine dependencies
type Intent struct {
	Type  IntentType
	X, Y  int     // pointer cell coordinates for pointer intents
	Value float64 // spawn mass magnitude for IntentSetSpawnMass
}
