package constants

// Intent Queue
const (
	// IntentQueueSize is the fixed capacity of the intent ring buffer
	IntentQueueSize = 256

	// IntentBufferMask is the bitmask for fast modulo (IntentQueueSize - 1)
	IntentBufferMask = 255
)

// PickMaxDistance is the selection radius for resolving a click onto a mass
const PickMaxDistance = 2.0

// GroundPlaneEpsilon is the |Δy| threshold below which an unprojected pick
// ray is treated as parallel to the ground plane
const GroundPlaneEpsilon = 0.001
