package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the render/physics frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Time Scale
const (
	// TimeScaleDefault is the initial simulated-time multiplier
	TimeScaleDefault = 1.0

	// TimeScaleStep is applied per speed up/slow down intent
	TimeScaleStep = 0.5

	// TimeScaleMin and TimeScaleMax clamp the multiplier
	TimeScaleMin = 0.5
	TimeScaleMax = 5.0
)

// Camera
const (
	// CameraPitchDefault is the initial downward tilt in degrees
	CameraPitchDefault = 30.0

	// CameraDistanceDefault is the initial eye distance from the origin
	CameraDistanceDefault = 50.0

	// CameraZoomStep is applied per zoom intent
	CameraZoomStep = 2.0

	// CameraDistanceMin and CameraDistanceMax clamp the eye distance
	CameraDistanceMin = 10.0
	CameraDistanceMax = 100.0

	// CameraDragDegreesPerPixel converts pointer drag deltas to rotation
	CameraDragDegreesPerPixel = 0.5

	// CameraPitchLimit bounds vertical rotation (degrees, symmetric)
	CameraPitchLimit = 90.0

	// CameraFovY is the vertical field of view in degrees
	CameraFovY = 45.0

	// CameraNear and CameraFar are the projection depth planes
	CameraNear = 1.0
	CameraFar  = 200.0

	// CameraCellAspect corrects the projection aspect ratio for terminal
	// cells being roughly twice as tall as they are wide
	CameraCellAspect = 0.5
)

// SpawnMassDefault is the mass given to newly spawned bodies until changed
const SpawnMassDefault = 5.0

// SpawnMassPresets maps the 1-5 preset slots to spawn magnitudes
var SpawnMassPresets = [5]float64{1.0, 5.0, 10.0, 20.0, 50.0}
