package constants

// Curvature Grid
const (
	// GridSize is the sample count per grid axis
	GridSize = 80

	// GridSpacing is the world distance between adjacent samples
	GridSpacing = 0.6

	// CurvatureScale multiplies each body's -w/d² well contribution
	CurvatureScale = 2.0

	// CurvatureDistanceFloor prevents division blowup at a sample sitting
	// on top of a body
	CurvatureDistanceFloor = 0.1
)
