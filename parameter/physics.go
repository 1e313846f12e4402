package parameter

// World
const (
	// CubeSize is the default edge length of the bounding cube, walls sit at ±CubeSize/2
	CubeSize = 20.0

	// TargetFPS paces the frame loop, advisory only
	TargetFPS = 60

	// MaxFPS bounds the configurable frame rate
	MaxFPS = 1000
)
