package parameter

// Orbit camera around the cube centre
const (
	// CameraDistance is the initial distance from the cube centre, pulled back past the front face
	CameraDistance = 34.0
	// CameraDistanceMin/Max bound zoom
	CameraDistanceMin = 12.0
	CameraDistanceMax = 80.0
	// CameraZoomStep is the distance change per zoom key press
	CameraZoomStep = 2.0

	// CameraYaw is the initial rotation around the Y axis in radians
	CameraYaw = 0.35
	// CameraPitch is the initial elevation in radians
	CameraPitch = 0.25
	// CameraOrbitStep is the yaw change per orbit key press in radians
	CameraOrbitStep = 0.08

	// CameraFovY is the vertical field of view in radians
	CameraFovY = 0.9
	// CameraNear/Far are the clip planes
	CameraNear = 0.1
	CameraFar  = 500.0

	// CellAspect is terminal cell height over width
	CellAspect = 2.0
)
