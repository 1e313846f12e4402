package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/annihilation/parameter"
	"github.com/lixenwraith/annihilation/vmath"
)

// Camera orbits the cube centre on a sphere of radius Distance
type Camera struct {
	Yaw      float64
	Pitch    float64
	Distance float64

	viewProj mgl64.Mat4
	width    int
	height   int
	// rowsPerUnit converts a world length at unit depth into terminal rows
	rowsPerUnit float64
}

// Projected is a world point mapped to cell coordinates
type Projected struct {
	X, Y float64 // cell coordinates, Y down
	// Depth is the view-space distance along the camera axis
	Depth float64
	// Scale converts world length at this depth into rows; columns are Scale*CellAspect
	Scale float64
}

// NewCamera starts pulled back past the open front face
func NewCamera() *Camera {
	return &Camera{
		Yaw:      parameter.CameraYaw,
		Pitch:    parameter.CameraPitch,
		Distance: parameter.CameraDistance,
	}
}

// Orbit rotates around the vertical axis
func (c *Camera) Orbit(dYaw float64) {
	c.Yaw = math.Mod(c.Yaw+dYaw, 2*math.Pi)
}

// Zoom moves toward (negative) or away from (positive) the centre, clamped
func (c *Camera) Zoom(d float64) {
	c.Distance = vmath.Clamp(c.Distance+d, parameter.CameraDistanceMin, parameter.CameraDistanceMax)
}

// Eye returns the camera position in world space
func (c *Camera) Eye() mgl64.Vec3 {
	cp := math.Cos(c.Pitch)
	return mgl64.Vec3{
		c.Distance * cp * math.Sin(c.Yaw),
		c.Distance * math.Sin(c.Pitch),
		c.Distance * cp * math.Cos(c.Yaw),
	}
}

// Update rebuilds matrices for a viewport of width x height cells
func (c *Camera) Update(width, height int) {
	c.width, c.height = width, height
	if width <= 0 || height <= 0 {
		return
	}

	// Cells are twice as tall as wide, so the viewport is half as wide in square units
	aspect := float64(width) / (float64(height) * parameter.CellAspect)
	proj := mgl64.Perspective(parameter.CameraFovY, aspect, parameter.CameraNear, parameter.CameraFar)
	view := mgl64.LookAtV(c.Eye(), mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
	c.viewProj = proj.Mul4(view)
	c.rowsPerUnit = float64(height) / 2 / math.Tan(parameter.CameraFovY/2)
}

// Project maps p to cell space. ok is false behind the near plane
func (c *Camera) Project(p vmath.Vec3F) (Projected, bool) {
	if c.width <= 0 || c.height <= 0 {
		return Projected{}, false
	}

	clip := c.viewProj.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	w := clip.W()
	if w <= parameter.CameraNear {
		return Projected{}, false
	}

	ndcX, ndcY := clip.X()/w, clip.Y()/w
	return Projected{
		X:     (ndcX + 1) / 2 * float64(c.width),
		Y:     (1 - ndcY) / 2 * float64(c.height),
		Depth: w,
		Scale: c.rowsPerUnit / w,
	}, true
}
