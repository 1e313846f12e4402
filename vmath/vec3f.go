package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used for particle positions and velocities
type Vec3F struct {
	X, Y, Z float64
}

// Axis indices for component access
const (
	AxisX = iota
	AxisY
	AxisZ
	AxisCount
)

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FDist returns the Euclidean distance between a and b
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FMid returns the midpoint of a and b
func V3FMid(a, b Vec3F) Vec3F {
	return Vec3F{(a.X + b.X) / 2, (a.Y + b.Y) / 2, (a.Z + b.Z) / 2}
}

// Axis returns a pointer to the component selected by AxisX/AxisY/AxisZ
// Panics on out-of-range axis like slice indexing would
func (v *Vec3F) Axis(axis int) *float64 {
	switch axis {
	case AxisX:
		return &v.X
	case AxisY:
		return &v.Y
	case AxisZ:
		return &v.Z
	}
	panic("vmath: axis out of range")
}
