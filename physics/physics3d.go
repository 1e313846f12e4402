package physics

import (
	"math"

	"github.com/lixenwraith/annihilation/vmath"
)

// ReflectAxes negates each velocity component whose position component lies strictly
// beyond limit in magnitude. Axes are tested independently, so a corner contact flips
// several components in one call. Position is never clamped; overshoot of up to one
// step is tolerated and corrected by the reversed velocity on following frames.
// Returns a bitmask of flipped axes (1<<AxisX etc.)
func ReflectAxes(pos vmath.Vec3F, vel *vmath.Vec3F, limit float64) uint8 {
	var flipped uint8
	for axis := 0; axis < vmath.AxisCount; axis++ {
		if math.Abs(*pos.Axis(axis)) > limit {
			v := vel.Axis(axis)
			*v = -*v
			flipped |= 1 << axis
		}
	}
	return flipped
}

// Integrate advances position by one frame of velocity, step size implicitly 1
func Integrate(pos *vmath.Vec3F, vel vmath.Vec3F) {
	*pos = vmath.V3FAdd(*pos, vel)
}
