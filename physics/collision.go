package physics

import "github.com/lixenwraith/annihilation/vmath"

// SpheresCollide reports whether two spheres overlap: centre distance strictly
// less than the radius sum. Touching spheres do not collide
func SpheresCollide(posA, posB vmath.Vec3F, radiusA, radiusB float64) bool {
	return vmath.V3FDist(posA, posB) < radiusA+radiusB
}
