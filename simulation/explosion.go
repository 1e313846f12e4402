package simulation

import (
	"github.com/lixenwraith/annihilation/parameter"
	"github.com/lixenwraith/annihilation/vmath"
)

// Explosion is a cosmetic marker left at the midpoint of an annihilated pair
type Explosion struct {
	Pos      vmath.Vec3F
	Radius   float64
	Lifetime float64
}

func newExplosion(a, b vmath.Vec3F) Explosion {
	return Explosion{
		Pos:      vmath.V3FMid(a, b),
		Radius:   parameter.ExplosionRadius,
		Lifetime: parameter.ExplosionLifetime,
	}
}

// Active reports whether the marker still has lifetime left
func (e Explosion) Active() bool {
	return e.Lifetime > 0
}

// Fade returns remaining lifetime as a fraction of the initial lifetime, in [0,1]
func (e Explosion) Fade() float64 {
	return vmath.Clamp(e.Lifetime/parameter.ExplosionLifetime, 0, 1)
}
