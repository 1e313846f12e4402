package simulation

import (
	"github.com/lixenwraith/annihilation/parameter"
	"github.com/lixenwraith/annihilation/vmath"
)

// Kind selects a particle population
type Kind uint8

const (
	KindRed Kind = iota
	KindBlue
	kindCount
)

// Radius returns the fixed collision radius of the population
func (k Kind) Radius() float64 {
	if k == KindRed {
		return parameter.RedRadius
	}
	return parameter.BlueRadius
}

func (k Kind) String() string {
	switch k {
	case KindRed:
		return "red"
	case KindBlue:
		return "blue"
	}
	return "unknown"
}

// Particle is one sphere. ID is its index in the world table and stays fixed for the run
type Particle struct {
	ID     int
	Kind   Kind
	Radius float64
	Pos    vmath.Vec3F
	Vel    vmath.Vec3F
	Alive  bool
}

// NewParticle builds a live particle of kind k with the kind's radius
func NewParticle(k Kind, pos, vel vmath.Vec3F) Particle {
	return Particle{
		Kind:   k,
		Radius: k.Radius(),
		Pos:    pos,
		Vel:    vel,
		Alive:  true,
	}
}

// spawnParticle places a particle uniformly inside the cube, walls included
func spawnParticle(k Kind, half float64, rng *vmath.FastRand) Particle {
	return NewParticle(
		k,
		rng.UniformVec3(-half, half),
		rng.UniformVec3(-parameter.SpawnSpeedMax, parameter.SpawnSpeedMax),
	)
}
