// Package simulation advances red and blue particles inside a reflective cube,
// annihilating colliding pairs with a fixed probability
package simulation

import (
	"time"

	"github.com/lixenwraith/annihilation/config"
	"github.com/lixenwraith/annihilation/vmath"
)

// World owns every particle and marker of one run. Not safe for concurrent use;
// a frame runs to completion before the next begins
type World struct {
	params config.Params
	half   float64
	rng    *vmath.FastRand

	// particles is indexed by Particle.ID and never shrinks; eliminated entries stay with Alive=false
	particles []Particle
	// active and byKind hold IDs of live particles in spawn order
	active []int
	byKind [kindCount][]int

	explosions []Explosion
	frame      uint64

	// Per-frame scratch, reused to avoid allocation in Step
	marked  []bool
	removed []int
	spawned []Explosion
}

// NewWorld spawns params.Red red and params.Blue blue particles at random positions.
// Non-positive counts yield an empty population. Seed 0 draws from the clock
func NewWorld(params config.Params) *World {
	w := newWorld(params)
	for i := 0; i < params.Red; i++ {
		w.add(spawnParticle(KindRed, w.half, w.rng))
	}
	for i := 0; i < params.Blue; i++ {
		w.add(spawnParticle(KindBlue, w.half, w.rng))
	}
	return w
}

// NewWorldFrom builds a world from explicit particles, ignoring params counts.
// IDs are reassigned in slice order; dead entries are skipped
func NewWorldFrom(params config.Params, particles []Particle) *World {
	w := newWorld(params)
	for _, p := range particles {
		if !p.Alive {
			continue
		}
		w.add(p)
	}
	return w
}

func newWorld(params config.Params) *World {
	seed := params.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	capacity := max(params.Red, 0) + max(params.Blue, 0)
	return &World{
		params:    params,
		half:      params.HalfExtent(),
		rng:       vmath.NewFastRand(seed),
		particles: make([]Particle, 0, capacity),
		active:    make([]int, 0, capacity),
	}
}

func (w *World) add(p Particle) {
	p.ID = len(w.particles)
	p.Alive = true
	w.particles = append(w.particles, p)
	w.marked = append(w.marked, false)
	w.active = append(w.active, p.ID)
	w.byKind[p.Kind] = append(w.byKind[p.Kind], p.ID)
}

// Params returns the run parameters
func (w *World) Params() config.Params {
	return w.params
}

// HalfExtent is the wall distance from the centre
func (w *World) HalfExtent() float64 {
	return w.half
}

// Frame returns the number of completed frames
func (w *World) Frame() uint64 {
	return w.frame
}

// Count returns the number of live particles of kind k
func (w *World) Count(k Kind) int {
	if k >= kindCount {
		return 0
	}
	return len(w.byKind[k])
}

// Counts returns live red and blue counts
func (w *World) Counts() (red, blue int) {
	return len(w.byKind[KindRed]), len(w.byKind[KindBlue])
}

// Population returns the number of live particles of both kinds
func (w *World) Population() int {
	return len(w.active)
}

// Particle returns the particle with the given ID, live or eliminated
func (w *World) Particle(id int) (Particle, bool) {
	if id < 0 || id >= len(w.particles) {
		return Particle{}, false
	}
	return w.particles[id], true
}

// AppendAlive appends copies of all live particles to dst in spawn order
func (w *World) AppendAlive(dst []Particle) []Particle {
	for _, id := range w.active {
		dst = append(dst, w.particles[id])
	}
	return dst
}

// Explosions returns a copy of the active markers
func (w *World) Explosions() []Explosion {
	out := make([]Explosion, len(w.explosions))
	copy(out, w.explosions)
	return out
}
