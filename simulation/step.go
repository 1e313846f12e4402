package simulation

import (
	"github.com/lixenwraith/annihilation/parameter"
	"github.com/lixenwraith/annihilation/physics"
)

// FrameReport describes one completed frame
type FrameReport struct {
	Frame uint64

	RedBefore, BlueBefore int
	Red, Blue             int

	PairsChecked int
	Collisions   int
	// Eliminated lists IDs removed this frame, each at most once
	Eliminated []int
	// Spawned holds markers created this frame at full lifetime
	Spawned []Explosion
	// Expired counts markers that reached zero lifetime this frame
	Expired int
	// ActiveExplosions is the marker count after aging and spawning
	ActiveExplosions int
}

// EliminatedOf counts eliminated IDs of kind k
func (r FrameReport) EliminatedOf(w *World, k Kind) int {
	n := 0
	for _, id := range r.Eliminated {
		if p, ok := w.Particle(id); ok && p.Kind == k {
			n++
		}
	}
	return n
}

// Step advances the world by one frame:
// integrate, reflect, pairwise collide, remove, age markers
func (w *World) Step() FrameReport {
	report := FrameReport{
		RedBefore:  len(w.byKind[KindRed]),
		BlueBefore: len(w.byKind[KindBlue]),
	}

	w.integrate()
	w.collide(&report)
	w.removeMarked(&report)
	w.ageExplosions(&report)

	w.frame++
	report.Frame = w.frame
	report.Red = len(w.byKind[KindRed])
	report.Blue = len(w.byKind[KindBlue])
	report.ActiveExplosions = len(w.explosions)
	return report
}

// integrate moves every live particle and reflects it off the walls
func (w *World) integrate() {
	for _, id := range w.active {
		p := &w.particles[id]
		physics.Integrate(&p.Pos, p.Vel)
		physics.ReflectAxes(p.Pos, &p.Vel, w.half-p.Radius)
	}
}

// collide tests every unordered live pair once. A marked particle keeps taking
// part in later pairs of the same frame; marking is idempotent
func (w *World) collide(report *FrameReport) {
	w.spawned = w.spawned[:0]
	n := len(w.active)
	for i := 0; i < n; i++ {
		a := &w.particles[w.active[i]]
		for j := i + 1; j < n; j++ {
			b := &w.particles[w.active[j]]
			report.PairsChecked++

			if !physics.SpheresCollide(a.Pos, b.Pos, a.Radius, b.Radius) {
				continue
			}
			report.Collisions++

			if w.rng.Float64() >= w.params.Chance {
				continue
			}
			w.mark(a.ID)
			w.mark(b.ID)
			w.spawned = append(w.spawned, newExplosion(a.Pos, b.Pos))
		}
	}
}

func (w *World) mark(id int) {
	if w.marked[id] {
		return
	}
	w.marked[id] = true
	w.removed = append(w.removed, id)
}

// removeMarked drops marked IDs from the combined and per-kind lists in one linear pass each
func (w *World) removeMarked(report *FrameReport) {
	if len(w.removed) == 0 {
		return
	}

	for _, id := range w.removed {
		w.particles[id].Alive = false
	}

	w.active = filterAlive(w.active, w.particles)
	for k := range w.byKind {
		w.byKind[k] = filterAlive(w.byKind[k], w.particles)
	}

	report.Eliminated = make([]int, len(w.removed))
	copy(report.Eliminated, w.removed)

	for _, id := range w.removed {
		w.marked[id] = false
	}
	w.removed = w.removed[:0]
}

// filterAlive compacts ids in place keeping live entries, order preserved
func filterAlive(ids []int, particles []Particle) []int {
	kept := ids[:0]
	for _, id := range ids {
		if particles[id].Alive {
			kept = append(kept, id)
		}
	}
	return kept
}

// ageExplosions decrements markers from earlier frames, drops expired ones,
// then appends this frame's markers at full lifetime
func (w *World) ageExplosions(report *FrameReport) {
	kept := w.explosions[:0]
	for _, e := range w.explosions {
		e.Lifetime -= parameter.ExplosionDecay
		if !e.Active() {
			report.Expired++
			continue
		}
		kept = append(kept, e)
	}
	w.explosions = append(kept, w.spawned...)

	if len(w.spawned) > 0 {
		report.Spawned = make([]Explosion, len(w.spawned))
		copy(report.Spawned, w.spawned)
	}
}
