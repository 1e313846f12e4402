package simulation

import (
	"math"
	"testing"

	"github.com/lixenwraith/annihilation/config"
	"github.com/lixenwraith/annihilation/parameter"
	"github.com/lixenwraith/annihilation/physics"
	"github.com/lixenwraith/annihilation/vmath"
)

func testParams(chance float64) config.Params {
	p := config.Default().Simulation
	p.Chance = chance
	p.Seed = 1
	return p
}

func still(k Kind, x, y, z float64) Particle {
	return NewParticle(k, vmath.Vec3F{X: x, Y: y, Z: z}, vmath.Vec3F{})
}

// TestWallReflection covers a red particle crossing +X: 9.95+0.2 = 10.15 > 10-0.2
func TestWallReflection(t *testing.T) {
	p := NewParticle(KindRed, vmath.Vec3F{X: 9.95}, vmath.Vec3F{X: 0.2})
	w := NewWorldFrom(testParams(1), []Particle{p})

	w.Step()

	got, _ := w.Particle(0)
	if got.Vel.X != -0.2 {
		t.Errorf("expected vx=-0.2, got %f", got.Vel.X)
	}
	if !vmath.NearlyEqual(got.Pos.X, 10.15, 1e-9) {
		t.Errorf("position must be integrated but not clamped, got %f", got.Pos.X)
	}
	if got.Vel.Y != 0 || got.Vel.Z != 0 {
		t.Errorf("other axes must be untouched: %+v", got.Vel)
	}
}

// TestWallReflectionFromInside checks a single flip when crossing from inside
func TestWallReflectionFromInside(t *testing.T) {
	p := NewParticle(KindRed, vmath.Vec3F{Y: -9.7}, vmath.Vec3F{Y: -0.2})
	w := NewWorldFrom(testParams(1), []Particle{p})

	w.Step()
	got, _ := w.Particle(0)
	if got.Vel.Y != 0.2 {
		t.Fatalf("expected vy flipped to 0.2, got %f", got.Vel.Y)
	}

	w.Step()
	got, _ = w.Particle(0)
	if got.Vel.Y != 0.2 {
		t.Errorf("velocity should stay reversed once back inside, got %f", got.Vel.Y)
	}
	if !vmath.NearlyEqual(got.Pos.Y, -9.7, 1e-9) {
		t.Errorf("expected y back at -9.7, got %f", got.Pos.Y)
	}
}

// TestTwoRedAnnihilate covers two overlapping reds at chance 1
func TestTwoRedAnnihilate(t *testing.T) {
	w := NewWorldFrom(testParams(1), []Particle{
		still(KindRed, 0, 0, 0),
		still(KindRed, 0.1, 0, 0),
	})

	report := w.Step()

	if report.Red != 0 || report.RedBefore != 2 {
		t.Errorf("expected red 2 -> 0, got %d -> %d", report.RedBefore, report.Red)
	}
	if report.Collisions != 1 || len(report.Eliminated) != 2 {
		t.Errorf("expected 1 collision and 2 eliminations, got %d and %d", report.Collisions, len(report.Eliminated))
	}

	explosions := w.Explosions()
	if len(explosions) != 1 {
		t.Fatalf("expected one explosion marker, got %d", len(explosions))
	}
	e := explosions[0]
	if e.Lifetime != parameter.ExplosionLifetime {
		t.Errorf("new marker must hold full lifetime, got %f", e.Lifetime)
	}
	if e.Radius != parameter.ExplosionRadius {
		t.Errorf("unexpected marker radius %f", e.Radius)
	}
	if !vmath.NearlyEqual(e.Pos.X, 0.05, 1e-12) || e.Pos.Y != 0 || e.Pos.Z != 0 {
		t.Errorf("marker must sit at the pair midpoint, got %+v", e.Pos)
	}
	if w.Population() != 0 {
		t.Errorf("expected empty population, got %d", w.Population())
	}
}

func TestTouchingParticlesDoNotCollide(t *testing.T) {
	w := NewWorldFrom(testParams(1), []Particle{
		still(KindRed, 0, 0, 0),
		still(KindRed, 0.4, 0, 0),
	})

	report := w.Step()

	if report.Collisions != 0 || report.Red != 2 {
		t.Errorf("distance equal to radius sum must not collide: collisions=%d red=%d", report.Collisions, report.Red)
	}
}

// TestMarkedParticleKeepsColliding checks idempotent marking across several pairs in one frame
func TestMarkedParticleKeepsColliding(t *testing.T) {
	w := NewWorldFrom(testParams(1), []Particle{
		still(KindRed, 0, 0, 0),
		still(KindRed, 0.1, 0, 0),
		still(KindBlue, 0.2, 0, 0),
	})

	report := w.Step()

	if report.PairsChecked != 3 {
		t.Errorf("expected 3 pairs checked, got %d", report.PairsChecked)
	}
	if report.Collisions != 3 {
		t.Errorf("expected all 3 pairs colliding, got %d", report.Collisions)
	}
	if len(report.Spawned) != 3 {
		t.Errorf("expected one marker per eliminating collision, got %d", len(report.Spawned))
	}
	if len(report.Eliminated) != 3 {
		t.Errorf("each particle must be eliminated once, got %v", report.Eliminated)
	}
	if report.Red != 0 || report.Blue != 0 {
		t.Errorf("expected total annihilation, got red=%d blue=%d", report.Red, report.Blue)
	}
}

// TestChanceZeroNeverEliminates runs a crowded box where collisions are constant
func TestChanceZeroNeverEliminates(t *testing.T) {
	params := testParams(0)
	params.CubeSize = 3
	params.Red, params.Blue = 40, 40
	w := NewWorld(params)

	collisions := 0
	for i := 0; i < 200; i++ {
		report := w.Step()
		collisions += report.Collisions
		if report.Red != 40 || report.Blue != 40 {
			t.Fatalf("frame %d: population changed to red=%d blue=%d", report.Frame, report.Red, report.Blue)
		}
		if len(report.Eliminated) != 0 || len(report.Spawned) != 0 {
			t.Fatalf("frame %d: eliminations at chance 0", report.Frame)
		}
	}
	if collisions == 0 {
		t.Fatal("test box too sparse, no collisions detected")
	}
	if len(w.Explosions()) != 0 {
		t.Error("no markers expected at chance 0")
	}
}

// TestCollisionDetectionMatchesDistance replays integrate and reflect independently and
// checks that at chance 1 the eliminated set is exactly the set of particles in a close pair
func TestCollisionDetectionMatchesDistance(t *testing.T) {
	params := testParams(1)
	params.CubeSize = 4
	params.Red, params.Blue = 50, 50
	params.Seed = 77
	w := NewWorld(params)

	sawCollision := false
	for frame := 0; frame < 60 && w.Population() > 0; frame++ {
		before := w.AppendAlive(nil)
		for i := range before {
			physics.Integrate(&before[i].Pos, before[i].Vel)
			physics.ReflectAxes(before[i].Pos, &before[i].Vel, w.HalfExtent()-before[i].Radius)
		}

		want := make(map[int]bool)
		pairs := 0
		for i := 0; i < len(before); i++ {
			for j := i + 1; j < len(before); j++ {
				a, b := before[i], before[j]
				if vmath.V3FDist(a.Pos, b.Pos) < a.Radius+b.Radius {
					want[a.ID] = true
					want[b.ID] = true
					pairs++
				}
			}
		}

		report := w.Step()

		if report.Collisions != pairs {
			t.Fatalf("frame %d: detected %d collisions, distance check gives %d", report.Frame, report.Collisions, pairs)
		}
		if len(report.Spawned) != report.Collisions {
			t.Fatalf("frame %d: %d markers for %d collisions", report.Frame, len(report.Spawned), report.Collisions)
		}
		if len(report.Eliminated) != len(want) {
			t.Fatalf("frame %d: eliminated %d, expected %d", report.Frame, len(report.Eliminated), len(want))
		}
		for _, id := range report.Eliminated {
			if !want[id] {
				t.Fatalf("frame %d: particle %d eliminated without a collision", report.Frame, id)
			}
		}
		if pairs > 0 {
			sawCollision = true
		}
	}
	if !sawCollision {
		t.Fatal("no collisions observed, test box too sparse")
	}
}

// TestCountsAndNoResurrection checks count arithmetic and that eliminated IDs never return
func TestCountsAndNoResurrection(t *testing.T) {
	params := testParams(0.5)
	params.CubeSize = 5
	params.Red, params.Blue = 60, 40
	params.Seed = 2024
	w := NewWorld(params)

	dead := make(map[int]bool)
	prevRed, prevBlue := w.Counts()

	for i := 0; i < 300; i++ {
		report := w.Step()

		if report.RedBefore != prevRed || report.BlueBefore != prevBlue {
			t.Fatalf("frame %d: before counts %d/%d, previous frame ended %d/%d",
				report.Frame, report.RedBefore, report.BlueBefore, prevRed, prevBlue)
		}
		if report.Red != report.RedBefore-report.EliminatedOf(w, KindRed) {
			t.Fatalf("frame %d: red arithmetic broken", report.Frame)
		}
		if report.Blue != report.BlueBefore-report.EliminatedOf(w, KindBlue) {
			t.Fatalf("frame %d: blue arithmetic broken", report.Frame)
		}
		if red, blue := w.Counts(); red != report.Red || blue != report.Blue {
			t.Fatalf("frame %d: world counts %d/%d differ from report", report.Frame, red, blue)
		}

		for _, id := range report.Eliminated {
			if dead[id] {
				t.Fatalf("frame %d: particle %d eliminated twice", report.Frame, id)
			}
			dead[id] = true
		}
		for _, p := range w.AppendAlive(nil) {
			if dead[p.ID] {
				t.Fatalf("frame %d: eliminated particle %d back in active set", report.Frame, p.ID)
			}
			if !p.Alive {
				t.Fatalf("frame %d: dead particle %d in active set", report.Frame, p.ID)
			}
		}
		for id := range dead {
			if p, _ := w.Particle(id); p.Alive {
				t.Fatalf("particle %d resurrected", id)
			}
		}

		prevRed, prevBlue = report.Red, report.Blue
	}

	if len(dead) == 0 {
		t.Fatal("expected some eliminations at chance 0.5 in a small box")
	}
}

func TestExplosionLifetimeCountdown(t *testing.T) {
	w := NewWorldFrom(testParams(1), []Particle{
		still(KindBlue, 5, 5, 5),
		still(KindBlue, 5.05, 5, 5),
	})

	w.Step()
	last := w.Explosions()[0].Lifetime

	for frame := 2; frame < 20; frame++ {
		report := w.Step()
		explosions := w.Explosions()
		if len(explosions) == 0 {
			if report.Expired != 1 {
				t.Errorf("expected expiry reported on frame %d", frame)
			}
			// 0.1 lifetime at 1/60 per frame lasts about six frames
			if frame < 6 || frame > 9 {
				t.Errorf("marker expired on frame %d, expected around frame 7", frame)
			}
			return
		}
		cur := explosions[0].Lifetime
		if !vmath.NearlyEqual(last-cur, parameter.ExplosionDecay, 1e-12) {
			t.Fatalf("frame %d: lifetime dropped by %f", frame, last-cur)
		}
		if cur <= 0 {
			t.Fatalf("frame %d: expired marker still tracked", frame)
		}
		last = cur
	}
	t.Fatal("marker never expired")
}

func TestEmptyAndNegativePopulation(t *testing.T) {
	params := testParams(1)
	params.Red, params.Blue = -3, 0
	w := NewWorld(params)

	for i := 0; i < 10; i++ {
		report := w.Step()
		if report.Red != 0 || report.Blue != 0 || report.PairsChecked != 0 {
			t.Fatalf("empty world produced activity: %+v", report)
		}
	}
	if w.Frame() != 10 {
		t.Errorf("expected 10 frames, got %d", w.Frame())
	}
}

func TestNewWorldSpawn(t *testing.T) {
	params := testParams(0.3)
	params.Red, params.Blue = 30, 20
	w := NewWorld(params)

	if red, blue := w.Counts(); red != 30 || blue != 20 {
		t.Fatalf("expected 30/20, got %d/%d", red, blue)
	}

	half := w.HalfExtent()
	for _, p := range w.AppendAlive(nil) {
		if p.Kind == KindRed && p.Radius != 0.2 {
			t.Errorf("red radius %f", p.Radius)
		}
		if p.Kind == KindBlue && p.Radius != 0.1 {
			t.Errorf("blue radius %f", p.Radius)
		}
		for axis := 0; axis < vmath.AxisCount; axis++ {
			if c := *p.Pos.Axis(axis); math.Abs(c) > half {
				t.Errorf("particle %d spawned outside cube: %+v", p.ID, p.Pos)
			}
			if c := *p.Vel.Axis(axis); math.Abs(c) > parameter.SpawnSpeedMax {
				t.Errorf("particle %d spawn velocity out of range: %+v", p.ID, p.Vel)
			}
		}
	}

	if _, ok := w.Particle(-1); ok {
		t.Error("negative id must not resolve")
	}
	if _, ok := w.Particle(50); ok {
		t.Error("out of range id must not resolve")
	}
}

func TestSeedDeterminism(t *testing.T) {
	params := testParams(0.5)
	params.CubeSize = 6
	params.Red, params.Blue = 25, 25
	params.Seed = 99

	a, b := NewWorld(params), NewWorld(params)
	for i := 0; i < 100; i++ {
		ra, rb := a.Step(), b.Step()
		if ra.Red != rb.Red || ra.Blue != rb.Blue || ra.Collisions != rb.Collisions {
			t.Fatalf("frame %d diverged with equal seeds", i+1)
		}
	}
}

func TestNewWorldFromSkipsDead(t *testing.T) {
	dead := still(KindRed, 0, 0, 0)
	dead.Alive = false
	w := NewWorldFrom(testParams(0), []Particle{dead, still(KindBlue, 1, 1, 1)})

	if w.Population() != 1 || w.Count(KindBlue) != 1 {
		t.Fatalf("expected one blue, got population %d", w.Population())
	}
	if p, _ := w.Particle(0); p.Kind != KindBlue || p.ID != 0 {
		t.Errorf("expected reassigned id 0 for the blue particle, got %+v", p)
	}
	if w.Count(Kind(9)) != 0 {
		t.Error("unknown kind must count zero")
	}
}

func TestKindString(t *testing.T) {
	if KindRed.String() != "red" || KindBlue.String() != "blue" || Kind(7).String() != "unknown" {
		t.Error("unexpected kind names")
	}
}
