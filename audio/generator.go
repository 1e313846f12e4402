package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/annihilation/parameter"
)

// ExplosionGenerator streams a decaying noise burst over a low rumble
type ExplosionGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	// One-pole low-pass state, softens raw noise into a thud
	lp float64
}

// NewExplosionGenerator creates an endless burst; wrap with beep.Take to bound it
func NewExplosionGenerator(sr beep.SampleRate, seed int64) *ExplosionGenerator {
	return &ExplosionGenerator{
		sr:   sr,
		seed: seed,
	}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, exponential decay
		attack := math.Min(t/0.004, 1.0)
		envelope := attack * math.Exp(-t*parameter.ExplosionDecayRate)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		g.lp += 0.18 * (noise - g.lp)

		// Rumble pitch drops as the burst fades
		freq := parameter.ExplosionRumbleHz * (0.6 + 0.4*envelope)
		rumble := math.Sin(2 * math.Pi * freq * t)

		sample := parameter.ExplosionGain * envelope * (0.65*g.lp + 0.35*rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}
