package parameter

// Particle populations
const (
	// RedRadius is the collision radius of a red particle
	RedRadius = 0.2
	// BlueRadius is the collision radius of a blue particle
	BlueRadius = 0.1

	// SpawnSpeedMax bounds each velocity component at spawn, drawn from [-SpawnSpeedMax, SpawnSpeedMax]
	SpawnSpeedMax = 0.2
)

// Explosion markers
const (
	// ExplosionRadius is the visual radius of an explosion marker
	ExplosionRadius = 0.5
	// ExplosionLifetime is the initial countdown of a marker
	ExplosionLifetime = 0.1
	// ExplosionDecay is subtracted from every marker's lifetime once per frame
	ExplosionDecay = 1.0 / 60.0
)
