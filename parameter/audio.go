package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration sizes the speaker buffer, sets output latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Explosion Sound
const (
	// ExplosionSoundDuration is the length of one burst
	ExplosionSoundDuration = 300 * time.Millisecond
	// ExplosionSoundGap is the minimum interval between bursts, a mass annihilation frame plays once
	ExplosionSoundGap = 80 * time.Millisecond
	// ExplosionRumbleHz is the low tone mixed under the noise
	ExplosionRumbleHz = 70.0
	// ExplosionDecayRate is the exponential envelope rate per second
	ExplosionDecayRate = 9.0
	// ExplosionGain scales the final sample into [-1, 1]
	ExplosionGain = 0.6
)
