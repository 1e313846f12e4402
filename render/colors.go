package render

// Scene palette
var (
	RgbParticleRed  = RGB{255, 80, 80}   // Red population
	RgbParticleBlue = RGB{100, 150, 255} // Blue population
	RgbExplosion    = RGB{255, 220, 60}  // Yellow burst
	RgbExplosionHot = RGB{255, 255, 220} // Burst core at full lifetime

	RgbWall       = RGB{70, 72, 90}    // Semi-transparent wall dots
	RgbEdge       = RGB{140, 140, 160} // Cube edges
	RgbBackground = RGB{26, 27, 38}    // Tokyo Night background

	RgbStatusText = RGB{220, 220, 220}
	RgbStatusDim  = RGB{100, 100, 110}
	RgbPaused     = RGB{255, 200, 50}
)

// depthShade darkens far objects, t=0 nearest, t=1 farthest
func depthShade(c RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return c.Scale(1.0 - 0.45*t)
}
