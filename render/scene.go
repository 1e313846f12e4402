package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/annihilation/parameter"
	"github.com/lixenwraith/annihilation/simulation"
	"github.com/lixenwraith/annihilation/vmath"
)

// HUD carries view state that is not part of the world
type HUD struct {
	Paused bool
	FPS    float64
}

type drawKind uint8

const (
	drawParticle drawKind = iota
	drawExplosion
)

type drawable struct {
	kind   drawKind
	proj   Projected
	radius float64
	color  RGB
	fade   float64
}

// Scene draws the cube, particles, explosion markers and HUD onto a tcell screen
type Scene struct {
	Camera *Camera

	half  float64
	walls []vmath.Vec3F
	edges []vmath.Vec3F

	// Per-frame scratch
	particles []simulation.Particle
	drawables []drawable
}

func NewScene() *Scene {
	return &Scene{Camera: NewCamera()}
}

// Draw renders one frame and shows it
func (s *Scene) Draw(screen tcell.Screen, w *simulation.World, hud HUD) {
	screen.Clear()
	width, height := screen.Size()
	viewH := height - parameter.HUDRows
	if width <= 0 || viewH <= 0 {
		screen.Show()
		return
	}

	if half := w.HalfExtent(); half != s.half {
		s.buildBox(half)
	}
	s.Camera.Update(width, viewH)

	fill(screen, 0, 0, width, viewH, RgbBackground)
	s.drawBox(screen, width, viewH)
	s.drawBodies(screen, w, width, viewH)
	s.drawHUD(screen, w, hud, width, height)

	screen.Show()
}

// buildBox samples the five visible walls and twelve edges; the +Z face stays open for viewing
func (s *Scene) buildBox(half float64) {
	s.half = half
	s.walls = s.walls[:0]
	s.edges = s.edges[:0]

	const wallCells = 10
	step := 2 * half / wallCells
	for i := 1; i < wallCells; i++ {
		for j := 1; j < wallCells; j++ {
			u := -half + float64(i)*step
			v := -half + float64(j)*step
			s.walls = append(s.walls,
				vmath.Vec3F{X: u, Y: v, Z: -half}, // back
				vmath.Vec3F{X: -half, Y: u, Z: v}, // left
				vmath.Vec3F{X: half, Y: u, Z: v},  // right
				vmath.Vec3F{X: u, Y: -half, Z: v}, // bottom
				vmath.Vec3F{X: u, Y: half, Z: v},  // top
			)
		}
	}

	const edgeSamples = 80
	corners := [2]float64{-half, half}
	for _, a := range corners {
		for _, b := range corners {
			for k := 0; k <= edgeSamples; k++ {
				t := -half + 2*half*float64(k)/edgeSamples
				s.edges = append(s.edges,
					vmath.Vec3F{X: t, Y: a, Z: b},
					vmath.Vec3F{X: a, Y: t, Z: b},
					vmath.Vec3F{X: a, Y: b, Z: t},
				)
			}
		}
	}
}

func (s *Scene) drawBox(screen tcell.Screen, width, viewH int) {
	wallStyle := tcell.StyleDefault.Background(RgbBackground.Tcell()).Foreground(RgbWall.Tcell())
	for _, p := range s.walls {
		if pr, ok := s.Camera.Project(p); ok {
			setCell(screen, pr.X, pr.Y, width, viewH, '·', wallStyle)
		}
	}

	edgeStyle := tcell.StyleDefault.Background(RgbBackground.Tcell()).Foreground(RgbEdge.Tcell())
	for _, p := range s.edges {
		if pr, ok := s.Camera.Project(p); ok {
			setCell(screen, pr.X, pr.Y, width, viewH, '∙', edgeStyle)
		}
	}
}

// drawBodies paints particles and markers far to near
func (s *Scene) drawBodies(screen tcell.Screen, w *simulation.World, width, viewH int) {
	s.drawables = s.drawables[:0]
	s.particles = w.AppendAlive(s.particles[:0])

	for _, p := range s.particles {
		pr, ok := s.Camera.Project(p.Pos)
		if !ok {
			continue
		}
		color := RgbParticleRed
		if p.Kind == simulation.KindBlue {
			color = RgbParticleBlue
		}
		s.drawables = append(s.drawables, drawable{kind: drawParticle, proj: pr, radius: p.Radius, color: color})
	}
	for _, e := range w.Explosions() {
		pr, ok := s.Camera.Project(e.Pos)
		if !ok {
			continue
		}
		s.drawables = append(s.drawables, drawable{kind: drawExplosion, proj: pr, radius: e.Radius, color: RgbExplosion, fade: e.Fade()})
	}

	sort.Slice(s.drawables, func(i, j int) bool {
		return s.drawables[i].proj.Depth > s.drawables[j].proj.Depth
	})

	reach := s.half * math.Sqrt(3)
	near := s.Camera.Distance - reach
	span := 2 * reach
	for _, d := range s.drawables {
		depthT := (d.proj.Depth - near) / span
		switch d.kind {
		case drawParticle:
			drawSphere(screen, d, depthShade(d.color, depthT), width, viewH)
		case drawExplosion:
			drawBurst(screen, d, width, viewH)
		}
	}
}

// drawSphere fills a shaded ellipse, or a single glyph when smaller than a cell
func drawSphere(screen tcell.Screen, d drawable, color RGB, width, viewH int) {
	ry := d.radius * d.proj.Scale
	rx := ry * parameter.CellAspect
	if ry < 0.5 {
		style := tcell.StyleDefault.Background(RgbBackground.Tcell()).Foreground(color.Tcell())
		glyph := '•'
		if rx >= 0.5 {
			glyph = '●'
		}
		setCell(screen, d.proj.X, d.proj.Y, width, viewH, glyph, style)
		return
	}

	minX, maxX := int(math.Floor(d.proj.X-rx)), int(math.Ceil(d.proj.X+rx))
	minY, maxY := int(math.Floor(d.proj.Y-ry)), int(math.Ceil(d.proj.Y+ry))
	for y := max(minY, 0); y <= min(maxY, viewH-1); y++ {
		for x := max(minX, 0); x <= min(maxX, width-1); x++ {
			nx := (float64(x) + 0.5 - d.proj.X) / rx
			ny := (float64(y) + 0.5 - d.proj.Y) / ry
			distSq := nx*nx + ny*ny
			if distSq > 1 {
				continue
			}
			// Light from upper left, rim darker
			nz := math.Sqrt(1 - distSq)
			light := 0.45 + 0.55*vmath.Clamp(-0.4*nx-0.5*ny+0.75*nz, 0, 1)
			screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(color.Scale(light).Tcell()))
		}
	}
}

// drawBurst draws a fading star field around the marker
func drawBurst(screen tcell.Screen, d drawable, width, viewH int) {
	color := Lerp(RgbExplosion, RgbExplosionHot, d.fade)
	style := tcell.StyleDefault.Background(RgbBackground.Tcell()).Foreground(color.Tcell()).Bold(true)

	ry := d.radius * d.proj.Scale
	rx := ry * parameter.CellAspect
	if ry < 0.5 {
		setCell(screen, d.proj.X, d.proj.Y, width, viewH, '*', style)
		return
	}

	minX, maxX := int(math.Floor(d.proj.X-rx)), int(math.Ceil(d.proj.X+rx))
	minY, maxY := int(math.Floor(d.proj.Y-ry)), int(math.Ceil(d.proj.Y+ry))
	for y := max(minY, 0); y <= min(maxY, viewH-1); y++ {
		for x := max(minX, 0); x <= min(maxX, width-1); x++ {
			nx := (float64(x) + 0.5 - d.proj.X) / rx
			ny := (float64(y) + 0.5 - d.proj.Y) / ry
			distSq := nx*nx + ny*ny
			if distSq > 1 {
				continue
			}
			glyph := '*'
			if distSq > 0.5 {
				glyph = '·'
			}
			screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (s *Scene) drawHUD(screen tcell.Screen, w *simulation.World, hud HUD, width, height int) {
	statusY := height - 2
	controlY := height - 1
	base := tcell.StyleDefault.Background(RgbBackground.Tcell())
	text := base.Foreground(RgbStatusText.Tcell())
	dim := base.Foreground(RgbStatusDim.Tcell())

	fill(screen, 0, max(statusY, 0), width, height, RgbBackground)

	red, blue := w.Counts()
	x := 1
	x = writeStr(screen, x, statusY, "Red particles: ", text)
	x = writeStr(screen, x, statusY, fmt.Sprint(red), base.Foreground(RgbParticleRed.Tcell()).Bold(true))
	x = writeStr(screen, x, statusY, ", Blue particles: ", text)
	x = writeStr(screen, x, statusY, fmt.Sprint(blue), base.Foreground(RgbParticleBlue.Tcell()).Bold(true))
	writeStr(screen, x+3, statusY, fmt.Sprintf("frame %d  bursts %d  %.0f fps", w.Frame(), len(w.Explosions()), hud.FPS), dim)

	if hud.Paused {
		writeStr(screen, width-len(parameter.StatusPaused)-1, statusY, parameter.StatusPaused, base.Foreground(RgbPaused.Tcell()))
	}

	writeStr(screen, 1, controlY, parameter.StatusKeys, dim)
}

// setCell writes one glyph at rounded float coordinates, clipped to the view
func setCell(screen tcell.Screen, fx, fy float64, width, viewH int, r rune, style tcell.Style) {
	x, y := int(math.Floor(fx)), int(math.Floor(fy))
	if x < 0 || y < 0 || x >= width || y >= viewH {
		return
	}
	screen.SetContent(x, y, r, nil, style)
}

func fill(screen tcell.Screen, x0, y0, x1, y1 int, bg RGB) {
	style := tcell.StyleDefault.Background(bg.Tcell())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// writeStr writes s from x and returns the column after the last rune
func writeStr(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
