package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/annihilation/audio"
	"github.com/lixenwraith/annihilation/parameter"
	"github.com/lixenwraith/annihilation/render"
	"github.com/lixenwraith/annihilation/simulation"
	"github.com/lixenwraith/annihilation/status"
)

// viewer owns the interactive loop: input, stepping, sound and drawing share one goroutine
type viewer struct {
	screen tcell.Screen
	world  *simulation.World
	scene  *render.Scene
	sink   status.Sink
	sound  *audio.SoundManager
	runID  string

	paused   bool
	fps      float64
	lastTick time.Time
}

func newViewer(screen tcell.Screen, w *simulation.World, sink status.Sink, sound *audio.SoundManager, runID string) *viewer {
	return &viewer{
		screen: screen,
		world:  w,
		scene:  render.NewScene(),
		sink:   sink,
		sound:  sound,
		runID:  runID,
	}
}

// handleEvent applies one terminal event, returns false to quit
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.scene.Camera.Orbit(-parameter.CameraOrbitStep)
		case tcell.KeyRight:
			v.scene.Camera.Orbit(parameter.CameraOrbitStep)
		case tcell.KeyUp:
			v.scene.Camera.Zoom(-parameter.CameraZoomStep)
		case tcell.KeyDown:
			v.scene.Camera.Zoom(parameter.CameraZoomStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'h':
				v.scene.Camera.Orbit(-parameter.CameraOrbitStep)
			case 'l':
				v.scene.Camera.Orbit(parameter.CameraOrbitStep)
			case 'k', '+':
				v.scene.Camera.Zoom(-parameter.CameraZoomStep)
			case 'j', '-':
				v.scene.Camera.Zoom(parameter.CameraZoomStep)
			}
		}
	}
	return true
}

// done reports whether the frame limit has been reached
func (v *viewer) done() bool {
	limit := v.world.Params().MaxFrames
	return limit > 0 && v.world.Frame() >= uint64(limit)
}

// tick advances one frame unless paused or finished, then redraws. A status sink
// error is returned after the frame is drawn
func (v *viewer) tick(now time.Time) error {
	if !v.lastTick.IsZero() {
		if dt := now.Sub(v.lastTick).Seconds(); dt > 0 {
			// Smoothed display rate
			v.fps += (1/dt - v.fps) * 0.1
		}
	}
	v.lastTick = now

	var emitErr error
	if !v.paused && !v.done() {
		report := v.world.Step()
		emitErr = v.sink.Emit(report.Record(v.runID, now))
		if n := len(report.Spawned); n > 0 {
			v.sound.PlayExplosion(n)
		}
	}

	v.scene.Draw(v.screen, v.world, render.HUD{Paused: v.paused || v.done(), FPS: v.fps})
	if emitErr != nil {
		return fmt.Errorf("status: %w", emitErr)
	}
	return nil
}

// run drives the view at the configured frame rate until quit or ctx is done
func (v *viewer) run(ctx context.Context) error {
	inputCh := startInputReader(v.screen)

	ticker := time.NewTicker(v.world.Params().FrameInterval())
	defer ticker.Stop()

	if err := v.tick(time.Now()); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// Drain input non-blocking
		drainInput:
			for {
				select {
				case ev, ok := <-inputCh:
					if !ok || !v.handleEvent(ev) {
						return nil
					}
				default:
					break drainInput
				}
			}
			if err := v.tick(time.Now()); err != nil {
				return err
			}
		}
	}
}

// startInputReader forwards screen events to a channel, closed when the screen finalizes
func startInputReader(screen tcell.Screen) chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			select {
			case ch <- ev:
			default:
			}
		}
	}()
	return ch
}
