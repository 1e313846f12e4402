package simulation

import (
	"context"
	"errors"
	"time"

	"github.com/lixenwraith/annihilation/status"
)

// ErrStop ends Run cleanly when returned by an observer
var ErrStop = errors.New("simulation stopped")

// Observer is called after every frame, on the simulation goroutine
type Observer interface {
	Observe(w *World, report FrameReport) error
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(w *World, report FrameReport) error

func (f ObserverFunc) Observe(w *World, report FrameReport) error {
	return f(w, report)
}

// Record converts a frame report to a status record
func (r FrameReport) Record(runID string, at time.Time) status.Record {
	return status.Record{
		RunID:      runID,
		Frame:      r.Frame,
		Red:        r.Red,
		Blue:       r.Blue,
		Eliminated: len(r.Eliminated),
		Explosions: r.ActiveExplosions,
		Time:       at,
	}
}

// StatusObserver emits each frame's record to sink
func StatusObserver(runID string, sink status.Sink) Observer {
	return ObserverFunc(func(_ *World, report FrameReport) error {
		return sink.Emit(report.Record(runID, time.Now()))
	})
}

// Run steps the world at the configured frame rate until ctx is done, an observer
// returns an error, or MaxFrames frames have run. Pacing is advisory: a slow frame
// delays the next tick instead of queueing catch-up frames
func Run(ctx context.Context, w *World, observers ...Observer) error {
	ticker := time.NewTicker(w.params.FrameInterval())
	defer ticker.Stop()

	for {
		if limit := w.params.MaxFrames; limit > 0 && w.frame >= uint64(limit) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		report := w.Step()
		for _, obs := range observers {
			if err := obs.Observe(w, report); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}
	}
}
