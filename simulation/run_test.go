package simulation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/annihilation/config"
	"github.com/lixenwraith/annihilation/status"
)

func fastParams(maxFrames int) config.Params {
	p := testParams(0.5)
	p.FPS = 1000
	p.Red, p.Blue = 5, 5
	p.MaxFrames = maxFrames
	return p
}

func TestRunStopsAtMaxFrames(t *testing.T) {
	w := NewWorld(fastParams(5))

	calls := 0
	err := Run(context.Background(), w, ObserverFunc(func(_ *World, r FrameReport) error {
		calls++
		if r.Frame != uint64(calls) {
			t.Errorf("observer saw frame %d on call %d", r.Frame, calls)
		}
		return nil
	}))

	if err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if calls != 5 || w.Frame() != 5 {
		t.Errorf("expected 5 frames, observer calls=%d world frame=%d", calls, w.Frame())
	}
}

// TestRunExtremeFrameRate checks pacing floors at one nanosecond instead of a zero ticker
func TestRunExtremeFrameRate(t *testing.T) {
	p := fastParams(1)
	p.FPS = 2_000_000_000
	w := NewWorld(p)

	if err := Run(context.Background(), w); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if w.Frame() != 1 {
		t.Errorf("expected 1 frame, got %d", w.Frame())
	}
}

func TestRunCancelled(t *testing.T) {
	w := NewWorld(fastParams(0))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, w, ObserverFunc(func(_ *World, r FrameReport) error {
			if r.Frame == 3 {
				cancel()
			}
			return nil
		}))
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunObserverStop(t *testing.T) {
	w := NewWorld(fastParams(0))

	err := Run(context.Background(), w, ObserverFunc(func(_ *World, r FrameReport) error {
		if r.Frame == 3 {
			return ErrStop
		}
		return nil
	}))

	if err != nil {
		t.Fatalf("ErrStop should end Run cleanly, got %v", err)
	}
	if w.Frame() != 3 {
		t.Errorf("expected stop after frame 3, got %d", w.Frame())
	}
}

func TestRunObserverError(t *testing.T) {
	w := NewWorld(fastParams(0))
	boom := errors.New("boom")

	err := Run(context.Background(), w, ObserverFunc(func(*World, FrameReport) error {
		return boom
	}))

	if !errors.Is(err, boom) {
		t.Errorf("expected observer error, got %v", err)
	}
	if w.Frame() != 1 {
		t.Errorf("expected stop after first frame, got %d", w.Frame())
	}
}

// TestStatusObserverCounts verifies every frame reaches the sink with post-removal counts
func TestStatusObserverCounts(t *testing.T) {
	params := fastParams(20)
	params.CubeSize = 3
	params.Chance = 1
	params.Red, params.Blue = 20, 20
	w := NewWorld(params)

	var records []status.Record
	sink := status.SinkFunc(func(r status.Record) error {
		records = append(records, r)
		return nil
	})

	var reports []FrameReport
	collect := ObserverFunc(func(_ *World, r FrameReport) error {
		reports = append(reports, r)
		return nil
	})

	if err := Run(context.Background(), w, collect, StatusObserver("run-1", sink)); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	if len(records) != 20 {
		t.Fatalf("expected 20 records, got %d", len(records))
	}
	for i, rec := range records {
		if rec.RunID != "run-1" {
			t.Errorf("record %d missing run id", i)
		}
		if rec.Red != reports[i].Red || rec.Blue != reports[i].Blue {
			t.Errorf("record %d counts %d/%d, report %d/%d", i, rec.Red, rec.Blue, reports[i].Red, reports[i].Blue)
		}
		if rec.Eliminated != len(reports[i].Eliminated) {
			t.Errorf("record %d eliminated mismatch", i)
		}
	}
	last := records[len(records)-1]
	if red, blue := w.Counts(); last.Red != red || last.Blue != blue {
		t.Errorf("last record %d/%d, world %d/%d", last.Red, last.Blue, red, blue)
	}
}
