package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/annihilation/config"
	"github.com/lixenwraith/annihilation/status"
)

// outputs bundles the status sinks of one run
type outputs struct {
	fanout    *status.Fanout
	telemetry *status.Telemetry
	history   *status.History
	chartPath string
}

// openOutputs builds the sink fanout. console receives styled status lines; when nil
// the lines go to the debug log instead
func openOutputs(cfg config.Output, console io.Writer) (*outputs, error) {
	o := &outputs{fanout: status.NewFanout()}

	if console != nil {
		o.fanout.Add(status.NewConsole(console))
	} else {
		o.fanout.Add(status.NewLogger(log.Default()))
	}

	if cfg.Telemetry != "" {
		t, err := status.CreateTelemetry(cfg.Telemetry)
		if err != nil {
			return nil, err
		}
		o.telemetry = t
		o.fanout.Add(t)
	}

	if cfg.Chart != "" {
		o.history = status.NewHistory()
		o.chartPath = cfg.Chart
		o.fanout.Add(o.history)
	}

	return o, nil
}

// Close flushes the telemetry stream and writes the chart
func (o *outputs) Close() error {
	var errs []error
	if o.telemetry != nil {
		if err := o.telemetry.Close(); err != nil {
			errs = append(errs, fmt.Errorf("telemetry: %w", err))
		}
	}
	if o.history != nil {
		err := o.history.WritePNG(o.chartPath)
		switch {
		case errors.Is(err, status.ErrNotEnoughData):
			log.Printf("chart skipped: %v", err)
		case err != nil:
			errs = append(errs, fmt.Errorf("chart: %w", err))
		default:
			log.Printf("chart written to %s", o.chartPath)
		}
	}
	return errors.Join(errs...)
}
