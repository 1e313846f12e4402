package status

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNotEnoughData is returned when fewer than two frames were recorded
var ErrNotEnoughData = errors.New("not enough frames to chart")

// History keeps survivor counts per frame for the end-of-run chart
type History struct {
	frames []float64
	red    []float64
	blue   []float64
	peak   int
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Emit(r Record) error {
	h.frames = append(h.frames, float64(r.Frame))
	h.red = append(h.red, float64(r.Red))
	h.blue = append(h.blue, float64(r.Blue))
	h.peak = max(h.peak, r.Red, r.Blue)
	return nil
}

// Len returns the number of recorded frames
func (h *History) Len() int {
	return len(h.frames)
}

// RenderPNG draws red and blue survivors against frame number
func (h *History) RenderPNG(w io.Writer) error {
	if len(h.frames) < 2 {
		return ErrNotEnoughData
	}

	graph := chart.Chart{
		Title:  "Survivors",
		Width:  960,
		Height: 360,
		XAxis: chart.XAxis{
			Name:  "frame",
			Range: &chart.ContinuousRange{Min: h.frames[0], Max: h.frames[len(h.frames)-1]},
			ValueFormatter: func(v any) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name: "particles",
			// Explicit range, a flat series otherwise yields a zero-height range
			Range: &chart.ContinuousRange{Min: 0, Max: float64(h.peak + 1)},
			ValueFormatter: func(v any) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "red",
				XValues: h.frames,
				YValues: h.red,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 230, G: 60, B: 60, A: 255}, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "blue",
				XValues: h.frames,
				YValues: h.blue,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 70, G: 120, B: 230, A: 255}, StrokeWidth: 2},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart render: %w", err)
	}
	return nil
}

// WritePNG renders into a new file at path
func (h *History) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart create: %w", err)
	}
	if err := h.RenderPNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
