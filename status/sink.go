package status

import (
	"log"
)

// Sink receives every frame record in order
type Sink interface {
	Emit(Record) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(Record) error

func (f SinkFunc) Emit(r Record) error {
	return f(r)
}

// Fanout forwards to several sinks. A sink that fails is logged once and dropped,
// the remaining sinks keep receiving
type Fanout struct {
	sinks []Sink
}

// NewFanout ignores nil sinks
func NewFanout(sinks ...Sink) *Fanout {
	f := &Fanout{}
	for _, s := range sinks {
		f.Add(s)
	}
	return f
}

// Add appends a sink, nil is ignored
func (f *Fanout) Add(s Sink) {
	if s == nil {
		return
	}
	f.sinks = append(f.sinks, s)
}

// Len returns the number of sinks still attached
func (f *Fanout) Len() int {
	return len(f.sinks)
}

// Emit never fails; failing sinks are removed
func (f *Fanout) Emit(r Record) error {
	kept := f.sinks[:0]
	for _, s := range f.sinks {
		if err := s.Emit(r); err != nil {
			log.Printf("status sink %T dropped at frame %d: %v", s, r.Frame, err)
			continue
		}
		kept = append(kept, s)
	}
	// Clear dropped tail so removed sinks can be collected
	for i := len(kept); i < len(f.sinks); i++ {
		f.sinks[i] = nil
	}
	f.sinks = kept
	return nil
}
