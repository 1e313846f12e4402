// Package status emits one record per simulation frame to console, log, telemetry and chart sinks
package status

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record is the per-frame status line in structured form
type Record struct {
	RunID      string    `msgpack:"run"`
	Frame      uint64    `msgpack:"frame"`
	Red        int       `msgpack:"red"`
	Blue       int       `msgpack:"blue"`
	Eliminated int       `msgpack:"eliminated"`
	Explosions int       `msgpack:"explosions"`
	Time       time.Time `msgpack:"time"`
}

// Line formats survivor counts as a plain status line
func (r Record) Line() string {
	return fmt.Sprintf("Red particles: %d, Blue particles: %d", r.Red, r.Blue)
}

// NewRunID returns a random identifier stamped on every record of one run
func NewRunID() string {
	return uuid.NewString()
}
