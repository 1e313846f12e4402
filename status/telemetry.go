package status

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Telemetry appends msgpack-encoded records to a stream, one value per frame
type Telemetry struct {
	enc    *msgpack.Encoder
	closer io.Closer
}

// NewTelemetry encodes onto w; Close is a no-op unless w came from CreateTelemetry
func NewTelemetry(w io.Writer) *Telemetry {
	return &Telemetry{enc: msgpack.NewEncoder(w)}
}

// CreateTelemetry truncates or creates path
func CreateTelemetry(path string) (*Telemetry, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry create: %w", err)
	}
	t := NewTelemetry(f)
	t.closer = f
	return t, nil
}

func (t *Telemetry) Emit(r Record) error {
	if err := t.enc.Encode(&r); err != nil {
		return fmt.Errorf("telemetry encode: %w", err)
	}
	return nil
}

func (t *Telemetry) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

// ReadTelemetry decodes every record until EOF
func ReadTelemetry(r io.Reader) ([]Record, error) {
	dec := msgpack.NewDecoder(r)
	var records []Record
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("telemetry decode at record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
}
