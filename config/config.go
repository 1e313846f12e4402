// Package config holds the run parameters and loads them from TOML
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/annihilation/parameter"
)

// ErrInvalidParams marks missing or out-of-range startup parameters; the simulation must not start
var ErrInvalidParams = errors.New("invalid simulation parameters")

// Population keys, shared by the TOML [simulation] table and command-line flags
const (
	KeyRed    = "red"
	KeyBlue   = "blue"
	KeyChance = "chance"
)

// Params is fixed for the duration of a run and passed by value into the world
type Params struct {
	Red      int     `toml:"red"`
	Blue     int     `toml:"blue"`
	Chance   float64 `toml:"chance"`
	CubeSize float64 `toml:"cube_size"`

	FPS       int    `toml:"fps"`
	Seed      uint64 `toml:"seed"`       // 0 = time based
	MaxFrames int    `toml:"max_frames"` // 0 = run until interrupted
}

// Output selects presentation and side outputs, none of which affect physics
type Output struct {
	Headless  bool   `toml:"headless"`
	Telemetry string `toml:"telemetry"` // msgpack status stream path
	Chart     string `toml:"chart"`     // survivor chart PNG path
	Sound     bool   `toml:"sound"`
	Debug     bool   `toml:"debug"`
}

// Config is the full file layout
type Config struct {
	Simulation Params `toml:"simulation"`
	Output     Output `toml:"output"`

	defined map[string]bool
}

// Default returns a config with fixed constants populated and no population set
func Default() Config {
	return Config{
		Simulation: Params{
			CubeSize: parameter.CubeSize,
			FPS:      parameter.TargetFPS,
		},
		Output: Output{
			Sound: true,
		},
		defined: make(map[string]bool),
	}
}

// Load reads path over Default. Unknown keys are rejected
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config read: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data over Default
func Parse(data []byte) (Config, error) {
	cfg := Default()

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config parse: unknown keys: %s", strings.Join(keys, ", "))
	}

	for _, key := range []string{KeyRed, KeyBlue, KeyChance} {
		if meta.IsDefined("simulation", key) {
			cfg.MarkDefined(key)
		}
	}

	return cfg, nil
}

// MarkDefined records that a population key was supplied by some collector
func (c *Config) MarkDefined(key string) {
	if c.defined == nil {
		c.defined = make(map[string]bool)
	}
	c.defined[key] = true
}

// Defined reports whether key was supplied by some collector
func (c Config) Defined(key string) bool {
	return c.defined[key]
}

// Complete reports whether red, blue and chance were all supplied
func (c Config) Complete() bool {
	return c.defined[KeyRed] && c.defined[KeyBlue] && c.defined[KeyChance]
}

// Missing lists population keys not yet supplied
func (c Config) Missing() []string {
	var missing []string
	for _, key := range []string{KeyRed, KeyBlue, KeyChance} {
		if !c.defined[key] {
			missing = append(missing, key)
		}
	}
	return missing
}

// Validate rejects negative counts, chance outside [0,1] and a degenerate cube or frame rate
func (p Params) Validate() error {
	switch {
	case p.Red < 0:
		return fmt.Errorf("%w: red count %d is negative", ErrInvalidParams, p.Red)
	case p.Blue < 0:
		return fmt.Errorf("%w: blue count %d is negative", ErrInvalidParams, p.Blue)
	case math.IsNaN(p.Chance) || p.Chance < 0 || p.Chance > 1:
		return fmt.Errorf("%w: elimination chance %v outside [0,1]", ErrInvalidParams, p.Chance)
	case !(p.CubeSize > 0) || math.IsInf(p.CubeSize, 0):
		return fmt.Errorf("%w: cube size %v must be positive", ErrInvalidParams, p.CubeSize)
	case p.FPS <= 0 || p.FPS > parameter.MaxFPS:
		return fmt.Errorf("%w: fps %d outside [1,%d]", ErrInvalidParams, p.FPS, parameter.MaxFPS)
	case p.MaxFrames < 0:
		return fmt.Errorf("%w: max frames %d is negative", ErrInvalidParams, p.MaxFrames)
	}
	return nil
}

// HalfExtent is the distance from the cube centre to each wall
func (p Params) HalfExtent() float64 {
	return p.CubeSize / 2
}

// FrameInterval is the ticker period for FPS, never below one nanosecond
func (p Params) FrameInterval() time.Duration {
	if p.FPS <= 0 {
		return time.Second
	}
	if d := time.Second / time.Duration(p.FPS); d > 0 {
		return d
	}
	return time.Nanosecond
}

// Reason returns the user-facing part of a parameter error, without the sentinel prefix
func Reason(err error) string {
	msg := err.Error()
	if errors.Is(err, ErrInvalidParams) {
		msg = strings.TrimPrefix(msg, ErrInvalidParams.Error()+": ")
	}
	return msg
}
