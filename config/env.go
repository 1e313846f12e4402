package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces environment overrides, e.g. ANNIHILATION_RED
const EnvPrefix = "ANNIHILATION_"

// LookupFunc resolves one variable, shaped like os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ReadEnvFile parses a dotenv file without touching the process environment
func ReadEnvFile(path string) (LookupFunc, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("env file: %w", err)
	}
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}, nil
}

// ProcessEnv looks variables up in the process environment
func ProcessEnv() LookupFunc {
	return os.LookupEnv
}

// ApplyEnv overrides simulation fields from prefixed variables. Population keys
// found this way count as supplied
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	ints := []struct {
		name string
		dst  *int
		key  string
	}{
		{"RED", &c.Simulation.Red, KeyRed},
		{"BLUE", &c.Simulation.Blue, KeyBlue},
		{"FPS", &c.Simulation.FPS, ""},
		{"MAX_FRAMES", &c.Simulation.MaxFrames, ""},
	}
	for _, f := range ints {
		raw, ok := lookup(EnvPrefix + f.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a whole number", ErrInvalidParams, EnvPrefix, f.name, raw)
		}
		*f.dst = n
		if f.key != "" {
			c.MarkDefined(f.key)
		}
	}

	if raw, ok := lookup(EnvPrefix + "CHANCE"); ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%w: %sCHANCE=%q is not a number", ErrInvalidParams, EnvPrefix, raw)
		}
		c.Simulation.Chance = v
		c.MarkDefined(KeyChance)
	}

	if raw, ok := lookup(EnvPrefix + "SEED"); ok {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q is not an unsigned integer", ErrInvalidParams, EnvPrefix, raw)
		}
		c.Simulation.Seed = v
	}

	return nil
}
