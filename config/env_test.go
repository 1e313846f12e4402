package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(mapLookup(map[string]string{
		"ANNIHILATION_RED":    "12",
		"ANNIHILATION_CHANCE": "0.75",
		"ANNIHILATION_SEED":   "99",
		"UNRELATED":           "x",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	p := cfg.Simulation
	if p.Red != 12 || p.Chance != 0.75 || p.Seed != 99 {
		t.Errorf("got %+v", p)
	}
	missing := cfg.Missing()
	if len(missing) != 1 || missing[0] != KeyBlue {
		t.Errorf("expected only blue missing, got %v", missing)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	tests := map[string]string{
		"ANNIHILATION_BLUE":       "ten",
		"ANNIHILATION_CHANCE":     "half",
		"ANNIHILATION_SEED":       "-4",
		"ANNIHILATION_MAX_FRAMES": "1.5",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			cfg := Default()
			err := cfg.ApplyEnv(mapLookup(map[string]string{key: value}))
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestReadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.env")
	data := "# population\nANNIHILATION_RED=3\nANNIHILATION_BLUE=4\nANNIHILATION_CHANCE=0.5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write env: %v", err)
	}

	lookup, err := ReadEnvFile(path)
	if err != nil {
		t.Fatalf("ReadEnvFile: %v", err)
	}

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if !cfg.Complete() {
		t.Errorf("env file supplies all keys, missing %v", cfg.Missing())
	}
	if cfg.Simulation.Red != 3 || cfg.Simulation.Blue != 4 || cfg.Simulation.Chance != 0.5 {
		t.Errorf("got %+v", cfg.Simulation)
	}
}

func TestReadEnvFileMissing(t *testing.T) {
	if _, err := ReadEnvFile(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Error("missing env file should fail")
	}
}
