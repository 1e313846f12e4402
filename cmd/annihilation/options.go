package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/annihilation/config"
)

// loadConfig layers defaults, the -config TOML file, the -env dotenv file, the
// environment seen through env and finally any flags given on the command line
func loadConfig(args []string, errOut io.Writer, env config.LookupFunc) (config.Config, error) {
	fs := flag.NewFlagSet("annihilation", flag.ContinueOnError)
	fs.SetOutput(errOut)

	def := config.Default()
	var (
		configPath = fs.String("config", "", "TOML file with [simulation] and [output] tables")
		envPath    = fs.String("env", "", "dotenv file with ANNIHILATION_* overrides")
		red        = fs.Int(config.KeyRed, 0, "number of red particles")
		blue       = fs.Int(config.KeyBlue, 0, "number of blue particles")
		chance     = fs.Float64(config.KeyChance, 0, "elimination chance per collision, 0..1")
		cubeSize   = fs.Float64("cube-size", def.Simulation.CubeSize, "cube edge length")
		seed       = fs.Uint64("seed", 0, "random seed, 0 for time based")
		fps        = fs.Int("fps", def.Simulation.FPS, "frames per second")
		maxFrames  = fs.Int("max-frames", 0, "stop after this many frames, 0 to run until interrupted")
		headless   = fs.Bool("headless", false, "print status lines instead of the 3D view")
		telemetry  = fs.String("telemetry", "", "write msgpack status records to this file")
		chart      = fs.String("chart", "", "write a survivor chart PNG to this file on exit")
		sound      = fs.Bool("sound", def.Output.Sound, "play explosion sounds")
		debug      = fs.Bool("debug", false, "write debug log to logs/annihilation.log")
	)

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}
	if fs.NArg() > 0 {
		return config.Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := def
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if *envPath != "" {
		lookup, err := config.ReadEnvFile(*envPath)
		if err != nil {
			return config.Config{}, err
		}
		if err := cfg.ApplyEnv(lookup); err != nil {
			return config.Config{}, err
		}
	}
	if env != nil {
		if err := cfg.ApplyEnv(env); err != nil {
			return config.Config{}, err
		}
	}

	// Only flags actually given override the layers above
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case config.KeyRed:
			cfg.Simulation.Red = *red
			cfg.MarkDefined(config.KeyRed)
		case config.KeyBlue:
			cfg.Simulation.Blue = *blue
			cfg.MarkDefined(config.KeyBlue)
		case config.KeyChance:
			cfg.Simulation.Chance = *chance
			cfg.MarkDefined(config.KeyChance)
		case "cube-size":
			cfg.Simulation.CubeSize = *cubeSize
		case "seed":
			cfg.Simulation.Seed = *seed
		case "fps":
			cfg.Simulation.FPS = *fps
		case "max-frames":
			cfg.Simulation.MaxFrames = *maxFrames
		case "headless":
			cfg.Output.Headless = *headless
		case "telemetry":
			cfg.Output.Telemetry = *telemetry
		case "chart":
			cfg.Output.Chart = *chart
		case "sound":
			cfg.Output.Sound = *sound
		case "debug":
			cfg.Output.Debug = *debug
		}
	})

	return cfg, nil
}
