package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/annihilation/audio"
	"github.com/lixenwraith/annihilation/config"
	"github.com/lixenwraith/annihilation/form"
	"github.com/lixenwraith/annihilation/simulation"
	"github.com/lixenwraith/annihilation/status"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitInput   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// activeScreen is reset by the crash handler
var activeScreen tcell.Screen

func run(args []string, stdout, stderr io.Writer) (code int) {
	// Panic Recovery: Ensure terminal is reset even if the simulation crashes
	defer func() {
		if r := recover(); r != nil {
			if activeScreen != nil {
				activeScreen.Fini()
			}
			fmt.Fprintf(stderr, "\n\x1b[31mANNIHILATION CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = exitFailure
		}
	}()

	cfg, err := loadConfig(args, stderr, config.ProcessEnv())
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return abort(stderr, err)
	}

	if logFile := setupLogging(cfg.Output.Debug); logFile != nil {
		defer logFile.Close()
	}

	runID := status.NewRunID()
	log.Printf("run %s: config %+v", runID, cfg.Simulation)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Output.Headless {
		return runHeadless(ctx, cfg, runID, stdout, stderr)
	}
	return runInteractive(ctx, cfg, runID, stdout, stderr)
}

// abort reports unusable input; the simulation is never started
func abort(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Simulation aborted due to invalid input: %s\n", config.Reason(err))
	return exitInput
}

// requireParams checks that the population was fully supplied and is in range
func requireParams(cfg config.Config) error {
	if !cfg.Complete() {
		return fmt.Errorf("%w: missing %s", config.ErrInvalidParams, strings.Join(cfg.Missing(), ", "))
	}
	return cfg.Simulation.Validate()
}

func runHeadless(ctx context.Context, cfg config.Config, runID string, stdout, stderr io.Writer) int {
	if err := requireParams(cfg); err != nil {
		return abort(stderr, err)
	}

	out, err := openOutputs(cfg.Output, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "output setup: %v\n", err)
		return exitFailure
	}

	w := simulation.NewWorld(cfg.Simulation)
	runErr := simulation.Run(ctx, w, simulation.StatusObserver(runID, out.fanout))
	closeErr := out.Close()

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(stderr, "simulation: %v\n", runErr)
		return exitFailure
	}
	if closeErr != nil {
		fmt.Fprintf(stderr, "output close: %v\n", closeErr)
		return exitFailure
	}
	log.Printf("run %s finished at frame %d", runID, w.Frame())
	return exitOK
}

func runInteractive(ctx context.Context, cfg config.Config, runID string, stdout, stderr io.Writer) int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize terminal: %v\n", err)
		return exitFailure
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(stderr, "Failed to initialize terminal: %v\n", err)
		return exitFailure
	}
	activeScreen = screen
	finished := false
	fini := func() {
		if !finished {
			finished = true
			screen.Fini()
		}
	}
	defer fini()

	params := cfg.Simulation
	if !cfg.Complete() {
		params, err = form.Run(screen, cfg)
		if err != nil {
			fini()
			return abort(stderr, err)
		}
	} else if err := requireParams(cfg); err != nil {
		fini()
		return abort(stderr, err)
	}

	out, err := openOutputs(cfg.Output, nil)
	if err != nil {
		fini()
		fmt.Fprintf(stderr, "output setup: %v\n", err)
		return exitFailure
	}

	sound := audio.NewSoundManager()
	if cfg.Output.Sound {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the simulation runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer sound.Cleanup()

	w := simulation.NewWorld(params)
	v := newViewer(screen, w, out.fanout, sound, runID)
	runErr := v.run(ctx)

	fini()
	red, blue := w.Counts()
	fmt.Fprintf(stdout, "Red particles: %d, Blue particles: %d (frame %d)\n", red, blue, w.Frame())

	if err := out.Close(); err != nil {
		fmt.Fprintf(stderr, "output close: %v\n", err)
		return exitFailure
	}
	if runErr != nil {
		fmt.Fprintf(stderr, "simulation: %v\n", runErr)
		return exitFailure
	}
	log.Printf("run %s finished at frame %d", runID, w.Frame())
	return exitOK
}
