package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "annihilation.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging redirects the standard logger to logs/annihilation.log when debug is set,
// rotating an oversized file first. Without debug all log output is discarded so the
// terminal view stays clean. The returned file is nil when logging is off
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("annihilation-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "log rotation: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
