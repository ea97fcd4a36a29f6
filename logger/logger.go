// Package logger provides the structured logger threaded through the
// compiler pipeline, mirroring the shape of the teacher's gnark/logger
// package (a single shared zerolog.Logger reached via Logger(), rather than
// ad hoc fmt.Println calls scattered through the compile path).
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
)

// Logger returns the package-level logger used throughout the compiler.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return &log
}

// SetOutput redirects the logger's output (for example to a file or to
// io.Discard in tests).
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Output(w)
}

// SetLevel adjusts the minimum logged level.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Level(level)
}

// Disable silences all logging, equivalent to SetLevel(zerolog.Disabled).
func Disable() {
	SetLevel(zerolog.Disabled)
}
