// Package logger provides leveled logging for drivecaffeine.
// Warnings and errors are always written to stderr; when verbose mode is
// enabled via the --verbose flag, debug and info messages are written too,
// which is the way to watch individual keep-alive probes.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu      sync.RWMutex
	verbose bool
	log     = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	})
	return l
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log.SetOutput(w)
}

// Debug logs a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	log.Debugf(format, args...)
}

// Section logs a section header if verbose mode is enabled.
func Section(name string) {
	log.WithField("section", name).Debug("===")
}

// Info logs an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	log.Infof(format, args...)
}

// Warn logs a warning.
func Warn(format string, args ...any) {
	log.Warnf(format, args...)
}

// Error logs an error.
func Error(format string, args ...any) {
	log.Errorf(format, args...)
}

// WithDrive returns an entry tagged with the drive root, for adapters that
// log per-drive events.
func WithDrive(drive string) *logrus.Entry {
	return log.WithField("drive", drive)
}
