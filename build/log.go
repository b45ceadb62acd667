// Package build houses the logging backend shared by all subsystems of the
// tool. Diagnostic output goes to stderr so that command results printed on
// stdout stay clean.
package build

import (
	"fmt"
	"os"
	"sort"

	"github.com/btcsuite/btclog"
)

// backendLog is the logging backend all subsystem loggers are created from.
var backendLog = btclog.NewBackend(os.Stderr)

// subLoggers tracks every subsystem logger handed out so their levels can
// be adjusted together.
var subLoggers = make(map[string]btclog.Logger)

// NewSubLogger constructs a new subsystem logger from the shared backend.
// Loggers start at the warning level; SetLogLevels raises or lowers all of
// them at once.
func NewSubLogger(subsystem string) btclog.Logger {
	logger := backendLog.Logger(subsystem)
	logger.SetLevel(btclog.LevelWarn)
	subLoggers[subsystem] = logger

	return logger
}

// SetLogLevels sets the log level of every registered subsystem logger to
// the provided level string.
func SetLogLevels(level string) error {
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("invalid log level: %v", level)
	}

	for _, logger := range subLoggers {
		logger.SetLevel(lvl)
	}

	return nil
}

// SubLoggers returns the names of all registered subsystem loggers in
// sorted order.
func SubLoggers() []string {
	names := make([]string, 0, len(subLoggers))
	for name := range subLoggers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
