// Package logsvc provides the core.Logger implementations.
package logsvc

import (
	"io"

	"github.com/trezcool/matokeo/core"
)

// New returns a ConsoleLogger, wrapped by a RollbarLogger when a Rollbar token is configured.
func New(w io.Writer, conf *core.Config) core.Logger {
	console := NewConsoleLogger(w, conf)
	if conf.RollbarToken == "" {
		return console
	}
	return NewRollbarLogger(console, conf)
}
