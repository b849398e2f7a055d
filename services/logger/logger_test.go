package logsvc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/matokeo/core"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Lvl{
		"debug":   log.DEBUG,
		" INFO ":  log.INFO,
		"warn":    log.WARN,
		"warning": log.WARN,
		"error":   log.ERROR,
		"off":     log.OFF,
		"":        log.INFO,
		"loud":    log.INFO,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, &core.Config{AppName: "test", LogLevel: "warn"})

	logger.Info("hidden")
	logger.Warn("shown", errors.New("some cause"))
	logger.Error("failed", map[string]interface{}{"kind": "store unavailable"})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "some cause")
	assert.Contains(t, out, "store unavailable")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	if _, ok := New(&buf, &core.Config{LogLevel: "info"}).(*ConsoleLogger); !ok {
		t.Error("New() without a rollbar token should be a *ConsoleLogger")
	}

	rl, ok := New(&buf, &core.Config{LogLevel: "info", RollbarToken: "token", Env: "TEST"}).(*RollbarLogger)
	if !ok {
		t.Fatal("New() with a rollbar token should be a *RollbarLogger")
	}
	rl.Enable(false)
	rl.Info("through rollbar")
	rl.Close()
	assert.Contains(t, buf.String(), "through rollbar")
}
