package logsvc

import (
	"io"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/trezcool/matokeo/core"
)

// ConsoleLogger writes leveled logs to a writer (stderr in the app).
type ConsoleLogger struct {
	l *log.Logger
}

var _ core.Logger = (*ConsoleLogger)(nil)

func NewConsoleLogger(w io.Writer, conf *core.Config) *ConsoleLogger {
	l := log.New(strings.ToUpper(conf.AppName))
	l.SetOutput(w)
	l.SetHeader("${time_rfc3339} ${level} ${prefix}")
	l.SetLevel(ParseLevel(conf.LogLevel))
	return &ConsoleLogger{l: l}
}

// ParseLevel maps debug|info|warn|error|off to a log level; anything else is INFO.
func ParseLevel(lvl string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

func (c ConsoleLogger) Debug(msg string, args ...interface{}) {
	c.l.Debug(msg)
	for _, arg := range args {
		c.l.Debugf("%+v", arg)
	}
}

func (c ConsoleLogger) Info(msg string, args ...interface{}) {
	c.l.Info(msg)
	for _, arg := range args {
		c.l.Infof("%+v", arg)
	}
}

func (c ConsoleLogger) Warn(msg string, args ...interface{}) {
	c.l.Warn(msg)
	for _, arg := range args {
		c.l.Warnf("%+v", arg)
	}
}

func (c ConsoleLogger) Error(msg string, args ...interface{}) {
	c.l.Error(msg)
	for _, arg := range args {
		c.l.Errorf("%+v", arg)
	}
}

func (c ConsoleLogger) Fatal(msg string, args ...interface{}) {
	for _, arg := range args {
		c.l.Errorf("%+v", arg)
	}
	c.l.Fatal(msg)
}
