package sdlrpc

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel is the level shared by loggers built with NewDefaultLogger. It can
// be changed at runtime, e.g. by the CLI's `--debug` flag.
var LogLevel = zap.NewAtomicLevelAt(zap.InfoLevel)

// NewDefaultLogger returns a new `*zap.Logger`. If the current terminal is a
// TTY it uses colored console output, otherwise production JSON.
func NewDefaultLogger() (*zap.Logger, error) {
	var config zap.Config
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = LogLevel
	config.EncoderConfig.EncodeTime = iso8601UTCTimeEncoder
	return config.Build()
}

// NewLogger is the constructor used by tooling that needs a logger. Replace
// it to route output elsewhere.
var NewLogger func() (*zap.Logger, error) = NewDefaultLogger

// A UTC variation of ZapCore.ISO8601TimeEncoder with millisecond precision
func iso8601UTCTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000Z"))
}
