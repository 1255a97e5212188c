// internal/logging/logging.go

// Package logging builds the zap logger the CLI reports through.
// Diagnostics (silent-default warnings, skipped sites) go to stderr
// so result streams on stdout stay machine-parseable.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger writing console output to w. debug
// lowers the level to Debug; quiet raises it to Error. quiet wins.
func New(w io.Writer, debug, quiet bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	if quiet {
		level = zapcore.ErrorLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "" // no timestamps on CLI diagnostics
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}
