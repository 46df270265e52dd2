package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCliLogger creates a logger for command line use.
//
// Info (and Debug when verbose) messages go to stdout, warnings and errors
// to stderr. Only the message and its fields are printed, no level or time.
func NewCliLogger(stdout io.Writer, stderr io.Writer, verbose bool) *zap.Logger {
	minLevel := zapcore.InfoLevel
	if verbose {
		minLevel = zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		stdoutCore(stdout, minLevel),
		stderrCore(stderr),
	}

	return zap.New(zapcore.NewTee(cores...))
}

func stdoutCore(stdout io.Writer, minLevel zapcore.Level) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= minLevel && l < zapcore.WarnLevel
	})
	return zapcore.NewCore(cliEncoder(), zapcore.AddSync(stdout), levels)
}

func stderrCore(stderr io.Writer) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.WarnLevel
	})
	return zapcore.NewCore(cliEncoder(), zapcore.AddSync(stderr), levels)
}

func cliEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "message",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
	})
}
