// Package xlog provides the leveled, structured logging this module's
// binaries use for decode and run diagnostics on stderr, adapted from
// the upstream log package down to the pieces a CLI tool needs: no custom
// console handler, no caller info, just slog with a text handler and a
// dynamic level.
package xlog

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger provides fast, leveled, structured logging. All methods are safe
// for concurrent use.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// Config configures a new Logger.
type Config struct {
	Level  Level
	Output io.Writer
}

// New returns a Logger at InfoLevel writing to stderr, the default for
// cmd/disasm and cmd/sim diagnostics (decoded instructions themselves go
// to stdout, untouched by this package).
func New() *Logger {
	return NewWithConfig(Config{Level: InfoLevel})
}

// NewWithConfig creates a Logger for the given config.
func NewWithConfig(cfg Config) *Logger {
	level := &slog.LevelVar{}
	level.Set(cfg.Level)

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevelName,
	})

	return &Logger{logger: slog.New(handler), level: level}
}

// With creates a child logger carrying additional structured fields.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...), level: l.level}
}

// SetLevel alters the minimum level this logger emits.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(level)
}

func (l *Logger) Trace(msg string, args ...any) { l.log(TraceLevel, msg, args...) }
func (l *Logger) Debug(msg string, args ...any) { l.log(DebugLevel, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log(InfoLevel, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(WarnLevel, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log(ErrorLevel, msg, args...) }

// Fatal logs at FatalLevel, then terminates the process.
func (l *Logger) Fatal(msg string, args ...any) {
	l.log(FatalLevel, msg, args...)
	fatalExitFunc()
}

func (l *Logger) log(level Level, msg string, args ...any) {
	l.logger.Log(context.Background(), level, msg, args...)
}

// fatalExitFunc is swapped out in tests so Fatal doesn't kill the test binary.
var fatalExitFunc = func() { os.Exit(1) }
