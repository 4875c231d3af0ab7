package xlog

import "log/slog"

// Log levels, adapted from the upstream log package's level scheme: Trace
// sits one step below Debug, Fatal one step above Error, so both fit into
// slog's existing ordering without a parallel type.
const (
	TraceLevel = slog.LevelDebug - 4
	DebugLevel = slog.LevelDebug
	InfoLevel  = slog.LevelInfo
	WarnLevel  = slog.LevelWarn
	ErrorLevel = slog.LevelError
	FatalLevel = slog.LevelError + 4
)

// Level is a logging priority. Higher levels are more important.
type Level = slog.Level

// replaceLevelName renders the two levels slog has no built-in name for.
func replaceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch level {
	case TraceLevel:
		a.Value = slog.StringValue("TRACE")
	case FatalLevel:
		a.Value = slog.StringValue("FATAL")
	}
	return a
}
