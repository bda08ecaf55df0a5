package logging

import "go.uber.org/zap"

// Level is a severity channel of the console sink.
type Level string

const (
	// LevelLog is the informational channel.
	LevelLog Level = "log"
	// LevelWarn is the warning channel.
	LevelWarn Level = "warn"
)

// Print writes msg to logger on the given channel: LevelLog as info, LevelWarn as warning.
// Print is a no-op if logger is nil or level is not a known channel.
func Print(logger *zap.SugaredLogger, level Level, msg string) {
	if logger == nil {
		return
	}

	switch level {
	case LevelLog:
		logger.Info(msg)
	case LevelWarn:
		logger.Warn(msg)
	}
}
