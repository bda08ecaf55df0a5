package logging

import (
	"go.uber.org/zap/zapcore"
	"os"
)

// Config defines Logging configuration.
type Config struct {
	Level  zapcore.Level `yaml:"level" default:"info"`
	Output string        `yaml:"output"`

	// Options map logger names, e.g. snake_cased class names, to their own log level.
	Options `yaml:"options"`
}

// Validate checks constraints in the supplied Config configuration and returns an error if they are violated.
// Also configures the log output if it is not configured:
// systemd-journald is used when running under systemd, otherwise stderr.
func (c *Config) Validate() error {
	if c.Output == "" {
		if _, ok := os.LookupEnv("NOTIFY_SOCKET"); ok {
			c.Output = JOURNAL
		} else {
			c.Output = CONSOLE
		}
	}

	return AssertOutput(c.Output)
}
