package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
	"sync"
)

// Outputs of Logging.
const (
	CONSOLE = "console"
	JOURNAL = "systemd-journald"
)

// Options map logger names to their own log level.
type Options map[string]zapcore.Level

// coreFactory builds the core of a logger of the Logging named identifier.
// The core must only enable the levels enab enables.
type coreFactory func(identifier string, enab zapcore.LevelEnabler) zapcore.Core

// outputs maps every valid output to its coreFactory.
var outputs = map[string]coreFactory{
	CONSOLE: newConsoleCore,
	JOURNAL: NewJournaldCore,
}

// newConsoleCore returns a zapcore.Core that writes human-readable lines to stderr.
func newConsoleCore(_ string, enab zapcore.LevelEnabler) zapcore.Core {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeDuration = zapcore.StringDurationEncoder

	return zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), enab)
}

// Logging hands out a root logger and named child loggers which share one output.
// Child loggers log at the level Options assign to their name or, if none, at the root level.
type Logging struct {
	name    string
	level   zap.AtomicLevel
	options Options
	newCore coreFactory
	root    *zap.SugaredLogger

	mu       sync.Mutex
	children map[string]*zap.SugaredLogger
}

// NewLogging returns a new Logging whose root logger is named name and logs at level to output.
func NewLogging(name string, level zapcore.Level, output string, options Options) (*Logging, error) {
	factory, ok := outputs[output]
	if !ok {
		return nil, invalidOutput(output)
	}

	return newLogging(name, level, factory, options), nil
}

// NewLoggingFromConfig returns a new Logging named name from the given, already validated, Config.
func NewLoggingFromConfig(name string, c Config) (*Logging, error) {
	return NewLogging(name, c.Level, c.Output, c.Options)
}

// NewLoggingWithCore returns a new Logging which writes to core instead of an output.
// Levels are still enforced per logger, so core should enable all of them.
// This is mostly useful for tests, e.g. with an observer core.
func NewLoggingWithCore(name string, level zapcore.Level, core zapcore.Core, options Options) *Logging {
	return newLogging(name, level, func(_ string, enab zapcore.LevelEnabler) zapcore.Core {
		return &levelCore{Core: core, enab: enab}
	}, options)
}

func newLogging(name string, level zapcore.Level, factory coreFactory, options Options) *Logging {
	l := &Logging{
		name:     name,
		level:    zap.NewAtomicLevelAt(level),
		options:  options,
		newCore:  factory,
		children: map[string]*zap.SugaredLogger{},
	}
	l.root = l.build(name, l.level)

	return l
}

// build returns a logger named name which logs at the levels enab enables.
func (l *Logging) build(name string, enab zapcore.LevelEnabler) *zap.SugaredLogger {
	return zap.New(l.newCore(l.name, enab)).Named(name).Sugar()
}

// GetChildLogger returns the child logger named name, creating it on first use.
func (l *Logging) GetChildLogger(name string) *zap.SugaredLogger {
	l.mu.Lock()
	defer l.mu.Unlock()

	if child, ok := l.children[name]; ok {
		return child
	}

	var enab zapcore.LevelEnabler = l.level
	if level, ok := l.options[name]; ok {
		enab = level
	}

	child := l.build(name, enab)
	l.children[name] = child

	return child
}

// GetLogger returns the root logger.
func (l *Logging) GetLogger() *zap.SugaredLogger {
	return l.root
}

// SetLevel changes the level of the root logger and of all child loggers without Options of their own.
func (l *Logging) SetLevel(level zapcore.Level) {
	l.level.SetLevel(level)
}

// AssertOutput returns an error if output is not a valid logger output.
func AssertOutput(output string) error {
	if _, ok := outputs[output]; !ok {
		return invalidOutput(output)
	}

	return nil
}

func invalidOutput(output string) error {
	return errors.Errorf("%s is not a valid logger output. Must be either %q or %q", output, CONSOLE, JOURNAL)
}

// levelCore restricts a zapcore.Core to the levels enabled by enab.
type levelCore struct {
	zapcore.Core
	enab zapcore.LevelEnabler
}

func (c *levelCore) Enabled(level zapcore.Level) bool {
	return c.enab.Enabled(level) && c.Core.Enabled(level)
}

func (c *levelCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelCore{Core: c.Core.With(fields), enab: c.enab}
}

func (c *levelCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}

	return c.Core.Check(ent, ce)
}
