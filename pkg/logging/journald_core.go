package logging

import (
	"github.com/pkg/errors"
	"github.com/ryanmorr/base-object/pkg/strcase"
	"github.com/ssgreg/journald"
	"go.uber.org/zap/zapcore"
	"strings"
)

// NewJournaldCore returns a zapcore.Core that sends log entries to systemd-journald.
// Structured logging context becomes journal fields named after the upper-cased identifier,
// e.g. a "class" field of identifier "objhash" is sent as OBJHASH_CLASS.
func NewJournaldCore(identifier string, enab zapcore.LevelEnabler) zapcore.Core {
	return &journaldCore{
		enab:       enab,
		identifier: identifier,
		prefix:     strings.ToUpper(identifier) + "_",
		send:       journald.Send,
	}
}

type journaldCore struct {
	enab       zapcore.LevelEnabler
	identifier string
	prefix     string
	context    []zapcore.Field

	send func(msg string, p journald.Priority, fields map[string]interface{}) error
}

func (c *journaldCore) Enabled(level zapcore.Level) bool {
	return c.enab.Enabled(level)
}

func (c *journaldCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}

	return ce.AddCore(ent, c)
}

func (c *journaldCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.context = append(c.context[:len(c.context):len(c.context)], fields...)

	return &clone
}

func (c *journaldCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	p, err := priority(ent.Level)
	if err != nil {
		return err
	}

	return c.send(c.message(ent), p, c.fields(fields))
}

func (c *journaldCore) Sync() error {
	return nil
}

// message prefixes the entry's message with its logger name unless that is the identifier itself.
func (c *journaldCore) message(ent zapcore.Entry) string {
	if ent.LoggerName == "" || ent.LoggerName == c.identifier {
		return ent.Message
	}

	return ent.LoggerName + ": " + ent.Message
}

// fields encodes the core's context and the entry's fields as journal fields.
func (c *journaldCore) fields(fields []zapcore.Field) map[string]interface{} {
	enc := zapcore.NewMapObjectEncoder()
	for _, field := range append(c.context[:len(c.context):len(c.context)], fields...) {
		field.Key = c.prefix + strcase.ScreamingSnake(field.Key)
		field.AddTo(enc)
	}

	enc.Fields["SYSLOG_IDENTIFIER"] = c.identifier

	return enc.Fields
}

// priority returns the journal priority of level.
func priority(level zapcore.Level) (journald.Priority, error) {
	switch level {
	case zapcore.DebugLevel:
		return journald.PriorityDebug, nil
	case zapcore.InfoLevel:
		return journald.PriorityInfo, nil
	case zapcore.WarnLevel:
		return journald.PriorityWarning, nil
	case zapcore.ErrorLevel:
		return journald.PriorityErr, nil
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return journald.PriorityCrit, nil
	default:
		return 0, errors.Errorf("unknown log level %q", level)
	}
}
