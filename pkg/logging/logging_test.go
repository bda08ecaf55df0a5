package logging

import (
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"testing"
)

func TestNewLogging(t *testing.T) {
	t.Run("Console", func(t *testing.T) {
		l, err := NewLogging("test", zapcore.InfoLevel, CONSOLE, nil)
		require.NoError(t, err)
		require.NotNil(t, l.GetLogger())
	})

	t.Run("InvalidOutput", func(t *testing.T) {
		_, err := NewLogging("test", zapcore.InfoLevel, "syslog", nil)
		require.EqualError(t, err, `syslog is not a valid logger output. Must be either "console" or "systemd-journald"`)
	})
}

func TestLogging_GetChildLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLoggingWithCore("objects", zapcore.InfoLevel, core, Options{"widget": zapcore.WarnLevel})

	widget := l.GetChildLogger("widget")
	require.Same(t, widget, l.GetChildLogger("widget"), "child loggers must be cached")

	widget.Info("dropped")
	widget.Warn("kept")
	l.GetChildLogger("gadget").Info("default level")
	l.GetLogger().Debug("below default level")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	require.Equal(t, "widget", entries[0].LoggerName)
	require.Equal(t, "kept", entries[0].Message)

	require.Equal(t, "gadget", entries[1].LoggerName)
	require.Equal(t, "default level", entries[1].Message)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Console", func(t *testing.T) {
		t.Setenv("NOTIFY_SOCKET", "")
		c := &Config{Output: CONSOLE}
		require.NoError(t, c.Validate())
		require.Equal(t, CONSOLE, c.Output)
	})

	t.Run("Journal", func(t *testing.T) {
		t.Setenv("NOTIFY_SOCKET", "/run/systemd/notify")
		c := &Config{}
		require.NoError(t, c.Validate())
		require.Equal(t, JOURNAL, c.Output)
	})

	t.Run("Invalid", func(t *testing.T) {
		c := &Config{Output: "syslog"}
		require.Error(t, c.Validate())
	})
}

func TestLogging_SetLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLoggingWithCore("objects", zapcore.InfoLevel, core, Options{"widget": zapcore.WarnLevel})

	l.SetLevel(zapcore.DebugLevel)
	l.GetLogger().Debug("root")
	l.GetChildLogger("gadget").Debug("child")
	l.GetChildLogger("widget").Info("own level")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	require.Equal(t, "root", entries[0].Message)
	require.Equal(t, "child", entries[1].Message)
}

func TestAssertOutput(t *testing.T) {
	require.NoError(t, AssertOutput(CONSOLE))
	require.NoError(t, AssertOutput(JOURNAL))
	require.EqualError(t, AssertOutput("syslog"),
		`syslog is not a valid logger output. Must be either "console" or "systemd-journald"`)
}
