package config

import (
	"github.com/creasty/defaults"
	"github.com/ryanmorr/base-object/pkg/logging"
	"github.com/ryanmorr/base-object/pkg/utils"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFromYAMLFile(t *testing.T) {
	const miniConf = `
logging:
  level: warn
  output: console

identity:
  generator: uuid
`

	subtests := []struct {
		name   string
		input  string
		output *Config
	}{
		{
			name:  "mini",
			input: miniConf,
			output: func() *Config {
				c := &Config{}
				_ = defaults.Set(c)

				c.Logging.Level = zapcore.WarnLevel
				c.Logging.Output = logging.CONSOLE
				c.Identity.Generator = GeneratorUUID

				return c
			}(),
		},
		{
			name:  "defaults",
			input: "logging:\n  output: console\n",
			output: func() *Config {
				c := &Config{}
				_ = defaults.Set(c)

				c.Logging.Output = logging.CONSOLE

				return c
			}(),
		},
		{
			name:   "mini-with-unknown",
			input:  miniConf + "\nunknown: 42",
			output: nil,
		},
		{
			name:   "invalid-generator",
			input:  "identity:\n  generator: sequence\n",
			output: nil,
		},
		{
			name:   "invalid-output",
			input:  "logging:\n  output: syslog\n",
			output: nil,
		},
	}

	for _, st := range subtests {
		t.Run(st.name, func(t *testing.T) {
			tempFile, err := os.CreateTemp("", "")
			require.NoError(t, err)
			defer func() { _ = os.Remove(tempFile.Name()) }()

			require.NoError(t, os.WriteFile(tempFile.Name(), []byte(st.input), 0o600))

			if actual, err := FromYAMLFile(tempFile.Name()); st.output == nil {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, st.output, actual)
			}
		})
	}
}

func TestFromYAMLFile_Missing(t *testing.T) {
	_, err := FromYAMLFile(filepath.Join(t.TempDir(), "config.yml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromFlags(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(name, []byte("identity:\n  generator: uuid\n"), 0o600))

	c, err := FromFlags(Flags{Config: name})
	require.NoError(t, err)
	require.Equal(t, GeneratorUUID, c.Identity.Generator)

	_, err = FromFlags(Flags{Config: name + ".missing"})
	require.Error(t, err)
}

func TestFlags(t *testing.T) {
	require.Equal(t, DefaultConfigPath, Flags{}.GetConfigPath())
	require.False(t, Flags{}.IsExplicitConfigPath())

	f := Flags{Config: "config.yml"}
	require.Equal(t, "config.yml", f.GetConfigPath())
	require.True(t, f.IsExplicitConfigPath())
}

func TestIdentityConfig_IDGenerator(t *testing.T) {
	subtests := []struct {
		name      string
		generator string
		output    utils.IDGenerator
	}{
		{name: "default", output: utils.UID},
		{name: "counter", generator: GeneratorCounter, output: utils.UID},
		{name: "uuid", generator: GeneratorUUID, output: utils.UUID},
	}

	for _, st := range subtests {
		t.Run(st.name, func(t *testing.T) {
			c := &IdentityConfig{Generator: st.generator}
			require.Equal(t, reflect.ValueOf(st.output).Pointer(), reflect.ValueOf(c.IDGenerator()).Pointer())
		})
	}
}

func TestIdentityConfig_Validate(t *testing.T) {
	require.NoError(t, (&IdentityConfig{Generator: GeneratorCounter}).Validate())
	require.NoError(t, (&IdentityConfig{Generator: GeneratorUUID}).Validate())
	require.EqualError(t, (&IdentityConfig{Generator: "sequence"}).Validate(),
		`"sequence" is not a valid identity generator. Must be either "counter" or "uuid"`)
}
