package config

import (
	"github.com/creasty/defaults"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/ryanmorr/base-object/pkg/logging"
	"github.com/ryanmorr/base-object/pkg/types"
	"io"
	"os"
)

// DefaultConfigPath specifies the default location of objhash's config.yml.
const DefaultConfigPath = "/etc/objhash/config.yml"

// Config defines objhash config.
type Config struct {
	Logging  logging.Config `yaml:"logging"`
	Identity IdentityConfig `yaml:"identity"`
}

// Validate checks constraints in the supplied configuration and returns an error if they are violated.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}

	return c.Identity.Validate()
}

// FromYAMLFile returns a new Config value created from the given YAML config file.
// Unknown keys are rejected, missing ones are set to their defaults.
func FromYAMLFile(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "can't open YAML file "+name)
	}
	defer func() { _ = f.Close() }()

	c := &Config{}
	d := yaml.NewDecoder(f, yaml.DisallowUnknownField())

	if err := d.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, types.CantUnmarshalYAML(err, c)
	}

	return complete(c)
}

// FromFlags loads the config file named by f.
// If no path was given explicitly and DefaultConfigPath does not exist, the defaults are used.
func FromFlags(f Flags) (*Config, error) {
	if !f.IsExplicitConfigPath() {
		if _, err := os.Stat(DefaultConfigPath); errors.Is(err, os.ErrNotExist) {
			return complete(&Config{})
		}
	}

	return FromYAMLFile(f.GetConfigPath())
}

// complete sets the defaults of c and validates it.
func complete(c *Config) (*Config, error) {
	if err := defaults.Set(c); err != nil {
		return nil, errors.Wrap(err, "can't set config defaults")
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return c, nil
}

// Flags defines CLI flags.
type Flags struct {
	// Version decides whether to just print the version and exit.
	Version bool `long:"version" description:"print version and exit"`

	// Config is the path to the config file. If not provided, it defaults to DefaultConfigPath.
	Config string `short:"c" long:"config" description:"path to config file (default: /etc/objhash/config.yml)"`
	// default must be kept in sync with DefaultConfigPath.
}

// GetConfigPath retrieves the path to the configuration file.
// It returns the path specified via the command line, or DefaultConfigPath if none is provided.
func (f Flags) GetConfigPath() string {
	if f.Config == "" {
		return DefaultConfigPath
	}

	return f.Config
}

// IsExplicitConfigPath indicates whether the configuration file path was explicitly set.
func (f Flags) IsExplicitConfigPath() bool {
	return f.Config != ""
}
