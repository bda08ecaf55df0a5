package config

import (
	"github.com/pkg/errors"
	"github.com/ryanmorr/base-object/pkg/utils"
)

const (
	// GeneratorCounter selects utils.UID.
	GeneratorCounter = "counter"
	// GeneratorUUID selects utils.UUID.
	GeneratorUUID = "uuid"
)

// IdentityConfig defines how Objects are identified.
type IdentityConfig struct {
	Generator string `yaml:"generator" default:"counter"`
}

// Validate checks constraints in the supplied identity configuration and returns an error if they are violated.
func (i *IdentityConfig) Validate() error {
	switch i.Generator {
	case GeneratorCounter, GeneratorUUID:
		return nil
	default:
		return errors.Errorf("%q is not a valid identity generator. Must be either %q or %q",
			i.Generator, GeneratorCounter, GeneratorUUID)
	}
}

// IDGenerator returns the configured utils.IDGenerator, utils.UID if none is configured.
func (i *IdentityConfig) IDGenerator() utils.IDGenerator {
	if i.Generator == GeneratorUUID {
		return utils.UUID
	}

	return utils.UID
}
