package baseobject

import (
	"github.com/ryanmorr/base-object/pkg/logging"
	"github.com/ryanmorr/base-object/pkg/utils"
	"sync"
)

var settings struct {
	mu        sync.RWMutex
	generator utils.IDGenerator
	logging   *logging.Logging
}

// SetIDGenerator sets the generator of identities for Objects constructed from now on.
// nil restores the default, utils.UID.
func SetIDGenerator(generator utils.IDGenerator) {
	settings.mu.Lock()
	defer settings.mu.Unlock()

	settings.generator = generator
}

// UseLogging makes Objects of classes without a logger log to the child logger of l
// which is named after their snake_cased class name, e.g. "base_object".
// nil restores the global zap logger.
func UseLogging(l *logging.Logging) {
	settings.mu.Lock()
	defer settings.mu.Unlock()

	settings.logging = l
}

func nextID() string {
	settings.mu.RLock()
	generator := settings.generator
	settings.mu.RUnlock()

	if generator == nil {
		return utils.UID()
	}

	return generator()
}

func currentLogging() *logging.Logging {
	settings.mu.RLock()
	defer settings.mu.RUnlock()

	return settings.logging
}
