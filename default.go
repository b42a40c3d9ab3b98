package kontainer

import "sync/atomic"

// defaultContainer holds the process-wide Container.
var defaultContainer atomic.Pointer[Container]

func init() {
	defaultContainer.Store(New())
}

// Default returns the process-wide Container. It exists for the life of the
// process and is shared by every caller that uses it instead of a container
// of its own.
func Default() *Container {
	return defaultContainer.Load()
}

// SetDefault replaces the process-wide Container. This is similar to slog.SetDefault.
// Passing nil installs a new empty Container.
func SetDefault(c *Container) {
	if c == nil {
		c = New()
	}
	defaultContainer.Store(c)
}

// DefaultResolver returns a Resolver that resolves against whatever Default
// returns at the time of each call.
func DefaultResolver() Resolver {
	return func(key Key) (any, error) {
		return Default().Resolve(key)
	}
}
