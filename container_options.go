package kontainer

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option configures a Container.
type Option func(*options)

// options holds container configuration.
type options struct {
	id     string
	logger *zap.Logger
}

func defaultOptions() *options {
	return &options{
		id:     uuid.NewString(),
		logger: zap.NewNop(),
	}
}

// WithLogger sets the logger used for registration and construction events.
// A nil logger keeps the default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithID overrides the generated container ID.
func WithID(id string) Option {
	return func(o *options) {
		if id = strings.TrimSpace(id); id != "" {
			o.id = id
		}
	}
}
