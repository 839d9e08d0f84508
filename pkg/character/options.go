package character

import (
	"log/slog"

	"github.com/aretw0/elementium/pkg/domain"
)

// Option configures a Character at construction.
type Option func(*Character)

// WithLogger sets the logger used for evaluation events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Character) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Character) {
		c.hooks = hooks
	}
}

// WithGrantExpansion makes construction also instantiate every element granted
// by an instantiated element, recursively.
func WithGrantExpansion() Option {
	return func(c *Character) {
		c.expandGrants = true
	}
}
