package elementium

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/elementium/internal/logging"
	"github.com/aretw0/elementium/pkg/adapters/content"
	"github.com/aretw0/elementium/pkg/character"
	"github.com/aretw0/elementium/pkg/domain"
	"github.com/aretw0/elementium/pkg/registry"
)

// Ruleset is the high-level entry point for the library.
// It owns a registry of rule content and builds characters from it.
type Ruleset struct {
	registry *registry.Registry
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	grants   bool
}

// Option defines a functional option for configuring the Ruleset.
type Option func(*Ruleset)

// WithLogger sets a custom structured logger for the ruleset and its characters.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ruleset) {
		r.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks on every character built.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Ruleset) {
		r.hooks = hooks
	}
}

// WithRegistry uses an existing registry instead of creating an empty one.
func WithRegistry(reg *registry.Registry) Option {
	return func(r *Ruleset) {
		r.registry = reg
	}
}

// WithGrantExpansion makes characters add granted elements along with their grantors.
func WithGrantExpansion() Option {
	return func(r *Ruleset) {
		r.grants = true
	}
}

// New creates a ruleset. Without WithRegistry it starts empty.
func New(opts ...Option) *Ruleset {
	r := &Ruleset{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = registry.New(registry.WithLogger(r.logger))
	}
	return r
}

// Load creates a ruleset and registers the content of the YAML files at paths.
func Load(paths []string, opts ...Option) (*Ruleset, error) {
	r := New(opts...)
	for _, path := range paths {
		if err := content.LoadFile(r.registry, path); err != nil {
			return nil, err
		}
		r.logger.Info("content loaded", "path", path, "elements", r.registry.Len())
	}
	return r, nil
}

// Registry returns the registry holding the ruleset's content.
func (r *Ruleset) Registry() *registry.Registry {
	return r.registry
}

// NewCharacter builds a character from element references.
func (r *Ruleset) NewCharacter(refs ...domain.Ref) (*character.Character, error) {
	opts := []character.Option{
		character.WithLogger(r.logger),
		character.WithLifecycleHooks(r.hooks),
	}
	if r.grants {
		opts = append(opts, character.WithGrantExpansion())
	}
	c, err := character.New(r.registry, refs, opts...)
	if err != nil {
		return nil, fmt.Errorf("new character: %w", err)
	}
	return c, nil
}
