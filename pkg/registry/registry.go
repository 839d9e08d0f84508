package registry

import (
	"cmp"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/aretw0/elementium/internal/logging"
	"github.com/aretw0/elementium/pkg/domain"
)

// Registry is the catalog of descriptors, keyed by type then id.
// Registration is append-only. Lookups are safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byType map[domain.Type]map[string]*domain.Descriptor
	order  map[domain.Type][]*domain.Descriptor
	logger *slog.Logger
}

// Option configures the Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates a new empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		byType: make(map[domain.Type]map[string]*domain.Descriptor),
		order:  make(map[domain.Type][]*domain.Descriptor),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a descriptor to the registry.
// It fails with an InvalidRegistrationError for malformed descriptors or the
// abstract base element, and with a DuplicateIDError if the key is taken.
func (r *Registry) Register(d *domain.Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ids, ok := r.byType[d.Type]
	if !ok {
		ids = make(map[string]*domain.Descriptor)
		r.byType[d.Type] = ids
	}
	if _, exists := ids[d.ID]; exists {
		return &domain.DuplicateIDError{Key: d.Key()}
	}
	ids[d.ID] = d
	r.order[d.Type] = append(r.order[d.Type], d)

	r.logger.Debug("element registered", "type", d.Type, "id", d.ID)
	return nil
}

// MustRegister registers every descriptor and panics on the first error.
// Intended for content defined at process start.
func (r *Registry) MustRegister(ds ...*domain.Descriptor) {
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
}

// Get looks up a descriptor by type and id.
func (r *Registry) Get(t domain.Type, id string) (*domain.Descriptor, error) {
	r.mu.RLock()
	d, ok := r.byType[t][id]
	r.mu.RUnlock()

	if !ok {
		return nil, &domain.NotFoundError{Key: domain.Key{Type: t, ID: id}}
	}
	return d, nil
}

// Resolve turns a reference into a descriptor.
// Literal references are returned as-is, even when unregistered.
func (r *Registry) Resolve(ref domain.Ref) (*domain.Descriptor, error) {
	if ref.Descriptor != nil {
		return ref.Descriptor, nil
	}
	if ref.ID == "" {
		return nil, &domain.NotFoundError{Key: ref.Key()}
	}
	return r.Get(ref.Type, ref.ID)
}

// Iterate returns the id -> descriptor mapping of a type.
// The result is a copy and is empty for unknown types.
func (r *Registry) Iterate(t domain.Type) map[string]*domain.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ids := r.byType[t]; ids != nil {
		return maps.Clone(ids)
	}
	return map[string]*domain.Descriptor{}
}

// Descriptors returns the descriptors of a type in registration order.
func (r *Registry) Descriptors(t domain.Type) []*domain.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order[t])
}

// Types returns every type with at least one descriptor, ascending.
func (r *Registry) Types() []domain.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.byType))
}

// Len returns the total number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, ids := range r.byType {
		n += len(ids)
	}
	return n
}

// ResolveChoices expands one option of d into the set of legal descriptors.
// The registry is read at call time, so late registrations are visible.
// The result is deduplicated by key, keeping the first descriptor offered,
// and sorted by (type, id).
func (r *Registry) ResolveChoices(d *domain.Descriptor, option int) ([]*domain.Descriptor, error) {
	if option < 0 || option >= len(d.Options) {
		return nil, &domain.NotFoundError{
			Kind: "option",
			Key:  domain.Key{Type: d.Type, ID: fmt.Sprintf("%s[%d]", d.ID, option)},
		}
	}

	seen := make(map[domain.Key]*domain.Descriptor)
	add := func(c *domain.Descriptor) {
		if _, ok := seen[c.Key()]; !ok {
			seen[c.Key()] = c
		}
	}

	for _, choice := range d.Options[option].Choices {
		switch choice.Kind {
		case domain.ChoiceDescriptor:
			add(choice.Descriptor)
		case domain.ChoiceID:
			c, err := r.Get(choice.Type, choice.ID)
			if err != nil {
				return nil, fmt.Errorf("resolve option %d of %s: %w", option, d.Key(), err)
			}
			add(c)
		case domain.ChoiceFilter:
			for _, c := range r.Descriptors(choice.Type) {
				if choice.Filter(c) {
					add(c)
				}
			}
		case domain.ChoiceType:
			for _, c := range r.Descriptors(choice.Type) {
				add(c)
			}
		default:
			return nil, &domain.InvalidRegistrationError{
				Key:    d.Key(),
				Reason: fmt.Sprintf("option %d: unknown choice kind %d", option, int(choice.Kind)),
			}
		}
	}

	out := slices.Collect(maps.Values(seen))
	slices.SortFunc(out, func(a, b *domain.Descriptor) int {
		return cmp.Or(cmp.Compare(a.Type, b.Type), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}
