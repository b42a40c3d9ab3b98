package kontainer

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
)

// Container maps keys to recipes and caches the values of permanent keys.
//
// Registration order matters: a permanent factory runs inside Register, so
// every key it resolves must be registered before it. Register dependencies
// first, dependents last.
//
// Resolution is safe for concurrent use once registration is done. Registering
// from several goroutines at once does not corrupt the container, but the
// resulting order is undefined, so wire the container from a single goroutine.
//
// Example:
//
//	c := kontainer.New()
//	_ = c.RegisterValue(kontainer.Named("dsn"), "postgres://localhost/app")
//	_ = c.Register(kontainer.TypeKey[*Database](), NewDatabase, kontainer.Permanent)
//	_ = c.Register(kontainer.TypeKey[*Request](), NewRequest, kontainer.Transient)
//
//	db, err := kontainer.ResolveType[*Database](c.Resolver())
type Container struct {
	id     string
	logger *zap.Logger

	mu          sync.RWMutex
	descriptors map[Key]*descriptor
	order       []Key

	instances *instanceCache
}

// Registration describes one registered key.
type Registration struct {
	Key      Key
	Lifetime Lifetime
	IsValue  bool
	Cached   bool
	Args     []any
}

// New creates an empty Container.
func New(opts ...Option) *Container {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return &Container{
		id:          o.id,
		logger:      o.logger.With(zap.String("container", o.id)),
		descriptors: make(map[Key]*descriptor),
		instances:   newInstanceCache(),
	}
}

// ID returns the unique identifier for the container.
func (c *Container) ID() string {
	return c.id
}

// Register stores factory under key with the given lifetime, replacing any
// earlier registration for key. args are passed to factory, in order, every
// time it runs.
//
// For Permanent the factory runs before Register returns and its result is
// cached. An error from the factory, including a ResolutionError for a
// dependency that is not registered yet, is returned as is. The registration
// itself stays in place, so resolving key afterwards fails with a
// ResolutionError until it is registered again.
func (c *Container) Register(key Key, factory Factory, lifetime Lifetime, args ...any) error {
	d, err := newDescriptor(key, factory, lifetime, args)
	if err != nil {
		return err
	}

	c.store(d)

	if lifetime != Permanent {
		c.logger.Debug("registered",
			zap.Stringer("key", key),
			zap.Stringer("lifetime", lifetime),
			zap.Int("args", len(args)))
		return nil
	}

	instance, err := c.construct(d)
	if err != nil {
		c.logger.Debug("permanent construction failed",
			zap.Stringer("key", key),
			zap.Error(err))
		return err
	}

	c.instances.set(key, instance)

	c.logger.Debug("registered",
		zap.Stringer("key", key),
		zap.Stringer("lifetime", lifetime),
		zap.Int("args", len(args)))

	return nil
}

// RegisterValue stores an already built value under key as a permanent
// registration. No factory is involved.
func (c *Container) RegisterValue(key Key, value any) error {
	d, err := newValueDescriptor(key)
	if err != nil {
		return err
	}

	c.store(d)
	c.instances.set(key, value)

	c.logger.Debug("registered value", zap.Stringer("key", key))

	return nil
}

// Resolve returns the value for key. Permanent keys return the cached value;
// transient keys run their factory again. A key without a registration, or a
// permanent key whose value was never built, yields a ResolutionError.
func (c *Container) Resolve(key Key) (any, error) {
	c.mu.RLock()
	d, ok := c.descriptors[key]
	c.mu.RUnlock()

	if !ok {
		return nil, ResolutionError{Key: key, Cause: ErrNotRegistered}
	}

	switch d.lifetime {
	case Transient:
		instance, err := c.construct(d)
		if err != nil {
			c.logger.Debug("transient construction failed",
				zap.Stringer("key", key),
				zap.Error(err))
			return nil, err
		}
		return instance, nil

	case Permanent:
		instance, ok := c.instances.get(key)
		if !ok {
			return nil, ResolutionError{Key: key, Cause: ErrInstanceMissing}
		}
		return instance, nil

	default:
		return nil, LifetimeError{Value: d.lifetime}
	}
}

// Resolver returns a function bound to c.Resolve. Factories receive it as
// their first argument; it can also be handed to code that should resolve
// from c without holding c itself.
func (c *Container) Resolver() Resolver {
	return c.Resolve
}

// Contains reports whether key is registered.
func (c *Container) Contains(key Key) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.descriptors[key]
	return ok
}

// Len returns the number of registered keys.
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.descriptors)
}

// Registrations returns a snapshot of all registrations in the order their
// keys were first registered. Useful for inspection and debugging.
func (c *Container) Registrations() []Registration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Registration, 0, len(c.order))
	for _, key := range c.order {
		d := c.descriptors[key]

		var args []any
		if len(d.args) > 0 {
			args = make([]any, len(d.args))
			copy(args, d.args)
		}

		result = append(result, Registration{
			Key:      key,
			Lifetime: d.lifetime,
			IsValue:  d.isValue,
			Cached:   c.instances.has(key),
			Args:     args,
		})
	}

	return result
}

// store replaces the descriptor for d.key and evicts the previous instance.
func (c *Container) store(d *descriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.descriptors[d.key]; !exists {
		c.order = append(c.order, d.key)
	}

	c.descriptors[d.key] = d
	c.instances.delete(d.key)
}

// construct runs the factory of d. No lock is held, so the factory may
// resolve from c.
func (c *Container) construct(d *descriptor) (instance any, err error) {
	defer func() {
		if r := recover(); r != nil {
			instance = nil
			err = ConstructorPanicError{
				Key:   d.key,
				Panic: r,
				Stack: debug.Stack(),
			}
		}
	}()

	var args []any
	if len(d.args) > 0 {
		args = make([]any, len(d.args))
		copy(args, d.args)
	}

	return d.factory(c.Resolver(), args...)
}
