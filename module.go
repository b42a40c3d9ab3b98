package kontainer

// ModuleOption represents a registration action within a module.
type ModuleOption func(*Container) error

// NewModule creates a new module with the given name and options.
// Modules group related registrations; options run in the order given, which
// is also the order their keys become resolvable.
//
// Example:
//
//	var StorageModule = kontainer.NewModule("storage",
//	    kontainer.Value(kontainer.Named("dsn"), "postgres://localhost/app"),
//	    kontainer.Provide(kontainer.TypeKey[*Database](), NewDatabase, kontainer.Permanent),
//	)
//
//	var AppModule = kontainer.NewModule("app",
//	    StorageModule,
//	    kontainer.Provide(kontainer.TypeKey[*UserService](), NewUserService, kontainer.Permanent),
//	)
func NewModule(name string, opts ...ModuleOption) ModuleOption {
	return func(c *Container) error {
		for _, opt := range opts {
			if opt == nil {
				continue
			}

			if err := opt(c); err != nil {
				return ModuleError{Module: name, Cause: err}
			}
		}

		return nil
	}
}

// Provide creates a ModuleOption that registers factory under key.
func Provide(key Key, factory Factory, lifetime Lifetime, args ...any) ModuleOption {
	return func(c *Container) error {
		return c.Register(key, factory, lifetime, args...)
	}
}

// Value creates a ModuleOption that registers an already built value under key.
func Value(key Key, value any) ModuleOption {
	return func(c *Container) error {
		return c.RegisterValue(key, value)
	}
}

// Apply runs the given module options against c in order and stops at the
// first failure. Earlier options stay applied.
func (c *Container) Apply(opts ...ModuleOption) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(c); err != nil {
			return err
		}
	}

	return nil
}
