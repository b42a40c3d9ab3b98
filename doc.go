// Package kontainer provides a small dependency injection container for Go
// applications.
//
// # Overview
//
// A Container maps keys to recipes. A key is either a string name or a type:
//
//	kontainer.Named("dsn")
//	kontainer.TypeKey[*Database]()
//	kontainer.TypeKey[Logger]() // interfaces work as keys too
//
// A recipe is a Factory plus a Lifetime and an optional list of arguments
// that are passed to the factory, in order, every time it runs.
//
// # Lifetimes
//
//   - Permanent: the factory runs once, inside Register, and the result is
//     cached. Every Resolve returns the same value.
//   - Transient: the factory runs on every Resolve. Nothing is cached.
//
// Values that already exist, such as configuration or externally built
// clients, are registered with RegisterValue and behave like permanent keys.
//
// # Explicit Factories
//
// There is no reflection-based wiring. A factory receives the container's
// Resolver and asks for what it needs:
//
//	func NewUserService(resolve kontainer.Resolver, args ...any) (any, error) {
//	    db, err := kontainer.ResolveType[*Database](resolve)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &UserService{db: db}, nil
//	}
//
// # Registration Order
//
// Because permanent factories run during Register, the composition root must
// register dependencies before the keys that depend on them. Getting the
// order wrong is reported immediately: Register returns the ResolutionError
// for the missing dependency.
//
//	c := kontainer.New()
//	err := c.Register(kontainer.TypeKey[*UserService](), NewUserService, kontainer.Permanent)
//	// err: cannot resolve type *Database
//
// Cycles between permanent keys cannot be built and surface the same way.
//
// # Modules
//
// Related registrations can be grouped with NewModule, Provide and Value and
// applied with Container.Apply.
//
// # Default Container
//
// Default returns a process-wide container for programs that do not want to
// pass one around. Prefer an explicit container owned by main where possible.
package kontainer
