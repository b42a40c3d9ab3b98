package kontainer

// Factory builds the value for a key. It receives the resolver of the
// container it is registered in, so it can resolve its own dependencies, and
// the arguments given at registration, in order.
//
//	func NewUserService(resolve kontainer.Resolver, args ...any) (any, error) {
//	    db, err := kontainer.Resolve[*Database](resolve, kontainer.TypeKey[*Database]())
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &UserService{db: db}, nil
//	}
type Factory func(resolve Resolver, args ...any) (any, error)

// Resolver resolves a key against the container it was taken from.
type Resolver func(key Key) (any, error)

// descriptor is the stored recipe for one key.
type descriptor struct {
	key      Key
	factory  Factory
	lifetime Lifetime
	args     []any

	// isValue marks descriptors created by RegisterValue; they have no factory.
	isValue bool
}

func newDescriptor(key Key, factory Factory, lifetime Lifetime, args []any) (*descriptor, error) {
	if key.IsZero() {
		return nil, ValidationError{Cause: ErrKeyInvalid}
	}

	if factory == nil {
		return nil, ValidationError{Key: key, Cause: ErrFactoryNil}
	}

	if !lifetime.IsValid() {
		return nil, LifetimeError{Value: lifetime}
	}

	var copied []any
	if len(args) > 0 {
		copied = make([]any, len(args))
		copy(copied, args)
	}

	return &descriptor{
		key:      key,
		factory:  factory,
		lifetime: lifetime,
		args:     copied,
	}, nil
}

func newValueDescriptor(key Key) (*descriptor, error) {
	if key.IsZero() {
		return nil, ValidationError{Cause: ErrKeyInvalid}
	}

	return &descriptor{
		key:      key,
		lifetime: Permanent,
		isValue:  true,
	}, nil
}
