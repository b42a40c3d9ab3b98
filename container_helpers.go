package kontainer

import (
	"fmt"
	"reflect"
)

// Resolve is a generic helper function that resolves key as type T.
func Resolve[T any](resolve Resolver, key Key) (T, error) {
	var zero T

	instance, err := resolve(key)
	if err != nil {
		return zero, err
	}

	// A nil value registered for an interface or pointer type is returned as the zero T.
	if instance == nil {
		return zero, nil
	}

	result, ok := instance.(T)
	if !ok {
		return zero, TypeMismatchError{
			Key:      key,
			Expected: reflect.TypeFor[T](),
			Actual:   reflect.TypeOf(instance),
		}
	}

	return result, nil
}

// ResolveType resolves the value registered under TypeKey[T]().
func ResolveType[T any](resolve Resolver) (T, error) {
	return Resolve[T](resolve, TypeKey[T]())
}

// MustResolve resolves key as type T and panics on error.
//
// Inside a factory the panic is recovered by the container and returned from
// Register or Resolve as a ConstructorPanicError wrapping the original error.
func MustResolve[T any](resolve Resolver, key Key) T {
	result, err := Resolve[T](resolve, key)
	if err != nil {
		panic(fmt.Errorf("failed to resolve %s: %w", key, err))
	}
	return result
}

// MustResolveType resolves TypeKey[T]() and panics on error.
func MustResolveType[T any](resolve Resolver) T {
	return MustResolve[T](resolve, TypeKey[T]())
}

// RegisterType registers a typed factory under TypeKey[T]().
func RegisterType[T any](c *Container, factory func(resolve Resolver, args ...any) (T, error), lifetime Lifetime, args ...any) error {
	if factory == nil {
		return c.Register(TypeKey[T](), nil, lifetime, args...)
	}

	return c.Register(TypeKey[T](), func(resolve Resolver, args ...any) (any, error) {
		return factory(resolve, args...)
	}, lifetime, args...)
}

// RegisterTypeValue registers value under TypeKey[T]().
func RegisterTypeValue[T any](c *Container, value T) error {
	return c.RegisterValue(TypeKey[T](), value)
}

// IsRegistered checks if TypeKey[T]() is registered.
func IsRegistered[T any](c *Container) bool {
	return c.Contains(TypeKey[T]())
}
