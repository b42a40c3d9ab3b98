package kontainer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================
// These are base errors carried as the Cause of the typed errors below.
// Match them with errors.Is.

var (
	// Resolution errors.
	ErrNotRegistered   = errors.New("key not registered")
	ErrInstanceMissing = errors.New("permanent instance not cached")

	// Validation errors.
	ErrKeyInvalid = errors.New("key cannot be empty")
	ErrFactoryNil = errors.New("factory cannot be nil")
)

var (
	_ error = ResolutionError{}
	_ error = LifetimeError{}
	_ error = ValidationError{}
	_ error = TypeMismatchError{}
	_ error = ConstructorPanicError{}
	_ error = ModuleError{}
)

// ========================================
// Typed Errors for Rich Context
// ========================================

// ResolutionError indicates a key could not be resolved, either because
// nothing is registered under it or because its permanent instance was never
// built.
type ResolutionError struct {
	Key   Key
	Cause error
}

func (e ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve type %s", e.Key)
}

func (e ResolutionError) Unwrap() error {
	return e.Cause
}

// LifetimeError indicates an invalid lifetime value.
type LifetimeError struct {
	Value any
}

func (e LifetimeError) Error() string {
	return fmt.Sprintf("unknown lifetime: %v", e.Value)
}

// ValidationError indicates a registration was rejected before anything was stored.
type ValidationError struct {
	Key   Key
	Cause error
}

func (e ValidationError) Error() string {
	if e.Key.IsZero() {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Key, e.Cause)
}

func (e ValidationError) Unwrap() error {
	return e.Cause
}

// TypeMismatchError indicates a resolved value does not have the requested type.
type TypeMismatchError struct {
	Key      Key
	Expected reflect.Type
	Actual   reflect.Type
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("type assertion failed for %s: expected %s, got %s",
		e.Key, formatType(e.Expected), formatType(e.Actual))
}

// ConstructorPanicError indicates a factory panicked. When the panic value is
// an error, for example from MustResolve inside a factory, it is reachable
// through errors.Is and errors.As.
type ConstructorPanicError struct {
	Key   Key
	Panic any
	Stack []byte
}

func (e ConstructorPanicError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("factory for %s panicked: %v", e.Key, e.Panic))

	if len(e.Stack) > 0 {
		b.WriteString("\n\nStack trace:\n")
		b.Write(e.Stack)
	}

	return b.String()
}

func (e ConstructorPanicError) Unwrap() error {
	if err, ok := e.Panic.(error); ok {
		return err
	}
	return nil
}

// ModuleError wraps errors from module registration.
type ModuleError struct {
	Module string
	Cause  error
}

func (e ModuleError) Error() string {
	return fmt.Sprintf("module %q: %v", e.Module, e.Cause)
}

func (e ModuleError) Unwrap() error {
	return e.Cause
}

// IsNotResolvable reports whether err, or any error it wraps, is a ResolutionError.
func IsNotResolvable(err error) bool {
	var re ResolutionError
	return errors.As(err, &re)
}
