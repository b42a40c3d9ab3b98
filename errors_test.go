package kontainer_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/junioryono/kontainer"
	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("ResolutionError", func(t *testing.T) {
		err := kontainer.ResolutionError{Key: kontainer.Named("db"), Cause: kontainer.ErrNotRegistered}
		assert.Equal(t, "cannot resolve type db", err.Error())
		assert.ErrorIs(t, err, kontainer.ErrNotRegistered)
		assert.NotErrorIs(t, err, kontainer.ErrInstanceMissing)
	})

	t.Run("LifetimeError", func(t *testing.T) {
		err := kontainer.LifetimeError{Value: kontainer.Lifetime(9)}
		assert.Equal(t, "unknown lifetime: Unknown(9)", err.Error())
	})

	t.Run("ValidationError", func(t *testing.T) {
		err := kontainer.ValidationError{Cause: kontainer.ErrKeyInvalid}
		assert.Equal(t, "key cannot be empty", err.Error())
		assert.ErrorIs(t, err, kontainer.ErrKeyInvalid)

		err = kontainer.ValidationError{Key: kontainer.Named("svc"), Cause: kontainer.ErrFactoryNil}
		assert.Equal(t, "svc: factory cannot be nil", err.Error())
	})

	t.Run("TypeMismatchError", func(t *testing.T) {
		err := kontainer.TypeMismatchError{
			Key:      kontainer.Named("n"),
			Expected: reflect.TypeFor[string](),
			Actual:   reflect.TypeFor[int](),
		}
		assert.Equal(t, "type assertion failed for n: expected string, got int", err.Error())
	})

	t.Run("ConstructorPanicError", func(t *testing.T) {
		cause := errors.New("boom")
		err := kontainer.ConstructorPanicError{Key: kontainer.Named("svc"), Panic: cause}
		assert.Equal(t, "factory for svc panicked: boom", err.Error())
		assert.ErrorIs(t, err, cause)

		err = kontainer.ConstructorPanicError{Key: kontainer.Named("svc"), Panic: "text", Stack: []byte("trace")}
		assert.Contains(t, err.Error(), "panicked: text")
		assert.Contains(t, err.Error(), "Stack trace:\ntrace")
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("ModuleError", func(t *testing.T) {
		err := kontainer.ModuleError{Module: "storage", Cause: kontainer.ErrFactoryNil}
		assert.Equal(t, `module "storage": factory cannot be nil`, err.Error())
		assert.ErrorIs(t, err, kontainer.ErrFactoryNil)
	})

	t.Run("IsNotResolvable", func(t *testing.T) {
		re := kontainer.ResolutionError{Key: kontainer.Named("x"), Cause: kontainer.ErrNotRegistered}

		assert.True(t, kontainer.IsNotResolvable(re))
		assert.True(t, kontainer.IsNotResolvable(fmt.Errorf("wrapped: %w", re)))
		assert.True(t, kontainer.IsNotResolvable(kontainer.ModuleError{Module: "m", Cause: re}))
		assert.False(t, kontainer.IsNotResolvable(kontainer.ErrNotRegistered))
		assert.False(t, kontainer.IsNotResolvable(nil))
	})
}
