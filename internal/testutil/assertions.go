package testutil

import (
	"testing"

	"github.com/junioryono/kontainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertResolvable checks that key resolves to a non-nil T
func AssertResolvable[T any](t *testing.T, resolve kontainer.Resolver, key kontainer.Key) T {
	t.Helper()
	value, err := kontainer.Resolve[T](resolve, key)
	require.NoError(t, err, "failed to resolve %s", key)
	require.NotNil(t, value, "resolved value for %s is nil", key)
	return value
}

// AssertTypeResolvable checks that TypeKey[T]() resolves to a non-nil T
func AssertTypeResolvable[T any](t *testing.T, resolve kontainer.Resolver) T {
	t.Helper()
	return AssertResolvable[T](t, resolve, kontainer.TypeKey[T]())
}

// AssertNotResolvable checks that err is a ResolutionError naming missing
func AssertNotResolvable(t *testing.T, err error, missing kontainer.Key) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, kontainer.IsNotResolvable(err), "expected resolution error, got: %v", err)

	var re kontainer.ResolutionError
	if assert.ErrorAs(t, err, &re) {
		assert.Equal(t, missing, re.Key)
		assert.Equal(t, "cannot resolve type "+missing.String(), re.Error())
	}
}

// AssertSameInstance verifies two values are the same instance
func AssertSameInstance(t *testing.T, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	assert.Same(t, expected, actual, msgAndArgs...)
}

// AssertDifferentInstances verifies two values are different instances
func AssertDifferentInstances(t *testing.T, first, second any, msgAndArgs ...any) {
	t.Helper()
	assert.NotSame(t, first, second, msgAndArgs...)
}

// AssertErrorType checks if an error is of a specific type
func AssertErrorType[T error](t *testing.T, err error, msgAndArgs ...any) T {
	t.Helper()
	var target T
	assert.ErrorAs(t, err, &target, msgAndArgs...)
	return target
}
