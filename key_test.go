package kontainer_test

import (
	"reflect"
	"testing"

	"github.com/junioryono/kontainer"
	"github.com/junioryono/kontainer/internal/testutil"
	"github.com/stretchr/testify/assert"
)

type box[T any] struct{ v T }

func TestKey(t *testing.T) {
	t.Run("named", func(t *testing.T) {
		k := kontainer.Named("db")
		assert.True(t, k.IsNamed())
		assert.False(t, k.IsZero())
		assert.Equal(t, "db", k.Name())
		assert.Nil(t, k.Type())
		assert.Equal(t, "db", k.String())
	})

	t.Run("type", func(t *testing.T) {
		k := kontainer.TypeKey[*testutil.Root]()
		assert.False(t, k.IsNamed())
		assert.False(t, k.IsZero())
		assert.Equal(t, "", k.Name())
		assert.Equal(t, reflect.TypeFor[*testutil.Root](), k.Type())
		assert.Equal(t, kontainer.KeyOf(reflect.TypeFor[*testutil.Root]()), k)
	})

	t.Run("zero", func(t *testing.T) {
		assert.True(t, kontainer.Key{}.IsZero())
		assert.True(t, kontainer.Named("").IsZero())
		assert.True(t, kontainer.KeyOf(nil).IsZero())
	})

	t.Run("equality", func(t *testing.T) {
		assert.Equal(t, kontainer.Named("a"), kontainer.Named("a"))
		assert.NotEqual(t, kontainer.Named("a"), kontainer.Named("b"))
		assert.NotEqual(t, kontainer.Named("Root"), kontainer.TypeKey[testutil.Root]())
		assert.NotEqual(t, kontainer.TypeKey[testutil.Root](), kontainer.TypeKey[*testutil.Root]())

		m := map[kontainer.Key]int{
			kontainer.Named("Root"):            1,
			kontainer.TypeKey[testutil.Root](): 2,
		}
		assert.Len(t, m, 2)
	})

	t.Run("String", func(t *testing.T) {
		tests := []struct {
			key      kontainer.Key
			expected string
		}{
			{kontainer.TypeKey[testutil.Root](), "Root"},
			{kontainer.TypeKey[*testutil.Root](), "*Root"},
			{kontainer.TypeKey[[]*testutil.Root](), "[]*testutil.Root"},
			{kontainer.TypeKey[[]testutil.Root](), "[]Root"},
			{kontainer.TypeKey[testutil.Facade](), "Facade"},
			{kontainer.TypeKey[int](), "int"},
			{kontainer.TypeKey[map[string]int](), "map[string]int"},
			{kontainer.TypeKey[func() error](), "func() error"},
			{kontainer.TypeKey[box[int]](), "box[int]"},
			{kontainer.TypeKey[*box[int]](), "*box[int]"},
			{kontainer.TypeKey[struct{ A int }](), "struct { A int }"},
			{kontainer.KeyOf(nil), ""},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.key.String())
		}
	})
}
