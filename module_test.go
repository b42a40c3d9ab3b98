package kontainer_test

import (
	"testing"

	"github.com/junioryono/kontainer"
	"github.com/junioryono/kontainer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		t.Parallel()

		c := testutil.NewContainerBuilder(t).
			WithModule(testutil.TreeModule(kontainer.Permanent)).
			Build()

		f := testutil.AssertTypeResolvable[testutil.Facade](t, c.Resolver())
		assert.Equal(t, "1", f.Root().Field)
		assert.Equal(t, 6, c.Len())
	})

	t.Run("nested modules", func(t *testing.T) {
		t.Parallel()

		config := kontainer.NewModule("config",
			kontainer.Value(kontainer.Named("greeting"), "hello"),
		)
		app := kontainer.NewModule("app",
			config,
			nil,
			kontainer.Provide(kontainer.Named("service"), testutil.NewTestService, kontainer.Transient, "payload"),
		)

		c := kontainer.New()
		require.NoError(t, c.Apply(app))

		svc := testutil.AssertResolvable[*testutil.TestService](t, c.Resolver(), kontainer.Named("service"))
		assert.Equal(t, "payload", svc.Data)

		greeting, err := kontainer.Resolve[string](c.Resolver(), kontainer.Named("greeting"))
		require.NoError(t, err)
		assert.Equal(t, "hello", greeting)
	})

	t.Run("out of order registration fails with module context", func(t *testing.T) {
		t.Parallel()

		broken := kontainer.NewModule("broken",
			kontainer.Provide(kontainer.TypeKey[*testutil.Left](), testutil.NewLeft, kontainer.Permanent),
			kontainer.Provide(kontainer.TypeKey[*testutil.LeftLeaf](), testutil.NewLeftLeaf, kontainer.Permanent),
		)

		c := kontainer.New()
		err := c.Apply(broken)

		modErr := testutil.AssertErrorType[kontainer.ModuleError](t, err)
		assert.Equal(t, "broken", modErr.Module)
		testutil.AssertNotResolvable(t, err, kontainer.TypeKey[*testutil.LeftLeaf]())

		// Apply stops at the first failure.
		assert.False(t, c.Contains(kontainer.TypeKey[*testutil.LeftLeaf]()))
	})

	t.Run("Apply skips nil options", func(t *testing.T) {
		t.Parallel()

		c := kontainer.New()
		require.NoError(t, c.Apply(nil, kontainer.Value(kontainer.Named("x"), 1)))
		assert.True(t, c.Contains(kontainer.Named("x")))
	})
}
