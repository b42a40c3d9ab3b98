package testutil

import (
	"testing"

	"github.com/junioryono/kontainer"
	"github.com/stretchr/testify/require"
)

// ContainerBuilder provides a fluent interface for building test containers.
// Every step is required to succeed.
type ContainerBuilder struct {
	t         *testing.T
	container *kontainer.Container
}

// NewContainerBuilder creates a new ContainerBuilder
func NewContainerBuilder(t *testing.T, opts ...kontainer.Option) *ContainerBuilder {
	return &ContainerBuilder{
		t:         t,
		container: kontainer.New(opts...),
	}
}

// WithPermanent registers a permanent factory
func (b *ContainerBuilder) WithPermanent(key kontainer.Key, factory kontainer.Factory, args ...any) *ContainerBuilder {
	b.t.Helper()
	require.NoError(b.t, b.container.Register(key, factory, kontainer.Permanent, args...))
	return b
}

// WithTransient registers a transient factory
func (b *ContainerBuilder) WithTransient(key kontainer.Key, factory kontainer.Factory, args ...any) *ContainerBuilder {
	b.t.Helper()
	require.NoError(b.t, b.container.Register(key, factory, kontainer.Transient, args...))
	return b
}

// WithValue registers an already built value
func (b *ContainerBuilder) WithValue(key kontainer.Key, value any) *ContainerBuilder {
	b.t.Helper()
	require.NoError(b.t, b.container.RegisterValue(key, value))
	return b
}

// WithModule applies a module
func (b *ContainerBuilder) WithModule(module kontainer.ModuleOption) *ContainerBuilder {
	b.t.Helper()
	require.NoError(b.t, b.container.Apply(module))
	return b
}

// WithTree registers the full Facade dependency tree, leaves first
func (b *ContainerBuilder) WithTree(lifetime kontainer.Lifetime) *ContainerBuilder {
	b.t.Helper()
	require.NoError(b.t, b.container.Apply(TreeModule(lifetime)))
	return b
}

// Build returns the built container
func (b *ContainerBuilder) Build() *kontainer.Container {
	return b.container
}

// TreeModule registers the Facade dependency tree in dependency order.
func TreeModule(lifetime kontainer.Lifetime) kontainer.ModuleOption {
	return kontainer.NewModule("tree",
		kontainer.Provide(kontainer.TypeKey[*LeftLeaf](), NewLeftLeaf, lifetime),
		kontainer.Provide(kontainer.TypeKey[*RightLeaf](), NewRightLeaf, lifetime),
		kontainer.Provide(kontainer.TypeKey[*Left](), NewLeft, lifetime),
		kontainer.Provide(kontainer.TypeKey[*Right](), NewRight, lifetime),
		kontainer.Provide(kontainer.TypeKey[*Root](), NewRoot, lifetime),
		kontainer.Provide(kontainer.TypeKey[Facade](), NewFacade, lifetime),
	)
}
