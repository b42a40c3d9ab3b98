package testutil

import (
	"errors"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/junioryono/kontainer"
)

// Common test errors
var (
	ErrTest        = errors.New("test error")
	ErrIntentional = errors.New("intentional error")
	ErrConstructor = errors.New("constructor error")
)

// TestService is a basic test service with a unique identity.
type TestService struct {
	ID   string
	Data string
}

// NewTestService is a Factory that builds a TestService with a fresh ID.
// The first argument, when given, is used as Data.
func NewTestService(_ kontainer.Resolver, args ...any) (any, error) {
	svc := &TestService{
		ID:   uuid.NewString(),
		Data: "test",
	}
	if len(args) > 0 {
		if s, ok := args[0].(string); ok {
			svc.Data = s
		}
	}
	return svc, nil
}

// FailingFactory always fails with ErrConstructor.
func FailingFactory(_ kontainer.Resolver, _ ...any) (any, error) {
	return nil, ErrConstructor
}

// PanickingFactory always panics with ErrIntentional.
func PanickingFactory(_ kontainer.Resolver, _ ...any) (any, error) {
	panic(ErrIntentional)
}

// ========================================
// Dependency tree
// ========================================
//
//	Facade -> Root -> Left  -> LeftLeaf
//	               -> Right -> RightLeaf

// LeftLeaf has no dependencies.
type LeftLeaf struct{ Field string }

// RightLeaf has no dependencies.
type RightLeaf struct{ Field string }

// Left depends on LeftLeaf.
type Left struct {
	Field string
	Leaf  *LeftLeaf
}

// Right depends on RightLeaf.
type Right struct {
	Field string
	Leaf  *RightLeaf
}

// Root depends on Left and Right.
type Root struct {
	Field string
	Left  *Left
	Right *Right
}

// Facade is the abstraction registered for the whole tree.
type Facade interface {
	Root() *Root
}

type facade struct {
	root *Root
}

func (f *facade) Root() *Root { return f.root }

func NewLeftLeaf(_ kontainer.Resolver, _ ...any) (any, error) {
	return &LeftLeaf{Field: "4"}, nil
}

func NewRightLeaf(_ kontainer.Resolver, _ ...any) (any, error) {
	return &RightLeaf{Field: "5"}, nil
}

func NewLeft(resolve kontainer.Resolver, _ ...any) (any, error) {
	leaf, err := kontainer.ResolveType[*LeftLeaf](resolve)
	if err != nil {
		return nil, err
	}
	return &Left{Field: "2", Leaf: leaf}, nil
}

func NewRight(resolve kontainer.Resolver, _ ...any) (any, error) {
	leaf, err := kontainer.ResolveType[*RightLeaf](resolve)
	if err != nil {
		return nil, err
	}
	return &Right{Field: "3", Leaf: leaf}, nil
}

func NewRoot(resolve kontainer.Resolver, _ ...any) (any, error) {
	left, err := kontainer.ResolveType[*Left](resolve)
	if err != nil {
		return nil, err
	}
	right, err := kontainer.ResolveType[*Right](resolve)
	if err != nil {
		return nil, err
	}
	return &Root{Field: "1", Left: left, Right: right}, nil
}

func NewFacade(resolve kontainer.Resolver, _ ...any) (any, error) {
	root, err := kontainer.ResolveType[*Root](resolve)
	if err != nil {
		return nil, err
	}
	return &facade{root: root}, nil
}

// ========================================
// Argument forwarding
// ========================================

// Pair is built from registration arguments plus one resolved dependency.
type Pair interface {
	Leaf() *RightLeaf
	Tuple() (string, int)
}

type pair struct {
	s    string
	n    int
	leaf *RightLeaf
}

func (p *pair) Leaf() *RightLeaf { return p.leaf }
func (p *pair) Tuple() (string, int) { return p.s, p.n }

// NewPair expects a string and an int argument, in that order.
func NewPair(resolve kontainer.Resolver, args ...any) (any, error) {
	if len(args) != 2 {
		return nil, ErrTest
	}
	s, ok := args[0].(string)
	if !ok {
		return nil, ErrTest
	}
	n, ok := args[1].(int)
	if !ok {
		return nil, ErrTest
	}

	leaf, err := kontainer.ResolveType[*RightLeaf](resolve)
	if err != nil {
		return nil, err
	}

	return &pair{s: s, n: n, leaf: leaf}, nil
}

// ========================================
// Counting
// ========================================

// Numbered exposes the sequence number assigned at construction.
type Numbered interface {
	Number() int64
}

type numbered struct {
	n int64
}

func (n *numbered) Number() int64 { return n.n }

// Counter hands out increasing numbers to the values its factory builds.
type Counter struct {
	next atomic.Int64
}

// Factory returns a Factory whose values carry distinct numbers.
func (c *Counter) Factory() kontainer.Factory {
	return func(_ kontainer.Resolver, _ ...any) (any, error) {
		return &numbered{n: c.next.Add(1)}, nil
	}
}

// Calls returns how many values have been built.
func (c *Counter) Calls() int64 {
	return c.next.Load()
}
