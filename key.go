package kontainer

import (
	"reflect"
)

// Key identifies a registration. A key is either a string name or a type.
//
// Keys are comparable and are used directly as map keys. A named key and a
// type key never collide, even when the name equals the type's name.
// The zero Key is not a valid key.
type Key struct {
	name string
	typ  reflect.Type
}

// Named returns a key identified by name.
func Named(name string) Key {
	return Key{name: name}
}

// KeyOf returns a key identified by the given type.
func KeyOf(t reflect.Type) Key {
	return Key{typ: t}
}

// TypeKey returns a key identified by the type T. Interface types are
// allowed, which makes it possible to register an implementation under the
// abstraction it satisfies.
//
//	kontainer.TypeKey[Logger]()
//	kontainer.TypeKey[*Database]()
func TypeKey[T any]() Key {
	return Key{typ: reflect.TypeFor[T]()}
}

// Name returns the key's string name, or "" for type keys.
func (k Key) Name() string {
	return k.name
}

// Type returns the key's type, or nil for named keys.
func (k Key) Type() reflect.Type {
	return k.typ
}

// IsNamed reports whether k was created from a string name.
func (k Key) IsNamed() bool {
	return k.typ == nil && k.name != ""
}

// IsZero reports whether k identifies nothing.
func (k Key) IsZero() bool {
	return k.typ == nil && k.name == ""
}

// String returns the human readable name of the key: the name itself for
// named keys, and the type's declared name for type keys.
func (k Key) String() string {
	if k.typ != nil {
		return formatType(k.typ)
	}
	return k.name
}

// formatType formats a reflect.Type for error messages.
func formatType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		// *Type instead of *package.Type
		elem := t.Elem()
		if elem.PkgPath() != "" && elem.Name() != "" {
			return "*" + elem.Name()
		}
		return t.String()
	case reflect.Slice:
		elem := t.Elem()
		if elem.PkgPath() != "" && elem.Name() != "" {
			return "[]" + elem.Name()
		}
		return t.String()
	case reflect.Func:
		return t.String()
	default:
		if t.Name() != "" {
			return t.Name()
		}
		return t.String()
	}
}
