package kontainer

import (
	"encoding/json"
	"fmt"
)

// Lifetime specifies how long a value built from a registration lives.
// It decides when the factory runs and whether the result is cached.
type Lifetime int

const (
	// Permanent builds the value once, during Register, and returns the
	// cached value on every resolution until the key is registered again.
	// Everything a permanent factory resolves must already be registered.
	Permanent Lifetime = iota

	// Transient runs the factory on every resolution. Nothing is cached.
	Transient
)

// String returns the string representation of the Lifetime.
func (l Lifetime) String() string {
	switch l {
	case Permanent:
		return "Permanent"
	case Transient:
		return "Transient"
	default:
		return fmt.Sprintf("Unknown(%d)", int(l))
	}
}

// IsValid checks if the lifetime is one of the known values.
func (l Lifetime) IsValid() bool {
	return l >= Permanent && l <= Transient
}

// MarshalText implements encoding.TextMarshaler.
func (l Lifetime) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, LifetimeError{Value: l}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Lifetime) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Permanent", "permanent":
		*l = Permanent
	case "Transient", "transient":
		*l = Transient
	default:
		return LifetimeError{Value: string(text)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (l Lifetime) MarshalJSON() ([]byte, error) {
	text, err := l.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Lifetime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	return l.UnmarshalText([]byte(s))
}
