// Package demon defines the closed set of hostile unit types and the
// immutable catalog of their combat and visual profiles.
package demon

import "fmt"

// Type identifies a demon category. The set is closed.
type Type uint8

const (
	Imp Type = iota
	Demon
	Cacodemon
	Baron

	// NumTypes is the number of demon types; valid values are [0, NumTypes).
	NumTypes = int(Baron) + 1
)

// Types lists every demon type in declaration order. Weighted sampling walks
// this order, so the first type whose cumulative weight is crossed wins.
var Types = [NumTypes]Type{Imp, Demon, Cacodemon, Baron}

var typeNames = [NumTypes]string{"IMP", "DEMON", "CACODEMON", "BARON"}

// Valid reports whether t is a member of the enumeration.
func (t Type) Valid() bool { return int(t) < NumTypes }

// String returns the upper-case identifier ("IMP", "BARON", ...).
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeNames[t]
}

// IsStrong reports whether t counts toward the minimum-difficulty guarantee.
// Imps are the only weak type.
func (t Type) IsStrong() bool {
	return t.Valid() && t != Imp
}

// ParseType converts an identifier such as "CACODEMON" back to its Type.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown demon type %q", s)
}

// MarshalText encodes the type by name so JSON and YAML carry "IMP" rather than 0.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("marshal demon type: invalid value %d", uint8(t))
	}
	return []byte(typeNames[t]), nil
}

// UnmarshalText decodes a type name produced by MarshalText.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
