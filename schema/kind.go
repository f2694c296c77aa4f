package schema

import (
	"errors"
	"fmt"
)

// Kind is the declared type tag of a schema rule.
type Kind int

const (
	ObjectKind Kind = iota
	ListKind
	StringKind
	IntKind
	FloatKind
	NumberKind
	BooleanKind
)

var ErrBadKind = errors.New("bad kind")

func ParseKind(v string) (Kind, error) {
	k, ok := map[string]Kind{
		"object":  ObjectKind,
		"list":    ListKind,
		"string":  StringKind,
		"str":     StringKind, // accepted for older schema documents
		"int":     IntKind,
		"float":   FloatKind,
		"number":  NumberKind,
		"boolean": BooleanKind,
	}[v]
	if ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadKind, v)
}

func (k Kind) String() string {
	d, err := k.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case ObjectKind:
		return []byte("object"), nil
	case ListKind:
		return []byte("list"), nil
	case StringKind:
		return []byte("string"), nil
	case IntKind:
		return []byte("int"), nil
	case FloatKind:
		return []byte("float"), nil
	case NumberKind:
		return []byte("number"), nil
	case BooleanKind:
		return []byte("boolean"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a kind>", k)
	}
}

func (k *Kind) UnmarshalText(d []byte) error {
	pk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = pk
	return nil
}

// IsNumeric reports whether bounds apply to k.
func (k Kind) IsNumeric() bool {
	switch k {
	case IntKind, FloatKind, NumberKind:
		return true
	default:
		return false
	}
}

// IsLeaf reports whether k describes a scalar position.
func (k Kind) IsLeaf() bool {
	switch k {
	case ObjectKind, ListKind:
		return false
	default:
		return true
	}
}
