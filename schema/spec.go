package schema

import (
	"github.com/aons-format/go-aons/ir"
)

// Spec is the compiled validation rule for one position in a document.
// Specs form a tree mirroring the shape of the documents they accept.
type Spec struct {
	Kind Kind

	// Default fills this position when it is an absent optional key.
	// It satisfies the surrounding Spec; Compile guarantees that.
	Default *ir.Node

	// Required is meaningful only for specs inside an enclosing
	// object's parameter list.
	Required bool

	// Enum is the allow-list of values for a leaf position.
	Enum []*ir.Node

	// Min and Max bound numeric kinds inclusively.
	Min *float64
	Max *float64

	// Parameters lists the known keys of an object kind, in schema
	// document order.
	Parameters []Parameter

	// Item describes every element of a list kind.
	Item *Spec
}

// Parameter is one named key of an object spec.
type Parameter struct {
	Name string
	Spec *Spec
}

// Parameter returns the spec for a named key, or nil if the key is not
// declared.
func (s *Spec) Parameter(name string) *Spec {
	for i := range s.Parameters {
		if s.Parameters[i].Name == name {
			return s.Parameters[i].Spec
		}
	}
	return nil
}
