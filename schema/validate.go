package schema

import (
	"fmt"
	"strconv"

	"github.com/aons-format/go-aons/debug"
	"github.com/aons-format/go-aons/ir"
)

// ValidateConfig holds the validator switches set by ValidateOptions.
type ValidateConfig struct {
	// StrictKeys rejects object keys that the spec does not declare.
	// The default is to ignore them.
	StrictKeys bool
}

type ValidateOption func(*ValidateConfig)

func StrictKeys(v bool) ValidateOption {
	return func(c *ValidateConfig) {
		c.StrictKeys = v
	}
}

// Validate checks data against spec and returns every violation found,
// in document order. It never stops at the first problem: a type
// mismatch only prunes the subtree beneath it.
func Validate(data *ir.Node, spec *Spec, opts ...ValidateOption) *Result {
	v := &validator{}
	for _, opt := range opts {
		opt(&v.cfg)
	}
	v.validate(data, spec, "$")
	if debug.Validate() {
		for i := range v.issues {
			debug.Logf("validate: %s\n", v.issues[i].String())
		}
	}
	return &Result{Issues: v.issues}
}

type validator struct {
	cfg    ValidateConfig
	issues Issues
}

func (v *validator) issue(path, code, msg string, node *ir.Node) {
	v.issues = append(v.issues, Issue{
		Path:    path,
		Code:    code,
		Message: msg,
		Value:   node,
	})
}

func (v *validator) validate(data *ir.Node, spec *Spec, path string) {
	if data == nil {
		data = ir.Null()
	}
	if !kindAccepts(spec.Kind, data) {
		v.issue(path, CodeInvalidType,
			fmt.Sprintf("expected %s, got %s", spec.Kind, typeLabel(data)), data)
		return
	}
	v.bounds(data, spec, path)
	v.enum(data, spec, path)
	switch spec.Kind {
	case ObjectKind:
		v.object(data, spec, path)
	case ListKind:
		v.list(data, spec, path)
	}
}

func (v *validator) bounds(data *ir.Node, spec *Spec, path string) {
	if spec.Min == nil && spec.Max == nil {
		return
	}
	f, ok := numFloat(data)
	if !ok {
		return
	}
	if spec.Min != nil && f < *spec.Min {
		v.issue(path, CodeTooSmall,
			fmt.Sprintf("%v is less than min %v", f, *spec.Min), data)
	}
	if spec.Max != nil && f > *spec.Max {
		v.issue(path, CodeTooBig,
			fmt.Sprintf("%v is greater than max %v", f, *spec.Max), data)
	}
}

func (v *validator) enum(data *ir.Node, spec *Spec, path string) {
	if len(spec.Enum) == 0 {
		return
	}
	for _, member := range spec.Enum {
		if ir.Compare(data, member) == 0 {
			return
		}
	}
	v.issue(path, CodeInvalidEnum, "value is not in the enum", data)
}

func (v *validator) object(data *ir.Node, spec *Spec, path string) {
	for i := range spec.Parameters {
		p := &spec.Parameters[i]
		child := ir.Get(data, p.Name)
		childPath := ir.FieldPath(path, p.Name)
		if child == nil {
			if p.Spec.Required {
				v.issue(childPath, CodeRequired,
					fmt.Sprintf("missing required key %q", p.Name), nil)
			}
			continue
		}
		v.validate(child, p.Spec, childPath)
	}
	if !v.cfg.StrictKeys {
		return
	}
	for i, field := range data.Fields {
		if spec.Parameter(field.String) != nil {
			continue
		}
		v.issue(ir.FieldPath(path, field.String), CodeUnknownKey,
			fmt.Sprintf("key %q is not declared", field.String), data.Values[i])
	}
}

func (v *validator) list(data *ir.Node, spec *Spec, path string) {
	for i, elt := range data.Values {
		v.validate(elt, spec.Item, path+"["+strconv.Itoa(i)+"]")
	}
}

// kindAccepts reports whether the node's shape matches the kind. Int
// and float are disjoint: 1 is not a float and 1.0 is not an int.
// Number takes either.
func kindAccepts(k Kind, n *ir.Node) bool {
	switch k {
	case ObjectKind:
		return n.Type == ir.ObjectType
	case ListKind:
		return n.Type == ir.ArrayType
	case StringKind:
		return n.Type == ir.StringType
	case BooleanKind:
		return n.Type == ir.BoolType
	case IntKind:
		return n.Type == ir.NumberType && n.Int64 != nil
	case FloatKind:
		return n.Type == ir.NumberType && n.Float64 != nil
	case NumberKind:
		return n.Type == ir.NumberType
	default:
		return false
	}
}

// typeLabel names what the data actually is, in kind vocabulary where
// one exists.
func typeLabel(n *ir.Node) string {
	switch n.Type {
	case ir.NumberType:
		if n.Int64 != nil {
			return "int"
		}
		return "float"
	case ir.ObjectType:
		return "object"
	case ir.ArrayType:
		return "list"
	case ir.StringType:
		return "string"
	case ir.BoolType:
		return "boolean"
	case ir.NullType:
		return "null"
	default:
		return n.Type.String()
	}
}
