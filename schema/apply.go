package schema

import (
	"github.com/aons-format/go-aons/ir"
)

// ApplyDefaults returns a copy of data with every absent optional key
// that has a default filled in from the spec, recursively. Data is not
// modified. Positions that do not match the spec's shape are left
// alone; run Validate first if that matters.
func ApplyDefaults(data *ir.Node, spec *Spec) *ir.Node {
	res := data.Clone()
	applyDefaults(res, spec)
	return res
}

func applyDefaults(data *ir.Node, spec *Spec) {
	switch spec.Kind {
	case ObjectKind:
		if data.Type != ir.ObjectType {
			return
		}
		for i := range spec.Parameters {
			p := &spec.Parameters[i]
			child := ir.Get(data, p.Name)
			if child == nil {
				if p.Spec.Default == nil {
					continue
				}
				child = appendField(data, p.Name, p.Spec.Default.Clone())
			}
			applyDefaults(child, p.Spec)
		}
	case ListKind:
		if data.Type != ir.ArrayType {
			return
		}
		for _, elt := range data.Values {
			applyDefaults(elt, spec.Item)
		}
	}
}

// appendField attaches val to obj under name, maintaining the parent
// backlinks, and returns val.
func appendField(obj *ir.Node, name string, val *ir.Node) *ir.Node {
	i := len(obj.Fields)
	key := ir.FromString(name)
	key.Parent = obj
	key.ParentIndex = i
	key.ParentField = name
	val.Parent = obj
	val.ParentIndex = i
	val.ParentField = name
	obj.Fields = append(obj.Fields, key)
	obj.Values = append(obj.Values, val)
	return val
}
