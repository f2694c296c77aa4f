package schema

import (
	"github.com/aons-format/go-aons/debug"
	"github.com/aons-format/go-aons/ir"
)

// Schema document keys.
const (
	keyType       = "type"
	keyDefault    = "default"
	keyEnum       = "enum"
	keyMin        = "min"
	keyMax        = "max"
	keyParameters = "parameters"
	keyItems      = "items"
	keyRequired   = "required"
)

// legacyKeys maps keys from the retired flat-name schema dialect to
// their replacements, so authors of older schemas get a pointed error.
var legacyKeys = map[string]string{
	"valid_keys":  keyParameters,
	"valid_items": keyItems,
}

// Compile turns a parsed schema document into a Spec tree. The schema
// tree is read only; compiled Specs hold references into it and both
// must be treated as immutable afterwards.
func Compile(schemaDoc *ir.Node) (*Spec, error) {
	if schemaDoc == nil {
		return nil, &SchemaError{Path: "$", Reason: "schema document is empty"}
	}
	spec, err := compile(schemaDoc)
	if err != nil && debug.Schema() {
		debug.Logf("schema compile: %v\n", err)
	}
	return spec, err
}

func compile(node *ir.Node) (*Spec, error) {
	if node.Type != ir.ObjectType {
		return nil, schemaErrf(node, "schema rule must be an object, got %s", node.Type)
	}
	for _, field := range node.Fields {
		switch field.String {
		case keyType, keyDefault, keyEnum, keyMin, keyMax, keyParameters, keyItems, keyRequired:
		default:
			if repl, ok := legacyKeys[field.String]; ok {
				return nil, schemaErrf(field, "legacy schema key %q is not supported, use %q", field.String, repl)
			}
			return nil, schemaErrf(field, "unknown schema key %q", field.String)
		}
	}
	tv := ir.Get(node, keyType)
	if tv == nil {
		return nil, schemaErrf(node, "missing %q", keyType)
	}
	if tv.Type != ir.StringType {
		return nil, schemaErrf(tv, "%q must be a kind name, got %s", keyType, tv.Type)
	}
	kind, err := ParseKind(tv.String)
	if err != nil {
		return nil, schemaErrf(tv, "unrecognized type %q", tv.String)
	}
	spec := &Spec{Kind: kind}
	if err := compileBounds(node, spec); err != nil {
		return nil, err
	}
	if err := compileEnum(node, spec); err != nil {
		return nil, err
	}
	if err := compileObject(node, spec); err != nil {
		return nil, err
	}
	if err := compileList(node, spec); err != nil {
		return nil, err
	}
	if err := compileDefault(node, spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func compileBounds(node *ir.Node, spec *Spec) error {
	for _, key := range []string{keyMin, keyMax} {
		bn := ir.Get(node, key)
		if bn == nil {
			continue
		}
		if !spec.Kind.IsNumeric() {
			return schemaErrf(bn, "%q applies to numeric kinds, not %s", key, spec.Kind)
		}
		f, ok := numFloat(bn)
		if !ok {
			return schemaErrf(bn, "%q must be a number, got %s", key, bn.Type)
		}
		if key == keyMin {
			spec.Min = &f
		} else {
			spec.Max = &f
		}
	}
	if spec.Min != nil && spec.Max != nil && *spec.Min > *spec.Max {
		return schemaErrf(node, "min %v greater than max %v", *spec.Min, *spec.Max)
	}
	return nil
}

func compileEnum(node *ir.Node, spec *Spec) error {
	en := ir.Get(node, keyEnum)
	if en == nil {
		return nil
	}
	if !spec.Kind.IsLeaf() {
		return schemaErrf(en, "%q applies to leaf kinds, not %s", keyEnum, spec.Kind)
	}
	if en.Type != ir.ArrayType {
		return schemaErrf(en, "%q must be a list, got %s", keyEnum, en.Type)
	}
	if len(en.Values) == 0 {
		return schemaErrf(en, "%q must not be empty", keyEnum)
	}
	for _, member := range en.Values {
		if !kindAccepts(spec.Kind, member) {
			return schemaErrf(member, "enum value %s does not have kind %s", member.Type, spec.Kind)
		}
	}
	spec.Enum = en.Values
	return nil
}

func compileObject(node *ir.Node, spec *Spec) error {
	pn := ir.Get(node, keyParameters)
	rn := ir.Get(node, keyRequired)
	if spec.Kind != ObjectKind {
		if pn != nil {
			return schemaErrf(pn, "%q applies to kind object, not %s", keyParameters, spec.Kind)
		}
		if rn != nil {
			return schemaErrf(rn, "%q applies to kind object, not %s", keyRequired, spec.Kind)
		}
		return nil
	}
	if pn == nil {
		return schemaErrf(node, "kind object requires %q", keyParameters)
	}
	if pn.Type != ir.ObjectType {
		return schemaErrf(pn, "%q must be an object, got %s", keyParameters, pn.Type)
	}
	spec.Parameters = make([]Parameter, 0, len(pn.Fields))
	for i, field := range pn.Fields {
		child, err := compile(pn.Values[i])
		if err != nil {
			return err
		}
		spec.Parameters = append(spec.Parameters, Parameter{Name: field.String, Spec: child})
	}
	if rn == nil {
		return nil
	}
	if rn.Type != ir.ArrayType {
		return schemaErrf(rn, "%q must be a list of key names, got %s", keyRequired, rn.Type)
	}
	for _, name := range rn.Values {
		if name.Type != ir.StringType {
			return schemaErrf(name, "%q entries must be key names, got %s", keyRequired, name.Type)
		}
		ps := spec.Parameter(name.String)
		if ps == nil {
			return schemaErrf(name, "required key %q is not in %q", name.String, keyParameters)
		}
		ps.Required = true
	}
	return nil
}

func compileList(node *ir.Node, spec *Spec) error {
	in := ir.Get(node, keyItems)
	if spec.Kind != ListKind {
		if in != nil {
			return schemaErrf(in, "%q applies to kind list, not %s", keyItems, spec.Kind)
		}
		return nil
	}
	if in == nil {
		return schemaErrf(node, "kind list requires %q", keyItems)
	}
	item, err := compile(in)
	if err != nil {
		return err
	}
	spec.Item = item
	return nil
}

// compileDefault records a default and proves at compile time that it
// satisfies the spec it decorates, so validation never has to.
func compileDefault(node *ir.Node, spec *Spec) error {
	dn := ir.Get(node, keyDefault)
	if dn == nil {
		return nil
	}
	if res := Validate(dn, spec); !res.Valid() {
		iss := res.Issues[0]
		return schemaErrf(dn, "default does not satisfy its own spec: %s at %s", iss.Message, iss.Path)
	}
	spec.Default = dn
	return nil
}

func numFloat(n *ir.Node) (float64, bool) {
	if n.Type != ir.NumberType {
		return 0, false
	}
	if n.Int64 != nil {
		return float64(*n.Int64), true
	}
	if n.Float64 != nil {
		return *n.Float64, true
	}
	return 0, false
}
