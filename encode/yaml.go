package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/aons-format/go-aons/ir"
)

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(yamlAny(node))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// yamlAny converts a node to the plain Go values goccy/go-yaml knows
// how to marshal. MapSlice keeps object key order.
func yamlAny(node *ir.Node) any {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return nil
	case ir.StringType:
		return node.String
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = yamlAny(v)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f.String, Value: yamlAny(node.Values[i])}
		}
		return res
	default:
		panic(fmt.Sprintf("type %s", node.Type))
	}
}
