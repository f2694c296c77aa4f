package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aons-format/go-aons/format"
	"github.com/aons-format/go-aons/ir"
	"github.com/aons-format/go-aons/token"
)

type EncState struct {
	depth, indent int
	compact       bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObj(node, w, es)
	case ir.ArrayType:
		return encodeArr(node, w, es)
	default:
		s, err := leafString(node, es)
		if err != nil {
			return err
		}
		return writeString(w, es.colored(node.Type, ValueColor, s))
	}
}

func leafString(node *ir.Node, es *EncState) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		if node.Bool {
			return "true", nil
		}
		return "false", nil
	case ir.NumberType:
		if node.Int64 != nil {
			return strconv.FormatInt(*node.Int64, 10), nil
		}
		if node.Float64 != nil {
			return formatFloat(*node.Float64), nil
		}
		return "", fmt.Errorf("number node carries no value")
	case ir.StringType:
		s := node.String
		if !es.format.IsJSON() && !token.NeedsQuote(s) {
			return s, nil
		}
		return token.Quote(s, !es.format.IsJSON()), nil
	default:
		return "", fmt.Errorf("%s is not a leaf", node.Type)
	}
}

// formatFloat keeps a decimal point or exponent in the output so the
// value re-parses as a float.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eE") || strings.Contains(s, "Inf") || s == "NaN" {
		return s
	}
	return s + ".0"
}

func encodeObj(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeString(w, es.colored(ir.ObjectType, SepColor, "{}"))
	}
	if err := writeString(w, es.colored(ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if err := es.memberStart(w); err != nil {
			return err
		}
		if err := writeString(w, es.colored(ir.ObjectType, FieldColor, es.keyString(field.String))); err != nil {
			return err
		}
		if err := writeString(w, es.colored(ir.ObjectType, SepColor, ": ")); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if err := es.memberEnd(w, i == len(node.Fields)-1); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.closeIndent(w); err != nil {
		return err
	}
	return writeString(w, es.colored(ir.ObjectType, SepColor, "}"))
}

func encodeArr(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, es.colored(ir.ArrayType, SepColor, "[]"))
	}
	if err := writeString(w, es.colored(ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, elt := range node.Values {
		if err := es.memberStart(w); err != nil {
			return err
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
		if err := es.memberEnd(w, i == len(node.Values)-1); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.closeIndent(w); err != nil {
		return err
	}
	return writeString(w, es.colored(ir.ArrayType, SepColor, "]"))
}

func (es *EncState) keyString(k string) string {
	if !es.format.IsJSON() && !token.NeedsQuote(k) {
		return k
	}
	return token.Quote(k, false)
}

// memberStart emits the newline and indent before a member.
func (es *EncState) memberStart(w io.Writer) error {
	if es.compact {
		return nil
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	return writeString(w, strings.Repeat(" ", es.depth*es.indent))
}

// memberEnd emits the separator after a member. AONS always writes the
// comma, which yields a trailing comma before the closing bracket; JSON
// omits it on the last member.
func (es *EncState) memberEnd(w io.Writer, last bool) error {
	if last && (es.format.IsJSON() || es.compact) {
		return nil
	}
	if es.compact {
		return writeString(w, ", ")
	}
	return writeString(w, es.colored(ir.ObjectType, SepColor, ","))
}

func (es *EncState) closeIndent(w io.Writer) error {
	if es.compact {
		return nil
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	return writeString(w, strings.Repeat(" ", es.depth*es.indent))
}

func (es *EncState) colored(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
