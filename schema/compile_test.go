package schema

import (
	"errors"
	"testing"

	"github.com/aons-format/go-aons/ir"
	"github.com/aons-format/go-aons/parse"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return node
}

func TestCompileOK(t *testing.T) {
	in := `{
  type: object,
  parameters: {
    name: {type: string},
    port: {type: int, min: 1, max: 65535, default: 8080},
    mode: {type: string, enum: [fast, safe]},
    ratio: {type: float, default: 0.5},
    servers: {
      type: list,
      items: {
        type: object,
        parameters: {host: {type: string}},
        required: [host],
      },
    },
  },
  required: [name],
}`
	spec, err := Compile(mustParse(t, in))
	if err != nil {
		t.Fatal(err)
	}
	if spec.Kind != ObjectKind {
		t.Errorf("kind = %s", spec.Kind)
	}
	name := spec.Parameter("name")
	if name == nil || !name.Required {
		t.Error("name should be a required string parameter")
	}
	port := spec.Parameter("port")
	if port == nil || port.Kind != IntKind {
		t.Fatal("port should be an int parameter")
	}
	if port.Min == nil || *port.Min != 1 || port.Max == nil || *port.Max != 65535 {
		t.Error("port bounds not compiled")
	}
	if port.Default == nil || port.Default.Int64 == nil || *port.Default.Int64 != 8080 {
		t.Error("port default not compiled")
	}
	if port.Required {
		t.Error("port should be optional")
	}
	servers := spec.Parameter("servers")
	if servers == nil || servers.Kind != ListKind || servers.Item == nil {
		t.Fatal("servers should be a list with an item spec")
	}
	host := servers.Item.Parameter("host")
	if host == nil || !host.Required {
		t.Error("servers item host should be required")
	}
	mode := spec.Parameter("mode")
	if mode == nil || len(mode.Enum) != 2 {
		t.Error("mode enum not compiled")
	}
}

// the string kind also answers to its historical short name
func TestCompileStrAlias(t *testing.T) {
	spec, err := Compile(mustParse(t, `{type: str}`))
	if err != nil {
		t.Fatal(err)
	}
	if spec.Kind != StringKind {
		t.Errorf("kind = %s", spec.Kind)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing type", `{min: 0}`},
		{"unknown kind", `{type: blob}`},
		{"type not a name", `{type: 3}`},
		{"unknown key", `{type: int, minimum: 0}`},
		{"legacy valid_keys", `{type: object, valid_keys: {a: {type: int}}}`},
		{"legacy valid_items", `{type: list, valid_items: {type: int}}`},
		{"min on string", `{type: string, min: 0}`},
		{"min not a number", `{type: int, min: x}`},
		{"min above max", `{type: int, min: 10, max: 1}`},
		{"enum on object", `{type: object, parameters: {}, enum: [a]}`},
		{"enum not a list", `{type: string, enum: a}`},
		{"enum empty", `{type: string, enum: []}`},
		{"enum member wrong kind", `{type: string, enum: [a, 3]}`},
		{"object without parameters", `{type: object}`},
		{"parameters not an object", `{type: object, parameters: [a]}`},
		{"parameters on int", `{type: int, parameters: {}}`},
		{"required on int", `{type: int, required: [a]}`},
		{"required not a list", `{type: object, parameters: {}, required: a}`},
		{"required unknown key", `{type: object, parameters: {}, required: [a]}`},
		{"list without items", `{type: list}`},
		{"items on string", `{type: string, items: {type: int}}`},
		{"default violates bounds", `{type: int, min: 0, default: -1}`},
		{"default wrong kind", `{type: int, default: x}`},
		{"default not in enum", `{type: string, enum: [a, b], default: c}`},
		{"rule not an object", `[1, 2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(mustParse(t, tt.in))
			if err == nil {
				t.Fatalf("expected error for %s", tt.in)
			}
			if !errors.Is(err, ErrSchema) {
				t.Errorf("got %v, want ErrSchema", err)
			}
			se := &SchemaError{}
			if !errors.As(err, &se) {
				t.Errorf("error does not carry a schema path: %v", err)
			}
		})
	}
}

func TestCompileErrorPath(t *testing.T) {
	in := `{
  type: object,
  parameters: {
    a: {type: object, parameters: {b: {type: nosuch}}},
  },
}`
	_, err := Compile(mustParse(t, in))
	if err == nil {
		t.Fatal("expected error")
	}
	se := &SchemaError{}
	if !errors.As(err, &se) {
		t.Fatalf("got %v", err)
	}
	if se.Path != "$.parameters.a.parameters.b.type" {
		t.Errorf("error path = %q", se.Path)
	}
}

// compiling the same schema twice yields interchangeable specs
func TestCompileIdempotent(t *testing.T) {
	in := `{type: object, parameters: {a: {type: int, default: 1}}, required: [a]}`
	s1, err := Compile(mustParse(t, in))
	if err != nil {
		t.Fatal(err)
	}
	s2, err := Compile(mustParse(t, in))
	if err != nil {
		t.Fatal(err)
	}
	if s1.Kind != s2.Kind || len(s1.Parameters) != len(s2.Parameters) {
		t.Error("compiled specs differ")
	}
	a1, a2 := s1.Parameter("a"), s2.Parameter("a")
	if a1.Kind != a2.Kind || a1.Required != a2.Required {
		t.Error("compiled parameter specs differ")
	}
}
