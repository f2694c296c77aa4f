package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func compileSchema(t *testing.T, in string) *Spec {
	t.Helper()
	spec, err := Compile(mustParse(t, in))
	if err != nil {
		t.Fatalf("compile %q: %v", in, err)
	}
	return spec
}

type issueKey struct {
	Path string
	Code string
}

func issueKeys(iss Issues) []issueKey {
	res := make([]issueKey, len(iss))
	for i := range iss {
		res[i] = issueKey{Path: iss[i].Path, Code: iss[i].Code}
	}
	return res
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		data   string
		strict bool
		want   []issueKey
	}{
		{
			name:   "bounds at root",
			schema: `{type: int, min: 0, max: 10}`,
			data:   `15`,
			want:   []issueKey{{"$", CodeTooBig}},
		},
		{
			name:   "missing required key",
			schema: `{type: object, parameters: {a: {type: string}}, required: [a]}`,
			data:   `{}`,
			want:   []issueKey{{"$.a", CodeRequired}},
		},
		{
			name:   "list item type",
			schema: `{type: list, items: {type: int}}`,
			data:   `[1, "x", 3]`,
			want:   []issueKey{{"$[1]", CodeInvalidType}},
		},
		{
			name:   "enum",
			schema: `{type: string, enum: [a, b]}`,
			data:   `"c"`,
			want:   []issueKey{{"$", CodeInvalidEnum}},
		},
		{
			name:   "number takes float",
			schema: `{type: number, default: 0}`,
			data:   `3.14`,
			want:   nil,
		},
		{
			name:   "number takes int",
			schema: `{type: number}`,
			data:   `3`,
			want:   nil,
		},
		{
			name:   "int rejects float",
			schema: `{type: int}`,
			data:   `3.0`,
			want:   []issueKey{{"$", CodeInvalidType}},
		},
		{
			name:   "float rejects int",
			schema: `{type: float}`,
			data:   `3`,
			want:   []issueKey{{"$", CodeInvalidType}},
		},
		{
			name:   "boolean",
			schema: `{type: boolean}`,
			data:   `True`,
			want:   nil,
		},
		{
			name:   "optional key absent ok",
			schema: `{type: object, parameters: {a: {type: string}}}`,
			data:   `{}`,
			want:   nil,
		},
		{
			name:   "unknown key permissive",
			schema: `{type: object, parameters: {a: {type: string}}}`,
			data:   `{b: 1}`,
			want:   nil,
		},
		{
			name:   "unknown key strict",
			schema: `{type: object, parameters: {a: {type: string}}}`,
			data:   `{b: 1}`,
			strict: true,
			want:   []issueKey{{"$.b", CodeUnknownKey}},
		},
		{
			name:   "bounds inclusive",
			schema: `{type: int, min: 0, max: 10}`,
			data:   `10`,
			want:   nil,
		},
		{
			name:   "mismatch prunes subtree",
			schema: `{type: object, parameters: {a: {type: int, min: 0}}, required: [a]}`,
			data:   `[1]`,
			want:   []issueKey{{"$", CodeInvalidType}},
		},
		{
			name: "whole tree accumulation",
			schema: `{
  type: object,
  parameters: {
    name: {type: string},
    port: {type: int, min: 1, max: 65535},
    tags: {type: list, items: {type: string}},
  },
  required: [name, port],
}`,
			data: `{port: 0, tags: [ok, 2, {}]}`,
			want: []issueKey{
				{"$.name", CodeRequired},
				{"$.port", CodeTooSmall},
				{"$.tags[1]", CodeInvalidType},
				{"$.tags[2]", CodeInvalidType},
			},
		},
		{
			name: "nested paths",
			schema: `{
  type: object,
  parameters: {
    servers: {
      type: list,
      items: {
        type: object,
        parameters: {host: {type: string}, port: {type: int}},
        required: [host],
      },
    },
  },
}`,
			data: `{servers: [{host: a}, {port: x}]}`,
			want: []issueKey{
				{"$.servers[1].host", CodeRequired},
				{"$.servers[1].port", CodeInvalidType},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := compileSchema(t, tt.schema)
			res := Validate(mustParse(t, tt.data), spec, StrictKeys(tt.strict))
			got := issueKeys(res.Issues)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("issues (-want +got):\n%s", diff)
			}
			if res.Valid() != (len(tt.want) == 0) {
				t.Errorf("Valid() = %v with %d issues", res.Valid(), len(res.Issues))
			}
		})
	}
}

func TestValidateNilData(t *testing.T) {
	spec := compileSchema(t, `{type: string}`)
	res := Validate(nil, spec)
	got := issueKeys(res.Issues)
	want := []issueKey{{"$", CodeInvalidType}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("issues (-want +got):\n%s", diff)
	}
}

func TestResultErr(t *testing.T) {
	spec := compileSchema(t, `{type: int, min: 0}`)
	if err := Validate(mustParse(t, `1`), spec).Err(); err != nil {
		t.Errorf("valid doc gave error %v", err)
	}
	err := Validate(mustParse(t, `-1`), spec).Err()
	if err == nil {
		t.Fatal("invalid doc gave nil error")
	}
	if err.Error() == "" {
		t.Error("empty error message")
	}
}
