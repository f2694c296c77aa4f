package ir

import "testing"

func doc() *Node {
	return FromKeyVals([]KeyVal{
		{Key: FromString("name"), Val: FromString("app")},
		{Key: FromString("servers"), Val: FromSlice([]*Node{
			FromKeyVals([]KeyVal{
				{Key: FromString("host"), Val: FromString("a")},
				{Key: FromString("port"), Val: FromInt(80)},
			}),
			FromKeyVals([]KeyVal{
				{Key: FromString("host"), Val: FromString("b")},
			}),
		})},
		{Key: FromString("weird.key"), Val: FromBool(true)},
	})
}

func TestNodePath(t *testing.T) {
	d := doc()
	port := Get(d, "servers").Values[0].Values[1]
	if got := port.Path(); got != "$.servers[0].port" {
		t.Errorf("Path() = %q", got)
	}
	w := Get(d, "weird.key")
	if got := w.Path(); got != "$.'weird.key'" {
		t.Errorf("Path() = %q", got)
	}
	if got := d.Path(); got != "$" {
		t.Errorf("root Path() = %q", got)
	}
}

func TestGetPath(t *testing.T) {
	d := doc()
	tests := []struct {
		path string
		want *Node
	}{
		{"$.name", FromString("app")},
		{"$.servers[0].port", FromInt(80)},
		{"$.servers[1]", FromKeyVals([]KeyVal{
			{Key: FromString("host"), Val: FromString("b")},
		})},
		{"$.'weird.key'", FromBool(true)},
	}
	for _, tt := range tests {
		got, err := d.GetPath(tt.path)
		if err != nil {
			t.Errorf("GetPath(%q): %v", tt.path, err)
			continue
		}
		if Compare(got, tt.want) != 0 {
			t.Errorf("GetPath(%q) mismatch", tt.path)
		}
	}
}

func TestGetPathAbsent(t *testing.T) {
	d := doc()
	got, err := d.GetPath("$.nope")
	if err != nil {
		t.Fatalf("absent field should not error: %v", err)
	}
	if got != nil {
		t.Errorf("absent field gave %v", got)
	}
	if _, err := d.GetPath("$.servers[9]"); err == nil {
		t.Error("out of bounds index should error")
	}
	if _, err := d.GetPath(".name"); err == nil {
		t.Error("path without $ should error")
	}
}

func TestParsePathRoundTrip(t *testing.T) {
	for _, p := range []string{
		"$",
		"$.a",
		"$.a[0].b",
		"$[2]",
		"$.'has.dot'[1]",
	} {
		pp, err := ParsePath(p)
		if err != nil {
			t.Errorf("ParsePath(%q): %v", p, err)
			continue
		}
		if got := pp.String(); got != p {
			t.Errorf("ParsePath(%q).String() = %q", p, got)
		}
	}
}

func TestFieldPath(t *testing.T) {
	if got := FieldPath("$", "a"); got != "$.a" {
		t.Errorf("FieldPath = %q", got)
	}
	if got := FieldPath("$.x", "a.b"); got != "$.x.'a.b'" {
		t.Errorf("FieldPath = %q", got)
	}
}
