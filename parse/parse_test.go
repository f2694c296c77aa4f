package parse

import (
	"errors"
	"testing"

	"github.com/aons-format/go-aons/encode"
	"github.com/aons-format/go-aons/ir"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`},
		{in: `true`},
		{in: `false`},
		{in: `TRUE`},
		{in: `22`},
		{in: `-1`},
		{in: `1e14`},
		{in: `0.25`},
		{in: `"hello"`},
		{in: `'hello'`},
		{in: `hello`},
		{in: `{}`},
		{in: `[]`},
		{in: `[a]`},
		{in: `[a,b]`},
		{in: `[a,b,]`},
		{in: `[[]]`},
		{in: `[a,[b,[c]]]`},
		{in: `{a: b}`},
		{in: `{a: b,}`},
		{in: `{ a: { b: 9 }, c: {d: 8} }`},
		{in: `{"a": [1,2], "f[0]": [0,1,2,"three"]}`},
		{in: `{"null": null}`},
		{in: "# comment\n[a]"},
		{in: "# comment\n# again\n[0, 1]"},
		{in: "[0, # inline\n 1]"},
		{in: "{a: 1, # trailing\n}"},
		{in: "{\n  # leading\n  a: 1,\n}"},
		{in: "[1, 2,] # after"},
		{
			in: `# server config
{
  name: server,
  port: 8080,
  tags: [web, prod,],
  tls: {
    enabled: true,
    cert: "/etc/certs/tls.pem",
  },
}
`,
		},
	}
	for i := range pts {
		pt := &pts[i]
		node, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		t.Logf("\n%s\n", encode.MustString(node))
	}
}

func TestBadParse(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: ErrEmptyDoc},
		{in: "   \n\t", e: ErrEmptyDoc},
		{in: "# only a comment\n", e: ErrEmptyDoc},
		{in: "# one\n# two\n", e: ErrEmptyDoc},
		{in: `{a: 1, a: 2}`, e: ErrDuplicateKey},
		{in: `{`, e: ErrParse},
		{in: `[`, e: ErrParse},
		{in: `{a}`, e: ErrParse},
		{in: `{a:}`, e: ErrParse},
		{in: `{a 1}`, e: ErrParse},
		{in: `{,a: 1}`, e: ErrParse},
		{in: `[,1]`, e: ErrParse},
		{in: `[1 2]`, e: ErrParse},
		{in: `{a: 1 b: 2}`, e: ErrParse},
		{in: `{1: a}`, e: ErrParse},
		{in: `{true: a}`, e: ErrParse},
		{in: `1 2`, e: ErrParse},
		{in: `{} []`, e: ErrParse},
		{in: `]`, e: ErrParse},
	}
	for i := range pts {
		pt := &pts[i]
		_, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("%q: expected error, got none", pt.in)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v, want %v", pt.in, err, pt.e)
		}
	}
}

func TestParseValues(t *testing.T) {
	in := `{
  s: word,
  q: "word",
  i: -3,
  f: 2.5,
  b: true,
  n: null,
}`
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("s"), Val: ir.FromString("word")},
		{Key: ir.FromString("q"), Val: ir.FromString("word")},
		{Key: ir.FromString("i"), Val: ir.FromInt(-3)},
		{Key: ir.FromString("f"), Val: ir.FromFloat(2.5)},
		{Key: ir.FromString("b"), Val: ir.FromBool(true)},
		{Key: ir.FromString("n"), Val: ir.Null()},
	})
	if ir.Compare(node, want) != 0 {
		t.Errorf("parsed tree mismatch:\n%s", encode.MustString(node))
	}
	// bare and quoted spellings of the same string are one value
	if ir.Compare(ir.Get(node, "s"), ir.Get(node, "q")) != 0 {
		t.Error("bare word differs from quoted string")
	}
}

func TestParseBacklinks(t *testing.T) {
	node, err := Parse([]byte(`{a: [1, {b: 2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	b := ir.Get(node, "a").Values[1].Values[0]
	if got := b.Path(); got != "$.a[1].b" {
		t.Errorf("Path() = %q", got)
	}
	if b.Root() != node {
		t.Error("Root() did not reach the document root")
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse([]byte("{a: 1,\nb 2}"))
	if err == nil {
		t.Fatal("expected error")
	}
	// the message should point at the second line
	if !errors.Is(err, ErrParse) {
		t.Fatalf("got %v", err)
	}
	if msg := err.Error(); msg == "" {
		t.Error("empty error message")
	}
}
