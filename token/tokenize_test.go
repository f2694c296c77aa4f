package token

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	s := `# a comment
{
  name: server, # trailing
  "quoted key": 'single',
  port: 8080,
  ratio: 0.5,
  neg: -3,
  exp: 1e14,
  on: true,
  off: FALSE,
  nothing: Null,
  word: hello_world,
  url: "https://example.com/a/b",
  esc: "ሴ\t\n\"",
  list: [1, 2.5, three,],
}
`
	toks, err := Tokenize(nil, []byte(s))
	if err != nil {
		t.Fatal(err)
	}
	if toks[len(toks)-1].Type != TEOF {
		t.Errorf("expected TEOF sentinel, got %s", toks[len(toks)-1].Type)
	}
	for i := range toks {
		t.Logf("%s", toks[i].Info())
	}
}

func TestTokenizeTypes(t *testing.T) {
	tests := []struct {
		in   string
		want []TokenType
	}{
		{"true", []TokenType{TTrue, TEOF}},
		{"false", []TokenType{TFalse, TEOF}},
		{"null", []TokenType{TNull, TEOF}},
		{"True", []TokenType{TTrue, TEOF}},
		{"NULL", []TokenType{TNull, TEOF}},
		{"truely", []TokenType{TLiteral, TEOF}},
		{"nullx", []TokenType{TLiteral, TEOF}},
		{"42", []TokenType{TInteger, TEOF}},
		{"-42", []TokenType{TInteger, TEOF}},
		{"0", []TokenType{TInteger, TEOF}},
		{"0.25", []TokenType{TFloat, TEOF}},
		{"-0.25", []TokenType{TFloat, TEOF}},
		{"2e10", []TokenType{TFloat, TEOF}},
		{"2E-10", []TokenType{TFloat, TEOF}},
		{`"s"`, []TokenType{TString, TEOF}},
		{`'s'`, []TokenType{TString, TEOF}},
		{"# only\n", []TokenType{TComment, TEOF}},
		{"a: 1", []TokenType{TLiteral, TColon, TInteger, TEOF}},
		{"[a,]", []TokenType{TLSquare, TLiteral, TComma, TRSquare, TEOF}},
		{"{}", []TokenType{TLCurl, TRCurl, TEOF}},
	}
	for _, tt := range tests {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if len(toks) != len(tt.want) {
			t.Errorf("%q: got %d tokens, want %d", tt.in, len(toks), len(tt.want))
			continue
		}
		for i := range toks {
			if toks[i].Type != tt.want[i] {
				t.Errorf("%q token %d: got %s, want %s", tt.in, i, toks[i].Type, tt.want[i])
			}
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in string
		e  error
	}{
		{`"unterminated`, ErrUnterminated},
		{`'unterminated`, ErrUnterminated},
		{`"bad \q escape"`, ErrBadEscape},
		{`"bad \u12g4"`, ErrBadUnicode},
		{"\"raw \n newline\"", ErrUnicodeControl},
		{"01", ErrNumberLeadingZero},
		{"-", ErrNumber},
		{"\xff", ErrBadUTF8},
	}
	for _, tt := range tests {
		_, err := Tokenize(nil, []byte(tt.in))
		if err == nil {
			t.Errorf("%q: expected error %v, got none", tt.in, tt.e)
			continue
		}
		if !errors.Is(err, tt.e) {
			t.Errorf("%q: got %v, want %v", tt.in, err, tt.e)
		}
		te := &TokenizeErr{}
		if !errors.As(err, &te) {
			t.Errorf("%q: error does not carry a position", tt.in)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	tests := []string{
		"",
		"plain",
		"has space",
		"line\nbreak",
		`quo"te`,
		`single'quote`,
		"\ttab",
		"unicode ∞ ✓",
	}
	for _, s := range tests {
		q := Quote(s, true)
		u, err := Unquote(q)
		if err != nil {
			t.Errorf("%q: unquote(%s): %v", s, q, err)
			continue
		}
		if u != s {
			t.Errorf("%q: round trip gave %q via %s", s, u, q)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"plain", false},
		{"with_underscore", false},
		{"x9", false},
		{"", true},
		{"9x", true},
		{"has space", true},
		{"true", true},
		{"False", true},
		{"null", true},
		{"a-b", true},
		{"dotted.name", true},
	}
	for _, tt := range tests {
		if got := NeedsQuote(tt.in); got != tt.want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPos(t *testing.T) {
	s := "a: 1\nbb: 2\n"
	toks, err := Tokenize(nil, []byte(s))
	if err != nil {
		t.Fatal(err)
	}
	// toks: a : 1 bb : 2 eof; lines and columns are zero based
	line, col := toks[3].Pos.LineCol()
	if line != 1 || col != 0 {
		t.Errorf("bb at line %d col %d, want 1:0", line, col)
	}
	line, col = toks[0].Pos.LineCol()
	if line != 0 || col != 0 {
		t.Errorf("a at line %d col %d, want 0:0", line, col)
	}
}
