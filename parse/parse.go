package parse

import (
	"fmt"
	"strconv"

	"github.com/aons-format/go-aons/debug"
	"github.com/aons-format/go-aons/ir"
	"github.com/aons-format/go-aons/token"
)

func Parse(d []byte) (*ir.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		token.PrintTokens(toks, "parse")
	}
	off := 0
	res, err := parseValue(toks, nil, &off)
	if err != nil {
		return nil, err
	}
	skipComments(toks, &off)
	if t := &toks[off]; t.Type != token.TEOF {
		return nil, fmt.Errorf("%w: trailing content %q %s", ErrParse, string(t.Bytes), t.Pos)
	}
	return res, nil
}

// skipComments advances past comment tokens. Comments are invisible to
// the grammar and never appear in the resulting tree.
func skipComments(toks []token.Token, pi *int) {
	for toks[*pi].Type == token.TComment {
		*pi++
	}
}

func parseValue(toks []token.Token, p *ir.Node, pi *int) (*ir.Node, error) {
	skipComments(toks, pi)
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		*pi++
		objY := &ir.Node{Type: ir.ObjectType, Parent: p}
		return parseObj(toks, objY, pi)
	case token.TLSquare:
		*pi++
		arrY := &ir.Node{Type: ir.ArrayType, Parent: p}
		return parseArr(toks, arrY, pi)
	case token.TString, token.TLiteral:
		// a bare word in value position is a string literal equal to
		// its own text, so schemas can write `type: string` unquoted
		*pi++
		sy := ir.FromString(t.String())
		sy.Parent = p
		return sy, nil
	case token.TInteger:
		*pi++
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid integer (%v) %s", ErrParse, err, t.Pos)
		}
		iy := ir.FromInt(i)
		iy.Parent = p
		return iy, nil
	case token.TFloat:
		*pi++
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid float (%v) %s", ErrParse, err, t.Pos)
		}
		fy := ir.FromFloat(f)
		fy.Parent = p
		return fy, nil
	case token.TTrue:
		*pi++
		by := ir.FromBool(true)
		by.Parent = p
		return by, nil
	case token.TFalse:
		*pi++
		by := ir.FromBool(false)
		by.Parent = p
		return by, nil
	case token.TNull:
		*pi++
		ny := ir.Null()
		ny.Parent = p
		return ny, nil
	case token.TEOF:
		empty := true
		for i := 0; i < *pi; i++ {
			if toks[i].Type != token.TComment {
				empty = false
				break
			}
		}
		if empty {
			return nil, ErrEmptyDoc
		}
		return nil, fmt.Errorf("%w: premature end of document %s", ErrParse, t.Pos)
	default:
		return nil, fmt.Errorf("%w: unexpected token %q %s (%s)", ErrParse, string(t.Bytes), t.Pos, t.Type)
	}
}

func parseObj(toks []token.Token, p *ir.Node, pi *int) (*ir.Node, error) {
	kvs := []ir.KeyVal{}
	seen := map[string]bool{}
	needSep := false
	for {
		skipComments(toks, pi)
		tok := &toks[*pi]
		switch tok.Type {
		case token.TRCurl:
			*pi++
			return ir.FromKeyValsAt(p, kvs), nil
		case token.TEOF:
			return nil, fmt.Errorf("%w: premature end of object %s", ErrParse, tok.Pos)
		case token.TComma:
			if !needSep {
				return nil, fmt.Errorf("%w: unexpected ',' %s", ErrParse, tok.Pos)
			}
			*pi++
			needSep = false
		case token.TLiteral, token.TString:
			if needSep {
				return nil, fmt.Errorf("%w: expected ',' or '}' before %q %s",
					ErrParse, string(tok.Bytes), tok.Pos)
			}
			key := ir.FromString(tok.String())
			if seen[key.String] {
				return nil, fmt.Errorf("%w %q %s", ErrDuplicateKey, key.String, tok.Pos)
			}
			seen[key.String] = true
			*pi++
			skipComments(toks, pi)
			if colTok := &toks[*pi]; colTok.Type != token.TColon {
				return nil, fmt.Errorf("%w: expected ':' after key %q, got %q %s",
					ErrParse, key.String, string(colTok.Bytes), colTok.Pos)
			}
			*pi++
			val, err := parseValue(toks, p, pi)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
			needSep = true
		default:
			return nil, fmt.Errorf("%w: unexpected token %q in object %s",
				ErrParse, string(tok.Bytes), tok.Pos)
		}
	}
}

func parseArr(toks []token.Token, p *ir.Node, pi *int) (*ir.Node, error) {
	needSep := false
	for {
		skipComments(toks, pi)
		tok := &toks[*pi]
		switch tok.Type {
		case token.TRSquare:
			*pi++
			return p, nil
		case token.TEOF:
			return nil, fmt.Errorf("%w: premature end of list %s", ErrParse, tok.Pos)
		case token.TComma:
			if !needSep {
				return nil, fmt.Errorf("%w: unexpected ',' %s", ErrParse, tok.Pos)
			}
			*pi++
			needSep = false
		default:
			if needSep {
				return nil, fmt.Errorf("%w: expected ',' or ']' before %q %s",
					ErrParse, string(tok.Bytes), tok.Pos)
			}
			elt, err := parseValue(toks, p, pi)
			if err != nil {
				return nil, err
			}
			elt.Parent = p
			elt.ParentIndex = len(p.Values)
			p.Values = append(p.Values, elt)
			needSep = true
		}
	}
}
