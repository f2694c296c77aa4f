package token

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Tokenize appends the tokens of src to dst and terminates the result
// with a single TEOF sentinel. Comments are kept as TComment tokens;
// whitespace is discarded.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	pd := &PosDoc{d: src}
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch c {
		case '\n':
			pd.nl(i)
			i++
		case ' ', '\t', '\r':
			i++
		case '{':
			dst = append(dst, Token{Type: TLCurl, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case '}':
			dst = append(dst, Token{Type: TRCurl, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case '[':
			dst = append(dst, Token{Type: TLSquare, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case ']':
			dst = append(dst, Token{Type: TRSquare, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case ':':
			dst = append(dst, Token{Type: TColon, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case ',':
			dst = append(dst, Token{Type: TComma, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case '#':
			j := i
			for j < n && src[j] != '\n' {
				j++
			}
			dst = append(dst, Token{Type: TComment, Pos: pd.Pos(i), Bytes: src[i:j]})
			i = j
		case '"', '\'':
			m, err := bsEscQuoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i))
			}
			dst = append(dst, Token{Type: TString, Pos: pd.Pos(i), Bytes: src[i : i+m]})
			i += m
		default:
			tok, sz, err := tokenizeValue(src, i, pd)
			if err != nil {
				return nil, err
			}
			dst = append(dst, *tok)
			i += sz
		}
	}
	dst = append(dst, Token{Type: TEOF, Pos: pd.end()})
	return dst, nil
}

func tokenizeValue(src []byte, i int, pd *PosDoc) (*Token, int, error) {
	c := src[i]
	if c == '-' || asciiDigit(c) {
		sign := 0
		if c == '-' {
			sign = 1
		}
		m, isFloat, err := number(src[i+sign:])
		if err != nil {
			return nil, 0, NewTokenizeErr(err, pd.Pos(i))
		}
		typ := TInteger
		if isFloat {
			typ = TFloat
		}
		return &Token{Type: typ, Pos: pd.Pos(i), Bytes: src[i : i+sign+m]}, sign + m, nil
	}
	r, _ := utf8.DecodeRune(src[i:])
	if r == utf8.RuneError {
		return nil, 0, NewTokenizeErr(ErrBadUTF8, pd.Pos(i))
	}
	if !isLiteralRune(r) || unicode.IsDigit(r) {
		return nil, 0, UnexpectedErr(fmt.Sprintf("character %q", r), pd.Pos(i))
	}
	m := literalLen(src[i:])
	if m == 0 {
		return nil, 0, NewTokenizeErr(ErrLiteral, pd.Pos(i))
	}
	word := src[i : i+m]
	if typ, ok := keyword(word); ok {
		return &Token{Type: typ, Pos: pd.Pos(i), Bytes: word}, m, nil
	}
	return &Token{Type: TLiteral, Pos: pd.Pos(i), Bytes: word}, m, nil
}
