package token

import (
	"fmt"
)

type TokenType int

const (
	TInteger TokenType = iota
	TFloat
	TString
	TLiteral
	TTrue
	TFalse
	TNull
	TComment
	TColon
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TString:  "TString",
		TLiteral: "TLiteral",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
		TComment: "TComment",
		TColon:   "TColon",
		TComma:   "TComma",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TEOF:     "TEOF",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the value the token denotes: quoted strings are
// unescaped, everything else is the raw token text.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	default:
		return string(t.Bytes)
	}
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
