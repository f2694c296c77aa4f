package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// literalLen returns the byte length of a bare word at the start of d:
// letters, digits and underscore, not starting with a digit.
func literalLen(d []byte) int {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError {
			break
		}
		if !isLiteralRune(r) {
			break
		}
		if i == 0 && unicode.IsDigit(r) {
			break
		}
		i += sz
	}
	return i
}

func isLiteralRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsIdent reports whether v is a non-empty bare word.
func IsIdent(v string) bool {
	return v != "" && literalLen([]byte(v)) == len(v)
}

// keyword maps the case-insensitive boolean and null literals. The
// observed documents mix True/true and False/false, so any casing is
// accepted; encoding always produces lowercase.
func keyword(d []byte) (TokenType, bool) {
	switch {
	case strings.EqualFold(string(d), "true"):
		return TTrue, true
	case strings.EqualFold(string(d), "false"):
		return TFalse, true
	case strings.EqualFold(string(d), "null"):
		return TNull, true
	default:
		return 0, false
	}
}
