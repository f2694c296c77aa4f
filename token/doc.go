// Package token provides tokenization support for AONS source text.
//
// [Tokenize] turns raw bytes into a flat token slice terminated by a
// single [TEOF] sentinel. Comments become [TComment] tokens so that
// callers who only care about data can skip them uniformly; they never
// carry into parsed values.
package token
