// Package encode renders ir.Node trees as text.
//
// The native output is canonical AONS: two-space indent, trailing
// commas, bare words where quoting is unnecessary, lowercase keyword
// literals. JSON and YAML renderings are selected with
// [EncodeFormat]; colored output for terminals with [EncodeColors].
//
// Canonical AONS output re-parses to a structurally equal tree.
package encode
