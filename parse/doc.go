// Package parse turns AONS source text into ir.Node trees.
//
// [Parse] is the single entry point. Comments and trailing commas are
// accepted and discarded; bare words in value position become string
// leaves; duplicate keys within one object are rejected rather than
// silently overwritten.
package parse
