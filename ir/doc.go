// Package ir provides the intermediate representation for AONS documents.
//
// All AONS documents, whether parsed from text or created
// programmatically, are represented as a tree of [Node] values. A data
// document and a schema document share this one representation; the
// schema package interprets a Node tree as validation rules.
//
// The IR is a recursive tagged union. The Type field selects which of
// the remaining fields carry the value:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: exactly one of Int64 or Float64
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields[i] is the key node for Values[i]; keys are
//     always strings, unique within one object, in insertion order
//
// Nodes carry parent backlinks (Parent, ParentIndex, ParentField) so a
// node can report its location via [Node.Path] without any external
// bookkeeping. Trees are built once and treated as immutable afterwards;
// use [Node.Clone] before modifying a tree you did not build.
//
// Nodes contain no source positions. Position information lives in the
// token and parse layers and only appears in their errors.
package ir
