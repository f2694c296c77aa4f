// Package schema compiles AONS schema documents into executable
// validation rules and checks data documents against them.
//
// A schema document is an ordinary AONS document whose objects are
// interpreted as rules. Each rule object carries a "type" naming one of
// the kinds (object, list, string, int, float, number, boolean) plus
// optional constraints:
//
//	{
//	  type: object,
//	  parameters: {
//	    host: { type: string, },
//	    port: { type: int, min: 1, max: 65535, default: 8080, },
//	    mode: { type: string, enum: [dev, prod], },
//	  },
//	  required: [host],
//	}
//
// [Compile] turns such a tree into a [Spec]; schema-level problems are
// reported as [SchemaError] with a path into the schema document.
// [Validate] checks a data tree against a Spec and accumulates every
// violation across the whole tree into a [Result] rather than stopping
// at the first. [ApplyDefaults] fills absent optional keys from their
// defaults on a copy of the data, leaving validation side-effect free.
//
// Specs are immutable after Compile and safe for concurrent use across
// any number of Validate calls.
package schema
