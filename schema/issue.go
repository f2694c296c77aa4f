package schema

import (
	"fmt"
	"strings"

	"github.com/aons-format/go-aons/ir"
)

// Issue codes (exported consts for stable programmatic matching).
const (
	CodeInvalidType = "invalid_type"
	CodeRequired    = "required"
	CodeUnknownKey  = "unknown_key"
	CodeTooSmall    = "too_small"
	CodeTooBig      = "too_big"
	CodeInvalidEnum = "invalid_enum"
)

// Issue is one validation violation.
type Issue struct {
	// Path locates the offending position in the data document,
	// e.g. "$.servers[0].port".
	Path    string
	Code    string
	Message string
	// Value is the offending node, nil for a missing required key.
	Value *ir.Node
}

func (i *Issue) String() string {
	return fmt.Sprintf("%s at %s: %s", i.Code, i.Path, i.Message)
}

// Issues is an ordered collection of violations; it implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Result is the outcome of one Validate call: either valid, or the
// complete ordered list of violations found in a single pass.
type Result struct {
	Issues Issues
}

func (r *Result) Valid() bool {
	return len(r.Issues) == 0
}

// Err returns nil when valid and the Issues otherwise.
func (r *Result) Err() error {
	if r.Valid() {
		return nil
	}
	return r.Issues
}
