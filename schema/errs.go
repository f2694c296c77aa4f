package schema

import (
	"errors"
	"fmt"

	"github.com/aons-format/go-aons/ir"
)

var ErrSchema = errors.New("schema error")

// SchemaError reports a malformed schema document. Path points into the
// schema document, not into any data document.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s at %s: %s", ErrSchema.Error(), e.Path, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

func schemaErrf(node *ir.Node, format string, args ...any) *SchemaError {
	return &SchemaError{
		Path:   node.Path(),
		Reason: fmt.Sprintf(format, args...),
	}
}
