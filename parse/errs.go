package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse        = errors.New("parse error")
	ErrEmptyDoc     = fmt.Errorf("%w: empty document", ErrParse)
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key", ErrParse)
)
