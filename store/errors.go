package store

import (
	"errors"
	"fmt"
)

// ErrConstraintViolation matches every *ConstraintViolation through errors.Is.
var ErrConstraintViolation = errors.New("constraint violation")

// ConstraintViolation reports a write that would break key or reference integrity.
type ConstraintViolation struct {
	Entity string // table being written
	Field  string // column that failed
	Ref    uint   // offending id
	Detail string
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("constraint violation on %s.%s=%d: %s", e.Entity, e.Field, e.Ref, e.Detail)
}

func (e *ConstraintViolation) Is(target error) bool {
	return target == ErrConstraintViolation
}
