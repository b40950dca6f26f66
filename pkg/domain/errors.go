package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyAxis is returned when a wedge declaration expands to no values.
var ErrEmptyAxis = errors.New("axis produced no values")

// ErrInvalidAxis is returned when a wedge declaration is malformed, such
// as a minmax triple with the wrong arity or a zero step.
var ErrInvalidAxis = errors.New("invalid axis declaration")

// ErrAxisOverflow is returned when a minmax expansion exceeds the step
// budget instead of silently truncating.
var ErrAxisOverflow = errors.New("axis expansion exceeded step budget")

// ErrAmbiguousOutput is returned when no unique output location can be
// determined on the job template.
var ErrAmbiguousOutput = errors.New("unable to determine a unique output node")

// ApplyError reports a declared (node, param) location the job template
// rejected. It aborts the whole run: a sweep with a bad declaration must
// not be partially submitted.
type ApplyError struct {
	Node  string
	Param string
	Value any
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("failed to set %s.%s = %v: node title or parameter not found in template", e.Node, e.Param, e.Value)
}
