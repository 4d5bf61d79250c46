package social

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed operation so the HTTP boundary can decide
// between degrading to an empty/zero default and surfacing the failure.
type ErrorKind string

const (
	// KindUnauthenticated means no caller identity was resolved.
	KindUnauthenticated ErrorKind = "UNAUTHENTICATED"
	// KindValidation means the input was degenerate (e.g. empty id list).
	// Operations normally short-circuit instead of returning this.
	KindValidation ErrorKind = "VALIDATION"
	// KindStoreRead means a single store query failed.
	KindStoreRead ErrorKind = "STORE_READ_FAILURE"
	// KindAggregation means a multi-step aggregation failed mid-way and any
	// partial result was discarded.
	KindAggregation ErrorKind = "AGGREGATION_FAILURE"
)

// Error is the tagged error returned by the aggregation components. Callers
// branch on Kind; Op names the operation for logs.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind of err, or "" when err is not a social.Error.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
