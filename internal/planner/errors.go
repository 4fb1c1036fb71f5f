package planner

import (
	"errors"
	"fmt"
)

var errMissingDestination = errors.New("response has no destination")

// LogicalError means the backend answered but refused the operation
type LogicalError struct {
	Op     string
	Status int
	Reason string
}

func (e *LogicalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// TransportError means the request could not be completed or the answer was unusable
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Reason returns the backend-supplied reason of a logical error
func Reason(err error) (string, bool) {
	var logical *LogicalError
	if errors.As(err, &logical) {
		return logical.Reason, true
	}
	return "", false
}

// UserMessage picks the message shown for a failed operation: the prefix plus the
// backend reason for logical errors, the fixed fallback for anything else
func UserMessage(err error, prefix, fallback string) string {
	if reason, ok := Reason(err); ok {
		return prefix + reason
	}
	return fallback
}
