package types

import "fmt"

// ValidationError is returned for malformed or missing input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ConflictError is returned when a time range overlaps an occupied one.
type ConflictError struct {
	Msg string
	// Conflicts holds the IDs of the overlapping records, when known.
	Conflicts []string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

// InternalError wraps unexpected persistence or transport failures. Its
// message is never sent to clients.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
