package errors

import "errors"

// Base error kinds. Services wrap these into their own sentinel errors so
// handlers can map any business error onto an HTTP status with errors.Is.
var (
	// ErrNotFound: the operation referenced an unknown subject, date or entry.
	ErrNotFound = errors.New("not found")

	// ErrConflict: the operation would violate a timetable placement rule.
	ErrConflict = errors.New("conflict")

	// ErrValidation: negative count, out-of-range percentage, malformed date.
	ErrValidation = errors.New("validation failed")
)
