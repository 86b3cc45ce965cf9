package workflow

import (
	"errors"
	"fmt"
)

// ErrorCode classifies local validation failures.
type ErrorCode string

const (
	CodeMissingDate       ErrorCode = "MissingDate"
	CodeDateConflict      ErrorCode = "DateConflict"
	CodeInvalidTransition ErrorCode = "InvalidTransition"
	CodeUnsupportedAction ErrorCode = "UnsupportedAction"
	CodeAlreadyDecided    ErrorCode = "AlreadyDecided"
	CodeInvalidNumber     ErrorCode = "InvalidNumber"
)

// Error is a validation failure produced by the workflow rules.
// Two Errors match under errors.Is when their codes are equal.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newError(code ErrorCode, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// DateConflict reports that date is already taken at the venue.
func DateConflict(date string) error {
	return newError(CodeDateConflict, "date %s is already booked", date)
}

// Sentinels for errors.Is checks.
var (
	ErrMissingDate       = &Error{Code: CodeMissingDate, Message: "booking date is required"}
	ErrDateConflict      = &Error{Code: CodeDateConflict, Message: "this date is already booked"}
	ErrInvalidTransition = &Error{Code: CodeInvalidTransition, Message: "invalid status transition"}
	ErrUnsupportedAction = &Error{Code: CodeUnsupportedAction, Message: "unsupported action"}
	ErrAlreadyDecided    = &Error{Code: CodeAlreadyDecided, Message: "item has already been decided"}
	ErrInvalidNumber     = &Error{Code: CodeInvalidNumber, Message: "invalid number"}
)

// CollaboratorError wraps a failure reported by the document store or the blob store.
// The original error stays reachable through errors.Is / errors.As.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// Collaborator wraps err as a CollaboratorError. It returns nil for a nil err and
// leaves errors that are already collaborator or validation errors untouched.
func Collaborator(op string, err error) error {
	if err == nil {
		return nil
	}
	var ce *CollaboratorError
	if errors.As(err, &ce) {
		return err
	}
	var we *Error
	if errors.As(err, &we) {
		return err
	}
	return &CollaboratorError{Op: op, Err: err}
}
