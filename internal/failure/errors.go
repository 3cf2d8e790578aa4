// Package failure classifies the configuration errors that abort a harness run.
//
// Every fatal condition detected before the first case runs maps to exactly
// one Class. The message is meant for humans; the class is meant for code.
package failure

import (
	"errors"
	"fmt"
)

// Class is a stable category of fatal failure.
type Class string

const (
	DirectoryNotFound Class = "DIRECTORY_NOT_FOUND"
	CountMismatch     Class = "COUNT_MISMATCH"
	NameMismatch      Class = "NAME_MISMATCH"
	InvalidExecutable Class = "INVALID_EXECUTABLE"
	PromptAborted     Class = "PROMPT_ABORTED"
	Internal          Class = "INTERNAL"
)

// Error is the structured error type for fatal harness failures.
type Error struct {
	Class   Class
	Message string
	Cause   error
}

// Error implements the error interface. The class is not part of the text.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given class and formatted message.
func New(class Class, format string, args ...any) *Error {
	return &Error{Class: class, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error with the given class that wraps cause.
func Wrap(class Class, cause error, format string, args ...any) *Error {
	return &Error{Class: class, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// ClassOf extracts the Class of the first *Error in err's chain.
func ClassOf(err error) (Class, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Class, true
	}
	return "", false
}

// Is reports whether err carries the given class.
func Is(err error, class Class) bool {
	got, ok := ClassOf(err)
	return ok && got == class
}
