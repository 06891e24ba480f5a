package errs

import (
	"errors"
	"fmt"
)

// Kind categorises an error without exposing backend-specific codes.
type Kind int

const (
	KindUnknown         Kind = iota
	KindConfiguration        // missing or invalid configuration
	KindInvalidArgument      // bad arguments from the caller
	KindUpload               // backend rejected or failed a write
	KindList                 // backend failed while enumerating objects
	KindDeletion             // backend rejected or failed a delete
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindUpload:
		return "upload"
	case KindList:
		return "list"
	case KindDeletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by the uploader.
// The cause is kept for logging and errors.Is / errors.As, but it is never
// rendered by Error, so backend details do not reach the caller's message.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an *Error with the given kind and message and no cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap creates an *Error with the given kind, message, and an underlying cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool {
	return KindOf(err) == KindConfiguration
}

// IsInvalidArgument reports whether err was caused by bad input from the caller.
func IsInvalidArgument(err error) bool {
	return KindOf(err) == KindInvalidArgument
}

// IsUpload reports whether err is a failed upload.
func IsUpload(err error) bool {
	return KindOf(err) == KindUpload
}

// IsList reports whether err is a failed listing.
func IsList(err error) bool {
	return KindOf(err) == KindList
}

// IsDeletion reports whether err is a failed deletion.
func IsDeletion(err error) bool {
	return KindOf(err) == KindDeletion
}

// KindOf extracts the Kind from any error in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
