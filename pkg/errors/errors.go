package errors

import (
	"errors"
	"fmt"
)

// Kind is a stable, machine-readable classification of user-facing failures.
// Every kind has a local, user-correctable remedy; none is fatal.
type Kind string

const (
	KindInvalidAmount        Kind = "invalid_amount"
	KindMissingAddress       Kind = "missing_address"
	KindMissingRequiredField Kind = "missing_required_field"
	KindImportFormat         Kind = "import_format"
	KindNotFound             Kind = "not_found"
	KindWalletRequired       Kind = "wallet_required"
)

// Error is a typed error that carries a stable kind.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	if typed, ok := As(err); ok {
		return typed.Kind == kind
	}
	return false
}
