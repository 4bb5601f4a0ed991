package core

import (
	"errors"
	"fmt"
)

// Kind classifies an [Error].
type Kind int

const (
	// KindInvalidArg reports an argument that failed validation.
	KindInvalidArg Kind = iota + 1

	// KindConflictArg reports two or more optional arguments that cannot be
	// combined.
	KindConflictArg

	// KindConv reports a failure inside a convolution backend.
	KindConv
)

// Sentinels for errors.Is. Any *Error matches the sentinel of its kind.
var (
	ErrInvalidArg  = &Error{Kind: KindInvalidArg}
	ErrConflictArg = &Error{Kind: KindConflictArg}
	ErrConv        = &Error{Kind: KindConv}
)

// Error is the error type returned by every package in this module.
//
// Arg and Reason are only populated when diagnostics are enabled (see
// [DiagnosticsEnabled]); otherwise only Kind is observable and Error renders a
// fixed message for that kind.
type Error struct {
	Kind   Kind
	Arg    string
	Reason string

	err error
}

// InvalidArg returns a KindInvalidArg error for the named argument.
func InvalidArg(arg, reason string) *Error {
	if !DiagnosticsEnabled {
		return &Error{Kind: KindInvalidArg}
	}
	return &Error{Kind: KindInvalidArg, Arg: arg, Reason: reason}
}

// InvalidArgf is InvalidArg with a formatted reason.
func InvalidArgf(arg, format string, args ...any) *Error {
	if !DiagnosticsEnabled {
		return &Error{Kind: KindInvalidArg}
	}
	return &Error{Kind: KindInvalidArg, Arg: arg, Reason: fmt.Sprintf(format, args...)}
}

// ConflictArg returns a KindConflictArg error.
func ConflictArg(reason string) *Error {
	if !DiagnosticsEnabled {
		return &Error{Kind: KindConflictArg}
	}
	return &Error{Kind: KindConflictArg, Reason: reason}
}

// Conv returns a KindConv error.
func Conv(reason string) *Error {
	if !DiagnosticsEnabled {
		return &Error{Kind: KindConv}
	}
	return &Error{Kind: KindConv, Reason: reason}
}

// WrapConv converts a backend failure into a KindConv error. The backend
// error stays reachable through errors.Unwrap regardless of diagnostics.
// WrapConv returns nil for a nil err.
func WrapConv(err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return err
	}

	out := Conv(err.Error())
	out.err = err
	return out
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidArg:
		if e.Reason == "" && e.Arg == "" {
			return "There were invalid arguments. Reasons not shown without diagnostics."
		}
		return fmt.Sprintf("Invalid Argument on arg = %s with reason = %s", e.Arg, e.Reason)
	case KindConflictArg:
		if e.Reason == "" {
			return "There were conflicting arguments. Reasons not shown without diagnostics."
		}
		return fmt.Sprintf("Conflicting Arguments with reason = %s", e.Reason)
	case KindConv:
		if e.Reason == "" {
			return "An error occurred during the convolution. Reasons not shown without diagnostics."
		}
		return fmt.Sprintf("An error occurred during the convolution with reason %s.", e.Reason)
	default:
		return fmt.Sprintf("core: unknown error kind %d", int(e.Kind))
	}
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Unwrap returns the backend error wrapped by WrapConv, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArg:
		return "invalid argument"
	case KindConflictArg:
		return "conflicting arguments"
	case KindConv:
		return "convolution"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
