package container

import (
	"errors"
	"fmt"
)

// Kind classifies a failed container operation.
type Kind uint8

const (
	// InvalidArgument: a requested capacity is below the logical size.
	InvalidArgument Kind = iota + 1
	// EmptyContainer: a removal was attempted on an empty container.
	EmptyContainer
	// IndexOutOfRange: an indexed read at or beyond the logical size.
	IndexOutOfRange
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case EmptyContainer:
		return "empty container"
	case IndexOutOfRange:
		return "index out of range"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Sentinels for errors.Is. Any *Error of the same Kind matches.
var (
	ErrInvalidArgument error = &Error{Kind: InvalidArgument}
	ErrEmptyContainer  error = &Error{Kind: EmptyContainer}
	ErrIndexOutOfRange error = &Error{Kind: IndexOutOfRange}
)

// Error is returned by every failing container operation.
// The container is unchanged when an Error is returned.
type Error struct {
	Kind   Kind
	Op     string // operation, e.g. "stack.Pop"
	Detail string // optional, e.g. "index 3, size 3"
}

// NewError returns an Error of the given kind for op.
// Detail is formatted from format and args when format is non-empty.
func NewError(kind Kind, op, format string, args ...any) *Error {
	e := &Error{Kind: kind, Op: op}
	if format != "" {
		e.Detail = fmt.Sprintf(format, args...)
	}
	return e
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Is matches any *Error with the same Kind, so the package sentinels
// compare equal to errors carrying an Op and Detail.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the Kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
