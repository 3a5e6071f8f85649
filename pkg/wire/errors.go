package wire

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Error kinds. Every failure produced by this package and the record
// packages built on it unwraps to one of these.
var (
	ErrTruncatedInput      = errors.New("truncated input")
	ErrUnrecognizedVariant = errors.New("unrecognized variant")
	ErrArrayBudgetOverrun  = errors.New("array budget overrun")
	ErrWrongVariant        = errors.New("wrong union variant")
	ErrSizeMismatch        = errors.New("size mismatch")
	ErrReservedNotZero     = errors.New("reserved field not zero")
	ErrCountOverflow       = errors.New("count exceeds field width")
	ErrNoActiveVariant     = errors.New("no active variant")
	ErrUnsupportedWidth    = errors.New("unsupported integer width")
)

// Error reports a failure together with the absolute byte offset at which
// it was detected. Offset is -1 for failures that are not tied to a
// position in a buffer, such as accessing the wrong union branch.
type Error struct {
	Kind   error
	Offset int
	Detail string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("catbuffer: %v", e.Kind)
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the error kind so errors.Is works against the sentinels.
func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError builds an Error with a formatted detail message.
func NewError(kind error, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

// KindOf returns the sentinel an error chain carries, or nil when it carries
// none of them.
func KindOf(err error) error {
	for _, kind := range []error{
		ErrTruncatedInput,
		ErrUnrecognizedVariant,
		ErrArrayBudgetOverrun,
		ErrWrongVariant,
		ErrSizeMismatch,
		ErrReservedNotZero,
		ErrCountOverflow,
		ErrNoActiveVariant,
		ErrUnsupportedWidth,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// OffsetOf returns the offset recorded in err, or -1.
func OffsetOf(err error) int {
	var we *Error
	if errors.As(err, &we) {
		return we.Offset
	}
	return -1
}

// CheckSize compares a header-declared size against the computed one.
func CheckSize(declared, computed int) error {
	if declared == computed {
		return nil
	}
	return NewError(ErrSizeMismatch, -1, "declared %d bytes, computed %d", declared, computed)
}
