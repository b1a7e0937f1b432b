package typ

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced to the CLI
type ErrorKind int

const (
	KindConfig ErrorKind = iota + 1
	KindConnection
	KindStatement
	KindValidation
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindConnection:
		return "connection"
	case KindStatement:
		return "statement"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	}
	return "unknown"
}

// ErrNotFound matches any not-found Error via errors.Is
var ErrNotFound = errors.New("bot: not found")

// Error carries the kind of failure, the operation and the underlying cause.
// Its message is the cause's message, so driver and I/O errors reach the user verbatim.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrNotFound) match not-found errors
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func NewConfigError(op string, err error) error {
	return &Error{Kind: KindConfig, Op: op, Err: err}
}

func NewConnectionError(op string, err error) error {
	return &Error{Kind: KindConnection, Op: op, Err: err}
}

func NewStatementError(op string, err error) error {
	return &Error{Kind: KindStatement, Op: op, Err: err}
}

func NewValidationError(op string, err error) error {
	return &Error{Kind: KindValidation, Op: op, Err: err}
}

// NewNotFoundError reports that no bot with the given id exists
func NewNotFoundError(op string, id int64) error {
	return &Error{Kind: KindNotFound, Op: op, Err: fmt.Errorf("bot %d not found", id)}
}
