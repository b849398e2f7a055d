package core

import "github.com/pkg/errors"

// Kind classifies failures so callers can decide whether to re-prompt or abort.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindNotFound
	KindDuplicateKey
	KindConstraintViolation
	KindStoreUnavailable
	KindFileSystem
)

var kindNames = map[Kind]string{
	KindUnknown:             "unknown",
	KindInvalidInput:        "invalid input",
	KindNotFound:            "not found",
	KindDuplicateKey:        "duplicate key",
	KindConstraintViolation: "constraint violation",
	KindStoreUnavailable:    "store unavailable",
	KindFileSystem:          "file system",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Error is an error with a Kind. Msg is what the operator sees.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// WrapKind attaches a Kind to err. A nil err stays nil.
func WrapKind(err error, kind Kind, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return e.Msg
	case e.Msg == "":
		return e.Err.Error()
	default:
		return e.Msg + ": " + e.Err.Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first *Error or *ValidationError in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return KindInvalidInput
	}
	var kerr *Error
	if errors.As(err, &kerr) {
		return kerr.Kind
	}
	return KindUnknown
}

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		if len(err.Fields) > 0 {
			return err.Fields[0].Field + ": " + err.Fields[0].Error
		}
		return ""
	}
	return err.Err.Error()
}

func (err *ValidationError) Unwrap() error { return err.Err }
