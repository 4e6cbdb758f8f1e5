package models

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// DataAccessError is rendered with the http status code 500
	DataAccessError = errors.New("data access failure")
)

const (
	defaultNotFoundMessage     = "The requested item was not found"
	defaultBadParameterMessage = "The request is not valid"
	defaultUnexpectedMessage   = "An unexpected error has occurred"
)

type ErrorKind int

const (
	KindDataAccess ErrorKind = iota
	KindNotFound
	KindBadParameter
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadParameter:
		return "bad_parameter"
	default:
		return "data_access"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNotFound:
		return NotFoundError
	case KindBadParameter:
		return BadParameterError
	default:
		return DataAccessError
	}
}

// Error is the error returned by the todo repositories and usecases.
// Message is safe to show to the caller, Cause is only meant for the logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Cause != nil && e.Message != "":
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, NotFoundError) and friends work on tagged errors.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func BadParameter(message string, cause error) error {
	return &Error{Kind: KindBadParameter, Message: message, Cause: cause}
}

func DataAccessFailure(cause error, message string) error {
	return &Error{Kind: KindDataAccess, Message: message, Cause: cause}
}

// KindOf classifies any error. Untagged errors are data access failures.
func KindOf(err error) ErrorKind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	switch {
	case errors.Is(err, NotFoundError):
		return KindNotFound
	case errors.Is(err, BadParameterError):
		return KindBadParameter
	default:
		return KindDataAccess
	}
}

// PublicMessage returns the text that can be sent back to the caller.
func PublicMessage(err error) string {
	var tagged *Error
	if errors.As(err, &tagged) && tagged.Message != "" {
		return tagged.Message
	}
	switch KindOf(err) {
	case KindNotFound:
		return defaultNotFoundMessage
	case KindBadParameter:
		return defaultBadParameterMessage
	default:
		return defaultUnexpectedMessage
	}
}

// Cause returns the internal cause of a tagged error, for logging.
func Cause(err error) string {
	var tagged *Error
	if errors.As(err, &tagged) {
		if tagged.Cause == nil {
			return ""
		}
		return tagged.Cause.Error()
	}
	return err.Error()
}
