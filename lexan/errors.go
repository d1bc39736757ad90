package lexan

import (
	"errors"
	"fmt"
)

// ErrorKind names the failure classes surfaced by the pipeline.
type ErrorKind string

const (
	KindInputUnavailable        ErrorKind = "InputUnavailable"
	KindReferenceSetUnavailable ErrorKind = "ReferenceSetUnavailable"
	KindMalformedSymbolRequest  ErrorKind = "MalformedSymbolRequest"
)

var (
	ErrInputUnavailable        = errors.New("input unavailable")
	ErrReferenceSetUnavailable = errors.New("reference set unavailable")
	ErrMalformedSymbolRequest  = errors.New("malformed symbol request")
)

// Error reports a fatal pipeline condition and the resource it concerns.
type Error struct {
	Kind     ErrorKind
	Resource string
	Err      error
}

func (e *Error) Error() string {
	msg := kindSentinel(e.Kind).Error()
	if e.Resource != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Resource)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind so callers can use errors.Is
// without caring about the resource.
func (e *Error) Is(target error) bool {
	return target == kindSentinel(e.Kind)
}

func kindSentinel(kind ErrorKind) error {
	switch kind {
	case KindInputUnavailable:
		return ErrInputUnavailable
	case KindReferenceSetUnavailable:
		return ErrReferenceSetUnavailable
	case KindMalformedSymbolRequest:
		return ErrMalformedSymbolRequest
	default:
		return errors.New(string(kind))
	}
}

func inputError(resource string, err error) error {
	return &Error{Kind: KindInputUnavailable, Resource: resource, Err: err}
}

func referenceError(resource string, err error) error {
	return &Error{Kind: KindReferenceSetUnavailable, Resource: resource, Err: err}
}
