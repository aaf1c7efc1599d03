package services

import "errors"

// Error kinds the REST layer maps to status codes: validation and conflict
// to 400, not-found to 404, upstream to 502, anything else to 500.
type errorKind int

const (
	kindValidation errorKind = iota
	kindNotFound
	kindConflict
	kindUpstream
)

type serviceError struct {
	kind errorKind
	msg  string
	err  error
}

func (e *serviceError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *serviceError) Unwrap() error { return e.err }

func validationError(msg string) error { return &serviceError{kind: kindValidation, msg: msg} }
func notFoundError(msg string) error   { return &serviceError{kind: kindNotFound, msg: msg} }
func conflictError(msg string) error   { return &serviceError{kind: kindConflict, msg: msg} }

func upstreamError(msg string, err error) error {
	return &serviceError{kind: kindUpstream, msg: msg, err: err}
}

func isKind(err error, kind errorKind) bool {
	var se *serviceError
	return errors.As(err, &se) && se.kind == kind
}

func IsValidation(err error) bool { return isKind(err, kindValidation) }
func IsNotFound(err error) bool   { return isKind(err, kindNotFound) }
func IsConflict(err error) bool   { return isKind(err, kindConflict) }
func IsUpstream(err error) bool   { return isKind(err, kindUpstream) }
