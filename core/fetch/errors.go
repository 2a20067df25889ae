package fetch

import (
	"errors"
	"fmt"
)

// ConnectivityError is the generic "could not reach the remote server"
// failure. Every network hop (discovery, emoji listing, webfinger, actor
// fetch) collapses transport failures and timeouts into this type; the
// innermost cause is kept for diagnostics.
type ConnectivityError struct {
	Cause error
}

func (e *ConnectivityError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not connect to server (%v)", RootCause(e.Cause))
	}
	return "could not connect to server"
}

func (e *ConnectivityError) Unwrap() error {
	return e.Cause
}

// DecodeError reports a response body that could not be decoded as the
// expected JSON shape. Callers use it to distinguish malformed payloads
// from transport failures.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RootCause walks an error chain and returns the innermost error.
func RootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
