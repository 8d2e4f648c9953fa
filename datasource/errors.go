package datasource

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is matched by every failure to complete the HTTP exchange
	ErrTransport = errors.New("transport failure")

	// ErrMalformed is matched by every response body that could not be decoded into a report
	ErrMalformed = errors.New("malformed weather response")
)

// TransportError reports a failure below the HTTP response: DNS, connect, TLS or body read
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrTransport, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrTransport) match any TransportError
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// DecodeError reports a response body that does not have the required shape.
// Status and ProviderMessage are filled in by the provider when the
// HTTP status was not 2xx.
type DecodeError struct {
	Reason          string
	Status          int
	ProviderMessage string
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrMalformed, e.Reason)
	switch {
	case e.Status != 0 && e.ProviderMessage != "":
		msg += fmt.Sprintf(" (status %d: %s)", e.Status, e.ProviderMessage)
	case e.Status != 0:
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	return msg
}

// Is lets errors.Is(err, ErrMalformed) match any DecodeError
func (e *DecodeError) Is(target error) bool { return target == ErrMalformed }

func malformed(format string, args ...any) *DecodeError {
	return &DecodeError{Reason: fmt.Sprintf(format, args...)}
}
