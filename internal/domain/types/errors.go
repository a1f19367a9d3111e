package types

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when an operation needs a credential and the
// session holds none. No request is sent in that case.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrorKind classifies a failed data-access operation.
type ErrorKind int

const (
	KindUnknown      ErrorKind = iota
	KindTransport              // the request never produced a response
	KindServer                 // the server answered with a non-2xx status
	KindDecode                 // the body did not match the endpoint schema
	KindPrecondition           // rejected locally before any request
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	case KindDecode:
		return "decode"
	case KindPrecondition:
		return "precondition"
	default:
		return "unknown"
	}
}

// APIError describes a failed call to the remote API.
type APIError struct {
	Kind      ErrorKind
	Method    string
	Path      string
	Status    int    // set for KindServer
	Body      string // truncated response body, set for KindServer
	RequestID string
	Err       error
}

func (e *APIError) Error() string {
	if e.Kind == KindServer {
		if e.Body != "" {
			return fmt.Sprintf("api %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
		}
		return fmt.Sprintf("api %s %s: status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("api %s %s: %s: %v", e.Method, e.Path, e.Kind, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// KindOf returns the kind of err, looking through wrapping.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, ErrNotAuthenticated) {
		return KindPrecondition
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is of kind k.
func IsKind(err error, k ErrorKind) bool { return err != nil && KindOf(err) == k }

// StatusOf returns the HTTP status of a KindServer error, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Kind == KindServer {
		return apiErr.Status
	}
	return 0
}
