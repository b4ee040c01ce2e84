package apiclient

import (
	"errors"
	"fmt"
)

// Class partitions request failures by how callers must react. The client
// performs the one cross-cutting action itself (session clear on
// Unauthenticated); every other class is surfaced for presentation, and
// commands branch on the class, never on raw status codes.
type Class int

const (
	// ClassUnauthenticated is a 401: the credential is missing, expired or
	// invalid. Destructive - the session has been cleared by the client.
	ClassUnauthenticated Class = iota + 1
	// ClassForbidden is a 403: valid identity, insufficient role. The
	// session is untouched.
	ClassForbidden
	// ClassClient is any other 4xx, carrying the server-supplied message.
	ClassClient
	// ClassServer is a 5xx.
	ClassServer
	// ClassTransport is a network failure before any response arrived.
	ClassTransport
)

// String returns a short name for the class.
func (c Class) String() string {
	switch c {
	case ClassUnauthenticated:
		return "unauthenticated"
	case ClassForbidden:
		return "forbidden"
	case ClassClient:
		return "client error"
	case ClassServer:
		return "server error"
	case ClassTransport:
		return "transport error"
	default:
		return "unknown"
	}
}

// APIError is a classified request failure.
type APIError struct {
	Class      Class
	StatusCode int
	Message    string
	cause      error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Class, e.StatusCode)
	}
	return e.Class.String()
}

// Unwrap exposes the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// IsUnauthenticated returns true for a 401 classification.
func (e *APIError) IsUnauthenticated() bool {
	return e.Class == ClassUnauthenticated
}

// IsForbidden returns true for a 403 classification.
func (e *APIError) IsForbidden() bool {
	return e.Class == ClassForbidden
}

// IsClientError returns true for a non-auth 4xx classification.
func (e *APIError) IsClientError() bool {
	return e.Class == ClassClient
}

// IsRetryable returns true for server or transport failures, where the
// request may simply be tried again.
func (e *APIError) IsRetryable() bool {
	return e.Class == ClassServer || e.Class == ClassTransport
}

// ClassOf extracts the classification from an error chain. Returns zero for
// errors that did not come from the API client.
func ClassOf(err error) Class {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Class
	}
	return 0
}

// IsUnauthenticated reports whether an error chain carries a 401
// classification.
func IsUnauthenticated(err error) bool {
	return ClassOf(err) == ClassUnauthenticated
}

// IsForbidden reports whether an error chain carries a 403 classification.
func IsForbidden(err error) bool {
	return ClassOf(err) == ClassForbidden
}
