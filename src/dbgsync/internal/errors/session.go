package errors

import (
	stderr "errors"
	"fmt"

	"github.com/gofrs/uuid"
)

// SessionNotFoundError is a service domain error for a debug session that is not known.
type SessionNotFoundError struct {
	ID uuid.UUID
}

// Error is an implementation of the error interface.
func (n *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session %q not found", n.ID)
}

// NotFoundSession returns the session id and true if SessionNotFoundError is part of the
// error chain.
func NotFoundSession(e error) (_ uuid.UUID, ok bool) {
	var nf *SessionNotFoundError
	if !stderr.As(e, &nf) {
		return uuid.Nil, false
	}
	return nf.ID, true
}

// NoSessionError indicates that no debug session is active.
type NoSessionError struct{}

// Error is an implementation of the error interface.
func (n *NoSessionError) Error() string {
	return "no active debug session"
}

// KernelError wraps a failure reported by the kernel for a given request.
type KernelError struct {
	Method string
	Err    error
}

// Error is an implementation of the error interface.
func (k *KernelError) Error() string {
	return fmt.Sprintf("kernel request %q failed: %v", k.Method, k.Err)
}

// Unwrap returns the underlying error.
func (k *KernelError) Unwrap() error {
	return k.Err
}

// NoSessionFoundError indicates that a request context carries no connection id.
type NoSessionFoundError struct{}

// Error is an implementation of the error interface.
func (n *NoSessionFoundError) Error() string {
	return "no session id found in context"
}
