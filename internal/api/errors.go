package api

import (
	"errors"
	"fmt"
)

// ErrTransport indicates a network or HTTP failure. Status is zero when
// the request never produced a response (DNS failure, timeout, connection
// reset). The candidate resolver recovers from these by moving to the next
// candidate.
type ErrTransport struct {
	Status int
	Path   string
	Err    error
}

func (e *ErrTransport) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend %s: HTTP %d", e.Path, e.Status)
	}
	return fmt.Sprintf("backend %s: %v", e.Path, e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrAuth indicates the backend rejected our credentials. It is a hard
// stop: no retry, no candidate fallback — the caller hands control to the
// authentication collaborator.
type ErrAuth struct {
	Status int
	Path   string
}

func (e *ErrAuth) Error() string {
	return fmt.Sprintf("backend %s: authentication rejected (HTTP %d)", e.Path, e.Status)
}

// IsAuth reports whether err is (or wraps) an authentication failure.
func IsAuth(err error) bool {
	var a *ErrAuth
	return errors.As(err, &a)
}
