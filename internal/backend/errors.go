package backend

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrTimeout marks a call that exceeded the client's deadline; the
// user sees a distinct "try again later" message for it.
var ErrTimeout = errors.New("backend request timed out")

// ErrNetwork marks a call where no response reached us at all.
var ErrNetwork = errors.New("backend unreachable")

// APIError is a response the backend rejected. Message carries the
// server's own {message} body verbatim when one was present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// classify folds transport-level failures into the two terminal
// categories the UI distinguishes.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
