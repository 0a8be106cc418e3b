package lookup

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus is matched by every StatusError.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// StatusError reports a non-2xx response.
type StatusError struct {
	Method string
	URL    string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %s: %d", e.Method, e.URL, ErrUnexpectedStatus, e.Code)
}

// Is makes errors.Is(err, ErrUnexpectedStatus) succeed.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
