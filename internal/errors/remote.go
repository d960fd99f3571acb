package errors

import (
	"errors"
	"fmt"
)

// RemoteError is returned whenever the mail service answers with a
// non-success status. Code and Message carry the service's error envelope
// when one was present in the response body.
type RemoteError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("mail service returned %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("mail service returned %d: %s", e.StatusCode, e.Message)
}

func AsRemoteError(err error) (*RemoteError, bool) {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr, true
	}
	return nil, false
}
