package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrTagValidation marks input rejected before any network call
	ErrTagValidation = goerr.NewTag("validation")
	// ErrTagTransport marks an outbound call that did not complete
	ErrTagTransport = goerr.NewTag("transport")
	// ErrTagRemote marks an error status or malformed reply from the backend
	ErrTagRemote = goerr.NewTag("remote")
	// ErrTagConflict marks an operation refused because a submission is in flight
	ErrTagConflict = goerr.NewTag("conflict")
)

// RemoteError is the failure reported by the backend in an error response
type RemoteError struct {
	StatusCode int
	Detail     string // "detail" field of the response body, empty if absent
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}
