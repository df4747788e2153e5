package client

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidClient = errors.New("invalid client")

// ErrTransport wraps network level failures: connection refused, timeouts,
// broken reads. The caller's local state is always intact when it sees one.
var ErrTransport = errors.New("transport failure")

// ErrDecode wraps a response body that could not be decoded.
var ErrDecode = errors.New("malformed response")

// RemoteError carries the reason string from a structured rejection payload.
type RemoteError struct {
	StatusCode int
	Reason     string
}

func (e *RemoteError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// remoteErr decodes the service's `{"error": "..."}` payload from a non-2xx
// response. A missing or undecodable reason falls back to the status code.
func remoteErr(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	re := &RemoteError{StatusCode: resp.StatusCode}
	if err := decodeJSON(resp, &payload); err == nil {
		re.Reason = payload.Error
	}
	return re
}
