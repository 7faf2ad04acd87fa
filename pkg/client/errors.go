package client

import "fmt"

// StatusError reports a non-200 response from the status endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code=%d", e.Code)
}
