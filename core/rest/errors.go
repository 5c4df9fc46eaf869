package rest

import (
	"fmt"
	"net/http"
)

// RequestError carries the url and status of a failed backend call.
type RequestError struct {
	URL    string
	Status int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.Status)
}

// NotFound checks for a 404 response behind err.
func NotFound(err error) bool {
	r, ok := err.(*RequestError)
	return ok && r.Status == http.StatusNotFound
}

// Status returns the response status behind err, or zero for transport errors.
func Status(err error) int {
	if r, ok := err.(*RequestError); ok {
		return r.Status
	}
	return 0
}
