package mbta

import "fmt"

// RequestError covers transport failures, retry exhaustion and
// unexpected HTTP statuses. The run cannot proceed without the data,
// so callers treat it as fatal.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("mbta: request %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ValidationError means the API answered but the payload did not match
// the expected shape.
type ValidationError struct {
	Endpoint string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("mbta: invalid response from %s: %v", e.Endpoint, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
