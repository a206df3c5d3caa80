package search

import "errors"

// APIError is an application error returned by the backend as {"error": "..."}.
// It is reported regardless of the HTTP status code.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return e.Message
}

// IsAPIError reports whether err carries a backend-reported error
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
