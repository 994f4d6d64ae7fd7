package fmp

import "fmt"

// APIError is an error reported by the FMP API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fmp %s: %d %s", e.Endpoint, e.StatusCode, e.Message)
}
