package stringdb

import (
	"errors"
	"fmt"
)

// STRING-specific errors.
var (
	// ErrEmptyGeneSet indicates an annotation query with no genes in it.
	ErrEmptyGeneSet = errors.New("stringdb: empty gene set")
)

// APIError represents a STRING API error response.
type APIError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stringdb: API error %d: %s (URL: %s)", e.StatusCode, e.Body, e.URL)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}
