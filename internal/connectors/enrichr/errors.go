package enrichr

import (
	"errors"
	"fmt"
)

// Enrichr-specific errors.
var (
	// ErrEmptyGeneList indicates a submission with no genes in it.
	ErrEmptyGeneList = errors.New("enrichr: empty gene list")

	// ErrMissingListID indicates an upload response without a usable
	// user list ID.
	ErrMissingListID = errors.New("enrichr: response missing userListId")
)

// APIError represents an Enrichr API error response.
type APIError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("enrichr: API error %d: %s (URL: %s)", e.StatusCode, e.Body, e.URL)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}
