package sentiment

import (
	"errors"
	"fmt"
)

var (
	ErrMissingReview = errors.New("missing review content")
	ErrRequestFailed = errors.New("sentiment request failed")
)

// APIError carries a non-success answer from the inference endpoint. Body is
// the remote payload, untouched.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Hugging Face API error (status %d): %s", e.StatusCode, e.Body)
}
