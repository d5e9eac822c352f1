package api

import (
	"errors"
	"net/http"

	"github.com/phantuanthanh1582000/backend-ai-final/internal/classifier"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/middleware"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/products"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/sentiment"
)

// errorStatus maps adapter errors to HTTP status codes. Anything not listed
// (and not a *sentiment.APIError) is a 500.
var errorStatus = []struct {
	target error
	status int
}{
	{middleware.ErrInvalidRequest, http.StatusBadRequest},
	{middleware.ErrMissingFile, http.StatusBadRequest},
	{middleware.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{sentiment.ErrMissingReview, http.StatusBadRequest},
	{products.ErrInvalidQuery, http.StatusBadRequest},
	{sentiment.ErrRequestFailed, http.StatusInternalServerError},
	{classifier.ErrClassification, http.StatusInternalServerError},
	{products.ErrLookupFailed, http.StatusInternalServerError},
}

func statusFor(err error) int {
	var apiErr *sentiment.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= http.StatusBadRequest && apiErr.StatusCode <= 599 {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	}

	for _, e := range errorStatus {
		if errors.Is(err, e.target) {
			return e.status
		}
	}

	return http.StatusInternalServerError
}
