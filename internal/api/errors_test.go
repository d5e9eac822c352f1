package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phantuanthanh1582000/backend-ai-final/internal/classifier"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/middleware"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/products"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/sentiment"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid body", fmt.Errorf("%w: EOF", middleware.ErrInvalidRequest), http.StatusBadRequest},
		{"missing file", middleware.ErrMissingFile, http.StatusBadRequest},
		{"upload too large", fmt.Errorf("%w: limit is 10 bytes", middleware.ErrFileTooLarge), http.StatusRequestEntityTooLarge},
		{"missing review", sentiment.ErrMissingReview, http.StatusBadRequest},
		{"invalid query", products.ErrInvalidQuery, http.StatusBadRequest},
		{"remote 503", &sentiment.APIError{StatusCode: 503, Body: "loading"}, http.StatusServiceUnavailable},
		{"remote 401", &sentiment.APIError{StatusCode: 401, Body: "bad token"}, http.StatusUnauthorized},
		{"remote 302", &sentiment.APIError{StatusCode: 302}, http.StatusBadGateway},
		{"transport failure", fmt.Errorf("%w: timeout", sentiment.ErrRequestFailed), http.StatusInternalServerError},
		{"decode failure", classifier.ErrClassification, http.StatusInternalServerError},
		{"store failure", products.ErrLookupFailed, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(tt.err); got != tt.want {
				t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
