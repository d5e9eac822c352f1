package api

import (
	"encoding/json"

	"github.com/phantuanthanh1582000/backend-ai-final/internal/classifier"
)

type ClassifyResponse struct {
	Predictions []classifier.Prediction `json:"predictions" description:"Top labels, highest confidence first"`
}

type ReviewRequest struct {
	Review string `json:"review" description:"Customer review text"`
}

type ReviewResponse struct {
	Analysis json.RawMessage `json:"analysis" description:"Sentiment model output, relayed as returned by the inference API"`
}

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}
