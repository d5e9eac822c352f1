package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type ClientConfig struct {
	URL    string
	APIKey string
	// Timeout of zero leaves the call bounded only by the request context.
	Timeout             time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// Client forwards review text to a hosted text-classification model.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
	logger     *zerolog.Logger
}

func NewClient(cfg ClientConfig, logger *zerolog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Hugging Face API key is required")
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("sentiment endpoint URL is required")
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 100
	}
	if cfg.MaxIdleConnsPerHost == 0 {
		cfg.MaxIdleConnsPerHost = 10
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = cfg.MaxIdleConns
	transport.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost

	return &Client{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		logger: logger,
	}, nil
}

// Analyze posts the review and returns the remote JSON body unmodified.
func (c *Client) Analyze(ctx context.Context, review string) (json.RawMessage, error) {
	if strings.TrimSpace(review) == "" {
		return nil, ErrMissingReview
	}

	body, err := json.Marshal(inferenceRequest{Inputs: review})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrRequestFailed, err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Sentiment endpoint responded")

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if !json.Valid(respBody) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrRequestFailed)
	}

	return json.RawMessage(respBody), nil
}
