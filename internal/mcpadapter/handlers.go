package mcpadapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/classifier"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/products"
)

type ImageClassifier interface {
	Classify(ctx context.Context, data []byte) ([]classifier.Prediction, error)
}

type ReviewAnalyzer interface {
	Analyze(ctx context.Context, review string) (json.RawMessage, error)
}

type ProductRecommender interface {
	Recommend(ctx context.Context, query string) ([]products.Product, error)
}

// ClassifyImageInput is the MCP tool input schema for image classification.
type ClassifyImageInput struct {
	Image string `json:"image" jsonschema:"base64 encoded image bytes (JPEG, PNG, GIF, BMP, TIFF or WebP)"`
}

type ClassifyImageOutput struct {
	Predictions []classifier.Prediction `json:"predictions" jsonschema:"top predictions, highest confidence first"`
}

// AnalyzeReviewInput matches the HTTP API field name.
type AnalyzeReviewInput struct {
	Review string `json:"review" jsonschema:"customer review text"`
}

type AnalyzeReviewOutput struct {
	Analysis any `json:"analysis" jsonschema:"sentiment payload as returned by the inference API"`
}

// RecommendProductsInput matches the HTTP API field name.
type RecommendProductsInput struct {
	SearchQuery string `json:"search_query" jsonschema:"keyword matched case-insensitively against product names"`
}

// NewClassifyImageHandler returns a tool handler that uses the given classifier.
// Pass the returned function to mcp.AddTool.
func NewClassifyImageHandler(c ImageClassifier) func(context.Context, *mcp.CallToolRequest, ClassifyImageInput) (*mcp.CallToolResult, ClassifyImageOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ClassifyImageInput) (*mcp.CallToolResult, ClassifyImageOutput, error) {
		return ClassifyImage(ctx, c, req, input)
	}
}

// ClassifyImage decodes the base64 payload and classifies it.
func ClassifyImage(
	ctx context.Context,
	c ImageClassifier,
	req *mcp.CallToolRequest,
	input ClassifyImageInput,
) (*mcp.CallToolResult, ClassifyImageOutput, error) {
	data, err := base64.StdEncoding.DecodeString(input.Image)
	if err != nil {
		return nil, ClassifyImageOutput{}, fmt.Errorf("image is not valid base64: %w", err)
	}

	predictions, err := c.Classify(ctx, data)
	if err != nil {
		return nil, ClassifyImageOutput{}, err
	}

	return nil, ClassifyImageOutput{Predictions: predictions}, nil
}

// NewAnalyzeReviewHandler returns a tool handler that uses the given analyzer.
// Pass the returned function to mcp.AddTool.
func NewAnalyzeReviewHandler(a ReviewAnalyzer) func(context.Context, *mcp.CallToolRequest, AnalyzeReviewInput) (*mcp.CallToolResult, AnalyzeReviewOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeReviewInput) (*mcp.CallToolResult, AnalyzeReviewOutput, error) {
		return AnalyzeReview(ctx, a, req, input)
	}
}

// AnalyzeReview relays the review to the sentiment endpoint.
func AnalyzeReview(
	ctx context.Context,
	a ReviewAnalyzer,
	req *mcp.CallToolRequest,
	input AnalyzeReviewInput,
) (*mcp.CallToolResult, AnalyzeReviewOutput, error) {
	raw, err := a.Analyze(ctx, input.Review)
	if err != nil {
		return nil, AnalyzeReviewOutput{}, err
	}

	var analysis any
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, AnalyzeReviewOutput{}, fmt.Errorf("decode analysis: %w", err)
	}

	return nil, AnalyzeReviewOutput{Analysis: analysis}, nil
}

// NewRecommendProductsHandler returns a tool handler that uses the given recommender.
// Pass the returned function to mcp.AddTool.
func NewRecommendProductsHandler(r ProductRecommender) func(context.Context, *mcp.CallToolRequest, RecommendProductsInput) (*mcp.CallToolResult, products.RecommendationResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RecommendProductsInput) (*mcp.CallToolResult, products.RecommendationResponse, error) {
		return RecommendProducts(ctx, r, req, input)
	}
}

// RecommendProducts looks up products by keyword. An empty result carries the
// same no-match message as the HTTP endpoint.
func RecommendProducts(
	ctx context.Context,
	r ProductRecommender,
	req *mcp.CallToolRequest,
	input RecommendProductsInput,
) (*mcp.CallToolResult, products.RecommendationResponse, error) {
	found, err := r.Recommend(ctx, input.SearchQuery)
	if err != nil {
		return nil, products.RecommendationResponse{}, err
	}

	return nil, products.NewRecommendationResponse(found), nil
}
