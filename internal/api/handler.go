package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/classifier"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/middleware"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/products"
	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=mocks/mock_adapters.go -package=mocks . ImageClassifier,ReviewAnalyzer,ProductRecommender

type ImageClassifier interface {
	Classify(ctx context.Context, data []byte) ([]classifier.Prediction, error)
}

type ReviewAnalyzer interface {
	Analyze(ctx context.Context, review string) (json.RawMessage, error)
}

type ProductRecommender interface {
	Recommend(ctx context.Context, query string) ([]products.Product, error)
}

const uploadField = "file"

type Handler struct {
	classifier     ImageClassifier
	analyzer       ReviewAnalyzer
	recommender    ProductRecommender
	maxUploadBytes int64
	logger         *zerolog.Logger
}

func NewHandler(
	classifier ImageClassifier,
	analyzer ReviewAnalyzer,
	recommender ProductRecommender,
	maxUploadBytes int64,
	logger *zerolog.Logger,
) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Handler{
		classifier:     classifier,
		analyzer:       analyzer,
		recommender:    recommender,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// POST /classify_image
// Body: multipart form with an image in "file"
// Returns: ClassifyResponse
func (h *Handler) ClassifyImage(req *restful.Request, resp *restful.Response) {
	r := req.Request
	r.Body = http.MaxBytesReader(resp.ResponseWriter, r.Body, h.maxUploadBytes)

	data, filename, err := readUpload(r)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Rejected image upload")
		h.writeError(resp, err)
		return
	}

	h.logger.Info().
		Str("filename", filename).
		Int("bytes", len(data)).
		Msg("Classify image")

	predictions, err := h.classifier.Classify(r.Context(), data)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", filename).Msg("Image classification failed")
		h.writeError(resp, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, ClassifyResponse{Predictions: predictions})
}

func readUpload(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, "", fmt.Errorf("%w: limit is %d bytes", middleware.ErrFileTooLarge, tooLarge.Limit)
		}
		return nil, "", fmt.Errorf("%w: form field %q: %v", middleware.ErrMissingFile, uploadField, err)
	}
	defer file.Close()
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("%w: unable to read upload: %v", middleware.ErrInvalidRequest, err)
	}

	return data, header.Filename, nil
}

// POST /analyze_review
// Body: ReviewRequest
// Returns: ReviewResponse
func (h *Handler) AnalyzeReview(req *restful.Request, resp *restful.Response) {
	var reviewRequest ReviewRequest
	if err := req.ReadEntity(&reviewRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		h.writeError(resp, fmt.Errorf("%w: %v", middleware.ErrInvalidRequest, err))
		return
	}

	h.logger.Info().
		Int("review_length", len(reviewRequest.Review)).
		Msg("Analyze review")

	analysis, err := h.analyzer.Analyze(req.Request.Context(), reviewRequest.Review)
	if err != nil {
		h.logger.Error().Err(err).Msg("Review analysis failed")
		h.writeError(resp, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, ReviewResponse{Analysis: analysis})
}

// POST /recommend_products
// Body: products.RecommendationRequest
// Returns: products.RecommendationResponse
func (h *Handler) RecommendProducts(req *restful.Request, resp *restful.Response) {
	var recommendationRequest products.RecommendationRequest
	if err := req.ReadEntity(&recommendationRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		h.writeError(resp, fmt.Errorf("%w: %v", middleware.ErrInvalidRequest, err))
		return
	}

	h.logger.Info().
		Str("search_query", recommendationRequest.SearchQuery).
		Msg("Recommend products")

	found, err := h.recommender.Recommend(req.Request.Context(), recommendationRequest.SearchQuery)
	if err != nil {
		h.logger.Error().Err(err).Msg("Product recommendation failed")
		h.writeError(resp, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, products.NewRecommendationResponse(found))
}

// Health handler GET /health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}

func (h *Handler) writeError(resp *restful.Response, err error) {
	middleware.HandleError(resp, err, statusFor(err))
}
