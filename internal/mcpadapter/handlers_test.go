package mcpadapter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/phantuanthanh1582000/backend-ai-final/internal/classifier"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/products"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClassifier struct {
	got []byte
}

func (f *fakeClassifier) Classify(_ context.Context, data []byte) ([]classifier.Prediction, error) {
	f.got = data
	return []classifier.Prediction{{Label: "n03595614", Description: "jersey", Confidence: 0.8}}, nil
}

type fakeAnalyzer struct {
	raw json.RawMessage
	err error
}

func (f fakeAnalyzer) Analyze(context.Context, string) (json.RawMessage, error) {
	return f.raw, f.err
}

type fakeRecommender struct {
	found []products.Product
	err   error
}

func (f fakeRecommender) Recommend(context.Context, string) ([]products.Product, error) {
	return f.found, f.err
}

func TestClassifyImage_DecodesBase64(t *testing.T) {
	c := &fakeClassifier{}
	payload := []byte{0x89, 'P', 'N', 'G'}

	handler := NewClassifyImageHandler(c)
	_, out, err := handler(context.Background(), nil, ClassifyImageInput{
		Image: base64.StdEncoding.EncodeToString(payload),
	})

	require.NoError(t, err)
	assert.True(t, bytes.Equal(payload, c.got))
	require.Len(t, out.Predictions, 1)
	assert.Equal(t, "jersey", out.Predictions[0].Description)
}

func TestClassifyImage_InvalidBase64(t *testing.T) {
	c := &fakeClassifier{}

	_, _, err := ClassifyImage(context.Background(), c, nil, ClassifyImageInput{Image: "not base64!"})

	assert.Error(t, err)
	assert.Nil(t, c.got)
}

func TestAnalyzeReview(t *testing.T) {
	handler := NewAnalyzeReviewHandler(fakeAnalyzer{raw: json.RawMessage(`[[{"label":"POSITIVE","score":0.99}]]`)})

	_, out, err := handler(context.Background(), nil, AnalyzeReviewInput{Review: "great"})

	require.NoError(t, err)
	encoded, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"analysis":[[{"label":"POSITIVE","score":0.99}]]}`, string(encoded))
}

func TestAnalyzeReview_PropagatesError(t *testing.T) {
	wantErr := errors.New("remote down")

	_, _, err := AnalyzeReview(context.Background(), fakeAnalyzer{err: wantErr}, nil, AnalyzeReviewInput{Review: "x"})

	assert.ErrorIs(t, err, wantErr)
}

func TestRecommendProducts(t *testing.T) {
	t.Run("matches", func(t *testing.T) {
		handler := NewRecommendProductsHandler(fakeRecommender{found: []products.Product{{Name: "Red Shirt"}}})

		_, out, err := handler(context.Background(), nil, RecommendProductsInput{SearchQuery: "shirt"})

		require.NoError(t, err)
		assert.Empty(t, out.Message)
		require.Len(t, out.Recommendations, 1)
		assert.Equal(t, "Red Shirt", out.Recommendations[0].Name)
	})

	t.Run("no matches", func(t *testing.T) {
		_, out, err := RecommendProducts(context.Background(), fakeRecommender{}, nil, RecommendProductsInput{SearchQuery: "unicorn"})

		require.NoError(t, err)
		assert.Equal(t, products.NoMatchesMessage, out.Message)
		assert.NotNil(t, out.Recommendations)
		assert.Empty(t, out.Recommendations)
	})

	t.Run("invalid query", func(t *testing.T) {
		_, _, err := RecommendProducts(context.Background(), fakeRecommender{err: products.ErrInvalidQuery}, nil, RecommendProductsInput{})

		assert.ErrorIs(t, err, products.ErrInvalidQuery)
	})
}
