package classifier

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Model runs a single forward pass over a preprocessed NHWC tensor and
// returns one score per class.
type Model interface {
	Predict(ctx context.Context, input []float32) ([]float32, error)
}

type Prediction struct {
	Label       string  `json:"label" description:"WordNet id of the class"`
	Description string  `json:"description" description:"Human readable class name"`
	Confidence  float64 `json:"confidence" description:"Probability in [0,1]"`
}

type Classifier struct {
	model  Model
	labels Labels
	topK   int
	logger *zerolog.Logger
}

func NewClassifier(model Model, labels Labels, topK int, logger *zerolog.Logger) (*Classifier, error) {
	if model == nil {
		return nil, fmt.Errorf("model is required")
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no labels", ErrInvalidLabels)
	}
	if topK <= 0 {
		topK = 3
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Classifier{
		model:  model,
		labels: labels,
		topK:   topK,
		logger: logger,
	}, nil
}

// Classify decodes, preprocesses and labels one image.
func (c *Classifier) Classify(ctx context.Context, data []byte) ([]Prediction, error) {
	start := time.Now()

	input, err := Preprocess(data)
	if err != nil {
		return nil, err
	}

	scores, err := c.model.Predict(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: inference error: %v", ErrClassification, err)
	}

	predictions, err := Decode(scores, c.labels, c.topK)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("bytes", len(data)).
		Dur("duration", time.Since(start)).
		Str("top_label", predictions[0].Description).
		Msg("Image classified")

	return predictions, nil
}

// Decode turns a raw score vector into the top-k predictions. Scores that do
// not already form a probability distribution are passed through softmax.
func Decode(scores []float32, labels Labels, topK int) ([]Prediction, error) {
	if len(scores) != len(labels) {
		return nil, fmt.Errorf("%w: model returned %d scores for %d labels", ErrClassification, len(scores), len(labels))
	}

	probs := make([]float64, len(scores))
	for i, s := range scores {
		v := float64(s)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: model returned a non-finite score", ErrClassification)
		}
		probs[i] = v
	}

	if !isDistribution(probs) {
		softmax(probs)
	}

	order := make([]int, len(probs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return probs[order[a]] > probs[order[b]]
	})

	if topK > len(order) {
		topK = len(order)
	}

	predictions := make([]Prediction, 0, topK)
	for _, idx := range order[:topK] {
		predictions = append(predictions, Prediction{
			Label:       labels[idx].ID,
			Description: labels[idx].Name,
			Confidence:  clamp(probs[idx]),
		})
	}

	return predictions, nil
}

func isDistribution(p []float64) bool {
	sum := 0.0
	for _, v := range p {
		if v < 0 || v > 1 {
			return false
		}
		sum += v
	}
	return math.Abs(sum-1) <= 1e-3
}

func softmax(p []float64) {
	maxVal := math.Inf(-1)
	for _, v := range p {
		if v > maxVal {
			maxVal = v
		}
	}

	sum := 0.0
	for i, v := range p {
		p[i] = math.Exp(v - maxVal)
		sum += p[i]
	}
	for i := range p {
		p[i] /= sum
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
