// Package tensorflow serves a Keras MobileNet SavedModel through the
// TensorFlow C API.
package tensorflow

import (
	"context"
	"fmt"

	"github.com/phantuanthanh1582000/backend-ai-final/internal/classifier"
	tf "github.com/wamuir/graft/tensorflow"
)

type Config struct {
	ModelDir string
	InputOp  string
	OutputOp string
}

// Model wraps a loaded SavedModel. A tf.Session is safe for concurrent Run
// calls, so one Model serves every request.
type Model struct {
	saved  *tf.SavedModel
	input  tf.Output
	output tf.Output
}

func Load(cfg Config) (*Model, error) {
	saved, err := tf.LoadSavedModel(cfg.ModelDir, []string{"serve"}, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to load SavedModel from %s: %w", cfg.ModelDir, err)
	}

	in := saved.Graph.Operation(cfg.InputOp)
	if in == nil {
		saved.Session.Close()
		return nil, fmt.Errorf("input operation %q not found in graph", cfg.InputOp)
	}
	out := saved.Graph.Operation(cfg.OutputOp)
	if out == nil {
		saved.Session.Close()
		return nil, fmt.Errorf("output operation %q not found in graph", cfg.OutputOp)
	}

	return &Model{
		saved:  saved,
		input:  in.Output(0),
		output: out.Output(0),
	}, nil
}

func (m *Model) Predict(ctx context.Context, input []float32) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const size = classifier.InputSize
	if len(input) != size*size*3 {
		return nil, fmt.Errorf("expected %d input values, got %d", size*size*3, len(input))
	}

	batch := make([][][][]float32, 1)
	batch[0] = make([][][]float32, size)
	for y := 0; y < size; y++ {
		batch[0][y] = make([][]float32, size)
		for x := 0; x < size; x++ {
			off := (y*size + x) * 3
			batch[0][y][x] = input[off : off+3 : off+3]
		}
	}

	tensor, err := tf.NewTensor(batch)
	if err != nil {
		return nil, fmt.Errorf("unable to build input tensor: %w", err)
	}

	results, err := m.saved.Session.Run(
		map[tf.Output]*tf.Tensor{m.input: tensor},
		[]tf.Output{m.output},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("session run failed: %w", err)
	}

	scores, ok := results[0].Value().([][]float32)
	if !ok || len(scores) != 1 {
		return nil, fmt.Errorf("unexpected output shape %v", results[0].Shape())
	}

	return scores[0], nil
}

func (m *Model) Close() error {
	return m.saved.Session.Close()
}
