package setup

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/phantuanthanh1582000/backend-ai-final/internal/classifier"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/classifier/tensorflow"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/config"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/database"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/products"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/sentiment"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type Dependencies struct {
	Classifier *classifier.Classifier
	Sentiment  *sentiment.Client
	Products   *products.Service
	Logger     *zerolog.Logger

	model *tensorflow.Model
	db    *database.DB
}

// Wire builds every long-lived resource once. A failure here is fatal for the
// process: the service never starts half-initialised.
func Wire(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: logger}

	// Labels and the database are remote, fetch them while the model loads.
	var labels classifier.Labels
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		labels, err = classifier.LoadLabels(gctx, cfg.Classifier.LabelsSource, &http.Client{Timeout: 30 * time.Second})
		if err != nil {
			return fmt.Errorf("failed to load class labels: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		db, err := database.NewWithBackoff(gctx, database.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		}, cfg.Mongo.MaxRetries)
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		deps.db = db
		return nil
	})

	model, modelErr := tensorflow.Load(tensorflow.Config{
		ModelDir: cfg.Classifier.ModelDir,
		InputOp:  cfg.Classifier.InputOp,
		OutputOp: cfg.Classifier.OutputOp,
	})
	if modelErr == nil {
		deps.model = model
	}

	if err := g.Wait(); err != nil {
		deps.Close(ctx)
		return nil, err
	}
	if modelErr != nil {
		deps.Close(ctx)
		return nil, fmt.Errorf("failed to load image model: %w", modelErr)
	}

	// Classifier
	var err error
	deps.Classifier, err = classifier.NewClassifier(model, labels, cfg.Classifier.TopK, logger)
	if err != nil {
		deps.Close(ctx)
		return nil, fmt.Errorf("failed to create classifier: %w", err)
	}
	logger.Info().
		Str("model_dir", cfg.Classifier.ModelDir).
		Int("classes", len(labels)).
		Msg("Image classifier ready")

	// Sentiment
	deps.Sentiment, err = sentiment.NewClient(sentiment.ClientConfig{
		URL:     cfg.Sentiment.URL,
		APIKey:  cfg.Sentiment.APIKey,
		Timeout: cfg.Sentiment.Timeout,
	}, logger)
	if err != nil {
		deps.Close(ctx)
		return nil, fmt.Errorf("failed to create sentiment client: %w", err)
	}

	// Products
	repo := products.NewMongoRepository(deps.db.Collection(cfg.Mongo.ProductsCollection))
	deps.Products = products.NewService(repo, cfg.Mongo.RecommendationLimit, logger)

	return deps, nil
}

// Close releases the model session and the database client.
func (d *Dependencies) Close(ctx context.Context) {
	if d.db != nil {
		if err := d.db.Close(ctx); err != nil {
			d.Logger.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}
	if d.model != nil {
		if err := d.model.Close(); err != nil {
			d.Logger.Warn().Err(err).Msg("Failed to close model session")
		}
	}
}
