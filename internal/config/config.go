package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSentimentURL = "https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english"
	DefaultLabelsSource = "https://storage.googleapis.com/download.tensorflow.org/data/imagenet_class_index.json"
	defaultConfigPath   = "configs/config.yaml"

	MaxRecommendationLimit = 10
)

// Config holds every process-scoped setting. Values come from the optional
// YAML file first and are then overridden by the environment.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	Sentiment  SentimentConfig  `yaml:"sentiment"`
	Mongo      MongoConfig      `yaml:"mongo"`
	Classifier ClassifierConfig `yaml:"classifier"`
}

type ServerConfig struct {
	Port           string `yaml:"port"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type SentimentConfig struct {
	APIKey  string        `yaml:"api_key"`
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type MongoConfig struct {
	URI                 string `yaml:"uri"`
	Database            string `yaml:"database"`
	ProductsCollection  string `yaml:"products_collection"`
	MaxRetries          int    `yaml:"max_retries"`
	RecommendationLimit int    `yaml:"recommendation_limit"`
}

type ClassifierConfig struct {
	ModelDir     string `yaml:"model_dir"`
	InputOp      string `yaml:"input_op"`
	OutputOp     string `yaml:"output_op"`
	LabelsSource string `yaml:"labels_source"`
	TopK         int    `yaml:"top_k"`
}

// Load reads CONFIG_PATH (missing file is fine), applies environment
// overrides and defaults, then validates the result.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Server.Port, "API_PORT")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	setString(&cfg.Sentiment.APIKey, "HUGGINGFACE_API_KEY")
	setString(&cfg.Sentiment.URL, "SENTIMENT_API_URL")
	setString(&cfg.Mongo.URI, "MONGO_URI")
	setString(&cfg.Mongo.Database, "DB_NAME")
	setString(&cfg.Mongo.ProductsCollection, "PRODUCTS_COLLECTION")
	setString(&cfg.Classifier.ModelDir, "MODEL_DIR")
	setString(&cfg.Classifier.InputOp, "MODEL_INPUT_OP")
	setString(&cfg.Classifier.OutputOp, "MODEL_OUTPUT_OP")
	setString(&cfg.Classifier.LabelsSource, "LABELS_SOURCE")

	if v := os.Getenv("SENTIMENT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SENTIMENT_TIMEOUT %q: %w", v, err)
		}
		cfg.Sentiment.Timeout = d
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"MONGO_MAX_RETRIES", &cfg.Mongo.MaxRetries},
		{"RECOMMENDATION_LIMIT", &cfg.Mongo.RecommendationLimit},
		{"TOP_K", &cfg.Classifier.TopK},
	}
	for _, i := range ints {
		v := os.Getenv(i.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", i.key, v, err)
		}
		*i.dst = n
	}

	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_BYTES %q: %w", v, err)
		}
		cfg.Server.MaxUploadBytes = n
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8000"
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = 10 << 20
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Sentiment.URL == "" {
		cfg.Sentiment.URL = DefaultSentimentURL
	}
	if cfg.Mongo.ProductsCollection == "" {
		cfg.Mongo.ProductsCollection = "products"
	}
	if cfg.Mongo.MaxRetries == 0 {
		cfg.Mongo.MaxRetries = 5
	}
	if cfg.Mongo.RecommendationLimit == 0 {
		cfg.Mongo.RecommendationLimit = 10
	}
	if cfg.Classifier.ModelDir == "" {
		cfg.Classifier.ModelDir = "models/mobilenet"
	}
	if cfg.Classifier.InputOp == "" {
		cfg.Classifier.InputOp = "serving_default_input_1"
	}
	if cfg.Classifier.OutputOp == "" {
		cfg.Classifier.OutputOp = "StatefulPartitionedCall"
	}
	if cfg.Classifier.LabelsSource == "" {
		cfg.Classifier.LabelsSource = DefaultLabelsSource
	}
	if cfg.Classifier.TopK == 0 {
		cfg.Classifier.TopK = 3
	}
}

// Validate reports every missing required setting in one error.
func (c *Config) Validate() error {
	var missing []string
	if c.Sentiment.APIKey == "" {
		missing = append(missing, "HUGGINGFACE_API_KEY")
	}
	if c.Mongo.URI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if c.Mongo.Database == "" {
		missing = append(missing, "DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if c.Classifier.TopK < 0 {
		return fmt.Errorf("invalid top_k: %d", c.Classifier.TopK)
	}
	if c.Mongo.RecommendationLimit < 0 || c.Mongo.RecommendationLimit > MaxRecommendationLimit {
		return fmt.Errorf("invalid recommendation_limit: %d (must be 1..%d)", c.Mongo.RecommendationLimit, MaxRecommendationLimit)
	}
	if c.Server.MaxUploadBytes < 0 {
		return fmt.Errorf("invalid max_upload_bytes: %d", c.Server.MaxUploadBytes)
	}

	return nil
}
