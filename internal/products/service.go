package products

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

var (
	ErrInvalidQuery = errors.New("invalid search keyword")
	ErrLookupFailed = errors.New("product lookup failed")
)

// DefaultLimit is also the ceiling: no lookup returns more than ten products.
const DefaultLimit = 10

type Service struct {
	repo   Repository
	limit  int
	logger *zerolog.Logger
}

func NewService(repo Repository, limit int, logger *zerolog.Logger) *Service {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Service{
		repo:   repo,
		limit:  limit,
		logger: logger,
	}
}

// Recommend returns up to limit products whose name contains the query,
// ignoring case. The query is matched literally: regex metacharacters in it
// are escaped before it reaches the store.
func (s *Service) Recommend(ctx context.Context, query string) ([]Product, error) {
	keyword := NormalizeQuery(query)
	if keyword == "" {
		return nil, ErrInvalidQuery
	}

	found, err := s.repo.FindByName(ctx, regexp.QuoteMeta(keyword), int64(s.limit))
	if err != nil {
		s.logger.Error().Err(err).Str("keyword", keyword).Msg("Product lookup failed")
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	if len(found) > s.limit {
		found = found[:s.limit]
	}
	if found == nil {
		found = []Product{}
	}

	s.logger.Debug().Str("keyword", keyword).Int("count", len(found)).Msg("Products matched")

	return found, nil
}

func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
