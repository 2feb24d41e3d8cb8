package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Igaki12/news-network-api/domain/article"
	"github.com/Igaki12/news-network-api/domain/graph"
	"github.com/Igaki12/news-network-api/infrastructure/dataset"
	apperrors "github.com/Igaki12/news-network-api/pkg/errors"
)

// Snapshot is one immutable loaded dataset: the parsed articles, their
// per-day grouping, and the sorted day keys. A snapshot is never mutated
// after construction, so readers can hold one across a request without
// locking.
type Snapshot struct {
	Articles []article.Article
	ByDay    map[string][]article.Article
	Days     []string
}

// DatasetService owns the currently loaded dataset. Loads replace the
// snapshot atomically: a failed load leaves the previous snapshot untouched,
// and in-flight readers keep the snapshot they already resolved.
type DatasetService struct {
	mu       sync.RWMutex
	snapshot *Snapshot

	fetcher   dataset.Fetcher
	sampleURL string
	entityCap int
	logger    *zap.Logger
}

// NewDatasetService creates the dataset service with no dataset loaded
func NewDatasetService(fetcher dataset.Fetcher, sampleURL string, entityCap int, logger *zap.Logger) *DatasetService {
	if entityCap <= 0 {
		entityCap = graph.DefaultEntityCap
	}
	return &DatasetService{
		fetcher:   fetcher,
		sampleURL: sampleURL,
		entityCap: entityCap,
		logger:    logger,
	}
}

// LoadFromText parses raw JSONL text and, when it yields a usable dataset,
// installs it as the current snapshot. Returns the number of days loaded.
func (s *DatasetService) LoadFromText(ctx context.Context, text string) (int, error) {
	articles := article.ParseJSONL(text)
	if len(articles) == 0 {
		return 0, apperrors.NewEmptyDatasetError()
	}

	byDay, days := article.PartitionByDay(articles)
	if len(days) == 0 {
		return 0, apperrors.NewEmptyGroupingError()
	}

	s.mu.Lock()
	s.snapshot = &Snapshot{Articles: articles, ByDay: byDay, Days: days}
	s.mu.Unlock()

	s.logger.Info("dataset loaded",
		zap.Int("articles", len(articles)),
		zap.Int("days", len(days)),
	)
	return len(days), nil
}

// LoadSample fetches the bundled sample dataset and loads it
func (s *DatasetService) LoadSample(ctx context.Context) (int, error) {
	text, err := s.fetcher.Fetch(ctx, s.sampleURL)
	if err != nil {
		s.logger.Warn("sample dataset fetch failed", zap.Error(err))
		return 0, err
	}
	return s.LoadFromText(ctx, text)
}

// Reset discards the current dataset
func (s *DatasetService) Reset() {
	s.mu.Lock()
	s.snapshot = nil
	s.mu.Unlock()
	s.logger.Info("dataset reset")
}

// current resolves the loaded snapshot, or a not-found error when nothing is
// loaded yet.
func (s *DatasetService) current() (*Snapshot, error) {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()
	if snap == nil {
		return nil, apperrors.NewNotFoundError("dataset")
	}
	return snap, nil
}

// Days returns the sorted day keys of the loaded dataset
func (s *DatasetService) Days() ([]string, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return snap.Days, nil
}

// ArticlesForDay returns the articles recorded under one day key
func (s *DatasetService) ArticlesForDay(dayKey string) ([]article.Article, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	articles, ok := snap.ByDay[dayKey]
	if !ok {
		return nil, apperrors.NewNotFoundError("day " + dayKey)
	}
	return articles, nil
}

// GraphForDay builds the capped entity graph for one day. A non-positive cap
// falls back to the configured default.
func (s *DatasetService) GraphForDay(dayKey string, entityCap int) (*graph.Result, error) {
	articles, err := s.ArticlesForDay(dayKey)
	if err != nil {
		return nil, err
	}
	if entityCap <= 0 {
		entityCap = s.entityCap
	}
	result := graph.Build(articles, graph.Config{EntityCap: entityCap})
	return &result, nil
}

// ArticlesForEntity returns the day's substantial articles mentioning an
// entity, the candidate pool for the featured-article pick.
func (s *DatasetService) ArticlesForEntity(dayKey, entityID string) ([]article.Article, error) {
	articles, err := s.ArticlesForDay(dayKey)
	if err != nil {
		return nil, err
	}
	pool := make([]article.Article, 0, len(articles))
	for _, a := range articles {
		if a.Mentions(entityID) {
			pool = append(pool, a)
		}
	}
	return pool, nil
}
