package services

import (
	"context"
	"time"

	"clarifai/internal/factcheck"
	"clarifai/internal/models"
)

// Searcher is the fact check search capability the report service fans out
// to.
type Searcher interface {
	Search(ctx context.Context, query string) ([]factcheck.ClaimReview, error)
}

// ReportService builds aggregate misinformation reports from live
// multi-source fact check lookups. This path is independent of the verdict
// cache: every uncached query goes upstream.
type ReportService struct {
	searcher Searcher
	cache    *factcheck.ReportCache
	timeout  time.Duration
}

// NewReportService creates a new report service
func NewReportService(searcher Searcher, cache *factcheck.ReportCache) *ReportService {
	return &ReportService{
		searcher: searcher,
		cache:    cache,
		timeout:  15 * time.Second,
	}
}

// Report searches all fact check sources for the query and aggregates the
// results. Repeated queries within the cache TTL are served from memory.
func (s *ReportService) Report(ctx context.Context, query string) (factcheck.Report, error) {
	key := models.NormalizeKey(query)
	if key == "" {
		return factcheck.Report{}, ErrEmptyContent
	}

	if s.cache != nil {
		if report, ok := s.cache.Get(key); ok {
			return report, nil
		}
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reviews, err := s.searcher.Search(cctx, query)
	if err != nil {
		return factcheck.Report{}, err
	}

	report := factcheck.Aggregate(query, reviews)
	if s.cache != nil {
		s.cache.Set(key, report)
	}
	return report, nil
}
