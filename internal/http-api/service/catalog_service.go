package service

import (
	"context"
	"log/slog"
	"strings"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"
)

// SummaryCache stores the landing-page counters between catalog writes.
// Get returns nil, nil on a miss.
type SummaryCache interface {
	Get(ctx context.Context) (*models.CatalogSummary, error)
	Set(ctx context.Context, s *models.CatalogSummary) error
	Invalidate(ctx context.Context) error
}

// SearchResult groups matches by kind.
type SearchResult struct {
	Term    string
	Books   []models.Book
	Authors []models.Author
}

type CatalogService interface {
	Summary(ctx context.Context) (*models.CatalogSummary, error)
	Search(ctx context.Context, term string) (*SearchResult, error)
}

type catalogService struct {
	books     repository.BookRepository
	instances repository.BookInstanceRepository
	authors   repository.AuthorRepository
	genres    repository.GenreRepository
	cache     SummaryCache
	logger    *slog.Logger
}

func NewCatalogService(
	books repository.BookRepository,
	instances repository.BookInstanceRepository,
	authors repository.AuthorRepository,
	genres repository.GenreRepository,
	cache SummaryCache,
	logger *slog.Logger,
) CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &catalogService{
		books:     books,
		instances: instances,
		authors:   authors,
		genres:    genres,
		cache:     cache,
		logger:    logger,
	}
}

// Summary serves from the cache when it can. Cache failures only cost a
// recount, they never fail the request.
func (s *catalogService) Summary(ctx context.Context) (*models.CatalogSummary, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("summary_cache_get_failed", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	var (
		summary models.CatalogSummary
		err     error
	)
	if summary.Books, err = s.books.Count(ctx); err != nil {
		return nil, err
	}
	if summary.Instances, err = s.instances.Count(ctx); err != nil {
		return nil, err
	}
	if summary.InstancesAvailable, err = s.instances.CountByStatus(ctx, models.StatusAvailable); err != nil {
		return nil, err
	}
	if summary.Authors, err = s.authors.Count(ctx); err != nil {
		return nil, err
	}
	if summary.Genres, err = s.genres.Count(ctx); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, &summary); err != nil {
			s.logger.Warn("summary_cache_set_failed", "error", err)
		}
	}
	return &summary, nil
}

// Search matches the term case-insensitively against book titles and
// author first names. A blank term matches nothing.
func (s *catalogService) Search(ctx context.Context, term string) (*SearchResult, error) {
	term = strings.TrimSpace(term)
	result := &SearchResult{Term: term, Books: []models.Book{}, Authors: []models.Author{}}
	if term == "" {
		return result, nil
	}

	books, err := s.books.SearchByTitle(ctx, term)
	if err != nil {
		return nil, err
	}
	authors, err := s.authors.SearchByFirstName(ctx, term)
	if err != nil {
		return nil, err
	}
	if books != nil {
		result.Books = books
	}
	if authors != nil {
		result.Authors = authors
	}
	return result, nil
}

// invalidateSummary drops cached counters after a catalog write.
func invalidateSummary(ctx context.Context, cache SummaryCache, logger *slog.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		logger.Warn("summary_cache_invalidate_failed", "error", err)
	}
}
