package service

import (
	"context"
	"errors"
	"testing"

	"locallibrary/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogMocks struct {
	books     *MockBookRepository
	instances *MockBookInstanceRepository
	authors   *MockAuthorRepository
	genres    *MockGenreRepository
	cache     *MockSummaryCache
}

func newCatalogService() (CatalogService, catalogMocks) {
	m := catalogMocks{
		books:     new(MockBookRepository),
		instances: new(MockBookInstanceRepository),
		authors:   new(MockAuthorRepository),
		genres:    new(MockGenreRepository),
		cache:     new(MockSummaryCache),
	}
	return NewCatalogService(m.books, m.instances, m.authors, m.genres, m.cache, discardLogger()), m
}

func (m catalogMocks) expectCounts() {
	m.books.On("Count", mock.Anything).Return(int64(4), nil)
	m.instances.On("Count", mock.Anything).Return(int64(9), nil)
	m.instances.On("CountByStatus", mock.Anything, models.StatusAvailable).Return(int64(3), nil)
	m.authors.On("Count", mock.Anything).Return(int64(2), nil)
	m.genres.On("Count", mock.Anything).Return(int64(5), nil)
}

func TestSummary_CacheHit(t *testing.T) {
	svc, m := newCatalogService()

	cached := &models.CatalogSummary{Books: 1}
	m.cache.On("Get", mock.Anything).Return(cached, nil)

	got, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Same(t, cached, got)
	m.books.AssertNotCalled(t, "Count", mock.Anything)
}

func TestSummary_CacheMissStoresCounts(t *testing.T) {
	svc, m := newCatalogService()

	m.cache.On("Get", mock.Anything).Return(nil, nil)
	m.expectCounts()
	want := &models.CatalogSummary{Books: 4, Instances: 9, InstancesAvailable: 3, Authors: 2, Genres: 5}
	m.cache.On("Set", mock.Anything, want).Return(nil)

	got, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
	m.cache.AssertExpectations(t)
}

func TestSummary_CacheFailureFallsBack(t *testing.T) {
	svc, m := newCatalogService()

	m.cache.On("Get", mock.Anything).Return(nil, errors.New("redis: connection refused"))
	m.expectCounts()
	m.cache.On("Set", mock.Anything, mock.Anything).Return(errors.New("redis: connection refused"))

	got, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.InstancesAvailable)
}

func TestSummary_NoCache(t *testing.T) {
	m := catalogMocks{
		books:     new(MockBookRepository),
		instances: new(MockBookInstanceRepository),
		authors:   new(MockAuthorRepository),
		genres:    new(MockGenreRepository),
	}
	svc := NewCatalogService(m.books, m.instances, m.authors, m.genres, nil, discardLogger())
	m.expectCounts()

	got, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Books)
}

func TestSearch(t *testing.T) {
	t.Run("BlankTerm", func(t *testing.T) {
		svc, m := newCatalogService()

		res, err := svc.Search(context.Background(), "   ")

		require.NoError(t, err)
		assert.Empty(t, res.Books)
		assert.Empty(t, res.Authors)
		m.books.AssertNotCalled(t, "SearchByTitle", mock.Anything, mock.Anything)
	})

	t.Run("MatchesBoth", func(t *testing.T) {
		svc, m := newCatalogService()

		m.books.On("SearchByTitle", mock.Anything, "war").Return([]models.Book{{ID: 1, Title: "War and Peace"}}, nil)
		m.authors.On("SearchByFirstName", mock.Anything, "war").Return(nil, nil)

		res, err := svc.Search(context.Background(), " war ")

		require.NoError(t, err)
		assert.Equal(t, "war", res.Term)
		assert.Len(t, res.Books, 1)
		assert.NotNil(t, res.Authors)
		assert.Empty(t, res.Authors)
	})
}
