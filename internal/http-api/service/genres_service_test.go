package service

import (
	"context"
	"testing"

	"locallibrary/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateGenre(t *testing.T) {
	genres := new(MockGenreRepository)
	cache := new(MockSummaryCache)
	svc := NewGenreService(genres, new(MockLanguageRepository), cache, discardLogger())

	genres.On("Create", mock.Anything, &models.Genre{Name: "Fantasy"}).Return(nil)
	cache.On("Invalidate", mock.Anything).Return(nil)

	g, err := svc.CreateGenre(context.Background(), patron(), "  Fantasy ")
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", g.Name)

	_, err = svc.CreateGenre(context.Background(), patron(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateGenre(context.Background(), Anonymous(today), "Horror")
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}

func TestListLanguages(t *testing.T) {
	languages := new(MockLanguageRepository)
	svc := NewGenreService(new(MockGenreRepository), languages, nil, discardLogger())

	languages.On("GetAll", mock.Anything).Return([]models.Language{{ID: 1, Name: "English"}}, nil)

	list, err := svc.ListLanguages(context.Background(), patron())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
