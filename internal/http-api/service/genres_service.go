package service

import (
	"context"
	"log/slog"
	"strings"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"
)

type GenreService interface {
	ListGenres(ctx context.Context, viewer Viewer) ([]models.Genre, error)
	CreateGenre(ctx context.Context, viewer Viewer, name string) (*models.Genre, error)
	ListLanguages(ctx context.Context, viewer Viewer) ([]models.Language, error)
	CreateLanguage(ctx context.Context, viewer Viewer, name string) (*models.Language, error)
}

type genreService struct {
	genres    repository.GenreRepository
	languages repository.LanguageRepository
	cache     SummaryCache
	logger    *slog.Logger
}

func NewGenreService(genres repository.GenreRepository, languages repository.LanguageRepository, cache SummaryCache, logger *slog.Logger) GenreService {
	if logger == nil {
		logger = slog.Default()
	}
	return &genreService{genres: genres, languages: languages, cache: cache, logger: logger}
}

func (s *genreService) ListGenres(ctx context.Context, viewer Viewer) ([]models.Genre, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	return s.genres.GetAll(ctx)
}

func (s *genreService) CreateGenre(ctx context.Context, viewer Viewer, name string) (*models.Genre, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("genre name is required")
	}

	g := &models.Genre{Name: name}
	if err := s.genres.Create(ctx, g); err != nil {
		return nil, translate(err)
	}
	invalidateSummary(ctx, s.cache, s.logger)
	return g, nil
}

func (s *genreService) ListLanguages(ctx context.Context, viewer Viewer) ([]models.Language, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	return s.languages.GetAll(ctx)
}

func (s *genreService) CreateLanguage(ctx context.Context, viewer Viewer, name string) (*models.Language, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("language name is required")
	}

	l := &models.Language{Name: name}
	if err := s.languages.Create(ctx, l); err != nil {
		return nil, translate(err)
	}
	return l, nil
}
