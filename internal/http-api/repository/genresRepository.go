package repository

import (
	"context"
	"fmt"

	"locallibrary/internal/http-api/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	Create(ctx context.Context, g *models.Genre) error
	CountExisting(ctx context.Context, ids []int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) GetAll(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return list, nil
}

func (r *genreRepository) Create(ctx context.Context, g *models.Genre) error {
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

// CountExisting reports how many of ids name a stored genre.
func (r *genreRepository) CountExisting(ctx context.Context, ids []int64) (int64, error) {
	var n int64
	if len(ids) == 0 {
		return 0, nil
	}
	if err := r.db.WithContext(ctx).Model(&models.Genre{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count genres: %w", err)
	}
	return n, nil
}

func (r *genreRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Genre{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count genres: %w", err)
	}
	return n, nil
}

type LanguageRepository interface {
	GetAll(ctx context.Context) ([]models.Language, error)
	GetByID(ctx context.Context, id int64) (*models.Language, error)
	Create(ctx context.Context, l *models.Language) error
}

type languageRepository struct {
	db *gorm.DB
}

func NewLanguageRepository(db *gorm.DB) LanguageRepository {
	return &languageRepository{db: db}
}

func (r *languageRepository) GetAll(ctx context.Context) ([]models.Language, error) {
	var list []models.Language
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get languages: %w", err)
	}
	return list, nil
}

func (r *languageRepository) GetByID(ctx context.Context, id int64) (*models.Language, error) {
	var l models.Language
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, fmt.Errorf("get language %d: %w", id, err)
	}
	return &l, nil
}

func (r *languageRepository) Create(ctx context.Context, l *models.Language) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("create language: %w", err)
	}
	return nil
}
