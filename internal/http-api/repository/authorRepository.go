package repository

import (
	"context"
	"fmt"

	"locallibrary/internal/http-api/models"

	"gorm.io/gorm"
)

type AuthorRepository interface {
	GetAll(ctx context.Context, page PageRequest) ([]models.Author, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Author, error)
	Create(ctx context.Context, a *models.Author) error
	Update(ctx context.Context, a *models.Author) error
	Delete(ctx context.Context, id int64) error
	SearchByFirstName(ctx context.Context, term string) ([]models.Author, error)
	Count(ctx context.Context) (int64, error)
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

const authorOrder = "last_name ASC, first_name ASC, middle_name ASC, id ASC"

func (r *authorRepository) GetAll(ctx context.Context, page PageRequest) ([]models.Author, int64, error) {
	var list []models.Author
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Author{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count authors: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Order(authorOrder).
		Limit(page.limit()).
		Offset(page.offset()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list authors: %w", err)
	}

	return list, total, nil
}

func (r *authorRepository) GetByID(ctx context.Context, id int64) (*models.Author, error) {
	var a models.Author
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, fmt.Errorf("get author %d: %w", id, err)
	}
	return &a, nil
}

func (r *authorRepository) Create(ctx context.Context, a *models.Author) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create author: %w", err)
	}
	return nil
}

func (r *authorRepository) Update(ctx context.Context, a *models.Author) error {
	result := r.db.WithContext(ctx).Model(a).Select("*").Updates(a)
	if result.Error != nil {
		return fmt.Errorf("update author: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update author %d: %w", a.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes the author and detaches their books instead of deleting them.
func (r *authorRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Book{}).
			Where("author_id = ?", id).
			Update("author_id", nil).Error; err != nil {
			return fmt.Errorf("detach books from author: %w", err)
		}

		result := tx.Delete(&models.Author{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete author: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("delete author %d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil
	})
}

func (r *authorRepository) SearchByFirstName(ctx context.Context, term string) ([]models.Author, error) {
	var list []models.Author
	if err := r.db.WithContext(ctx).
		Where("first_name ILIKE ?", "%"+term+"%").
		Order(authorOrder).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search authors: %w", err)
	}
	return list, nil
}

func (r *authorRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Author{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count authors: %w", err)
	}
	return n, nil
}
