package repository

import (
	"context"
	"errors"
	"fmt"

	"locallibrary/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRepository interface {
	GetAll(ctx context.Context, page PageRequest) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	GetByAuthor(ctx context.Context, authorID int64) ([]models.Book, error)
	Create(ctx context.Context, b *models.Book, genreIDs []int64) error
	Update(ctx context.Context, b *models.Book, genreIDs []int64) error
	DeleteIfUnreferenced(ctx context.Context, id int64) error
	SearchByTitle(ctx context.Context, term string) ([]models.Book, error)
	Count(ctx context.Context) (int64, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Author").
		Preload("Language").
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.name ASC") })
}

func (r *bookRepository) GetAll(ctx context.Context, page PageRequest) ([]models.Book, int64, error) {
	var list []models.Book
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Book{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	if err := r.withRelations(ctx).
		Order("title ASC, id ASC").
		Limit(page.limit()).
		Offset(page.offset()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}

	return list, total, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	var b models.Book
	if err := r.withRelations(ctx).First(&b, id).Error; err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return &b, nil
}

func (r *bookRepository) GetByAuthor(ctx context.Context, authorID int64) ([]models.Book, error) {
	var list []models.Book
	if err := r.withRelations(ctx).
		Where("author_id = ?", authorID).
		Order("title ASC, id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get books by author: %w", err)
	}
	return list, nil
}

func (r *bookRepository) Create(ctx context.Context, b *models.Book, genreIDs []int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return err
		}
		return replaceGenres(tx, b, genreIDs)
	})
	if isUniqueViolation(err) {
		return ErrDuplicateISBN
	}
	if isForeignKeyViolation(err) {
		return ErrUnknownReference
	}
	if err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *bookRepository) Update(ctx context.Context, b *models.Book, genreIDs []int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(b).Select("*").Omit(clause.Associations).Updates(b)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return replaceGenres(tx, b, genreIDs)
	})
	if isUniqueViolation(err) {
		return ErrDuplicateISBN
	}
	if isForeignKeyViolation(err) {
		return ErrUnknownReference
	}
	if err != nil {
		return fmt.Errorf("update book %d: %w", b.ID, err)
	}
	return nil
}

func replaceGenres(tx *gorm.DB, b *models.Book, genreIDs []int64) error {
	genres := make([]models.Genre, 0, len(genreIDs))
	for _, id := range genreIDs {
		genres = append(genres, models.Genre{ID: id})
	}
	if err := tx.Model(b).Association("Genres").Replace(genres); err != nil {
		return fmt.Errorf("replace genres: %w", err)
	}
	return nil
}

// DeleteIfUnreferenced deletes the book only while no copy points at it.
// The row lock plus the RESTRICT foreign key keep a concurrently created
// copy from slipping in between the check and the delete.
func (r *bookRepository) DeleteIfUnreferenced(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, id).Error; err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(&models.BookInstance{}).Where("book_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrBookReferenced
		}

		return tx.Delete(&b).Error
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrBookReferenced), isForeignKeyViolation(err):
		return ErrBookReferenced
	default:
		return fmt.Errorf("delete book %d: %w", id, err)
	}
}

// SearchByTitle is a case-insensitive substring match on the title.
func (r *bookRepository) SearchByTitle(ctx context.Context, term string) ([]models.Book, error) {
	var list []models.Book
	if err := r.withRelations(ctx).
		Where("title ILIKE ?", "%"+term+"%").
		Order("title ASC, id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search books by title: %w", err)
	}
	return list, nil
}

func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Book{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return n, nil
}
