package repository

import (
	"context"
	"fmt"
	"time"

	"locallibrary/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookInstanceRepository is the copy-level store behind loan listings and renewals.
//
// Listings are ordered by due_back ascending with undated copies last, then by
// id so that page boundaries stay stable between fetches.
type BookInstanceRepository interface {
	// FindByID returns gorm.ErrRecordNotFound (wrapped) when no copy has the id.
	FindByID(ctx context.Context, id string) (*models.BookInstance, error)
	// FindByBorrower lists copies held by borrowerID in the given status.
	FindByBorrower(ctx context.Context, borrowerID string, status models.LoanStatus, page PageRequest) ([]models.BookInstance, int64, error)
	// FindByStatus lists every copy in the given status regardless of borrower.
	FindByStatus(ctx context.Context, status models.LoanStatus, page PageRequest) ([]models.BookInstance, int64, error)
	FindByBook(ctx context.Context, bookID int64) ([]models.BookInstance, error)
	GetAll(ctx context.Context, page PageRequest) ([]models.BookInstance, int64, error)
	Create(ctx context.Context, bi *models.BookInstance) error
	Update(ctx context.Context, bi *models.BookInstance) error
	Delete(ctx context.Context, id string) error
	// UpdateDueBack sets due_back under a row lock in a single transaction and
	// returns the stored copy. The copy is untouched when an error is returned.
	UpdateDueBack(ctx context.Context, id string, dueBack time.Time) (*models.BookInstance, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.LoanStatus) (int64, error)
}

type bookInstanceRepository struct {
	db *gorm.DB
}

func NewBookInstanceRepository(db *gorm.DB) BookInstanceRepository {
	return &bookInstanceRepository{db: db}
}

func (r *bookInstanceRepository) ordered(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Book").
		Order("due_back ASC NULLS LAST").
		Order("id ASC")
}

func (r *bookInstanceRepository) FindByID(ctx context.Context, id string) (*models.BookInstance, error) {
	var bi models.BookInstance
	if err := r.db.WithContext(ctx).Preload("Book").First(&bi, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("find copy %s: %w", id, err)
	}
	return &bi, nil
}

func (r *bookInstanceRepository) FindByBorrower(ctx context.Context, borrowerID string, status models.LoanStatus, page PageRequest) ([]models.BookInstance, int64, error) {
	return r.page(ctx, page, func(db *gorm.DB) *gorm.DB {
		return db.Where("borrower_id = ? AND status = ?", borrowerID, status)
	})
}

func (r *bookInstanceRepository) FindByStatus(ctx context.Context, status models.LoanStatus, page PageRequest) ([]models.BookInstance, int64, error) {
	return r.page(ctx, page, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status)
	})
}

func (r *bookInstanceRepository) GetAll(ctx context.Context, page PageRequest) ([]models.BookInstance, int64, error) {
	return r.page(ctx, page, func(db *gorm.DB) *gorm.DB { return db })
}

func (r *bookInstanceRepository) page(ctx context.Context, page PageRequest, filter func(*gorm.DB) *gorm.DB) ([]models.BookInstance, int64, error) {
	var list []models.BookInstance
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.BookInstance{}).
		Scopes(filter).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count copies: %w", err)
	}

	if err := r.ordered(ctx).
		Scopes(filter).
		Limit(page.limit()).
		Offset(page.offset()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list copies: %w", err)
	}

	return list, total, nil
}

func (r *bookInstanceRepository) FindByBook(ctx context.Context, bookID int64) ([]models.BookInstance, error) {
	var list []models.BookInstance
	if err := r.ordered(ctx).Where("book_id = ?", bookID).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list copies of book %d: %w", bookID, err)
	}
	return list, nil
}

func (r *bookInstanceRepository) Create(ctx context.Context, bi *models.BookInstance) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(bi).Error; err != nil {
		if isForeignKeyViolation(err) {
			return ErrUnknownReference
		}
		return fmt.Errorf("create copy: %w", err)
	}
	return nil
}

func (r *bookInstanceRepository) Update(ctx context.Context, bi *models.BookInstance) error {
	result := r.db.WithContext(ctx).Model(bi).Select("*").Omit(clause.Associations).Updates(bi)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return ErrUnknownReference
		}
		return fmt.Errorf("update copy: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update copy %s: %w", bi.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *bookInstanceRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.BookInstance{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete copy: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete copy %s: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *bookInstanceRepository) UpdateDueBack(ctx context.Context, id string, dueBack time.Time) (*models.BookInstance, error) {
	var bi models.BookInstance
	due := models.DateOf(dueBack)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&bi, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.BookInstance{}).
			Where("id = ?", id).
			Update("due_back", due).Error; err != nil {
			return err
		}
		return tx.Preload("Book").First(&bi, "id = ?", id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("update due date of copy %s: %w", id, err)
	}
	return &bi, nil
}

func (r *bookInstanceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.BookInstance{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count copies: %w", err)
	}
	return n, nil
}

func (r *bookInstanceRepository) CountByStatus(ctx context.Context, status models.LoanStatus) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.BookInstance{}).
		Where("status = ?", status).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count copies by status: %w", err)
	}
	return n, nil
}
