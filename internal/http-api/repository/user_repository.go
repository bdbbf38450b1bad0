package repository

import (
	"context"
	"fmt"
	"time"

	"locallibrary/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	Permissions(ctx context.Context, userID string) ([]string, error)
	GrantPermission(ctx context.Context, userID, codename string) error
	RevokePermission(ctx context.Context, userID, codename string) error
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// query methods return nil on error so a zero-value user is never mistaken for a hit
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("last_login", at).Error
}

// Permissions returns the capability codenames granted to the user.
func (r *userRepository) Permissions(ctx context.Context, userID string) ([]string, error) {
	var codenames []string
	if err := r.db.WithContext(ctx).
		Model(&models.UserPermission{}).
		Where("user_id = ?", userID).
		Order("codename asc").
		Pluck("codename", &codenames).Error; err != nil {
		return nil, fmt.Errorf("load permissions: %w", err)
	}
	return codenames, nil
}

// GrantPermission is idempotent.
func (r *userRepository) GrantPermission(ctx context.Context, userID, codename string) error {
	perm := &models.UserPermission{UserID: userID, Codename: codename}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(perm).Error; err != nil {
		return fmt.Errorf("grant permission: %w", err)
	}
	return nil
}

func (r *userRepository) RevokePermission(ctx context.Context, userID, codename string) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND codename = ?", userID, codename).
		Delete(&models.UserPermission{}).Error; err != nil {
		return fmt.Errorf("revoke permission: %w", err)
	}
	return nil
}
