package service

import (
	"context"
	"time"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// MockBookInstanceRepository mocks the BookInstanceRepository interface
type MockBookInstanceRepository struct {
	mock.Mock
}

func (m *MockBookInstanceRepository) FindByID(ctx context.Context, id string) (*models.BookInstance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookInstance), args.Error(1)
}

func (m *MockBookInstanceRepository) FindByBorrower(ctx context.Context, borrowerID string, status models.LoanStatus, page repository.PageRequest) ([]models.BookInstance, int64, error) {
	args := m.Called(ctx, borrowerID, status, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.BookInstance), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookInstanceRepository) FindByStatus(ctx context.Context, status models.LoanStatus, page repository.PageRequest) ([]models.BookInstance, int64, error) {
	args := m.Called(ctx, status, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.BookInstance), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookInstanceRepository) FindByBook(ctx context.Context, bookID int64) ([]models.BookInstance, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookInstance), args.Error(1)
}

func (m *MockBookInstanceRepository) GetAll(ctx context.Context, page repository.PageRequest) ([]models.BookInstance, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.BookInstance), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookInstanceRepository) Create(ctx context.Context, bi *models.BookInstance) error {
	args := m.Called(ctx, bi)
	return args.Error(0)
}

func (m *MockBookInstanceRepository) Update(ctx context.Context, bi *models.BookInstance) error {
	args := m.Called(ctx, bi)
	return args.Error(0)
}

func (m *MockBookInstanceRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookInstanceRepository) UpdateDueBack(ctx context.Context, id string, dueBack time.Time) (*models.BookInstance, error) {
	args := m.Called(ctx, id, dueBack)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookInstance), args.Error(1)
}

func (m *MockBookInstanceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookInstanceRepository) CountByStatus(ctx context.Context, status models.LoanStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockBookRepository mocks the BookRepository interface
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) GetAll(ctx context.Context, page repository.PageRequest) ([]models.Book, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Book), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepository) GetByAuthor(ctx context.Context, authorID int64) ([]models.Book, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) Create(ctx context.Context, b *models.Book, genreIDs []int64) error {
	args := m.Called(ctx, b, genreIDs)
	return args.Error(0)
}

func (m *MockBookRepository) Update(ctx context.Context, b *models.Book, genreIDs []int64) error {
	args := m.Called(ctx, b, genreIDs)
	return args.Error(0)
}

func (m *MockBookRepository) DeleteIfUnreferenced(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookRepository) SearchByTitle(ctx context.Context, term string) ([]models.Book, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuthorRepository mocks the AuthorRepository interface
type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) GetAll(ctx context.Context, page repository.PageRequest) ([]models.Author, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Author), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuthorRepository) GetByID(ctx context.Context, id int64) (*models.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

func (m *MockAuthorRepository) Create(ctx context.Context, a *models.Author) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAuthorRepository) Update(ctx context.Context, a *models.Author) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAuthorRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAuthorRepository) SearchByFirstName(ctx context.Context, term string) ([]models.Author, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Author), args.Error(1)
}

func (m *MockAuthorRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockGenreRepository mocks the GenreRepository interface
type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) GetAll(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreRepository) Create(ctx context.Context, g *models.Genre) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGenreRepository) CountExisting(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGenreRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockLanguageRepository mocks the LanguageRepository interface
type MockLanguageRepository struct {
	mock.Mock
}

func (m *MockLanguageRepository) GetAll(ctx context.Context) ([]models.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Language), args.Error(1)
}

func (m *MockLanguageRepository) GetByID(ctx context.Context, id int64) (*models.Language, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Language), args.Error(1)
}

func (m *MockLanguageRepository) Create(ctx context.Context, l *models.Language) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) Permissions(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserRepository) GrantPermission(ctx context.Context, userID, codename string) error {
	args := m.Called(ctx, userID, codename)
	return args.Error(0)
}

func (m *MockUserRepository) RevokePermission(ctx context.Context, userID, codename string) error {
	args := m.Called(ctx, userID, codename)
	return args.Error(0)
}

// MockRefreshTokenRepository mocks the RefreshTokenRepository interface
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockSummaryCache mocks the SummaryCache interface
type MockSummaryCache struct {
	mock.Mock
}

func (m *MockSummaryCache) Get(ctx context.Context) (*models.CatalogSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatalogSummary), args.Error(1)
}

func (m *MockSummaryCache) Set(ctx context.Context, s *models.CatalogSummary) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSummaryCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
