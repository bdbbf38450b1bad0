package handler

import (
	"context"
	"time"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/service"

	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	args := m.Called(ctx, username, password, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, string, *models.User, error) {
	args := m.Called(ctx, username, password)
	user, _ := args.Get(2).(*models.User)
	return args.String(0), args.String(1), user, args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) RevokeToken(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

// MockLoanService mocks the LoanService interface
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) MyLoans(ctx context.Context, viewer service.Viewer, page int) (*service.Page[models.BookInstance], error) {
	args := m.Called(ctx, viewer, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[models.BookInstance]), args.Error(1)
}

func (m *MockLoanService) AllLoans(ctx context.Context, viewer service.Viewer, page int) (*service.Page[models.BookInstance], error) {
	args := m.Called(ctx, viewer, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[models.BookInstance]), args.Error(1)
}

// MockRenewalService mocks the RenewalService interface
type MockRenewalService struct {
	mock.Mock
}

func (m *MockRenewalService) Propose(ctx context.Context, instanceID string, viewer service.Viewer) (*service.RenewalProposal, error) {
	args := m.Called(ctx, instanceID, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RenewalProposal), args.Error(1)
}

func (m *MockRenewalService) Renew(ctx context.Context, instanceID string, candidate time.Time, viewer service.Viewer) (*models.BookInstance, error) {
	args := m.Called(ctx, instanceID, candidate, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookInstance), args.Error(1)
}

// MockCatalogService mocks the CatalogService interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Summary(ctx context.Context) (*models.CatalogSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatalogSummary), args.Error(1)
}

func (m *MockCatalogService) Search(ctx context.Context, term string) (*service.SearchResult, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchResult), args.Error(1)
}

// MockBookService mocks the BookService interface
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) List(ctx context.Context, page int) (*service.Page[models.Book], error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[models.Book]), args.Error(1)
}

func (m *MockBookService) Get(ctx context.Context, id int64) (*service.BookDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BookDetail), args.Error(1)
}

func (m *MockBookService) Create(ctx context.Context, viewer service.Viewer, in service.BookInput) (*models.Book, error) {
	args := m.Called(ctx, viewer, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookService) Update(ctx context.Context, viewer service.Viewer, id int64, in service.BookInput) (*models.Book, error) {
	args := m.Called(ctx, viewer, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookService) Delete(ctx context.Context, viewer service.Viewer, id int64) error {
	args := m.Called(ctx, viewer, id)
	return args.Error(0)
}

// MockAuthorService mocks the AuthorService interface
type MockAuthorService struct {
	mock.Mock
}

func (m *MockAuthorService) List(ctx context.Context, page int) (*service.Page[models.Author], error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[models.Author]), args.Error(1)
}

func (m *MockAuthorService) Get(ctx context.Context, id int64) (*service.AuthorDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthorDetail), args.Error(1)
}

func (m *MockAuthorService) Create(ctx context.Context, viewer service.Viewer, a *models.Author) error {
	args := m.Called(ctx, viewer, a)
	return args.Error(0)
}

func (m *MockAuthorService) Update(ctx context.Context, viewer service.Viewer, a *models.Author) error {
	args := m.Called(ctx, viewer, a)
	return args.Error(0)
}

func (m *MockAuthorService) Delete(ctx context.Context, viewer service.Viewer, id int64) error {
	args := m.Called(ctx, viewer, id)
	return args.Error(0)
}

// MockCopyService mocks the CopyService interface
type MockCopyService struct {
	mock.Mock
}

func (m *MockCopyService) List(ctx context.Context, viewer service.Viewer, page int) (*service.Page[models.BookInstance], error) {
	args := m.Called(ctx, viewer, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[models.BookInstance]), args.Error(1)
}

func (m *MockCopyService) Get(ctx context.Context, viewer service.Viewer, id string) (*models.BookInstance, error) {
	args := m.Called(ctx, viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookInstance), args.Error(1)
}

func (m *MockCopyService) Create(ctx context.Context, viewer service.Viewer, in service.CopyInput) (*models.BookInstance, error) {
	args := m.Called(ctx, viewer, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookInstance), args.Error(1)
}

func (m *MockCopyService) Update(ctx context.Context, viewer service.Viewer, id string, in service.CopyInput) (*models.BookInstance, error) {
	args := m.Called(ctx, viewer, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookInstance), args.Error(1)
}

func (m *MockCopyService) Delete(ctx context.Context, viewer service.Viewer, id string) error {
	args := m.Called(ctx, viewer, id)
	return args.Error(0)
}

// MockGenreService mocks the GenreService interface
type MockGenreService struct {
	mock.Mock
}

func (m *MockGenreService) ListGenres(ctx context.Context, viewer service.Viewer) ([]models.Genre, error) {
	args := m.Called(ctx, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreService) CreateGenre(ctx context.Context, viewer service.Viewer, name string) (*models.Genre, error) {
	args := m.Called(ctx, viewer, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *MockGenreService) ListLanguages(ctx context.Context, viewer service.Viewer) ([]models.Language, error) {
	args := m.Called(ctx, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Language), args.Error(1)
}

func (m *MockGenreService) CreateLanguage(ctx context.Context, viewer service.Viewer, name string) (*models.Language, error) {
	args := m.Called(ctx, viewer, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Language), args.Error(1)
}
