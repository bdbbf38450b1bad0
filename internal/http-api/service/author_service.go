package service

import (
	"context"
	"log/slog"
	"strings"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"
)

// AuthorDetail is an author together with the books credited to them.
type AuthorDetail struct {
	Author *models.Author
	Books  []models.Book
}

type AuthorService interface {
	List(ctx context.Context, page int) (*Page[models.Author], error)
	Get(ctx context.Context, id int64) (*AuthorDetail, error)
	Create(ctx context.Context, viewer Viewer, a *models.Author) error
	Update(ctx context.Context, viewer Viewer, a *models.Author) error
	Delete(ctx context.Context, viewer Viewer, id int64) error
}

type authorService struct {
	authors repository.AuthorRepository
	books   repository.BookRepository
	cache   SummaryCache
	logger  *slog.Logger
}

func NewAuthorService(authors repository.AuthorRepository, books repository.BookRepository, cache SummaryCache, logger *slog.Logger) AuthorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authorService{authors: authors, books: books, cache: cache, logger: logger}
}

func (s *authorService) List(ctx context.Context, page int) (*Page[models.Author], error) {
	req := pageRequest(page, DefaultPageSize)
	list, total, err := s.authors.GetAll(ctx, req)
	if err != nil {
		return nil, err
	}
	return newPage(list, req, total), nil
}

func (s *authorService) Get(ctx context.Context, id int64) (*AuthorDetail, error) {
	a, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	books, err := s.books.GetByAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []models.Book{}
	}
	return &AuthorDetail{Author: a, Books: books}, nil
}

func validateAuthor(a *models.Author) error {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.MiddleName = strings.TrimSpace(a.MiddleName)

	if a.FirstName == "" || a.LastName == "" {
		return invalidf("first and last name are required")
	}
	if a.DateOfBirth != nil {
		d := models.DateOf(*a.DateOfBirth)
		a.DateOfBirth = &d
	}
	if a.DateOfDeath != nil {
		d := models.DateOf(*a.DateOfDeath)
		a.DateOfDeath = &d
	}
	if a.DateOfBirth != nil && a.DateOfDeath != nil && a.DateOfDeath.Before(*a.DateOfBirth) {
		return invalidf("date of death precedes date of birth")
	}
	return nil
}

func (s *authorService) Create(ctx context.Context, viewer Viewer, a *models.Author) error {
	if !viewer.IsAuthenticated() {
		return ErrAuthenticationRequired
	}
	if err := validateAuthor(a); err != nil {
		return err
	}
	if err := s.authors.Create(ctx, a); err != nil {
		return translate(err)
	}
	invalidateSummary(ctx, s.cache, s.logger)
	return nil
}

func (s *authorService) Update(ctx context.Context, viewer Viewer, a *models.Author) error {
	if !viewer.IsAuthenticated() {
		return ErrAuthenticationRequired
	}
	if err := validateAuthor(a); err != nil {
		return err
	}
	return translate(s.authors.Update(ctx, a))
}

// Delete removes the author; their books stay in the catalog without one.
func (s *authorService) Delete(ctx context.Context, viewer Viewer, id int64) error {
	if !viewer.IsAuthenticated() {
		return ErrAuthenticationRequired
	}
	if err := s.authors.Delete(ctx, id); err != nil {
		return translate(err)
	}
	invalidateSummary(ctx, s.cache, s.logger)
	s.logger.Info("author_deleted", "author_id", id, "user_id", viewer.UserID)
	return nil
}
