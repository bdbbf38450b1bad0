package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"
)

// BookDetail is a book with every copy of it.
type BookDetail struct {
	Book      *models.Book
	Instances []models.BookInstance
}

// BookInput is a full book record as submitted for create or replace.
type BookInput struct {
	Title      string
	AuthorID   *int64
	Summary    string
	ISBN       string
	LanguageID *int64
	GenreIDs   []int64
}

type BookService interface {
	List(ctx context.Context, page int) (*Page[models.Book], error)
	Get(ctx context.Context, id int64) (*BookDetail, error)
	Create(ctx context.Context, viewer Viewer, in BookInput) (*models.Book, error)
	Update(ctx context.Context, viewer Viewer, id int64, in BookInput) (*models.Book, error)
	Delete(ctx context.Context, viewer Viewer, id int64) error
}

type bookService struct {
	books     repository.BookRepository
	instances repository.BookInstanceRepository
	authors   repository.AuthorRepository
	genres    repository.GenreRepository
	languages repository.LanguageRepository
	cache     SummaryCache
	logger    *slog.Logger
}

func NewBookService(
	books repository.BookRepository,
	instances repository.BookInstanceRepository,
	authors repository.AuthorRepository,
	genres repository.GenreRepository,
	languages repository.LanguageRepository,
	cache SummaryCache,
	logger *slog.Logger,
) BookService {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookService{
		books:     books,
		instances: instances,
		authors:   authors,
		genres:    genres,
		languages: languages,
		cache:     cache,
		logger:    logger,
	}
}

func (s *bookService) List(ctx context.Context, page int) (*Page[models.Book], error) {
	req := pageRequest(page, DefaultPageSize)
	list, total, err := s.books.GetAll(ctx, req)
	if err != nil {
		return nil, err
	}
	return newPage(list, req, total), nil
}

func (s *bookService) Get(ctx context.Context, id int64) (*BookDetail, error) {
	b, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	copies, err := s.instances.FindByBook(ctx, id)
	if err != nil {
		return nil, err
	}
	if copies == nil {
		copies = []models.BookInstance{}
	}
	return &BookDetail{Book: b, Instances: copies}, nil
}

// check validates field values and that every referenced row exists.
func (s *bookService) check(ctx context.Context, in *BookInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.ISBN = strings.TrimSpace(in.ISBN)

	if in.Title == "" {
		return invalidf("title is required")
	}
	if in.ISBN == "" || len(in.ISBN) > models.MaxISBNLength {
		return invalidf("isbn must be 1 to %d characters", models.MaxISBNLength)
	}

	if in.AuthorID != nil {
		if _, err := s.authors.GetByID(ctx, *in.AuthorID); err != nil {
			if errors.Is(translate(err), ErrNotFound) {
				return invalidf("author %d does not exist", *in.AuthorID)
			}
			return err
		}
	}
	if in.LanguageID != nil {
		if _, err := s.languages.GetByID(ctx, *in.LanguageID); err != nil {
			if errors.Is(translate(err), ErrNotFound) {
				return invalidf("language %d does not exist", *in.LanguageID)
			}
			return err
		}
	}

	in.GenreIDs = uniqueIDs(in.GenreIDs)
	if len(in.GenreIDs) > 0 {
		n, err := s.genres.CountExisting(ctx, in.GenreIDs)
		if err != nil {
			return err
		}
		if n != int64(len(in.GenreIDs)) {
			return invalidf("one or more genres do not exist")
		}
	}
	return nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (in BookInput) book(id int64) *models.Book {
	return &models.Book{
		ID:         id,
		Title:      in.Title,
		AuthorID:   in.AuthorID,
		Summary:    in.Summary,
		ISBN:       in.ISBN,
		LanguageID: in.LanguageID,
	}
}

func (s *bookService) Create(ctx context.Context, viewer Viewer, in BookInput) (*models.Book, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	if err := s.check(ctx, &in); err != nil {
		return nil, err
	}

	b := in.book(0)
	if err := s.books.Create(ctx, b, in.GenreIDs); err != nil {
		return nil, translate(err)
	}
	invalidateSummary(ctx, s.cache, s.logger)
	return s.reload(ctx, b.ID)
}

// Update replaces every field of the book including its genre set.
func (s *bookService) Update(ctx context.Context, viewer Viewer, id int64, in BookInput) (*models.Book, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	if err := s.check(ctx, &in); err != nil {
		return nil, err
	}

	if err := s.books.Update(ctx, in.book(id), in.GenreIDs); err != nil {
		return nil, translate(err)
	}
	return s.reload(ctx, id)
}

func (s *bookService) reload(ctx context.Context, id int64) (*models.Book, error) {
	b, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return b, nil
}

// Delete refuses while any copy of the book exists.
func (s *bookService) Delete(ctx context.Context, viewer Viewer, id int64) error {
	if !viewer.IsAuthenticated() {
		return ErrAuthenticationRequired
	}
	if err := s.books.DeleteIfUnreferenced(ctx, id); err != nil {
		return translate(err)
	}
	invalidateSummary(ctx, s.cache, s.logger)
	s.logger.Info("book_deleted", "book_id", id, "user_id", viewer.UserID)
	return nil
}
