package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"
)

// CopyInput is a full copy record as submitted for create or replace.
type CopyInput struct {
	BookID     int64
	Imprint    string
	DueBack    *time.Time
	BorrowerID *string
	Status     models.LoanStatus
}

type CopyService interface {
	List(ctx context.Context, viewer Viewer, page int) (*Page[models.BookInstance], error)
	Get(ctx context.Context, viewer Viewer, id string) (*models.BookInstance, error)
	Create(ctx context.Context, viewer Viewer, in CopyInput) (*models.BookInstance, error)
	Update(ctx context.Context, viewer Viewer, id string, in CopyInput) (*models.BookInstance, error)
	Delete(ctx context.Context, viewer Viewer, id string) error
}

type copyService struct {
	instances repository.BookInstanceRepository
	books     repository.BookRepository
	cache     SummaryCache
	logger    *slog.Logger
}

func NewCopyService(instances repository.BookInstanceRepository, books repository.BookRepository, cache SummaryCache, logger *slog.Logger) CopyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &copyService{instances: instances, books: books, cache: cache, logger: logger}
}

func (s *copyService) List(ctx context.Context, viewer Viewer, page int) (*Page[models.BookInstance], error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	req := pageRequest(page, DefaultPageSize)
	list, total, err := s.instances.GetAll(ctx, req)
	if err != nil {
		return nil, err
	}
	return newPage(list, req, total), nil
}

func (s *copyService) Get(ctx context.Context, viewer Viewer, id string) (*models.BookInstance, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	bi, err := s.instances.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return bi, nil
}

func (s *copyService) check(ctx context.Context, in *CopyInput) error {
	in.Imprint = strings.TrimSpace(in.Imprint)
	if in.Imprint == "" {
		return invalidf("imprint is required")
	}
	if in.Status == "" {
		in.Status = models.StatusMaintenance
	}
	if !in.Status.Valid() {
		return invalidf("unknown status %q", string(in.Status))
	}
	if in.DueBack != nil {
		d := models.DateOf(*in.DueBack)
		in.DueBack = &d
	}
	if in.BorrowerID != nil && *in.BorrowerID == "" {
		in.BorrowerID = nil
	}

	if _, err := s.books.GetByID(ctx, in.BookID); err != nil {
		if errors.Is(translate(err), ErrNotFound) {
			return invalidf("book %d does not exist", in.BookID)
		}
		return err
	}
	return nil
}

func (in CopyInput) instance(id string) *models.BookInstance {
	return &models.BookInstance{
		ID:         id,
		BookID:     in.BookID,
		Imprint:    in.Imprint,
		DueBack:    in.DueBack,
		BorrowerID: in.BorrowerID,
		Status:     in.Status,
	}
}

func (s *copyService) Create(ctx context.Context, viewer Viewer, in CopyInput) (*models.BookInstance, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	if err := s.check(ctx, &in); err != nil {
		return nil, err
	}

	bi := in.instance("")
	if err := s.instances.Create(ctx, bi); err != nil {
		return nil, translate(err)
	}
	invalidateSummary(ctx, s.cache, s.logger)
	return s.reload(ctx, bi.ID)
}

// Update replaces every field of the copy. Lending a copy out is done here
// by setting the status, borrower and due date together.
func (s *copyService) Update(ctx context.Context, viewer Viewer, id string, in CopyInput) (*models.BookInstance, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	if err := s.check(ctx, &in); err != nil {
		return nil, err
	}

	if err := s.instances.Update(ctx, in.instance(id)); err != nil {
		return nil, translate(err)
	}
	invalidateSummary(ctx, s.cache, s.logger)
	return s.reload(ctx, id)
}

func (s *copyService) reload(ctx context.Context, id string) (*models.BookInstance, error) {
	bi, err := s.instances.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return bi, nil
}

func (s *copyService) Delete(ctx context.Context, viewer Viewer, id string) error {
	if !viewer.IsAuthenticated() {
		return ErrAuthenticationRequired
	}
	if err := s.instances.Delete(ctx, id); err != nil {
		return translate(err)
	}
	invalidateSummary(ctx, s.cache, s.logger)
	s.logger.Info("copy_deleted", "instance_id", id, "user_id", viewer.UserID)
	return nil
}
