package service

import (
	"context"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"
)

// LoanPageSize is the fixed number of copies per loan listing page.
const LoanPageSize = 10

type LoanService interface {
	// MyLoans lists the viewer's own copies on loan, soonest due first.
	MyLoans(ctx context.Context, viewer Viewer, page int) (*Page[models.BookInstance], error)
	// AllLoans lists every copy on loan; it needs PermCanMarkReturned.
	AllLoans(ctx context.Context, viewer Viewer, page int) (*Page[models.BookInstance], error)
}

type loanService struct {
	instances repository.BookInstanceRepository
}

func NewLoanService(instances repository.BookInstanceRepository) LoanService {
	return &loanService{instances: instances}
}

func (s *loanService) MyLoans(ctx context.Context, viewer Viewer, page int) (*Page[models.BookInstance], error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}

	req := pageRequest(page, LoanPageSize)
	list, total, err := s.instances.FindByBorrower(ctx, viewer.UserID, models.StatusOnLoan, req)
	if err != nil {
		return nil, err
	}
	return newPage(list, req, total), nil
}

func (s *loanService) AllLoans(ctx context.Context, viewer Viewer, page int) (*Page[models.BookInstance], error) {
	if err := viewer.require(models.PermCanMarkReturned); err != nil {
		return nil, err
	}

	req := pageRequest(page, LoanPageSize)
	list, total, err := s.instances.FindByStatus(ctx, models.StatusOnLoan, req)
	if err != nil {
		return nil, err
	}
	return newPage(list, req, total), nil
}
