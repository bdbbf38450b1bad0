package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"

	"gorm.io/gorm"
)

const (
	// DefaultRenewalDays pre-fills the renewal prompt.
	DefaultRenewalDays = 21
	// MaxRenewalDays is the inclusive upper bound of the renewal window.
	MaxRenewalDays = 28
)

// DefaultProposal is the suggested new due date: three weeks from today.
func DefaultProposal(today time.Time) time.Time {
	return models.DateOf(today).AddDate(0, 0, DefaultRenewalDays)
}

// RenewalWindow returns the inclusive range of acceptable due dates.
func RenewalWindow(today time.Time) (earliest, latest time.Time) {
	earliest = models.DateOf(today)
	return earliest, earliest.AddDate(0, 0, MaxRenewalDays)
}

// ValidateRenewal accepts any candidate within [today, today+28 days].
// It returns a *RenewalRejectedError otherwise.
func ValidateRenewal(candidate, today time.Time) error {
	day := models.DateOf(candidate)
	earliest, latest := RenewalWindow(today)

	if day.Before(earliest) {
		return &RenewalRejectedError{Reason: ReasonInPast, Candidate: day}
	}
	if day.After(latest) {
		return &RenewalRejectedError{Reason: ReasonBeyondMaxExtension, Candidate: day}
	}
	return nil
}

// RenewalProposal is what a librarian sees before submitting a renewal.
type RenewalProposal struct {
	Instance *models.BookInstance
	Proposed time.Time
	Earliest time.Time
	Latest   time.Time
}

type RenewalService interface {
	Propose(ctx context.Context, instanceID string, viewer Viewer) (*RenewalProposal, error)
	Renew(ctx context.Context, instanceID string, candidate time.Time, viewer Viewer) (*models.BookInstance, error)
}

type renewalService struct {
	instances repository.BookInstanceRepository
	logger    *slog.Logger
}

func NewRenewalService(instances repository.BookInstanceRepository, logger *slog.Logger) RenewalService {
	if logger == nil {
		logger = slog.Default()
	}
	return &renewalService{instances: instances, logger: logger}
}

func (s *renewalService) lookup(ctx context.Context, instanceID string, viewer Viewer) (*models.BookInstance, error) {
	bi, err := s.instances.FindByID(ctx, instanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// any holder may renew any copy, not only their own loans
	if err := viewer.require(models.PermCanMarkReturned); err != nil {
		return nil, err
	}
	return bi, nil
}

func (s *renewalService) Propose(ctx context.Context, instanceID string, viewer Viewer) (*RenewalProposal, error) {
	bi, err := s.lookup(ctx, instanceID, viewer)
	if err != nil {
		return nil, err
	}
	earliest, latest := RenewalWindow(viewer.Today)
	return &RenewalProposal{
		Instance: bi,
		Proposed: DefaultProposal(viewer.Today),
		Earliest: earliest,
		Latest:   latest,
	}, nil
}

// Renew moves the due date of a copy. Steps run in a fixed order: existence,
// capability, date window, then a single transactional write.
func (s *renewalService) Renew(ctx context.Context, instanceID string, candidate time.Time, viewer Viewer) (*models.BookInstance, error) {
	if _, err := s.lookup(ctx, instanceID, viewer); err != nil {
		return nil, err
	}

	if err := ValidateRenewal(candidate, viewer.Today); err != nil {
		s.logger.Warn("renewal_rejected",
			"instance_id", instanceID,
			"user_id", viewer.UserID,
			"candidate", candidate.Format(time.DateOnly),
			"error", err.Error(),
		)
		return nil, err
	}

	updated, err := s.instances.UpdateDueBack(ctx, instanceID, models.DateOf(candidate))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// deleted between lookup and commit
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("commit renewal: %w", err)
	}

	s.logger.Info("renewal_committed",
		"instance_id", instanceID,
		"user_id", viewer.UserID,
		"due_back", updated.DueBack.Format(time.DateOnly),
	)
	return updated, nil
}
