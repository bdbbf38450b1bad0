package service

import (
	"errors"
	"fmt"
	"time"

	"locallibrary/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("forbidden")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrReferentialIntegrity   = errors.New("record is still referenced")
	ErrConflict               = errors.New("conflicting record")
	ErrInvalidInput           = errors.New("invalid input")
	ErrRenewalRejected        = errors.New("renewal rejected")
)

// Renewal rejection reasons.
const (
	ReasonInPast             = "in the past"
	ReasonBeyondMaxExtension = "beyond maximum extension"
)

// RenewalRejectedError carries why a proposed due date was refused.
// errors.Is(err, ErrRenewalRejected) holds for every instance.
type RenewalRejectedError struct {
	Reason    string
	Candidate time.Time
}

func (e *RenewalRejectedError) Error() string {
	return fmt.Sprintf("renewal rejected: %s (%s)", e.Reason, e.Candidate.Format(time.DateOnly))
}

func (e *RenewalRejectedError) Is(target error) bool {
	return target == ErrRenewalRejected
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// translate maps storage-level errors onto the service taxonomy and
// passes anything else through unchanged.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrBookReferenced):
		return fmt.Errorf("%w: %v", ErrReferentialIntegrity, err)
	case errors.Is(err, repository.ErrDuplicateISBN):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, repository.ErrUnknownReference):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return err
	}
}
