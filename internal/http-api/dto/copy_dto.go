package dto

import (
	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/service"
)

// CopyRequest is used for POST and PUT /api/v1/copies.
// Status accepts the stored code ("o") or the label ("On loan").
type CopyRequest struct {
	BookID     int64   `json:"book_id" binding:"required,min=1"`
	Imprint    string  `json:"imprint" binding:"required,max=200"`
	DueBack    *string `json:"due_back" binding:"omitempty,datetime=2006-01-02"`
	BorrowerID *string `json:"borrower_id" binding:"omitempty,uuid"`
	Status     string  `json:"status"`
}

func (r CopyRequest) Input() (service.CopyInput, error) {
	due, err := parseOptionalDate(r.DueBack)
	if err != nil {
		return service.CopyInput{}, err
	}

	var status models.LoanStatus
	if r.Status != "" {
		if status, err = models.ParseLoanStatus(r.Status); err != nil {
			return service.CopyInput{}, err
		}
	}

	return service.CopyInput{
		BookID:     r.BookID,
		Imprint:    r.Imprint,
		DueBack:    due,
		BorrowerID: r.BorrowerID,
		Status:     status,
	}, nil
}

type CopyResponse struct {
	ID          string  `json:"id"`
	BookID      int64   `json:"book_id"`
	BookTitle   string  `json:"book_title,omitempty"`
	Imprint     string  `json:"imprint"`
	DueBack     *string `json:"due_back"`
	BorrowerID  *string `json:"borrower_id,omitempty"`
	Status      string  `json:"status"`
	StatusLabel string  `json:"status_label"`
	IsOverdue   bool    `json:"is_overdue"`
}

// FromCopy renders a copy. Borrowers are only disclosed to themselves and
// to viewers holding the staff capability.
func FromCopy(bi models.BookInstance, viewer service.Viewer) CopyResponse {
	resp := CopyResponse{
		ID:          bi.ID,
		BookID:      bi.BookID,
		Imprint:     bi.Imprint,
		DueBack:     formatDate(bi.DueBack),
		Status:      string(bi.Status),
		StatusLabel: bi.Status.Label(),
		IsOverdue:   bi.IsOverdue(viewer.Today),
	}
	if bi.Book != nil {
		resp.BookTitle = bi.Book.Title
	}
	if bi.BorrowerID != nil && viewer.IsAuthenticated() &&
		(*bi.BorrowerID == viewer.UserID || viewer.Has(models.PermCanMarkReturned)) {
		resp.BorrowerID = bi.BorrowerID
	}
	return resp
}
