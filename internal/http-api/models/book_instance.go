package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoanStatus is stored as a single-letter code.
type LoanStatus string

const (
	StatusMaintenance LoanStatus = "m"
	StatusOnLoan      LoanStatus = "o"
	StatusAvailable   LoanStatus = "a"
	StatusReserved    LoanStatus = "r"
)

var loanStatusLabels = map[LoanStatus]string{
	StatusMaintenance: "Maintenance",
	StatusOnLoan:      "On loan",
	StatusAvailable:   "Available",
	StatusReserved:    "Reserved",
}

func (s LoanStatus) Valid() bool {
	_, ok := loanStatusLabels[s]
	return ok
}

func (s LoanStatus) Label() string {
	return loanStatusLabels[s]
}

// ParseLoanStatus accepts either the stored code ("o") or the label in any
// case, with spaces, underscores or nothing between words ("on loan", "ON_LOAN", "onloan").
func ParseLoanStatus(v string) (LoanStatus, error) {
	norm := strings.ToLower(strings.TrimSpace(v))
	if s := LoanStatus(norm); s.Valid() {
		return s, nil
	}
	norm = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(norm)
	for s, label := range loanStatusLabels {
		if strings.ReplaceAll(strings.ToLower(label), " ", "") == norm {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown loan status %q", v)
}

// BookInstance is one rentable copy of a Book.
type BookInstance struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid"`
	BookID     int64      `json:"book_id" gorm:"not null;index"`
	Book       *Book      `json:"book,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT;"`
	Imprint    string     `json:"imprint" gorm:"size:200;not null"`
	DueBack    *time.Time `json:"due_back,omitempty" gorm:"type:date;index"`
	BorrowerID *string    `json:"borrower_id,omitempty" gorm:"type:uuid;index"`
	Borrower   *User      `json:"-" gorm:"foreignKey:BorrowerID;constraint:OnDelete:SET NULL;"`
	Status     LoanStatus `json:"status" gorm:"size:1;not null;default:'m';index"`
}

func (BookInstance) TableName() string {
	return "book_instances"
}

// BeforeCreate assigns a random identifier and the maintenance status when unset.
func (bi *BookInstance) BeforeCreate(tx *gorm.DB) (err error) {
	if bi.ID == "" {
		bi.ID = uuid.New().String()
	}
	if bi.Status == "" {
		bi.Status = StatusMaintenance
	}
	return
}

// IsOverdue reports whether the copy was due strictly before today.
// A copy without a due date is never overdue.
func (bi BookInstance) IsOverdue(today time.Time) bool {
	if bi.DueBack == nil {
		return false
	}
	return DateOf(*bi.DueBack).Before(DateOf(today))
}
