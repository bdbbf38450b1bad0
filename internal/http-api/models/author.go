package models

import (
	"fmt"
	"time"
)

type Author struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	LastName    string     `json:"last_name" gorm:"size:100;not null;index:idx_authors_display,priority:1"`
	FirstName   string     `json:"first_name" gorm:"size:100;not null;index:idx_authors_display,priority:2"`
	MiddleName  string     `json:"middle_name" gorm:"size:100;not null;default:'';index:idx_authors_display,priority:3"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" gorm:"type:date"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty" gorm:"type:date"`
}

func (Author) TableName() string {
	return "authors"
}

// DisplayName renders "Last, First" or "Last, First Middle." when a middle name is set.
func (a Author) DisplayName() string {
	if a.MiddleName != "" {
		return fmt.Sprintf("%s, %s %s.", a.LastName, a.FirstName, a.MiddleName)
	}
	return fmt.Sprintf("%s, %s", a.LastName, a.FirstName)
}
