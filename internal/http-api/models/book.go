package models

import "strings"

const MaxISBNLength = 13

type Book struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title      string    `json:"title" gorm:"size:200;not null;index"`
	AuthorID   *int64    `json:"author_id,omitempty" gorm:"index"`
	Author     *Author   `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL;"`
	Summary    string    `json:"summary" gorm:"type:text;not null;default:''"`
	ISBN       string    `json:"isbn" gorm:"column:isbn;size:13;uniqueIndex;not null"`
	LanguageID *int64    `json:"language_id,omitempty" gorm:"index"`
	Language   *Language `json:"language,omitempty" gorm:"foreignKey:LanguageID;constraint:OnDelete:SET NULL;"`

	// association
	Genres []Genre `json:"genres,omitempty" gorm:"many2many:book_genres;constraint:OnDelete:CASCADE;"`
}

func (Book) TableName() string {
	return "books"
}

// DisplayGenre joins the names of the first three genres.
func (b Book) DisplayGenre() string {
	names := make([]string, 0, 3)
	for i, g := range b.Genres {
		if i == 3 {
			break
		}
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}
