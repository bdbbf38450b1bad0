package dto

import (
	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/service"
)

// AuthorRequest is used for POST and PUT /api/v1/authors.
type AuthorRequest struct {
	FirstName   string  `json:"first_name" binding:"required,max=100"`
	LastName    string  `json:"last_name" binding:"required,max=100"`
	MiddleName  string  `json:"middle_name" binding:"max=100"`
	DateOfBirth *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	DateOfDeath *string `json:"date_of_death" binding:"omitempty,datetime=2006-01-02"`
}

func (r AuthorRequest) Model(id int64) (*models.Author, error) {
	born, err := parseOptionalDate(r.DateOfBirth)
	if err != nil {
		return nil, err
	}
	died, err := parseOptionalDate(r.DateOfDeath)
	if err != nil {
		return nil, err
	}
	return &models.Author{
		ID:          id,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		MiddleName:  r.MiddleName,
		DateOfBirth: born,
		DateOfDeath: died,
	}, nil
}

type AuthorResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	MiddleName  string  `json:"middle_name,omitempty"`
	DateOfBirth *string `json:"date_of_birth"`
	DateOfDeath *string `json:"date_of_death"`
}

func FromAuthor(a models.Author) AuthorResponse {
	return AuthorResponse{
		ID:          a.ID,
		Name:        a.DisplayName(),
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		MiddleName:  a.MiddleName,
		DateOfBirth: formatDate(a.DateOfBirth),
		DateOfDeath: formatDate(a.DateOfDeath),
	}
}

type AuthorDetailResponse struct {
	AuthorResponse
	Books []BookResponse `json:"books"`
}

func FromAuthorDetail(d *service.AuthorDetail) AuthorDetailResponse {
	books := make([]BookResponse, 0, len(d.Books))
	for _, b := range d.Books {
		books = append(books, FromBook(b))
	}
	return AuthorDetailResponse{AuthorResponse: FromAuthor(*d.Author), Books: books}
}

// BookRequest is used for POST and PUT /api/v1/books.
type BookRequest struct {
	Title      string  `json:"title" binding:"required,max=200"`
	AuthorID   *int64  `json:"author_id" binding:"omitempty,min=1"`
	Summary    string  `json:"summary" binding:"max=1000"`
	ISBN       string  `json:"isbn" binding:"required,max=13"`
	LanguageID *int64  `json:"language_id" binding:"omitempty,min=1"`
	GenreIDs   []int64 `json:"genre_ids"`
}

func (r BookRequest) Input() service.BookInput {
	return service.BookInput{
		Title:      r.Title,
		AuthorID:   r.AuthorID,
		Summary:    r.Summary,
		ISBN:       r.ISBN,
		LanguageID: r.LanguageID,
		GenreIDs:   r.GenreIDs,
	}
}

type BookResponse struct {
	ID       int64          `json:"id"`
	Title    string         `json:"title"`
	Summary  string         `json:"summary"`
	ISBN     string         `json:"isbn"`
	Author   *AuthorSummary `json:"author"`
	Language *NamedItem     `json:"language"`
	Genres   []NamedItem    `json:"genres"`
	Genre    string         `json:"display_genre"`
}

// AuthorSummary is the short form of an author embedded in book payloads.
type AuthorSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type NamedItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromBook(b models.Book) BookResponse {
	resp := BookResponse{
		ID:      b.ID,
		Title:   b.Title,
		Summary: b.Summary,
		ISBN:    b.ISBN,
		Genres:  make([]NamedItem, 0, len(b.Genres)),
		Genre:   b.DisplayGenre(),
	}
	if b.Author != nil {
		resp.Author = &AuthorSummary{ID: b.Author.ID, Name: b.Author.DisplayName()}
	}
	if b.Language != nil {
		resp.Language = &NamedItem{ID: b.Language.ID, Name: b.Language.Name}
	}
	for _, g := range b.Genres {
		resp.Genres = append(resp.Genres, NamedItem{ID: g.ID, Name: g.Name})
	}
	return resp
}

type BookDetailResponse struct {
	BookResponse
	Copies []CopyResponse `json:"copies"`
}

// FromBookDetail renders a book with its copies; overdue flags are computed against today.
func FromBookDetail(d *service.BookDetail, viewer service.Viewer) BookDetailResponse {
	copies := make([]CopyResponse, 0, len(d.Instances))
	for _, bi := range d.Instances {
		copies = append(copies, FromCopy(bi, viewer))
	}
	return BookDetailResponse{BookResponse: FromBook(*d.Book), Copies: copies}
}

// NameRequest creates a genre or language.
type NameRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

func FromGenre(g models.Genre) NamedItem { return NamedItem{ID: g.ID, Name: g.Name} }

func FromLanguage(l models.Language) NamedItem { return NamedItem{ID: l.ID, Name: l.Name} }

type SearchResponse struct {
	Query   string           `json:"q"`
	Books   []BookResponse   `json:"books"`
	Authors []AuthorResponse `json:"authors"`
}

func FromSearch(r *service.SearchResult) SearchResponse {
	resp := SearchResponse{
		Query:   r.Term,
		Books:   make([]BookResponse, 0, len(r.Books)),
		Authors: make([]AuthorResponse, 0, len(r.Authors)),
	}
	for _, b := range r.Books {
		resp.Books = append(resp.Books, FromBook(b))
	}
	for _, a := range r.Authors {
		resp.Authors = append(resp.Authors, FromAuthor(a))
	}
	return resp
}
