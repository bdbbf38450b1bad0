package dto

import (
	"testing"
	"time"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func TestCopyRequest_Input(t *testing.T) {
	in, err := CopyRequest{BookID: 1, Imprint: "x", Status: "On loan", DueBack: strPtr("2024-04-01")}.Input()
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnLoan, in.Status)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), *in.DueBack)

	in, err = CopyRequest{BookID: 1, Imprint: "x"}.Input()
	require.NoError(t, err)
	assert.Empty(t, in.Status)
	assert.Nil(t, in.DueBack)

	_, err = CopyRequest{BookID: 1, Imprint: "x", Status: "lost"}.Input()
	assert.Error(t, err)
}

func TestFromCopy(t *testing.T) {
	due := today.AddDate(0, 0, -1)
	borrower := "patron-1"
	bi := models.BookInstance{
		ID:         "c1",
		BookID:     3,
		Book:       &models.Book{ID: 3, Title: "Emma"},
		DueBack:    &due,
		BorrowerID: &borrower,
		Status:     models.StatusOnLoan,
	}

	t.Run("Owner", func(t *testing.T) {
		resp := FromCopy(bi, service.NewViewer("patron-1", nil, today))
		assert.True(t, resp.IsOverdue)
		assert.Equal(t, "2024-03-14", *resp.DueBack)
		assert.Equal(t, "On loan", resp.StatusLabel)
		assert.Equal(t, "Emma", resp.BookTitle)
		assert.Equal(t, &borrower, resp.BorrowerID)
	})

	t.Run("Stranger", func(t *testing.T) {
		resp := FromCopy(bi, service.NewViewer("someone-else", nil, today))
		assert.Nil(t, resp.BorrowerID)
	})

	t.Run("Librarian", func(t *testing.T) {
		resp := FromCopy(bi, service.NewViewer("staff", []string{models.PermCanMarkReturned}, today))
		assert.NotNil(t, resp.BorrowerID)
	})

	t.Run("OverdueFollowsViewerDate", func(t *testing.T) {
		resp := FromCopy(bi, service.Anonymous(due))
		assert.False(t, resp.IsOverdue)
		assert.Nil(t, resp.BorrowerID)
	})
}

func TestAuthorRequest_Model(t *testing.T) {
	a, err := AuthorRequest{FirstName: "Jane", LastName: "Austen", DateOfBirth: strPtr("1775-12-16")}.Model(4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), a.ID)
	assert.Equal(t, 1775, a.DateOfBirth.Year())
	assert.Nil(t, a.DateOfDeath)

	_, err = AuthorRequest{FirstName: "Jane", LastName: "Austen", DateOfDeath: strPtr("18/07/1817")}.Model(0)
	assert.Error(t, err)
}

func TestFromBook(t *testing.T) {
	b := models.Book{
		ID:     1,
		Title:  "Dune",
		Author: &models.Author{ID: 2, LastName: "Herbert", FirstName: "Frank"},
		Genres: []models.Genre{{ID: 1, Name: "SF"}, {ID: 2, Name: "Adventure"}},
	}
	resp := FromBook(b)

	assert.Equal(t, "Herbert, Frank", resp.Author.Name)
	assert.Nil(t, resp.Language)
	assert.Equal(t, "SF, Adventure", resp.Genre)
	assert.Len(t, resp.Genres, 2)
}

func TestMapPage(t *testing.T) {
	p := &service.Page[models.Genre]{Items: []models.Genre{{ID: 1, Name: "SF"}}, Page: 2, PageSize: 10, Total: 11, TotalPages: 2}
	resp := MapPage(p, FromGenre)

	assert.Equal(t, []NamedItem{{ID: 1, Name: "SF"}}, resp.Items)
	assert.Equal(t, int64(2), resp.TotalPages)
}
