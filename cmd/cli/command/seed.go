package command

import (
	"context"
	"fmt"
	"io"
	"time"

	"locallibrary/database"
	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"

	"github.com/spf13/cobra"
)

var seedBorrower string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a small sample catalog",
	Long: `Load a handful of genres, languages, authors, books and copies. With --borrower,
the copies marked on loan are lent to that user so "my loans" has something to show.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		s := catalogSeeder{
			genres:    repository.NewGenreRepository(db),
			languages: repository.NewLanguageRepository(db),
			authors:   repository.NewAuthorRepository(db),
			books:     repository.NewBookRepository(db),
			instances: repository.NewBookInstanceRepository(db),
			out:       cmd.OutOrStdout(),
		}
		if seedBorrower != "" {
			user, err := lookupUser(cmd.Context(), repository.NewUserRepository(db), seedBorrower)
			if err != nil {
				return err
			}
			s.borrowerID = &user.ID
		}
		return s.run(cmd.Context(), models.DateOf(time.Now()))
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedBorrower, "borrower", "", "username to lend the on-loan copies to")
	rootCmd.AddCommand(seedCmd)
}

type seedBook struct {
	title, isbn, summary string
	author               int // index into seedAuthors
	genres               []int
	copies               []seedCopy
}

type seedCopy struct {
	imprint string
	status  models.LoanStatus
	dueIn   int // days from today, only for on-loan copies
}

var (
	seedGenres    = []string{"Fantasy", "Science Fiction", "French Poetry"}
	seedLanguages = []string{"English", "French"}
	seedAuthors   = []models.Author{
		{FirstName: "Patrick", LastName: "Rothfuss"},
		{FirstName: "Ben", LastName: "Bova"},
		{FirstName: "Isaac", LastName: "Asimov"},
	}
	seedBooks = []seedBook{
		{
			title: "The Name of the Wind", isbn: "9781473211896", author: 0, genres: []int{0},
			summary: "I have stolen princesses back from sleeping barrow kings.",
			copies: []seedCopy{
				{imprint: "London Gollancz, 2014.", status: models.StatusAvailable},
				{imprint: "Gollancz, 2011.", status: models.StatusOnLoan, dueIn: 5},
			},
		},
		{
			title: "The Wise Man's Fear", isbn: "9788401352836", author: 0, genres: []int{0},
			summary: "Picking up the tale of Kvothe Kingkiller once again.",
			copies: []seedCopy{
				{imprint: "Gollancz, 2011.", status: models.StatusMaintenance},
			},
		},
		{
			title: "Apes and Angels", isbn: "9780765379528", author: 1, genres: []int{1},
			summary: "Humankind headed out to the stars not for conquest, nor exploration, nor even for curiosity.",
			copies: []seedCopy{
				{imprint: "New York Tom Doherty Associates, 2016.", status: models.StatusOnLoan, dueIn: -2},
				{imprint: "New York Tom Doherty Associates, 2016.", status: models.StatusReserved},
			},
		},
		{
			title: "Test Book 1", isbn: "ISBN111111", author: 2, genres: []int{1, 2},
			summary: "Summary of test book 1",
			copies: []seedCopy{
				{imprint: "Imprint XXX2", status: models.StatusOnLoan, dueIn: 14},
			},
		},
	}
)

type catalogSeeder struct {
	genres     repository.GenreRepository
	languages  repository.LanguageRepository
	authors    repository.AuthorRepository
	books      repository.BookRepository
	instances  repository.BookInstanceRepository
	borrowerID *string
	out        io.Writer
}

func (s catalogSeeder) run(ctx context.Context, today time.Time) error {
	genreIDs := make([]int64, len(seedGenres))
	for i, name := range seedGenres {
		g := &models.Genre{Name: name}
		if err := s.genres.Create(ctx, g); err != nil {
			return fmt.Errorf("seed genre %q: %w", name, err)
		}
		genreIDs[i] = g.ID
	}

	var english *int64
	for i, name := range seedLanguages {
		l := &models.Language{Name: name}
		if err := s.languages.Create(ctx, l); err != nil {
			return fmt.Errorf("seed language %q: %w", name, err)
		}
		if i == 0 {
			english = &l.ID
		}
	}

	authorIDs := make([]int64, len(seedAuthors))
	for i := range seedAuthors {
		a := seedAuthors[i]
		if err := s.authors.Create(ctx, &a); err != nil {
			return fmt.Errorf("seed author %q: %w", a.DisplayName(), err)
		}
		authorIDs[i] = a.ID
	}

	copies := 0
	for _, sb := range seedBooks {
		authorID := authorIDs[sb.author]
		b := &models.Book{Title: sb.title, ISBN: sb.isbn, Summary: sb.summary, AuthorID: &authorID, LanguageID: english}
		ids := make([]int64, 0, len(sb.genres))
		for _, g := range sb.genres {
			ids = append(ids, genreIDs[g])
		}
		if err := s.books.Create(ctx, b, ids); err != nil {
			return fmt.Errorf("seed book %q: %w", sb.title, err)
		}

		for _, sc := range sb.copies {
			bi := &models.BookInstance{BookID: b.ID, Imprint: sc.imprint, Status: sc.status}
			if sc.status == models.StatusOnLoan {
				due := today.AddDate(0, 0, sc.dueIn)
				bi.DueBack = &due
				bi.BorrowerID = s.borrowerID
			}
			if err := s.instances.Create(ctx, bi); err != nil {
				return fmt.Errorf("seed copy of %q: %w", sb.title, err)
			}
			copies++
		}
	}

	done(s.out, "Seeded %d genres, %d languages, %d authors, %d books, %d copies",
		len(seedGenres), len(seedLanguages), len(seedAuthors), len(seedBooks), copies)
	return nil
}
