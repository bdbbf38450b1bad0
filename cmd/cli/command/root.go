package command

// root.go defines the root command for the librarian admin CLI and the
// database handle its subcommands share.

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"locallibrary/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	databaseURL string // overrides DATABASE_URL
	verbose     bool   // log SQL statements
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "librarian",
	Short: "librarian - Local Library administration",
	Long: `librarian maintains the Local Library catalog database directly. Use it to:
- Create or update the schema
- Grant or revoke the staff permission that allows renewing any loan
- Load a small sample catalog
- Remove expired refresh tokens

Use "librarian command --help" to see all available commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var success = color.New(color.FgGreen)

// done prints a green check line; color is dropped when out is not a terminal.
func done(out io.Writer, format string, a ...any) {
	success.Fprintf(out, "✓ "+format+"\n", a...)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "postgres DSN (default $DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log SQL statements")
}

func logger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveDSN prefers the flag, then DATABASE_URL from the environment or .env.
func resolveDSN() (string, error) {
	if databaseURL != "" {
		return databaseURL, nil
	}
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("load .env: %w", err)
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "", errors.New("no database configured: pass --database-url or set DATABASE_URL")
	}
	return dsn, nil
}

// openDB connects to the catalog database; callers close it with database.Close.
func openDB() (*gorm.DB, error) {
	dsn, err := resolveDSN()
	if err != nil {
		return nil, err
	}
	return database.Open(dsn, verbose, logger())
}
