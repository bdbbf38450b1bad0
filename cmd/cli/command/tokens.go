package command

import (
	"fmt"
	"time"

	"locallibrary/database"
	"locallibrary/internal/http-api/repository"

	"github.com/spf13/cobra"
)

var pruneTokensCmd = &cobra.Command{
	Use:   "prune-tokens",
	Short: "Delete revoked and expired refresh tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		n, err := repository.NewRefreshTokenRepository(db).DeleteExpired(cmd.Context(), time.Now())
		if err != nil {
			return fmt.Errorf("failed to prune tokens: %w", err)
		}
		done(cmd.OutOrStdout(), "Removed %d refresh tokens", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pruneTokensCmd)
}
