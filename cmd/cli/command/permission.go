package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"locallibrary/database"
	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var permissionName string

var grantCmd = &cobra.Command{
	Use:   "grant [username]",
	Short: "Grant a permission to a user",
	Long: `Grant a permission to a user. The default permission lets the user list every
outstanding loan and renew any of them. It takes effect at the user's next login
or token refresh.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUsers(func(users repository.UserRepository) error {
			return grantPermission(cmd.Context(), users, args[0], permissionName, cmd.OutOrStdout())
		})
	},
}

var revokeCmd = &cobra.Command{
	Use:   "revoke [username]",
	Short: "Revoke a permission from a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUsers(func(users repository.UserRepository) error {
			return revokePermission(cmd.Context(), users, args[0], permissionName, cmd.OutOrStdout())
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{grantCmd, revokeCmd} {
		c.Flags().StringVarP(&permissionName, "permission", "p", models.PermCanMarkReturned, "permission codename")
		rootCmd.AddCommand(c)
	}
}

func withUsers(fn func(repository.UserRepository) error) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer database.Close(db)
	return fn(repository.NewUserRepository(db))
}

func lookupUser(ctx context.Context, users repository.UserRepository, username string) (*models.User, error) {
	user, err := users.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no user named %q", username)
	}
	return user, err
}

func grantPermission(ctx context.Context, users repository.UserRepository, username, codename string, out io.Writer) error {
	user, err := lookupUser(ctx, users, username)
	if err != nil {
		return err
	}
	if err := users.GrantPermission(ctx, user.ID, codename); err != nil {
		return fmt.Errorf("failed to grant %s: %w", codename, err)
	}
	done(out, "Granted %s to %s", codename, username)
	return nil
}

func revokePermission(ctx context.Context, users repository.UserRepository, username, codename string, out io.Writer) error {
	user, err := lookupUser(ctx, users, username)
	if err != nil {
		return err
	}
	if err := users.RevokePermission(ctx, user.ID, codename); err != nil {
		return fmt.Errorf("failed to revoke %s: %w", codename, err)
	}
	done(out, "Revoked %s from %s", codename, username)
	return nil
}
