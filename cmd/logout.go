package cmd

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the locally stored session.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := SessionStore().Clear(); err != nil {
			return errors.WithMessage(err, "could not clear session")
		}
		slog.Info("Logged out")
		return nil
	},
	// logout needs no URL; skip the root validation
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
