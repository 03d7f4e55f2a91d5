package cmd

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/session"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/store"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and store the session locally.",
	RunE:  LoginCmdRunE,
}

func LoginCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	authConfig := LoadAuthConfigFromCLI()
	if err := authConfig.Validate(); err != nil {
		return err
	}

	r := CreateRestClient(cmd.Context(), config.Url)

	slog.Info("Authenticating...")
	token, err := store.Login(r, authConfig.Username, authConfig.Password)
	if err != nil {
		return errors.WithMessage(err, "could not login")
	}

	locale := viper.GetString("lang")
	if locale == "" {
		locale = "en"
	}

	sessions := SessionStore()
	if err := sessions.Save(session.New(token, locale)); err != nil {
		return errors.WithMessage(err, "could not save session")
	}

	slog.Info("Logged in", "username", authConfig.Username)
	return nil
}

func init() {
	SetupLoginCmdFlags(loginCmd)
	rootCmd.AddCommand(loginCmd)
}

// SetupLoginCmdFlags registers the login flags. Exported for tests.
func SetupLoginCmdFlags(command *cobra.Command) {
	command.Flags().String("username", "", "Admin username")
	if err := viper.BindPFlag("username", command.Flags().Lookup("username")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("password", "", "Admin password")
	if err := viper.BindPFlag("password", command.Flags().Lookup("password")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}
