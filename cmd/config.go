package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ErrorBindingFlag         = "unable to bind flag"
	ErrorMarkingFlagRequired = "unable to mark flag required"
)

// Config represents the global configuration shared by every command.
type Config struct {
	Url  string
	Lang string
}

// Validate the Config making sure all required fields are present and valid
func (c Config) Validate() error {
	if c.Url == "" {
		return errors.New("url is required")
	}

	if _, err := url.Parse(c.Url); err != nil {
		return fmt.Errorf("could not parse URL: %w", err)
	}

	if c.Lang != "" {
		lang := strings.ToLower(c.Lang)
		if lang != "en" && lang != "ar" {
			return fmt.Errorf("invalid lang: %s. Valid values are: en|ar", c.Lang)
		}
	}

	return nil
}

// Language returns the upper-cased locale, empty when unset.
func (c Config) Language() string {
	return strings.ToUpper(c.Lang)
}

// LoadConfigFromCLI loads the Config from the CLI flags
func LoadConfigFromCLI() Config {
	return Config{
		Url:  viper.GetString("url"),
		Lang: viper.GetString("lang"),
	}
}

// AuthConfig carries the login credentials.
type AuthConfig struct {
	Username string
	Password string
}

// Validate the AuthConfig
func (c AuthConfig) Validate() error {
	if c.Username == "" {
		return errors.New("username is required")
	}

	if c.Password == "" {
		return errors.New("password is required")
	}

	return nil
}

// LoadAuthConfigFromCLI loads the AuthConfig from the CLI flags
func LoadAuthConfigFromCLI() AuthConfig {
	return AuthConfig{
		Username: viper.GetString("username"),
		Password: viper.GetString("password"),
	}
}

// TargetConfig identifies a single service request by id or request number.
// Exactly one of the two must be set.
//
// `idKey` and `numberKey` are the viper keys holding the values; they differ
// per command.
type TargetConfig struct {
	ID            int
	RequestNumber string
}

// Validate the TargetConfig
func (c TargetConfig) Validate() error {
	if c.ID == 0 && c.RequestNumber == "" {
		return errors.New("either --id or --request-number is required")
	}
	if c.ID != 0 && c.RequestNumber != "" {
		return errors.New("--id and --request-number are mutually exclusive")
	}
	return nil
}

// LoadTargetConfigFromCLI loads the TargetConfig from the CLI flags
func LoadTargetConfigFromCLI(idKey, numberKey string) TargetConfig {
	return TargetConfig{
		ID:            viper.GetInt(idKey),
		RequestNumber: viper.GetString(numberKey),
	}
}

// SetupTargetFlags registers the --id/--request-number pair under the given
// viper keys. Exported for tests.
func SetupTargetFlags(command *cobra.Command, idKey, numberKey string) {
	command.Flags().Int("id", 0, "Numeric request id")
	if err := viper.BindPFlag(idKey, command.Flags().Lookup("id")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("request-number", "", "Human-facing request number")
	if err := viper.BindPFlag(numberKey, command.Flags().Lookup("request-number")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}
