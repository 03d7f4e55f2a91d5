package store

import (
	"errors"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Token is the login response.
type Token struct {
	AccessToken string `json:"access_token"`
}

// Login authenticates against the backend and returns the bearer token.
// It talks to the resty client directly; there is no session yet to attach.
func Login(r *resty.Client, username, password string) (string, error) {
	slog.Debug("logging in", "username", username, "password", "[REDACTED]")

	response, err := r.R().
		SetBody(&Credentials{Username: username, Password: password}).
		SetResult(&Token{}).
		Post("Account/Login")
	if err != nil {
		return "", err
	}

	if response.IsError() {
		return "", errors.New("login failed: " + response.Status())
	}

	token := response.Result().(*Token)
	if token == nil || token.AccessToken == "" {
		return "", errors.New("empty token returned")
	}

	return token.AccessToken, nil
}
