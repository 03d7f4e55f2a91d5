package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/api"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/session"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/store"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/workflow"
)

type ContextKey string

// RestyClientKey lets tests inject a pre-built resty client (with httpmock
// activated) through the command context.
const RestyClientKey ContextKey = "resty-client"

// CreateRestClient creates a resty client with the root URL and a retry
// policy for transient transport failures on idempotent calls.
func CreateRestClient(ctx context.Context, url string) *resty.Client {
	var r *resty.Client
	if client, ok := ctx.Value(RestyClientKey).(*resty.Client); ok {
		r = client
	} else {
		r = resty.New()
	}

	return r.
		SetBaseURL(url).
		SetRetryCount(3).
		SetRetryWaitTime(5 * time.Second).SetRetryMaxWaitTime(60 * time.Second).
		AddRetryCondition(func(response *resty.Response, err error) bool {
			return err != nil && response != nil && response.Request.Method == resty.MethodGet
		})
}

// SessionStore returns the file-backed session store rooted in the working
// directory.
func SessionStore() *session.Store {
	dir, err := os.Getwd()
	if err != nil {
		slog.Error("unable to determine working directory", "error", err)
		dir = "."
	}
	return session.NewStore(dir)
}

// NewAPIClient builds the normalized API client for a command invocation.
func NewAPIClient(cmd *cobra.Command, config Config) (*api.Client, *session.Store) {
	sessions := SessionStore()
	rest := CreateRestClient(cmd.Context(), config.Url)
	return api.New(rest, sessions), sessions
}

// language resolves the effective locale: the --lang flag wins, then the
// stored session locale.
func language(config Config, sessions *session.Store) string {
	if lang := config.Language(); lang != "" {
		return lang
	}
	return sessions.Language()
}

// entityStore resolves an entity argument into its store.
func entityStore(client *api.Client, name string) (*store.Store, error) {
	entity, err := request.EntityByName(name)
	if err != nil {
		return nil, err
	}
	return store.New(client, entity), nil
}

// entityWorkflow resolves an entity argument into its workflow.
func entityWorkflow(client *api.Client, name string) (*workflow.Workflow, error) {
	s, err := entityStore(client, name)
	if err != nil {
		return nil, err
	}
	return workflow.New(s, ""), nil
}
