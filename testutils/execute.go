package testutils

import (
	"bytes"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/spf13/cobra"
)

// Endpoint pairs a mocked backend route with its responder for command tests.
type Endpoint struct {
	Method    string
	Url       string
	Responder httpmock.Responder
}

// SetupMockResponders registers all endpoints for one test case.
func SetupMockResponders(t *testing.T, endpoints []Endpoint) {
	t.Helper()
	httpmock.Reset()
	for _, endpoint := range endpoints {
		httpmock.RegisterResponder(endpoint.Method, endpoint.Url, endpoint.Responder)
	}
}

// Execute runs the command with the given args and captures its combined
// output.
func Execute(t *testing.T, command *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	command.SetOut(buf)
	command.SetErr(buf)
	command.SetArgs(args)

	err := command.Execute()

	return buf.String(), err
}
