package cmd_test

import (
	"context"
	"os"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/cmd"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/testutils"
)

// newTestCommand wires a fresh cobra command around a RunE with a mocked
// resty client injected through the context.
func newTestCommand(use string, runE func(*cobra.Command, []string) error, args cobra.PositionalArgs) *cobra.Command {
	command := &cobra.Command{Use: use, PersistentPreRunE: cmd.RootCmdPersistentPreRunE, RunE: runE, Args: args}

	client := resty.New()
	ctx := context.WithValue(context.Background(), cmd.RestyClientKey, client)
	command.SetContext(ctx)

	httpmock.ActivateNonDefault(client.GetClient())

	cmd.SetupRootCmdFlags(command)
	return command
}

func TestListCmd(t *testing.T) {
	tmpdir := testutils.SetupTmpDir(t)
	defer os.RemoveAll(tmpdir)

	command := newTestCommand("list", cmd.ListCmdRunE, cobra.ExactArgs(1))
	cmd.SetupListCmdFlags(command)
	defer httpmock.DeactivateAndReset()

	tt := []struct {
		name      string
		args      []string
		err       string
		out       []string
		endpoints []testutils.Endpoint
	}{
		{
			name: "no url",
			args: []string{"orders"},
			err:  "URL cannot be empty",
		},
		{
			name: "unknown entity",
			args: []string{"bogus", "--url", testutils.RootUrl},
			err:  "unknown entity: bogus",
		},
		{
			name: "one page of orders",
			args: []string{"orders", "--url", testutils.RootUrl},
			out:  []string{"ORD-2024-0001", "Pending", "Showing 1-10 of 35", "Page 1/4"},
			endpoints: []testutils.Endpoint{
				{Method: "GET", Url: testutils.OrdersUrl, Responder: testutils.MustPageResponder(10, request.StatusPending, 35, 4)},
			},
		},
		{
			name: "filtered and searched",
			args: []string{"orders", "--url", testutils.RootUrl, "--status", "Pending", "--search", "clinic"},
			out:  []string{"ORD-2024-0001"},
			endpoints: []testutils.Endpoint{
				{Method: "GET", Url: testutils.OrdersUrl, Responder: testutils.MustPageResponder(10, request.StatusPending, 35, 4)},
			},
		},
		{
			name: "sorted descending",
			args: []string{"orders", "--url", testutils.RootUrl, "--sort", "createdDate", "--order", "desc"},
			out:  []string{"Created ↓"},
			endpoints: []testutils.Endpoint{
				{Method: "GET", Url: testutils.OrdersUrl, Responder: testutils.MustPageResponder(10, request.StatusPending, 35, 4)},
			},
		},
		{
			name: "invalid order",
			args: []string{"orders", "--url", testutils.RootUrl, "--sort", "createdDate", "--order", "down"},
			err:  "invalid order: down",
		},
		{
			name: "invalid status",
			args: []string{"orders", "--url", testutils.RootUrl, "--order", "asc", "--status", "Bogus"},
			err:  "invalid status: Bogus",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			testutils.SetupMockResponders(t, tc.endpoints)

			out, err := testutils.Execute(t, command, tc.args...)

			if tc.err != "" {
				require.ErrorContains(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			for _, fragment := range tc.out {
				require.Contains(t, out, fragment)
			}
		})
	}
}
