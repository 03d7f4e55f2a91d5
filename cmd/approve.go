package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
)

// approveCmd represents the approve command
var approveCmd = &cobra.Command{
	Use:   "approve <entity>",
	Short: "Approve a pending service request.",
	Long: `The approve command moves a pending service request to Approved.

Trying to approve a request that is not pending returns an error; the backend
remains the sole arbiter of the final state.`,
	Args: cobra.ExactArgs(1),
	RunE: ApproveCmdRunE,
}

func ApproveCmdRunE(cmd *cobra.Command, args []string) error {
	return runTransition(cmd, args[0], "approve-id", "approve-request-number",
		func(flow transitionFlow, item request.ServiceRequest) (*request.ServiceRequest, error) {
			return flow.Approve(cmd.Context(), item)
		})
}

func init() {
	SetupTargetFlags(approveCmd, "approve-id", "approve-request-number")
	rootCmd.AddCommand(approveCmd)
}

// transitionFlow is the slice of the workflow the transition commands use.
type transitionFlow interface {
	Approve(ctx context.Context, item request.ServiceRequest) (*request.ServiceRequest, error)
	Reject(ctx context.Context, item request.ServiceRequest, reason string) (*request.ServiceRequest, error)
	Publish(ctx context.Context, item request.ServiceRequest) (*request.ServiceRequest, error)
}

// runTransition resolves the target record, runs the transition and prints
// the refreshed status.
func runTransition(cmd *cobra.Command, entityName, idKey, numberKey string, run func(flow transitionFlow, item request.ServiceRequest) (*request.ServiceRequest, error)) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	target := LoadTargetConfigFromCLI(idKey, numberKey)
	if err := target.Validate(); err != nil {
		return err
	}

	client, _ := NewAPIClient(cmd, config)
	s, err := entityStore(client, entityName)
	if err != nil {
		return err
	}
	flow, err := entityWorkflow(client, entityName)
	if err != nil {
		return err
	}

	item, err := fetchTarget(cmd, s, target)
	if err != nil {
		return errors.WithMessage(err, "could not load service request")
	}

	fresh, err := run(flow, *item)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Request %s is now %s\n", fresh.RequestNumber, fresh.DisplayStatus())
	return nil
}
