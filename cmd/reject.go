package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
)

// rejectCmd represents the reject command
var rejectCmd = &cobra.Command{
	Use:   "reject <entity>",
	Short: "Reject a service request with a reason.",
	Long: `The reject command moves a service request to Rejected.

A rejection reason is required and is validated locally before any network
call; entities define their own minimum reason length. Some entities also
allow rejecting an already approved request.`,
	Args: cobra.ExactArgs(1),
	RunE: RejectCmdRunE,
}

func RejectCmdRunE(cmd *cobra.Command, args []string) error {
	reason := viper.GetString("reject-reason")
	return runTransition(cmd, args[0], "reject-id", "reject-request-number",
		func(flow transitionFlow, item request.ServiceRequest) (*request.ServiceRequest, error) {
			return flow.Reject(cmd.Context(), item, reason)
		})
}

func init() {
	SetupRejectCmdFlags(rejectCmd)
	rootCmd.AddCommand(rejectCmd)
}

// SetupRejectCmdFlags registers the reject flags. Exported for tests.
func SetupRejectCmdFlags(command *cobra.Command) {
	SetupTargetFlags(command, "reject-id", "reject-request-number")

	command.Flags().String("reason", "", "Rejection reason shown to the requester")
	if err := viper.BindPFlag("reject-reason", command.Flags().Lookup("reason")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}
