package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish <entity>",
	Short: "Publish an approved service request.",
	Long: `The publish command moves an approved service request to Published.

Only entities that support publishing accept this command; for the rest the
workflow refuses before any network call.`,
	Args: cobra.ExactArgs(1),
	RunE: PublishCmdRunE,
}

func PublishCmdRunE(cmd *cobra.Command, args []string) error {
	return runTransition(cmd, args[0], "publish-id", "publish-request-number",
		func(flow transitionFlow, item request.ServiceRequest) (*request.ServiceRequest, error) {
			return flow.Publish(cmd.Context(), item)
		})
}

func init() {
	SetupTargetFlags(publishCmd, "publish-id", "publish-request-number")
	rootCmd.AddCommand(publishCmd)
}
