package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/store"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <entity>",
	Short: "Show a single service request by id or request number.",
	Args:  cobra.ExactArgs(1),
	RunE:  ShowCmdRunE,
}

func ShowCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	target := LoadTargetConfigFromCLI("show-id", "show-request-number")
	if err := target.Validate(); err != nil {
		return err
	}

	client, _ := NewAPIClient(cmd, config)
	s, err := entityStore(client, args[0])
	if err != nil {
		return err
	}

	item, err := fetchTarget(cmd, s, target)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintln(cmd.OutOrStdout(), "Request not found.")
			return nil
		}
		return err
	}

	printRequest(cmd, item)
	return nil
}

func fetchTarget(cmd *cobra.Command, s *store.Store, target TargetConfig) (*request.ServiceRequest, error) {
	if target.ID != 0 {
		return s.Get(cmd.Context(), target.ID)
	}
	return s.GetByRequestNumber(cmd.Context(), target.RequestNumber)
}

func printRequest(cmd *cobra.Command, item *request.ServiceRequest) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Request #:  %s\n", item.RequestNumber)
	fmt.Fprintf(out, "Status:     %s\n", item.DisplayStatus())
	if item.Title != "" {
		fmt.Fprintf(out, "Title:      %s\n", item.Title)
	}
	if item.ContactName != "" {
		fmt.Fprintf(out, "Contact:    %s\n", item.ContactName)
	}
	if item.ContactPhone != "" {
		fmt.Fprintf(out, "Phone:      %s\n", item.ContactPhone)
	}
	if item.City != "" {
		fmt.Fprintf(out, "City:       %s\n", item.City)
	}
	if item.Quantity > 0 {
		fmt.Fprintf(out, "Quantity:   %d\n", item.Quantity)
	}
	if item.Price > 0 {
		fmt.Fprintf(out, "Price:      %.2f\n", item.Price)
	}
	if item.Reason != "" {
		fmt.Fprintf(out, "Reason:     %s\n", item.Reason)
	}
	if item.CreatedDate != nil {
		fmt.Fprintf(out, "Created:    %s\n", item.CreatedDate.Format("2006-01-02 15:04"))
	}
	if item.UpdatedDate != nil {
		fmt.Fprintf(out, "Updated:    %s\n", item.UpdatedDate.Format("2006-01-02 15:04"))
	}
}

func init() {
	SetupShowCmdFlags(showCmd)
	rootCmd.AddCommand(showCmd)
}

// SetupShowCmdFlags registers the show flags. Exported for tests.
func SetupShowCmdFlags(command *cobra.Command) {
	SetupTargetFlags(command, "show-id", "show-request-number")
}
