package cmd

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/tui"
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive admin dashboard.",
	Long: `The dashboard command starts the full-screen terminal UI: an overview of
pending work per entity, a paginated request table with server-driven sorting,
and a detail view with approve/reject/publish actions.`,
	RunE: DashboardCmdRunE,
}

func DashboardCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	client, sessions := NewAPIClient(cmd, config)
	deps := tui.NewDeps(client, "", language(config, sessions))

	app := tui.NewApp(cmd.Context(), deps)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return errors.WithMessage(err, "could not run dashboard")
	}

	if app.SessionExpired() {
		return errors.New("session expired, please login again")
	}
	return app.Err()
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
