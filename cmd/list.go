package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/table"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <entity>",
	Short: "List service requests for an entity, one page at a time.",
	Long: `The list command retrieves one page of service requests from the backend.

Sorting and pagination are server-driven: the command requests the page and
order it wants and renders exactly what the backend returns. Changing the sort
or the page size starts over from page 1 unless --page is given explicitly.

Valid entities: ` + strings.Join(request.EntityNames(), ", ") + `.`,
	Args: cobra.ExactArgs(1),
	RunE: ListCmdRunE,
}

func ListCmdRunE(cmd *cobra.Command, args []string) error {
	config := LoadConfigFromCLI()
	slog.Debug("args", "config", config)
	if err := config.Validate(); err != nil {
		return err
	}

	client, sessions := NewAPIClient(cmd, config)
	s, err := entityStore(client, args[0])
	if err != nil {
		return err
	}

	params := request.ListParams{
		Page:     viper.GetInt("list-page"),
		PageSize: viper.GetInt("list-page-size"),
		Search:   viper.GetString("list-search"),
		Language: language(config, sessions),
	}

	if sortKey := viper.GetString("list-sort"); sortKey != "" {
		order := request.Order(strings.ToLower(viper.GetString("list-order")))
		if order != request.OrderAsc && order != request.OrderDesc {
			return fmt.Errorf("invalid order: %s. Valid values are: asc|desc", order)
		}
		params.Sort = request.SortState{{Key: sortKey, Order: order}}
	}

	if statusName := viper.GetString("list-status"); statusName != "" {
		status, err := statusByName(statusName)
		if err != nil {
			return err
		}
		params.Status = &status
	}

	page, err := s.List(cmd.Context(), params)
	if err != nil {
		return errors.WithMessage(err, "could not list service requests")
	}

	grid := table.New(listColumns())
	grid.SetSort(params.Sort)
	grid.SetRows(page.Items, page.State)

	fmt.Fprintln(cmd.OutOrStdout(), grid.View())
	return nil
}

func listColumns() []table.Column[request.ServiceRequest] {
	return []table.Column[request.ServiceRequest]{
		{
			Label:    "Request #",
			Width:    14,
			Value:    func(r request.ServiceRequest) string { return r.RequestNumber },
			SortKey:  "requestNumber",
			Sortable: true,
		},
		{
			Label: "Title",
			Width: 28,
			Value: func(r request.ServiceRequest) string { return r.Title },
		},
		{
			Label: "Status",
			Width: 12,
			Value: func(r request.ServiceRequest) string { return r.DisplayStatus() },
		},
		{
			Label:    "Created",
			Width:    16,
			SortKey:  "createdDate",
			Sortable: true,
			Value: func(r request.ServiceRequest) string {
				if r.CreatedDate == nil {
					return "-"
				}
				return r.CreatedDate.Format("2006-01-02 15:04")
			},
		},
	}
}

// statusByName maps a CLI status name to the backend enumeration.
func statusByName(name string) (request.Status, error) {
	for _, status := range []request.Status{
		request.StatusPending,
		request.StatusApproved,
		request.StatusRejected,
		request.StatusPublished,
		request.StatusExpired,
		request.StatusFulfilled,
	} {
		if strings.EqualFold(status.String(), name) {
			return status, nil
		}
	}
	return 0, fmt.Errorf("invalid status: %s", name)
}

func init() {
	SetupListCmdFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}

// SetupListCmdFlags registers the list flags. Exported for tests.
func SetupListCmdFlags(command *cobra.Command) {
	command.Flags().Int("page", 1, "Page number (1-based)")
	if err := viper.BindPFlag("list-page", command.Flags().Lookup("page")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().Int("page-size", 10, "Rows per page")
	if err := viper.BindPFlag("list-page-size", command.Flags().Lookup("page-size")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("sort", "", "Backend sort column (e.g. createdDate)")
	if err := viper.BindPFlag("list-sort", command.Flags().Lookup("sort")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("order", "asc", "Sort direction (asc|desc)")
	if err := viper.BindPFlag("list-order", command.Flags().Lookup("order")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("search", "", "Free-text search")
	if err := viper.BindPFlag("list-search", command.Flags().Lookup("search")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}

	command.Flags().String("status", "", "Filter by status name (e.g. Pending)")
	if err := viper.BindPFlag("list-status", command.Flags().Lookup("status")); err != nil {
		slog.Error(ErrorBindingFlag, "error", err)
	}
}
