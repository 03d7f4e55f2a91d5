package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/store"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/table"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/workflow"
)

var pageSizes = []int{10, 20, 50}

// statusFilterCycle is the f-key filter rotation on the list screen.
var statusFilterCycle = []request.Status{
	request.StatusPending,
	request.StatusApproved,
	request.StatusRejected,
}

// listModel is one entity's paginated list screen. The table model renders;
// this model owns the fetch parameters and honors the table's callbacks by
// re-fetching.
type listModel struct {
	ctx    context.Context
	deps   Deps
	entity request.Entity
	store  *store.Store
	flow   *workflow.Workflow

	grid     *table.Model[request.ServiceRequest]
	params   request.ListParams
	filter   int // index into statusFilterCycle, -1 = all
	dirty    bool
	first    bool
	loading  bool
	spinner  spinner.Model
	search   textinput.Model
	inSearch bool
	toast    string
}

func newListModel(ctx context.Context, deps Deps, entity request.Entity) *listModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	search := textinput.New()
	search.Placeholder = "search text"
	search.CharLimit = 120

	m := &listModel{
		ctx:    ctx,
		deps:   deps,
		entity: entity,
		store:  deps.Stores[entity.Name],
		flow:   deps.Workflows[entity.Name],
		filter: -1,
		first:  true,
		params: request.ListParams{
			Page:     1,
			PageSize: pageSizes[0],
			Language: deps.Language,
		},
		spinner: s,
		search:  search,
	}

	m.grid = table.New(requestColumns())
	m.grid.SetActions(m.requestActions())
	m.grid.OnPageChange = func(page int) {
		m.params.Page = page
		m.dirty = true
	}
	m.grid.OnSortChange = func(sort request.SortState) {
		m.params.Sort = sort
		m.params.Page = 1
		m.dirty = true
	}
	m.grid.OnPageSizeChange = func(size int) {
		m.params.PageSize = size
		m.params.Page = 1
		m.dirty = true
	}

	return m
}

// requestColumns is the shared column set for service-request listings.
func requestColumns() []table.Column[request.ServiceRequest] {
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
			Width: 26,
			Value: func(r request.ServiceRequest) string { return r.Title },
		},
		{
			Label: "Status",
			Width: 12,
			Value: func(r request.ServiceRequest) string {
				return r.StatusID.BadgeStyle().Render(r.DisplayStatus())
			},
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

// requestActions binds the row actions to the workflow predicates. View is
// always available; the transitions follow the state machine. Reject routes
// through the detail screen because the reason capture lives there.
func (m *listModel) requestActions() []table.Action[request.ServiceRequest] {
	return []table.Action[request.ServiceRequest]{
		{Label: "View", Icon: "view", Run: func(row request.ServiceRequest) tea.Cmd {
			return m.openRow(row, false)
		}},
		{Label: "Approve", Icon: "approve", Visible: m.flow.CanApprove, Run: func(row request.ServiceRequest) tea.Cmd {
			return m.runTransition(func() (*request.ServiceRequest, error) {
				return m.flow.Approve(m.ctx, row)
			}, "Request approved")
		}},
		{Label: "Reject", Icon: "reject", Visible: m.flow.CanReject, Run: func(row request.ServiceRequest) tea.Cmd {
			return m.openRow(row, true)
		}},
		{Label: "Publish", Icon: "publish", Visible: m.flow.CanPublish, Run: func(row request.ServiceRequest) tea.Cmd {
			return m.runTransition(func() (*request.ServiceRequest, error) {
				return m.flow.Publish(m.ctx, row)
			}, "Request published")
		}},
	}
}

// actionKeys maps action icons to their list-screen key bindings.
var actionKeys = map[string]string{
	"view":    "Enter",
	"approve": "a",
	"reject":  "r",
	"publish": "u",
}

func (m *listModel) Init() tea.Cmd {
	return tea.Batch(m.reload(), m.spinner.Tick)
}

func (m *listModel) reload() tea.Cmd {
	m.loading = true
	m.grid.SetLoading(true)
	params := m.params
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		page, err := m.store.List(m.ctx, params)
		if err != nil {
			if isSessionExpired(err) {
				return sessionExpiredMsg{}
			}
			return errMsg{err: err}
		}
		return pageLoadedMsg{page: page}
	})
}

func (m *listModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inSearch {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)

	case pageLoadedMsg:
		m.loading = false
		m.first = false
		m.grid.SetLoading(false)
		m.grid.SetRows(msg.page.Items, msg.page.State)

	case errMsg:
		m.loading = false
		m.first = false
		m.grid.SetLoading(false)
		m.toast = msg.err.Error()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return cmd
		}
	}
	return nil
}

func (m *listModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.toast = ""

	switch msg.String() {
	case "q", keyEsc:
		return func() tea.Msg { return backMsg{} }
	case keyUp, "k":
		m.grid.CursorUp()
	case keyDown, "j":
		m.grid.CursorDown()
	case "n", "right":
		m.grid.NextPage()
	case "p", "left":
		m.grid.PrevPage()
	case "+":
		m.grid.SetPageSize(nextPageSize(m.params.PageSize))
	case "-":
		m.grid.SetPageSize(prevPageSize(m.params.PageSize))
	case "s":
		m.grid.ToggleSort("createdDate")
	case "1", "2", "3", "4":
		m.grid.ToggleSortColumn(int(msg.String()[0] - '1'))
	case "f":
		m.cycleStatusFilter()
	case "/":
		m.inSearch = true
		m.search.SetValue(m.params.Search)
		m.search.Focus()
		return textinput.Blink
	case "R":
		return m.reload()
	case keyEnter:
		return m.grid.RunAction("view")
	case "a":
		return m.grid.RunAction("approve")
	case "r":
		return m.grid.RunAction("reject")
	case "u":
		return m.grid.RunAction("publish")
	}

	if m.dirty {
		m.dirty = false
		return m.reload()
	}
	return nil
}

func (m *listModel) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case keyEsc:
		m.inSearch = false
		m.search.Blur()
		return nil
	case keyEnter:
		m.inSearch = false
		m.search.Blur()
		m.params.Search = strings.TrimSpace(m.search.Value())
		m.params.Page = 1
		return m.reload()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

func (m *listModel) cycleStatusFilter() {
	m.filter++
	if m.filter >= len(statusFilterCycle) {
		m.filter = -1
	}
	if m.filter < 0 {
		m.params.Status = nil
	} else {
		status := statusFilterCycle[m.filter]
		m.params.Status = &status
	}
	m.params.Page = 1
	m.dirty = true
}

func (m *listModel) runTransition(run func() (*request.ServiceRequest, error), toast string) tea.Cmd {
	m.loading = true
	m.grid.SetLoading(true)
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		if _, err := run(); err != nil {
			if isSessionExpired(err) {
				return sessionExpiredMsg{}
			}
			return errMsg{err: err}
		}
		// List rows are server state; refresh the page rather than patch.
		page, err := m.store.List(m.ctx, m.params)
		if err != nil {
			if isSessionExpired(err) {
				return sessionExpiredMsg{}
			}
			return errMsg{err: err}
		}
		return pageLoadedMsg{page: page}
	})
}

// openRow navigates to the detail screen, optionally with the rejection
// modal already up.
func (m *listModel) openRow(row request.ServiceRequest, openReject bool) tea.Cmd {
	entity := m.entity
	return func() tea.Msg {
		return openDetailMsg{entity: entity, item: row, openReject: openReject}
	}
}

func (m *listModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.entity.Title))
	b.WriteString("\n")
	b.WriteString(m.renderFilters())

	// Full-screen spinner only before the first page ever arrives; later
	// refreshes keep the stale rows visible.
	if m.first && m.loading {
		b.WriteString(fmt.Sprintf("\n %s Loading %s...\n", m.spinner.View(), strings.ToLower(m.entity.Title)))
	} else {
		b.WriteString(m.grid.View())
	}

	if m.toast != "" {
		b.WriteString("\n" + toastErrStyle.Render(m.toast))
	}
	if m.inSearch {
		b.WriteString("\n\nSearch: " + m.search.View())
	}

	b.WriteString(helpStyle.Render("\n" + m.helpLine()))
	return b.String()
}

// helpLine lists the navigation keys plus only the actions that apply to the
// selected row.
func (m *listModel) helpLine() string {
	parts := []string{"↑/↓: Navigate", "n/p: Page", "+/-: Page size", "s/1-4: Sort", "f: Filter", "/: Search"}
	if row, exists := m.grid.Selected(); exists {
		for _, action := range m.grid.VisibleActions(row) {
			parts = append(parts, fmt.Sprintf("%s: %s", actionKeys[action.Icon], action.Label))
		}
	}
	parts = append(parts, "R: Reload", "Esc: Back")
	return strings.Join(parts, "  ")
}

func (m *listModel) renderFilters() string {
	parts := []string{}
	if m.params.Status != nil {
		parts = append(parts, fmt.Sprintf("Status: %s", m.params.Status.String()))
	}
	if m.params.Search != "" {
		parts = append(parts, fmt.Sprintf("Search: %s", m.params.Search))
	}
	if len(parts) == 0 {
		return ""
	}
	return labelStyle.Render("Filters: "+strings.Join(parts, ", ")) + "\n"
}

func nextPageSize(current int) int {
	for i, size := range pageSizes {
		if size == current && i < len(pageSizes)-1 {
			return pageSizes[i+1]
		}
	}
	return current
}

func prevPageSize(current int) int {
	for i, size := range pageSizes {
		if size == current && i > 0 {
			return pageSizes[i-1]
		}
	}
	return current
}
