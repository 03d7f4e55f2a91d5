package table

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("238"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// Model renders a homogeneous collection of records as a sortable, paginated
// grid. It holds no fetch logic: the rows are already the current page, and
// every data mutation goes through the callbacks, which the caller honors by
// re-fetching and calling SetRows again.
type Model[T any] struct {
	columns []Column[T]
	rows    []T
	actions []Action[T]
	page    request.PageState
	sort    request.SortState
	loading bool
	cursor  int

	OnPageChange     func(page int)
	OnSortChange     func(sort request.SortState)
	OnPageSizeChange func(size int)
}

// New creates a table model over the given column descriptors.
func New[T any](columns []Column[T]) *Model[T] {
	return &Model[T]{columns: columns}
}

// SetActions installs the row-scoped actions.
func (m *Model[T]) SetActions(actions []Action[T]) {
	m.actions = actions
}

// SetRows replaces the current page of rows and its page state.
func (m *Model[T]) SetRows(rows []T, page request.PageState) {
	m.rows = rows
	m.page = page
	if m.cursor >= len(rows) {
		m.cursor = 0
	}
}

// SetLoading flips the loading flag. The last-known rows keep rendering while
// a refresh is in flight so the layout does not collapse.
func (m *Model[T]) SetLoading(loading bool) {
	m.loading = loading
}

// Loading reports whether a refresh is in flight.
func (m *Model[T]) Loading() bool {
	return m.loading
}

// Rows returns the current page of rows.
func (m *Model[T]) Rows() []T {
	return m.rows
}

// Page returns the current page state.
func (m *Model[T]) Page() request.PageState {
	return m.page
}

// Sort returns the current sort state.
func (m *Model[T]) Sort() request.SortState {
	return m.sort
}

// SetSort overrides the sort state without emitting a callback.
func (m *Model[T]) SetSort(sort request.SortState) {
	m.sort = sort
}

// Selected returns the row under the cursor.
func (m *Model[T]) Selected() (T, bool) {
	var zero T
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return zero, false
	}
	return m.rows[m.cursor], true
}

// CursorUp moves the selection up one row.
func (m *Model[T]) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// CursorDown moves the selection down one row.
func (m *Model[T]) CursorDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
}

// RunAction dispatches the visible action with the given icon on the selected
// row. Hidden or unknown actions are inert.
func (m *Model[T]) RunAction(icon string) tea.Cmd {
	row, exists := m.Selected()
	if !exists {
		return nil
	}
	for _, action := range m.VisibleActions(row) {
		if action.Icon == icon && action.Run != nil {
			return action.Run(row)
		}
	}
	return nil
}

// VisibleActions evaluates every action predicate against the row and returns
// only the actions that apply.
func (m *Model[T]) VisibleActions(row T) []Action[T] {
	visible := make([]Action[T], 0, len(m.actions))
	for _, action := range m.actions {
		if action.Visible == nil || action.Visible(row) {
			visible = append(visible, action)
		}
	}
	return visible
}

// ToggleSort cycles the sort state of a column and emits OnSortChange exactly
// once. Non-sortable columns are ignored. Resetting the page to 1 is the
// caller's responsibility, applied in its OnSortChange handler.
func (m *Model[T]) ToggleSort(sortKey string) {
	if sortKey == "" || !m.sortableKey(sortKey) {
		return
	}
	m.sort = m.sort.Toggle(sortKey)
	if m.OnSortChange != nil {
		m.OnSortChange(m.sort)
	}
}

// ToggleSortColumn cycles sort on the nth sortable column.
func (m *Model[T]) ToggleSortColumn(index int) {
	if index < 0 || index >= len(m.columns) {
		return
	}
	column := m.columns[index]
	if !column.Sortable {
		return
	}
	m.ToggleSort(column.SortKey)
}

func (m *Model[T]) sortableKey(sortKey string) bool {
	for _, column := range m.columns {
		if column.Sortable && column.SortKey == sortKey {
			return true
		}
	}
	return false
}

// NextPage emits OnPageChange for the following page, if any.
func (m *Model[T]) NextPage() {
	if m.page.HasNext() && m.OnPageChange != nil {
		m.OnPageChange(m.page.Page + 1)
	}
}

// PrevPage emits OnPageChange for the preceding page, if any.
func (m *Model[T]) PrevPage() {
	if m.page.HasPrev() && m.OnPageChange != nil {
		m.OnPageChange(m.page.Page - 1)
	}
}

// SetPageSize emits OnPageSizeChange. The caller resets to page 1 in its
// handler; the model performs no recomputation of its own.
func (m *Model[T]) SetPageSize(size int) {
	if size > 0 && m.OnPageSizeChange != nil {
		m.OnPageSizeChange(size)
	}
}

// View renders the grid: header, body (or a "no data" placeholder) and the
// pagination footer. The totals are trusted as given.
func (m *Model[T]) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", m.totalWidth()))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(emptyStyle.Render("  no data"))
		b.WriteString("\n")
	} else {
		for i, row := range m.rows {
			b.WriteString(m.renderRow(i, row))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model[T]) renderHeader() string {
	cells := make([]string, 0, len(m.columns))
	active, hasSort := m.sort.Active()
	for _, column := range m.columns {
		label := column.Label
		if column.Sortable && hasSort && column.SortKey == active.Key {
			if active.Order == request.OrderAsc {
				label += " ↑"
			} else {
				label += " ↓"
			}
		}
		cells = append(cells, pad(label, m.columnWidth(column)))
	}
	return headerStyle.Render(strings.Join(cells, " "))
}

func (m *Model[T]) renderRow(index int, row T) string {
	cells := make([]string, 0, len(m.columns))
	for _, column := range m.columns {
		cells = append(cells, pad(column.Value(row), m.columnWidth(column)))
	}

	line := strings.Join(cells, " ")
	prefix := "  "
	style := lipgloss.NewStyle()
	if index == m.cursor {
		prefix = "> "
		style = selectedStyle
	}
	return style.Render(prefix + line)
}

func (m *Model[T]) renderFooter() string {
	status := fmt.Sprintf("Showing %d-%d of %d", m.page.First(), m.page.Last(), m.page.TotalCount)
	if m.page.TotalPages > 0 {
		status += fmt.Sprintf("  •  Page %d/%d", m.page.Page, m.page.TotalPages)
	}
	if m.loading {
		status += "  •  refreshing…"
	}
	return footerStyle.Render(status)
}

func (m *Model[T]) columnWidth(column Column[T]) int {
	if column.Width > 0 {
		return column.Width
	}
	return 16
}

func (m *Model[T]) totalWidth() int {
	total := 2
	for _, column := range m.columns {
		total += m.columnWidth(column) + 1
	}
	return total
}

// pad measures printable width, not bytes: cell values may carry ANSI styling
// and multi-byte text, and truncation must never cut an escape sequence or a
// rune in half.
func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-w)
}
