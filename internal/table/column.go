package table

import tea "github.com/charmbracelet/bubbletea"

// Column describes how one field of a record is rendered and, optionally,
// which backend column sorts it.
type Column[T any] struct {
	Label string
	Value func(row T) string

	// SortKey identifies the backend sort column. Must be non-empty when
	// Sortable is true.
	SortKey  string
	Sortable bool
	Width    int
}

// Action is a row-scoped control bound to a side effect. Visible is
// re-evaluated per row on every render; an action whose predicate is false is
// never offered, which defends against stale enabled buttons after a status
// change.
type Action[T any] struct {
	Label   string
	Icon    string // semantic tag: view, approve, reject, publish
	Visible func(row T) bool
	Run     func(row T) tea.Cmd
}
