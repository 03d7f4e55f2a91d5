package request

import "strings"

// Order is a sort direction.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Param renders the direction the way the backend expects it.
func (o Order) Param() string {
	return strings.ToUpper(string(o))
}

// SortKey pairs a backend sort column with a direction.
type SortKey struct {
	Key   string
	Order Order
}

// SortState is an ordered sequence of sort keys. The type permits multiple
// keys, but only the head is sent to the backend; tie-break is left to the
// server.
type SortState []SortKey

// Active returns the effective sort key, if any.
func (s SortState) Active() (SortKey, bool) {
	if len(s) == 0 {
		return SortKey{}, false
	}
	return s[0], true
}

// Toggle cycles the given column through unsorted -> asc -> desc -> unsorted.
// Exactly one key is active at a time: toggling a different column replaces
// the whole state.
func (s SortState) Toggle(key string) SortState {
	active, exists := s.Active()
	if !exists || active.Key != key {
		return SortState{{Key: key, Order: OrderAsc}}
	}
	if active.Order == OrderAsc {
		return SortState{{Key: key, Order: OrderDesc}}
	}
	return SortState{}
}
