package request

import "github.com/charmbracelet/lipgloss"

// Status is the backend's closed status enumeration for service requests.
// The values are not contiguous; they come straight from the backend and must
// never be reindexed.
type Status int

const (
	StatusPending              Status = 99
	StatusApproved             Status = 100
	StatusRejected             Status = 101
	StatusPublished            Status = 102
	StatusExpired              Status = 103
	StatusFulfilled            Status = 104
	StatusApprovedByGovernment Status = 105
	StatusCheckIn              Status = 115
	StatusCheckOut             Status = 116
	StatusRejectedByGovernment Status = 128
)

var statusNames = map[Status]string{
	StatusPending:              "Pending",
	StatusApproved:             "Approved",
	StatusRejected:             "Rejected",
	StatusPublished:            "Published",
	StatusExpired:              "Expired",
	StatusFulfilled:            "Fulfilled",
	StatusApprovedByGovernment: "Approved By Government",
	StatusCheckIn:              "Check In",
	StatusCheckOut:             "Check Out",
	StatusRejectedByGovernment: "Rejected By Government",
}

// String returns the display name of the status. Values outside the known
// enumeration render as "Unknown" rather than fail.
func (s Status) String() string {
	if name, exists := statusNames[s]; exists {
		return name
	}
	return "Unknown"
}

// Known reports whether the value belongs to the backend's enumeration.
func (s Status) Known() bool {
	_, exists := statusNames[s]
	return exists
}

// Terminal reports whether the status accepts no further admin-initiated
// transitions in this client.
func (s Status) Terminal() bool {
	switch s {
	case StatusRejected, StatusPublished, StatusExpired, StatusFulfilled, StatusRejectedByGovernment:
		return true
	}
	return false
}

var (
	neutralBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	statusBadges = map[Status]lipgloss.Style{
		StatusPending:              lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		StatusApproved:             lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		StatusRejected:             lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		StatusPublished:            lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		StatusExpired:              lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusFulfilled:            lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		StatusApprovedByGovernment: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		StatusCheckIn:              lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		StatusCheckOut:             lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		StatusRejectedByGovernment: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// BadgeStyle returns the lipgloss style used to render the status badge.
// Unknown values get the neutral gray style.
func (s Status) BadgeStyle() lipgloss.Style {
	if style, exists := statusBadges[s]; exists {
		return style
	}
	return neutralBadge
}
