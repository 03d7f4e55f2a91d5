package request_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
)

func TestStatusString(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name     string
		status   request.Status
		expected string
	}{
		{name: "pending", status: request.StatusPending, expected: "Pending"},
		{name: "approved", status: request.StatusApproved, expected: "Approved"},
		{name: "rejected", status: request.StatusRejected, expected: "Rejected"},
		{name: "published", status: request.StatusPublished, expected: "Published"},
		{name: "expired", status: request.StatusExpired, expected: "Expired"},
		{name: "fulfilled", status: request.StatusFulfilled, expected: "Fulfilled"},
		{name: "approved by government", status: request.StatusApprovedByGovernment, expected: "Approved By Government"},
		{name: "check in", status: request.StatusCheckIn, expected: "Check In"},
		{name: "check out", status: request.StatusCheckOut, expected: "Check Out"},
		{name: "rejected by government", status: request.StatusRejectedByGovernment, expected: "Rejected By Government"},
		{name: "zero value", status: request.Status(0), expected: "Unknown"},
		{name: "unknown backend value", status: request.Status(999), expected: "Unknown"},
		{name: "negative value", status: request.Status(-1), expected: "Unknown"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusKnown(t *testing.T) {
	t.Parallel()

	require.True(t, request.StatusPending.Known())
	require.True(t, request.StatusRejectedByGovernment.Known())
	require.False(t, request.Status(0).Known())
	require.False(t, request.Status(106).Known())
}

func TestStatusTerminal(t *testing.T) {
	t.Parallel()

	tt := []struct {
		status   request.Status
		terminal bool
	}{
		{status: request.StatusPending, terminal: false},
		{status: request.StatusApproved, terminal: false},
		{status: request.StatusRejected, terminal: true},
		{status: request.StatusPublished, terminal: true},
		{status: request.StatusExpired, terminal: true},
		{status: request.StatusFulfilled, terminal: true},
		{status: request.StatusRejectedByGovernment, terminal: true},
	}

	for _, tc := range tt {
		t.Run(tc.status.String(), func(t *testing.T) {
			require.Equal(t, tc.terminal, tc.status.Terminal())
		})
	}
}

func TestStatusBadgeStyleUnknownFallsBack(t *testing.T) {
	t.Parallel()

	// An out-of-enumeration value must render with the neutral badge, not
	// panic or pick an arbitrary color.
	known := request.StatusApproved.BadgeStyle()
	unknown := request.Status(4242).BadgeStyle()

	require.NotEqual(t, known.GetForeground(), unknown.GetForeground())
	require.Equal(t, request.Status(0).BadgeStyle().GetForeground(), unknown.GetForeground())
}

func TestDisplayStatus(t *testing.T) {
	t.Parallel()

	r := request.ServiceRequest{StatusID: request.StatusPending}
	require.Equal(t, "Pending", r.DisplayStatus())

	// The server-computed name wins over the local enumeration.
	r.StatusName = "قيد الانتظار"
	require.Equal(t, "قيد الانتظار", r.DisplayStatus())

	r = request.ServiceRequest{StatusID: request.Status(777)}
	require.Equal(t, "Unknown", r.DisplayStatus())
}
