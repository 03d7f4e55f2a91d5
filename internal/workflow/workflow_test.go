package workflow_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/api"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/store"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/workflow"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/testutils"
)

type fakeTokens struct{}

func (fakeTokens) Token() string { return "tok" }
func (fakeTokens) Clear() error  { return nil }

func newWorkflow(t *testing.T, entityName string) *workflow.Workflow {
	t.Helper()

	rest := resty.New().SetBaseURL(testutils.RootUrl)
	httpmock.ActivateNonDefault(rest.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	entity, err := request.EntityByName(entityName)
	require.NoError(t, err)

	return workflow.New(store.New(api.New(rest, fakeTokens{}), entity), "admin-1")
}

func TestPredicates(t *testing.T) {
	orders := newWorkflow(t, "orders")
	clinics := newWorkflow(t, "clinics")
	jobs := newWorkflow(t, "jobs")

	pending := testutils.ServiceRequestFixture(request.StatusPending)
	approved := testutils.ServiceRequestFixture(request.StatusApproved)
	rejected := testutils.ServiceRequestFixture(request.StatusRejected)

	require.True(t, orders.CanApprove(pending))
	require.False(t, orders.CanApprove(approved))
	require.False(t, orders.CanApprove(rejected))

	require.True(t, orders.CanReject(pending))
	require.False(t, orders.CanReject(approved))

	// Clinic services keep Reject available after approval.
	require.True(t, clinics.CanReject(approved))
	require.False(t, clinics.CanReject(rejected))

	// Only publishable verticals offer Approved -> Published.
	require.False(t, orders.CanPublish(approved))
	require.True(t, jobs.CanPublish(approved))
	require.False(t, jobs.CanPublish(pending))
}

func TestApprove(t *testing.T) {
	t.Run("success re-fetches the record", func(t *testing.T) {
		flow := newWorkflow(t, "orders")

		httpmock.RegisterResponder("POST", testutils.OrderUpdateUrl, testutils.UpdateStatusResponder)
		httpmock.RegisterResponder("GET", "=~^"+testutils.OrderByIdUrl,
			testutils.MustRequestGetResponder(request.StatusApproved))

		fresh, err := flow.Approve(context.Background(), testutils.ServiceRequestFixture(request.StatusPending))
		require.NoError(t, err)
		require.Equal(t, request.StatusApproved, fresh.StatusID)
		require.Equal(t, 2, httpmock.GetTotalCallCount())
	})

	t.Run("wrong starting status makes no network call", func(t *testing.T) {
		flow := newWorkflow(t, "orders")

		_, err := flow.Approve(context.Background(), testutils.ServiceRequestFixture(request.StatusRejected))
		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot approve")
		require.Zero(t, httpmock.GetTotalCallCount())
	})

	t.Run("backend failure keeps the backend message", func(t *testing.T) {
		flow := newWorkflow(t, "orders")

		httpmock.RegisterResponder("POST", testutils.OrderUpdateUrl,
			testutils.MustErrorResponder(http.StatusConflict, "already reviewed by another admin"))

		_, err := flow.Approve(context.Background(), testutils.ServiceRequestFixture(request.StatusPending))
		require.Error(t, err)
		require.Contains(t, err.Error(), "already reviewed by another admin")
	})

	t.Run("backend failure without message gets the generic fallback", func(t *testing.T) {
		flow := newWorkflow(t, "orders")

		httpmock.RegisterResponder("POST", testutils.OrderUpdateUrl,
			httpmock.NewStringResponder(http.StatusInternalServerError, ""))

		_, err := flow.Approve(context.Background(), testutils.ServiceRequestFixture(request.StatusPending))
		require.Error(t, err)
		require.Contains(t, err.Error(), api.MsgSomethingWentWrong)
	})

	t.Run("session expiry stays distinct", func(t *testing.T) {
		flow := newWorkflow(t, "orders")

		httpmock.RegisterResponder("POST", testutils.OrderUpdateUrl, testutils.UnauthorizedResponder)

		_, err := flow.Approve(context.Background(), testutils.ServiceRequestFixture(request.StatusPending))
		require.ErrorIs(t, err, api.ErrSessionExpired)
	})
}

func TestReject(t *testing.T) {
	t.Run("reason is validated before any network call", func(t *testing.T) {
		flow := newWorkflow(t, "clinics")

		tt := []struct {
			name   string
			reason string
		}{
			{name: "empty", reason: ""},
			{name: "whitespace only", reason: "   "},
			{name: "below threshold", reason: "no"},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				_, err := flow.Reject(context.Background(), testutils.ServiceRequestFixture(request.StatusPending), tc.reason)

				var reasonErr *workflow.ReasonError
				require.ErrorAs(t, err, &reasonErr)
				require.Equal(t, 3, reasonErr.Min)
				require.Zero(t, httpmock.GetTotalCallCount())
			})
		}
	})

	t.Run("trimmed reason at the threshold passes", func(t *testing.T) {
		flow := newWorkflow(t, "clinics")

		httpmock.RegisterResponder("POST", testutils.ClinicUpdateUrl, testutils.UpdateStatusResponder)
		httpmock.RegisterResponder("GET", "=~^"+testutils.ClinicByIdUrl,
			testutils.MustRequestGetResponder(request.StatusRejected))

		fresh, err := flow.Reject(context.Background(), testutils.ServiceRequestFixture(request.StatusPending), "  bad ")
		require.NoError(t, err)
		require.Equal(t, request.StatusRejected, fresh.StatusID)
	})

	t.Run("late rejection on an approved clinic service", func(t *testing.T) {
		flow := newWorkflow(t, "clinics")

		httpmock.RegisterResponder("POST", testutils.ClinicUpdateUrl, testutils.UpdateStatusResponder)
		httpmock.RegisterResponder("GET", "=~^"+testutils.ClinicByIdUrl,
			testutils.MustRequestGetResponder(request.StatusRejected))

		_, err := flow.Reject(context.Background(), testutils.ServiceRequestFixture(request.StatusApproved), "expired license")
		require.NoError(t, err)
	})

	t.Run("late rejection is refused for orders", func(t *testing.T) {
		flow := newWorkflow(t, "orders")

		_, err := flow.Reject(context.Background(), testutils.ServiceRequestFixture(request.StatusApproved), "some reason")
		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot reject")
		require.Zero(t, httpmock.GetTotalCallCount())
	})
}

func TestPublish(t *testing.T) {
	t.Run("publishable vertical", func(t *testing.T) {
		flow := newWorkflow(t, "jobs")

		httpmock.RegisterResponder("POST", testutils.JobUpdateUrl, testutils.UpdateStatusResponder)
		httpmock.RegisterResponder("GET", "=~^"+testutils.JobByIdUrl,
			testutils.MustRequestGetResponder(request.StatusPublished))

		fresh, err := flow.Publish(context.Background(), testutils.ServiceRequestFixture(request.StatusApproved))
		require.NoError(t, err)
		require.Equal(t, request.StatusPublished, fresh.StatusID)
	})

	t.Run("non-publishable vertical", func(t *testing.T) {
		flow := newWorkflow(t, "orders")

		_, err := flow.Publish(context.Background(), testutils.ServiceRequestFixture(request.StatusApproved))
		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot publish")
		require.Zero(t, httpmock.GetTotalCallCount())
	})
}

func TestTransitionGate(t *testing.T) {
	flow := newWorkflow(t, "orders")

	release := make(chan struct{})
	started := make(chan struct{})

	httpmock.RegisterResponder("POST", testutils.OrderUpdateUrl,
		func(r *http.Request) (*http.Response, error) {
			close(started)
			<-release
			return testutils.UpdateStatusResponder(r)
		})
	httpmock.RegisterResponder("GET", "=~^"+testutils.OrderByIdUrl,
		testutils.MustRequestGetResponder(request.StatusApproved))

	require.False(t, flow.Submitting())

	done := make(chan error, 1)
	go func() {
		_, err := flow.Approve(context.Background(), testutils.ServiceRequestFixture(request.StatusPending))
		done <- err
	}()

	<-started
	require.True(t, flow.Submitting())

	// A second transition while the first is outstanding is refused locally.
	_, err := flow.Approve(context.Background(), testutils.ServiceRequestFixture(request.StatusPending))
	require.ErrorIs(t, err, workflow.ErrTransitionInFlight)

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("transition did not finish")
	}

	require.False(t, flow.Submitting())
}
