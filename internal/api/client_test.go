package api_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/api"
)

const baseUrl = "http://fakeurl:3001/api/v1/"

type fakeTokens struct {
	token   string
	cleared bool
}

func (f *fakeTokens) Token() string { return f.token }
func (f *fakeTokens) Clear() error  { f.cleared = true; return nil }

func newTestClient(tokens api.TokenSource) *api.Client {
	rest := resty.New().SetBaseURL(baseUrl)
	httpmock.ActivateNonDefault(rest.GetClient())
	return api.New(rest, tokens)
}

type payload struct {
	RequestNumber string `json:"requestNumber"`
	Title         string `json:"title"`
}

func TestClientNormalizesEnvelopes(t *testing.T) {
	client := newTestClient(&fakeTokens{})
	defer httpmock.DeactivateAndReset()

	// The same logical payload arrives in every wrapper shape the backend is
	// known to produce; all of them must decode identically.
	tt := []struct {
		name string
		body string
	}{
		{name: "bare", body: `{"requestNumber":"ORD-1","title":"x"}`},
		{name: "data wrapper", body: `{"data":{"requestNumber":"ORD-1","title":"x"}}`},
		{name: "double data wrapper", body: `{"data":{"data":{"requestNumber":"ORD-1","title":"x"}}}`},
		{name: "success wrapper", body: `{"success":true,"data":{"requestNumber":"ORD-1","title":"x"}}`},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder("GET", baseUrl+"Order/GetOrderById/1",
				httpmock.NewStringResponder(http.StatusOK, tc.body))

			res := client.Get(context.Background(), "Order/GetOrderById/1", nil)
			require.True(t, res.OK())

			var item payload
			require.NoError(t, res.Decode(&item))
			require.Equal(t, payload{RequestNumber: "ORD-1", Title: "x"}, item)
		})
	}
}

func TestClientErrorMessages(t *testing.T) {
	client := newTestClient(&fakeTokens{})
	defer httpmock.DeactivateAndReset()

	tt := []struct {
		name     string
		code     int
		body     string
		expected string
	}{
		{name: "backend message", code: http.StatusInternalServerError, body: `{"message":"record is locked"}`, expected: "record is locked"},
		{name: "plain string body", code: http.StatusBadRequest, body: `"invalid status transition"`, expected: "invalid status transition"},
		{name: "empty body", code: http.StatusInternalServerError, body: ``, expected: api.MsgSomethingWentWrong},
		{name: "unusable body", code: http.StatusBadGateway, body: `{"errors":[1,2]}`, expected: api.MsgSomethingWentWrong},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder("GET", baseUrl+"Order/GetAllOrders",
				httpmock.NewStringResponder(tc.code, tc.body))

			res := client.Get(context.Background(), "Order/GetAllOrders", nil)
			require.Equal(t, api.OutcomeFailed, res.Outcome)
			require.Equal(t, tc.code, res.Status)
			require.Equal(t, tc.expected, res.Message)
		})
	}
}

func TestClientSessionExpiry(t *testing.T) {
	tokens := &fakeTokens{token: "stale"}
	client := newTestClient(tokens)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", baseUrl+"Order/GetAllOrders",
		httpmock.NewStringResponder(http.StatusUnauthorized, ""))

	res := client.Get(context.Background(), "Order/GetAllOrders", nil)

	require.Equal(t, api.OutcomeSessionExpired, res.Outcome)
	require.Equal(t, http.StatusUnauthorized, res.Status)
	require.True(t, tokens.cleared, "a 401 must wipe the local session")
}

func TestClientRequestHeaders(t *testing.T) {
	client := newTestClient(&fakeTokens{token: "tok-123"})
	defer httpmock.DeactivateAndReset()

	var auth, requestId string
	httpmock.RegisterResponder("GET", baseUrl+"Order/GetAllOrders",
		func(r *http.Request) (*http.Response, error) {
			auth = r.Header.Get("Authorization")
			requestId = r.Header.Get("X-Request-Id")
			return httpmock.NewStringResponse(http.StatusOK, `[]`), nil
		})

	res := client.Get(context.Background(), "Order/GetAllOrders", nil)
	require.True(t, res.OK())
	require.Equal(t, "Bearer tok-123", auth)
	require.NotEmpty(t, requestId)
}

func TestClientNoTokenNoAuthHeader(t *testing.T) {
	client := newTestClient(&fakeTokens{})
	defer httpmock.DeactivateAndReset()

	var auth string
	httpmock.RegisterResponder("GET", baseUrl+"Order/GetAllOrders",
		func(r *http.Request) (*http.Response, error) {
			auth = r.Header.Get("Authorization")
			return httpmock.NewStringResponse(http.StatusOK, `[]`), nil
		})

	res := client.Get(context.Background(), "Order/GetAllOrders", nil)
	require.True(t, res.OK())
	require.Empty(t, auth)
}

func TestClientTransportFailures(t *testing.T) {
	client := newTestClient(&fakeTokens{})
	defer httpmock.DeactivateAndReset()

	// Dispatched-but-unanswered failures all belong to the timeout class;
	// the setup message is reserved for requests that never left the client.
	tt := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "deadline exceeded", err: context.DeadlineExceeded, expected: api.MsgServerTimeout},
		{
			name:     "connection refused",
			err:      &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			expected: api.MsgServerTimeout,
		},
		{
			name:     "dns failure",
			err:      &net.DNSError{Err: "no such host", Name: "fakeurl"},
			expected: api.MsgServerTimeout,
		},
		{name: "setup failure", err: errors.New("unsupported protocol scheme"), expected: api.MsgRequestSetup},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder("GET", baseUrl+"Order/GetAllOrders",
				httpmock.NewErrorResponder(tc.err))

			res := client.Get(context.Background(), "Order/GetAllOrders", nil)
			require.Equal(t, api.OutcomeFailed, res.Outcome)
			require.Equal(t, 0, res.Status)
			require.Equal(t, tc.expected, res.Message)
		})
	}
}
