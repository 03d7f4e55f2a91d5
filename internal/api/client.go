package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// ErrSessionExpired is returned once a 401 response has wiped the local
// session. Callers must not surface it as a regular error toast; the user is
// sent back to login instead.
var ErrSessionExpired = errors.New("session expired")

// Error is a failed backend call carrying the backend-provided message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// TokenSource supplies the bearer token for outbound requests and clears the
// underlying session on expiry. Injected so tests can substitute a fake
// without touching global state.
type TokenSource interface {
	Token() string
	Clear() error
}

// Client is the single choke point for outbound requests: it attaches the
// bearer token at call time, tags each request with a correlation id and
// normalizes the backend's response shapes into a Result.
type Client struct {
	rest   *resty.Client
	tokens TokenSource
}

func New(rest *resty.Client, tokens TokenSource) *Client {
	return &Client{rest: rest, tokens: tokens}
}

// Rest exposes the underlying resty client for auth calls that manage the
// token themselves.
func (c *Client) Rest() *resty.Client {
	return c.rest
}

// Get performs a GET request with the given query parameters.
func (c *Client) Get(ctx context.Context, path string, query map[string]string) Result {
	req := c.newRequest(ctx)
	if query != nil {
		req.SetQueryParams(query)
	}
	return c.execute(req, resty.MethodGet, path)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) Result {
	req := c.newRequest(ctx)
	if body != nil {
		req.SetBody(body)
	}
	return c.execute(req, resty.MethodPost, path)
}

func (c *Client) newRequest(ctx context.Context) *resty.Request {
	req := c.rest.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (c *Client) execute(req *resty.Request, method, path string) Result {
	slog.Debug(method, "path", path)

	response, err := req.Execute(method, path)
	if err != nil {
		return c.transportResult(method, path, err)
	}

	statusCode := response.StatusCode()
	if statusCode == 401 {
		slog.Warn("session expired, clearing local session", "path", path)
		if clearErr := c.tokens.Clear(); clearErr != nil {
			slog.Error("unable to clear session", "error", clearErr)
		}
		return sessionExpired()
	}

	if response.IsError() {
		message := errorMessage(response.Body())
		slog.Debug("backend error", "path", path, "status", statusCode, "message", message)
		return failed(statusCode, message)
	}

	return ok(statusCode, response.Body())
}

// transportResult classifies a call that produced no response: the request
// went out and got no answer, or it could not even be constructed.
func (c *Client) transportResult(method, path string, err error) Result {
	slog.Error("request failed", "method", method, "path", path, "error", err)

	if isNetworkFailure(err) {
		return failed(0, MsgServerTimeout)
	}
	return failed(0, MsgRequestSetup)
}

// isNetworkFailure reports whether the request was dispatched and went
// unanswered: timeouts, refused connections, DNS failures. Anything else
// means the request never left the client.
func isNetworkFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Timeout() || urlErr.Temporary()
	}
	return false
}
