package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Fixed user-facing messages for the failure classes that carry no usable
// backend message.
const (
	MsgSomethingWentWrong = "something went wrong"
	MsgServerTimeout      = "server time out"
	MsgRequestSetup       = "opps! something went wrong while setting up request."
)

// Outcome tags the result of a backend call. Session expiry is a distinct
// variant rather than a nil return so callers can pattern-match on it.
type Outcome int

const (
	OutcomeOK Outcome = iota + 1
	OutcomeFailed
	OutcomeSessionExpired
)

// Result is the normalized outcome of a backend call. Exactly one of
// Data/Message is meaningful depending on the Outcome.
type Result struct {
	Outcome Outcome
	Status  int             // HTTP status code, 0 when no response arrived
	Raw     json.RawMessage // response body as received
	Data    json.RawMessage // unwrapped payload
	Message string
}

func ok(status int, raw []byte) Result {
	return Result{Outcome: OutcomeOK, Status: status, Raw: raw, Data: unwrap(raw)}
}

func failed(status int, message string) Result {
	return Result{Outcome: OutcomeFailed, Status: status, Message: message}
}

func sessionExpired() Result {
	return Result{Outcome: OutcomeSessionExpired, Status: 401}
}

// OK reports whether the call succeeded.
func (r Result) OK() bool {
	return r.Outcome == OutcomeOK
}

// Decode unmarshals the unwrapped payload into v.
func (r Result) Decode(v interface{}) error {
	if !r.OK() {
		return fmt.Errorf("cannot decode result: %s", r.Message)
	}
	if len(r.Data) == 0 {
		return nil
	}
	return json.Unmarshal(r.Data, v)
}

// envelope matches the wrapper shapes the backend is known to produce.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// unwrap maps the observed success shapes to the bare payload:
// {"data":{"data":X}} -> X, {"data":X} -> X, {"success":true,"data":X} -> X,
// bare X -> X. Unwrapping is idempotent for any logical payload X.
func unwrap(raw []byte) json.RawMessage {
	body := bytes.TrimSpace(raw)
	if len(body) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil || len(env.Data) == 0 {
		return body
	}

	// One more level for the {"data":{"data":X}} axios-style envelope.
	var inner envelope
	if err := json.Unmarshal(env.Data, &inner); err == nil && len(inner.Data) > 0 && inner.Success == nil {
		return inner.Data
	}

	return env.Data
}

// errorMessage extracts a human-readable message from an error response body,
// falling back to the generic message when the body has none.
func errorMessage(raw []byte) string {
	body := bytes.TrimSpace(raw)
	if len(body) == 0 {
		return MsgSomethingWentWrong
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}

	var plain string
	if err := json.Unmarshal(body, &plain); err == nil && plain != "" {
		return plain
	}

	return MsgSomethingWentWrong
}
