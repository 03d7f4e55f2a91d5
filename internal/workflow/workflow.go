package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/go-playground/validator/v10"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/api"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/store"
)

// Generic fallbacks shown when the backend fails without a usable message.
const (
	MsgApproveFailed = "Failed to approve request. Please try again."
	MsgRejectFailed  = "Failed to reject request. Please try again."
	MsgPublishFailed = "Failed to publish request. Please try again."
)

// ErrTransitionInFlight gates double submission: a second transition from the
// same workflow instance is refused while one is outstanding. This is local
// to the instance, not a cross-tab lock; the backend arbitrates races.
var ErrTransitionInFlight = errors.New("another status update is in flight")

// ReasonError is a client-side validation failure: no network call was made.
type ReasonError struct {
	Min int
}

func (e *ReasonError) Error() string {
	if e.Min > 1 {
		return fmt.Sprintf("rejection reason must be at least %d characters", e.Min)
	}
	return "rejection reason is required"
}

// Workflow encapsulates the Approve / Reject / Publish transitions for one
// entity. Every transition is pessimistic: the fresh record is re-fetched
// after the backend confirms, and nothing is patched locally on failure.
type Workflow struct {
	store    *store.Store
	entity   request.Entity
	userID   string
	validate *validator.Validate
	inFlight atomic.Bool
}

func New(s *store.Store, userID string) *Workflow {
	return &Workflow{
		store:    s,
		entity:   s.Entity(),
		userID:   userID,
		validate: validator.New(),
	}
}

// CanApprove reports whether the Approve action applies to the record.
func (w *Workflow) CanApprove(r request.ServiceRequest) bool {
	return r.StatusID == request.StatusPending
}

// CanReject reports whether the Reject action applies to the record. Some
// verticals keep Reject available after approval.
func (w *Workflow) CanReject(r request.ServiceRequest) bool {
	if r.StatusID == request.StatusPending {
		return true
	}
	return w.entity.RejectableAfterApprove && r.StatusID == request.StatusApproved
}

// CanPublish reports whether the Publish action applies to the record.
func (w *Workflow) CanPublish(r request.ServiceRequest) bool {
	return w.entity.Publishable && r.StatusID == request.StatusApproved
}

// Submitting reports whether a transition is currently outstanding.
func (w *Workflow) Submitting() bool {
	return w.inFlight.Load()
}

// Approve moves a pending record to Approved. No reason is required.
func (w *Workflow) Approve(ctx context.Context, r request.ServiceRequest) (*request.ServiceRequest, error) {
	if !w.CanApprove(r) {
		return nil, fmt.Errorf("cannot approve request %s in status %s", r.RequestNumber, r.StatusID)
	}
	return w.transition(ctx, r, request.StatusApproved, "", MsgApproveFailed)
}

// Reject moves a record to Rejected with a mandatory reason. The reason is
// validated against the entity's threshold before any network call.
func (w *Workflow) Reject(ctx context.Context, r request.ServiceRequest, reason string) (*request.ServiceRequest, error) {
	if !w.CanReject(r) {
		return nil, fmt.Errorf("cannot reject request %s in status %s", r.RequestNumber, r.StatusID)
	}

	trimmed := strings.TrimSpace(reason)
	if err := w.validate.Var(trimmed, fmt.Sprintf("required,min=%d", w.entity.MinReasonLen)); err != nil {
		return nil, &ReasonError{Min: w.entity.MinReasonLen}
	}

	return w.transition(ctx, r, request.StatusRejected, trimmed, MsgRejectFailed)
}

// Publish moves an approved record to Published on verticals that model a
// publish step.
func (w *Workflow) Publish(ctx context.Context, r request.ServiceRequest) (*request.ServiceRequest, error) {
	if !w.CanPublish(r) {
		return nil, fmt.Errorf("cannot publish request %s in status %s", r.RequestNumber, r.StatusID)
	}
	return w.transition(ctx, r, request.StatusPublished, "", MsgPublishFailed)
}

func (w *Workflow) transition(ctx context.Context, r request.ServiceRequest, newStatus request.Status, reason, fallback string) (*request.ServiceRequest, error) {
	if !w.inFlight.CompareAndSwap(false, true) {
		return nil, ErrTransitionInFlight
	}
	defer w.inFlight.Store(false)

	slog.Info("status transition",
		"entity", w.entity.Name,
		"requestNumber", r.RequestNumber,
		"from", r.StatusID.String(),
		"to", newStatus.String(),
	)

	err := w.store.UpdateStatus(ctx, store.UpdateStatusRequest{
		RequestID:     r.RequestID,
		NewStatusID:   newStatus,
		RequestNumber: r.RequestNumber,
		Reason:        reason,
		UserID:        w.userID,
	})
	if err != nil {
		return nil, surface(err, fallback)
	}

	// Re-fetch rather than patch local state: statusName and audit timestamps
	// are server-computed.
	fresh, err := w.store.Get(ctx, r.RequestID)
	if err != nil {
		return nil, surface(err, fallback)
	}

	return fresh, nil
}

// surface keeps session expiry distinct and substitutes the generic fallback
// when the backend produced no usable message.
func surface(err error, fallback string) error {
	if errors.Is(err, api.ErrSessionExpired) {
		return api.ErrSessionExpired
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return err
	}
	if errors.Is(err, store.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", fallback, err)
}
