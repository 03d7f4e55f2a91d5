package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
)

// UpdateStatusRequest is the semantic payload of every status-transition
// endpoint. Field casing follows the backend.
type UpdateStatusRequest struct {
	RequestID     int            `json:"requestId"`
	NewStatusID   request.Status `json:"newStatusId"`
	RequestNumber string         `json:"requestNumber"`
	Reason        string         `json:"reason"`
	UserID        string         `json:"userId,omitempty"`
}

// UpdateStatusResponse echoes the transition the backend applied.
type UpdateStatusResponse struct {
	RequestID  int            `json:"requestId"`
	StatusID   request.Status `json:"statusId"`
	StatusName string         `json:"statusName,omitempty"`
}

// UpdateStatus posts a status transition. On success the caller must re-fetch
// the record; server-computed fields (statusName, audit timestamps) are not
// patched locally.
func (s *Store) UpdateStatus(ctx context.Context, update UpdateStatusRequest) error {
	slog.Debug("UpdateStatus",
		"entity", s.entity.Name,
		"requestId", update.RequestID,
		"newStatusId", update.NewStatusID,
	)

	res := s.client.Post(ctx, s.entity.UpdateEndpoint, &update)
	if !res.OK() {
		return errors.WithMessage(resultErr(res), ErrorUpdatingStatus)
	}

	var echo UpdateStatusResponse
	if err := res.Decode(&echo); err != nil {
		return fmt.Errorf("error unmarshalling status update response: %w", err)
	}
	if echo.StatusID != 0 && echo.StatusID != update.NewStatusID {
		return fmt.Errorf("status not updated: requested %d, backend reports %d", update.NewStatusID, echo.StatusID)
	}

	return nil
}
