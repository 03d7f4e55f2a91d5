package store

import (
	"errors"
	"net/http"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/api"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
)

const (
	ErrorGettingRequest  = "could not get service request"
	ErrorGettingRequests = "could not get service requests"
	ErrorUpdatingStatus  = "could not update request status"
)

// ErrNotFound is returned when no record exists for the given id or request
// number. Callers render it as a dedicated not-found state, not as a generic
// error banner.
var ErrNotFound = errors.New("service request not found")

// Store performs the remote operations for one marketplace entity.
type Store struct {
	client *api.Client
	entity request.Entity
}

func New(client *api.Client, entity request.Entity) *Store {
	return &Store{client: client, entity: entity}
}

// Entity returns the descriptor this store operates on.
func (s *Store) Entity() request.Entity {
	return s.entity
}

// resultErr maps a non-OK Result to the caller-facing error taxonomy.
func resultErr(res api.Result) error {
	switch res.Outcome {
	case api.OutcomeSessionExpired:
		return api.ErrSessionExpired
	case api.OutcomeFailed:
		if res.Status == http.StatusNotFound {
			return ErrNotFound
		}
		return &api.Error{Status: res.Status, Message: res.Message}
	}
	return nil
}
