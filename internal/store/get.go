package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
)

// Get retrieves a service request by its numeric id.
func (s *Store) Get(ctx context.Context, id int) (*request.ServiceRequest, error) {
	return s.getDetail(ctx, s.entity.DetailByIDPath(id))
}

// GetByRequestNumber retrieves a service request by its human-facing request
// number.
func (s *Store) GetByRequestNumber(ctx context.Context, requestNumber string) (*request.ServiceRequest, error) {
	return s.getDetail(ctx, s.entity.DetailByNumberPath(requestNumber))
}

func (s *Store) getDetail(ctx context.Context, path string) (*request.ServiceRequest, error) {
	res := s.client.Get(ctx, path, nil)
	if !res.OK() {
		return nil, errors.WithMessage(resultErr(res), ErrorGettingRequest)
	}

	var item request.ServiceRequest
	if err := res.Decode(&item); err != nil {
		return nil, fmt.Errorf("error unmarshalling service request: %w", err)
	}
	if item.IsNil() {
		return nil, ErrNotFound
	}

	slog.Debug("service request", "entity", s.entity.Name, "item", item)
	return &item, nil
}
