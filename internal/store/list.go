package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
)

// Page is one page of service requests together with the resolved page state.
type Page struct {
	Items []request.ServiceRequest
	State request.PageState
}

// listEnvelope is the paginated list wrapper. Some endpoints return a bare
// array instead; List accepts both.
type listEnvelope struct {
	Data       []request.ServiceRequest `json:"data"`
	TotalCount int                      `json:"totalCount"`
	TotalPages int                      `json:"totalPages"`
}

// List retrieves one page of service requests from the backend.
func (s *Store) List(ctx context.Context, params request.ListParams) (*Page, error) {
	slog.Debug("List", "entity", s.entity.Name, "page", params.Page, "pageSize", params.PageSize)

	res := s.client.Get(ctx, s.entity.ListEndpoint, params.Query())
	if !res.OK() {
		return nil, errors.WithMessage(resultErr(res), ErrorGettingRequests)
	}

	state := request.NewPageState(params.Page, params.PageSize)

	// Try the {data, totalCount, totalPages} envelope first. The raw body is
	// used because the generic unwrap would strip the totals.
	var env listEnvelope
	if err := json.Unmarshal(res.Raw, &env); err == nil && env.Data != nil {
		return &Page{Items: env.Data, State: state.WithTotals(env.TotalCount, env.TotalPages)}, nil
	}

	var items []request.ServiceRequest
	if err := json.Unmarshal(res.Data, &items); err != nil {
		return nil, errors.WithMessage(err, ErrorGettingRequests)
	}

	return &Page{Items: items, State: state.WithTotals(len(items), 0)}, nil
}
